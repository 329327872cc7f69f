package api

import (
	"encoding/json"
	"net/http"

	"github.com/craftshare/backend/database"
	"github.com/craftshare/backend/errs"
	"github.com/craftshare/backend/models"
	"github.com/craftshare/backend/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	store       storage.Store
}

func newProjectHandler(projectRepo *database.ProjectRepo, store storage.Store) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		store:       store,
	}
}

// getPublicProjects returns every public project with its owner and images.
// Private projects never appear here, owner or not.
func (h projectHandler) getPublicProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindPublic()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProject returns one project. Private projects are visible only to
// their owner; everyone else gets 403.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := pathID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		if !canRead(project, actorFrom(r.Context())) {
			h.responder.WriteError(w, errs.NewForbiddenError("Access denied"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a project owned by the actor. The owner always comes
// from the token, never from the body.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := actorFrom(r.Context())
		if actor == nil {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if err := validate.Struct(req); err != nil {
			h.responder.WriteError(w, errs.BadRequest("Title is required"))
			return
		}

		project := &models.Project{
			Title:       req.Title,
			Description: req.Description,
			IsPublic:    req.IsPublic,
			UserID:      actor.ID,
		}
		if err := h.projectRepo.Add(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, project)
	}
}

// updateProject lets the owner change title, description and visibility.
// The lookup is owner-scoped, so foreign projects read as not found.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := actorFrom(r.Context())
		if actor == nil {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		projectID, err := pathID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByIDAndOwner(projectID, actor.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if err := validate.Struct(req); err != nil {
			h.responder.WriteError(w, errs.BadRequest("Title is required"))
			return
		}

		project.Title = req.Title
		project.Description = req.Description
		project.IsPublic = req.IsPublic

		if err := h.projectRepo.Update(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject removes the project with its images and comments in one
// transaction, then deletes the blobs best-effort after commit.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := actorFrom(r.Context())
		if actor == nil {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		projectID, err := pathID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByIDAndOwner(projectID, actor.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		keys, err := h.projectRepo.DeleteCascade(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		// Blob failures do not abort the cascade; orphans are a future
		// sweeper's problem.
		for _, key := range keys {
			if err := h.store.Remove(r.Context(), key); err != nil {
				h.logger.Warn().Err(err).Str("key", key).Msg("failed to delete blob during project cascade")
			}
		}

		h.responder.WriteJSON(w, messageResponse{Message: "Project deleted successfully"})
	}
}
