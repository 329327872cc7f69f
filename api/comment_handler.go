package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/craftshare/backend/database"
	"github.com/craftshare/backend/errs"
	"github.com/craftshare/backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type commentHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	commentRepo *database.CommentRepo
}

func newCommentHandler(projectRepo *database.ProjectRepo, commentRepo *database.CommentRepo) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		commentRepo: commentRepo,
	}
}

// getProjectComments lists a project's comments newest-first with author
// emails, gated by project visibility.
func (h commentHandler) getProjectComments() http.HandlerFunc {
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

		comments, err := h.commentRepo.FindByProject(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "comments", err))
			return
		}

		h.responder.WriteJSON(w, comments)
	}
}

// createComment adds a comment for the actor. Whoever can see the project
// can comment on it; ownership is not required.
func (h commentHandler) createComment() http.HandlerFunc {
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

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		if !canRead(project, actor) {
			h.responder.WriteError(w, errs.NewForbiddenError("Access denied"))
			return
		}

		var req commentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		content := strings.TrimSpace(req.Content)
		if content == "" {
			h.responder.WriteError(w, errs.BadRequest("Comment content is required"))
			return
		}

		comment := &models.Comment{
			Content:   content,
			ProjectID: project.ID,
			UserID:    actor.ID,
		}
		if err := h.commentRepo.Add(comment); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "comment", err))
			return
		}

		// Re-read so the response carries the author's email
		created, err := h.commentRepo.FindByID(comment.ID)
		if err != nil || created == nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "comment", err))
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, created)
	}
}

// deleteComment removes the actor's own comment. The delete is scoped by
// (commentID, projectID, userID), so someone else's comment reads as not
// found even for the project owner.
func (h commentHandler) deleteComment() http.HandlerFunc {
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
		commentID, err := pathID(r, "commentID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		deleted, err := h.commentRepo.DeleteScoped(commentID, projectID, actor.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "comment", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFoundError("Comment not found"))
			return
		}

		h.responder.WriteJSON(w, messageResponse{Message: "Comment deleted successfully"})
	}
}
