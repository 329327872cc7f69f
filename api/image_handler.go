package api

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/craftshare/backend/database"
	"github.com/craftshare/backend/errs"
	"github.com/craftshare/backend/models"
	"github.com/craftshare/backend/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// maxUploadBytes is the hard cap on an uploaded image.
	maxUploadBytes = 5 << 20
	// multipartOverhead leaves room for the multipart framing around the file.
	multipartOverhead = 512 << 10
)

type imageHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	imageRepo   *database.ImageRepo
	store       storage.Store
}

func newImageHandler(projectRepo *database.ProjectRepo, imageRepo *database.ImageRepo, store storage.Store) imageHandler {
	logger := log.With().Str("handlerName", "imageHandler").Logger()

	return imageHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		imageRepo:   imageRepo,
		store:       store,
	}
}

// uploadImage stores the multipart `image` field in the object store, then
// records it. The size cap is enforced before the store is contacted. If the
// row insert fails after a successful put, the blob is leaked on purpose:
// rows must never dangle, blobs may.
func (h imageHandler) uploadImage() http.HandlerFunc {
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

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+multipartOverhead)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) || errors.Is(err, multipart.ErrMessageTooLarge) {
				h.responder.WriteError(w, errs.BadRequest("File too large"))
			} else {
				h.responder.WriteError(w, errs.BadRequest("No image file provided"))
			}
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			h.responder.WriteError(w, errs.BadRequest("No image file provided"))
			return
		}
		defer file.Close()

		if header.Size > maxUploadBytes {
			h.responder.WriteError(w, errs.BadRequest("File too large"))
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			h.responder.WriteError(w, errs.BadRequest("No image file provided"))
			return
		}

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		key := storage.ObjectKey(project.ID, header.Filename)
		url, err := h.store.Upload(r.Context(), key, data, contentType)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("upload", err))
			return
		}

		image := &models.Image{
			URL:       url,
			Key:       key,
			ProjectID: project.ID,
		}
		if err := h.imageRepo.Add(image); err != nil {
			h.logger.Error().Err(err).Str("key", key).Msg("image row insert failed after blob upload, blob leaked")
			h.responder.WriteError(w, wrapDatabaseError("create", "image", err))
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, image)
	}
}

// getProjectImages lists a project's images, gated by project visibility.
func (h imageHandler) getProjectImages() http.HandlerFunc {
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

		images, err := h.imageRepo.FindByProject(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "images", err))
			return
		}

		h.responder.WriteJSON(w, images)
	}
}

// deleteImage removes the blob first, the row second. A failed blob delete
// leaves the row in place; the operation is idempotent so the caller can
// retry.
func (h imageHandler) deleteImage() http.HandlerFunc {
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
		imageID, err := pathID(r, "imageID")
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

		image, err := h.imageRepo.FindByIDAndProject(imageID, project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "image", err))
			return
		}
		if image == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Image not found"))
			return
		}

		if err := h.store.Remove(r.Context(), image.Key); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("delete", err))
			return
		}

		if err := h.imageRepo.Delete(image.ID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "image", err))
			return
		}

		h.responder.WriteJSON(w, messageResponse{Message: "Image deleted successfully"})
	}
}
