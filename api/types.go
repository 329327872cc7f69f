package api

import (
	"net/http"
	"strconv"

	"github.com/craftshare/backend/errs"
	"github.com/craftshare/backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler    authHandler
	projectHandler projectHandler
	imageHandler   imageHandler
	commentHandler commentHandler
}

var validate = validator.New()

// credentialsRequest is the body of both register and login.
type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type projectRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
}

type commentRequest struct {
	Content string `json:"content"`
}

type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// pathID parses a numeric id URL parameter.
func pathID(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errs.NewBadRequestError("Invalid " + name)
	}
	return uint(id), nil
}
