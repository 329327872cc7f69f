package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/craftshare/backend/auth"
	"github.com/craftshare/backend/database"
	"github.com/craftshare/backend/errs"
	"github.com/craftshare/backend/models"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	tokens    *auth.TokenManager
}

func newAuthHandler(userRepo *database.UserRepo, tokens *auth.TokenManager) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		tokens:    tokens,
	}
}

// register creates a user from {email, password} and returns it together
// with a fresh token. Duplicate emails are rejected before the insert.
func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		if err := validate.Struct(req); err != nil {
			h.responder.WriteError(w, credentialsValidationError(err))
			return
		}

		existing, err := h.userRepo.FindByEmail(req.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.BadRequest("User already exists"))
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user := &models.User{Email: req.Email, PasswordHash: hash}
		if err := h.userRepo.Add(user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "user", err))
			return
		}

		token, err := h.tokens.GenerateToken(user.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, authResponse{User: user, Token: token})
	}
}

// login verifies credentials and mints a fresh token. Unknown email and
// wrong password are indistinguishable to the caller.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		user, err := h.userRepo.FindByEmail(email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if user == nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("Invalid credentials"))
			return
		}

		token, err := h.tokens.GenerateToken(user.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, authResponse{User: user, Token: token})
	}
}

func credentialsValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Email":
			return errs.BadRequest("A valid email is required")
		case "Password":
			return errs.BadRequest("Password must be at least 6 characters")
		}
	}
	return errs.BadRequest("malformed request body")
}
