package api

import (
	"errors"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/craftshare/backend/auth"
	"github.com/craftshare/backend/errs"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authMiddleware struct {
	tokens    *auth.TokenManager
	responder Responder
}

func newAuthMiddleware(tokens *auth.TokenManager) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		tokens:    tokens,
		responder: NewResponder(logger),
	}
}

// require rejects requests without a valid bearer token.
func (m authMiddleware) require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := m.actorFromHeader(r)
		if err != nil {
			m.responder.WriteError(w, err)
			return
		}
		if actor == nil {
			m.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxWithActor(r.Context(), actor)))
	})
}

// optional attaches the actor when a valid bearer token is present and lets
// the request through anonymously otherwise, so public-read endpoints can
// evaluate visibility themselves.
func (m authMiddleware) optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := m.actorFromHeader(r)
		if err != nil || actor == nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxWithActor(r.Context(), actor)))
	})
}

// actorFromHeader parses the Authorization header. A missing header yields
// (nil, nil); a present but unusable token yields an ApiErr.
func (m authMiddleware) actorFromHeader(r *http.Request) (*Actor, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errs.NewInvalidTokenError()
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := m.tokens.ValidateToken(tokenString)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, errs.NewExpiredTokenError()
		}
		return nil, errs.NewInvalidTokenError()
	}

	return &Actor{ID: claims.UserID}, nil
}

// RequestIDMiddleware tags every request with a uuid, echoed in the
// X-Request-Id header and attached to the context for logging.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctxWithRequestID(r.Context(), id)))
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func LogInternalServerErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("requestId", requestIDFrom(r.Context())).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				// Write 500 if nothing written yet
				if !srw.wroteHeader {
					srw.Header().Set("Content-Type", "application/json; charset=utf-8")
					srw.WriteHeader(http.StatusInternalServerError)
					srw.Write([]byte(`{"message":"Something went wrong!"}`))
				}
			}
		}()

		next.ServeHTTP(srw, r)

		// Log 500s that weren't panics (e.g. set by handlers)
		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("requestId", requestIDFrom(r.Context())).
				Msg("500 error response")
		}
	})
}

// ColoredHTTPLoggingMiddleware logs HTTP requests with colored output based on status codes
func ColoredHTTPLoggingMiddleware(next http.Handler) http.Handler {
	// Set up colored console writer for development
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		duration := time.Since(start)

		// Color-code based on HTTP status codes
		var logEvent *zerolog.Event
		switch {
		case srw.status >= 500:
			logEvent = colorLogger.Error()
		case srw.status >= 400:
			logEvent = colorLogger.Warn()
		default:
			logEvent = colorLogger.Info()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("requestId", requestIDFrom(r.Context())).
			Int("status", srw.status).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP Request")
	})
}
