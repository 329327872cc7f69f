package api

import (
	"context"
)

type keyType string

const (
	actorKey     keyType = "actor"
	requestIDKey keyType = "requestID"
)

// Actor is the authenticated user identity attached to a request by the
// auth middleware.
type Actor struct {
	ID uint
}

// ctxWithActor adds the authenticated actor to the context
func ctxWithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// actorFrom retrieves the actor from the context; nil means the request is
// anonymous.
func actorFrom(ctx context.Context) *Actor {
	actor, _ := ctx.Value(actorKey).(*Actor)
	return actor
}

// ctxWithRequestID adds a request ID to the context
func ctxWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// requestIDFrom retrieves the request ID from the context
func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
