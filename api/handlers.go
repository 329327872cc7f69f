package api

import (
	"github.com/craftshare/backend/auth"
	"github.com/craftshare/backend/database"
	"github.com/craftshare/backend/storage"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, store storage.Store, tokens *auth.TokenManager) *routeHandlers {
	return &routeHandlers{
		authHandler:    newAuthHandler(database.UserRepo(), tokens),
		projectHandler: newProjectHandler(database.ProjectRepo(), store),
		imageHandler:   newImageHandler(database.ProjectRepo(), database.ImageRepo(), store),
		commentHandler: newCommentHandler(database.ProjectRepo(), database.CommentRepo()),
	}
}
