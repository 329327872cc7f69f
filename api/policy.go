package api

import "github.com/craftshare/backend/models"

// canRead reports whether actor may see the project: public projects are
// visible to everyone, private ones only to their owner.
func canRead(project *models.Project, actor *Actor) bool {
	if project.IsPublic {
		return true
	}
	return actor != nil && actor.ID == project.UserID
}

// canWrite reports whether actor may mutate the project or its children.
func canWrite(project *models.Project, actor *Actor) bool {
	return actor != nil && actor.ID == project.UserID
}
