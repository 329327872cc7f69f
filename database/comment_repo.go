package database

import (
	"errors"

	"github.com/craftshare/backend/models"
	"gorm.io/gorm"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// FindByProject returns the project's comments newest-first, each with its
// author.
func (r *CommentRepo) FindByProject(projectID uint) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := r.db.Where("project_id = ?", projectID).
		Preload("User").
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	return comments, err
}

// FindByID returns a comment with its author, or nil when absent.
func (r *CommentRepo) FindByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("User").First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Add inserts a new comment into the database
func (r *CommentRepo) Add(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// DeleteScoped deletes the comment only when it lives in the given project
// and was written by userID. Reports whether a row was actually removed, so
// a cross-project or cross-author id reads as not found.
func (r *CommentRepo) DeleteScoped(id, projectID, userID uint) (bool, error) {
	res := r.db.Where("id = ? AND project_id = ? AND user_id = ?", id, projectID, userID).
		Delete(&models.Comment{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
