package database

import (
	"errors"

	"github.com/craftshare/backend/models"
	"gorm.io/gorm"
)

type ImageRepo struct {
	db *gorm.DB
}

func NewImageRepo(db *gorm.DB) *ImageRepo {
	return &ImageRepo{db}
}

// FindByProject returns all images attached to the project.
func (r *ImageRepo) FindByProject(projectID uint) ([]models.Image, error) {
	images := []models.Image{}
	err := r.db.Where("project_id = ?", projectID).Find(&images).Error
	return images, err
}

// FindByIDAndProject returns the image only when it belongs to the project,
// or nil.
func (r *ImageRepo) FindByIDAndProject(id, projectID uint) (*models.Image, error) {
	var image models.Image
	err := r.db.Where("id = ? AND project_id = ?", id, projectID).First(&image).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// Add inserts a new image into the database
func (r *ImageRepo) Add(image *models.Image) error {
	return r.db.Create(image).Error
}

// Delete removes an image row by id
func (r *ImageRepo) Delete(id uint) error {
	return r.db.Delete(&models.Image{}, id).Error
}
