package database

import (
	"errors"

	"github.com/craftshare/backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindPublic returns all public projects with their owner and images.
func (r *ProjectRepo) FindPublic() ([]*models.Project, error) {
	projects := []*models.Project{}
	err := r.db.Where("is_public = ?", true).
		Preload("User").
		Preload("Images").
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project with its owner, or nil when absent.
func (r *ProjectRepo) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("User").First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByIDAndOwner returns the project only when userID owns it, or nil.
// Write paths look projects up through this scope.
func (r *ProjectRepo) FindByIDAndOwner(id, userID uint) (*models.Project, error) {
	var project models.Project
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// DeleteCascade removes a project together with its comments and images in
// one transaction, so concurrent readers see the project with all of its
// children or none of them. It returns the object-store keys of the removed
// images; blob cleanup happens after commit.
func (r *ProjectRepo) DeleteCascade(id uint) ([]string, error) {
	var keys []string
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var images []models.Image
		if err := tx.Where("project_id = ?", id).Find(&images).Error; err != nil {
			return err
		}
		for _, image := range images {
			keys = append(keys, image.Key)
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Image{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}
