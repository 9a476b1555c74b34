package repository

import (
	"context"
	"fmt"

	"github.com/enroute-travel/itinerary-api/internal/itinerary"
	"github.com/enroute-travel/itinerary-api/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// Save inserts the template or overwrites the one with the same name.
func (r *TemplateRepository) Save(ctx context.Context, name, createdBy string, snap itinerary.TemplateSnapshot) (*models.Template, error) {
	var tpl models.Template
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(models.Template{Name: name}).FirstOrInit(&tpl).Error; err != nil {
			return err
		}
		tpl.Name = name
		tpl.CreatedBy = createdBy
		tpl.Snapshot = datatypes.NewJSONType(snap)
		return tx.Save(&tpl).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save template %q: %w", name, err)
	}
	return &tpl, nil
}

func (r *TemplateRepository) List(ctx context.Context) ([]models.Template, error) {
	var templates []models.Template
	if err := r.db.WithContext(ctx).Order("name").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

func (r *TemplateRepository) FindByName(ctx context.Context, name string) (*models.Template, error) {
	var tpl models.Template
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&tpl).Error; err != nil {
		return nil, notFound(err)
	}
	return &tpl, nil
}
