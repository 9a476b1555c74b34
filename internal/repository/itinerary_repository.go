package repository

import (
	"context"
	"fmt"

	"github.com/enroute-travel/itinerary-api/internal/models"
	"gorm.io/gorm"
)

// ItineraryRepository stores generated itineraries. An empty owner in the
// query methods means "all users".
type ItineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) *ItineraryRepository {
	return &ItineraryRepository{db: db}
}

func (r *ItineraryRepository) Create(ctx context.Context, it *models.Itinerary) error {
	if err := r.db.WithContext(ctx).Create(it).Error; err != nil {
		return fmt.Errorf("failed to save itinerary %s: %w", it.BookingCode, err)
	}
	return nil
}

func (r *ItineraryRepository) scoped(ctx context.Context, owner string) *gorm.DB {
	q := r.db.WithContext(ctx)
	if owner != "" {
		q = q.Where("username = ?", owner)
	}
	return q
}

// List returns itineraries newest first.
func (r *ItineraryRepository) List(ctx context.Context, owner string) ([]models.Itinerary, error) {
	var items []models.Itinerary
	if err := r.scoped(ctx, owner).Order("created_at desc, id desc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list itineraries: %w", err)
	}
	return items, nil
}

func (r *ItineraryRepository) FindByID(ctx context.Context, id uint, owner string) (*models.Itinerary, error) {
	var it models.Itinerary
	if err := r.scoped(ctx, owner).First(&it, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &it, nil
}

// Delete permanently removes an itinerary. Deleting a missing row is not an error.
func (r *ItineraryRepository) Delete(ctx context.Context, id uint, owner string) (bool, error) {
	res := r.scoped(ctx, owner).Unscoped().Delete(&models.Itinerary{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete itinerary %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}
