package repository

import (
	"context"
	"fmt"

	"github.com/enroute-travel/itinerary-api/internal/itinerary"
	"github.com/enroute-travel/itinerary-api/internal/models"
	"gorm.io/gorm"
)

// CustomItemRepository stores the user-added checklist entries per category.
type CustomItemRepository struct {
	db *gorm.DB
}

func NewCustomItemRepository(db *gorm.DB) *CustomItemRepository {
	return &CustomItemRepository{db: db}
}

// List returns the stored custom texts grouped by category, in insertion order.
func (r *CustomItemRepository) List(ctx context.Context) (map[itinerary.Category][]string, error) {
	var items []models.CustomItem
	if err := r.db.WithContext(ctx).Order("category, position").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load custom items: %w", err)
	}

	out := make(map[itinerary.Category][]string)
	for _, it := range items {
		c := itinerary.Category(it.Category)
		out[c] = append(out[c], it.Text)
	}
	return out, nil
}

// Merge adds the texts that are not yet stored for category, after the
// existing ones. Stored items are never removed, so concurrent sessions
// cannot drop each other's entries.
func (r *CustomItemRepository) Merge(ctx context.Context, category itinerary.Category, texts []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []models.CustomItem
		if err := tx.Where("category = ?", string(category)).Order("position").Find(&existing).Error; err != nil {
			return err
		}

		seen := make(map[string]bool, len(existing))
		next := 0
		for _, it := range existing {
			seen[it.Text] = true
			next = it.Position + 1
		}

		var items []models.CustomItem
		for _, text := range texts {
			if text == "" || seen[text] {
				continue
			}
			seen[text] = true
			items = append(items, models.CustomItem{Category: string(category), Text: text, Position: next})
			next++
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save custom %s: %w", category, err)
	}
	return nil
}
