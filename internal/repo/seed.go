package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/gashtstore/admin/internal/models"
)

// Seed inserts the demo data set: one admin, three products and a week of
// orders with line items. It is idempotent, the presence of an admin row
// marks the database as already seeded and turns the call into a no-op.
// Returns true when data was inserted.
func (r *GormRepo) Seed(ctx context.Context, adminPasswordHash string) (bool, error) {
	admins, err := r.CountAdmins(ctx)
	if err != nil {
		return false, err
	}
	if admins > 0 {
		return false, nil
	}

	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		admin := models.AdminUser{
			ID:           1,
			Username:     "admin",
			PasswordHash: adminPasswordHash,
			DisplayName:  "Istanbul Gasht Admin",
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		products := []models.Product{
			{
				Name:        "Classic Istanbul T-Shirt",
				Price:       29.99,
				Category:    "T-Shirts",
				Stock:       50,
				Description: "Simple white tee with a minimal Istanbul skyline print.",
			},
			{
				Name:        "Bosporus Hoodie",
				Price:       59.99,
				Category:    "Hoodies",
				Stock:       20,
				Description: "Cozy hoodie inspired by Bosporus nights.",
			},
			{
				Name:        "Grand Bazaar Scarf",
				Price:       19.99,
				Category:    "Accessories",
				Stock:       100,
				Description: "Light scarf with patterns inspired by the Grand Bazaar.",
			},
		}
		if err := tx.Create(&products).Error; err != nil {
			return err
		}

		today := time.Now().UTC().Truncate(24 * time.Hour)
		for i := 0; i < 7; i++ {
			day := today.AddDate(0, 0, -i)
			for j := 0; j < i%3; j++ {
				product := products[j%len(products)]
				quantity := uint(j + 1)
				order := models.Order{
					Status:    "paid",
					Total:     product.Price * float64(quantity),
					OrderDate: day,
					Items: []models.OrderItem{{
						ProductID: product.ID,
						Quantity:  quantity,
						UnitPrice: product.Price,
					}},
				}
				if err := tx.Create(&order).Error; err != nil {
					return err
				}
			}
		}

		entry := models.ActivityLog{
			ActionType:  "system_init",
			Description: "Database initialized with sample data.",
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return false, err
	}

	return true, nil
}
