package repo

import (
	"context"
	"time"

	"github.com/gashtstore/admin/internal/models"
)

func (r *GormRepo) CountOrders(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormRepo) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	if err := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// RevenueBetween sums order totals with from <= order_date < to.
func (r *GormRepo) RevenueBetween(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	if err := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Where("order_date >= ? AND order_date < ?", from, to).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

type CategoryRevenue struct {
	Category string
	Revenue  float64
}

// RevenueByCategory aggregates line-item revenue per product category,
// priced as at order time.
func (r *GormRepo) RevenueByCategory(ctx context.Context) ([]CategoryRevenue, error) {
	var rows []CategoryRevenue
	if err := r.DB.WithContext(ctx).
		Model(&models.OrderItem{}).
		Select("products.category AS category, COALESCE(SUM(order_items.quantity * order_items.unit_price), 0) AS revenue").
		Joins("JOIN products ON products.id = order_items.product_id").
		Group("products.category").
		Order("revenue DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}
