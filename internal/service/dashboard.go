package service

import (
	"context"
	"math"
	"time"

	"github.com/gashtstore/admin/internal/models"
)

const recentActivityLimit = 10

type Summary struct {
	TotalOrders    int64
	TotalRevenue   float64
	TotalProducts  int64
	WeeklyGrowth   float64
	ChartLabels    []string
	ChartData      []float64
	CategoryLabels []string
	CategoryData   []float64
	RecentActivity []models.ActivityLog
}

// DashboardSummary derives every KPI from current database state; nothing is
// cached or denormalized.
func (s *StoreService) DashboardSummary(ctx context.Context) (*Summary, error) {
	totalOrders, err := s.Repo.CountOrders(ctx)
	if err != nil {
		return nil, err
	}
	totalRevenue, err := s.Repo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	totalProducts, err := s.Repo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	tomorrow := today.AddDate(0, 0, 1)
	currentStart := today.AddDate(0, 0, -6)
	prevStart := currentStart.AddDate(0, 0, -7)

	currentRevenue, err := s.Repo.RevenueBetween(ctx, currentStart, tomorrow)
	if err != nil {
		return nil, err
	}
	previousRevenue, err := s.Repo.RevenueBetween(ctx, prevStart, currentStart)
	if err != nil {
		return nil, err
	}

	// Growth compares the last 7 days against the 7 before; zero when there
	// is no previous data to compare against.
	var weeklyGrowth float64
	if previousRevenue > 0 {
		weeklyGrowth = (currentRevenue - previousRevenue) / previousRevenue * 100
	}

	labels := make([]string, 0, 7)
	data := make([]float64, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		revenue, err := s.Repo.RevenueBetween(ctx, day, day.AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}
		labels = append(labels, day.Format("Jan 02"))
		data = append(data, math.Round(revenue*100)/100)
	}

	byCategory, err := s.Repo.RevenueByCategory(ctx)
	if err != nil {
		return nil, err
	}
	catLabels := make([]string, 0, len(byCategory))
	catData := make([]float64, 0, len(byCategory))
	for _, row := range byCategory {
		catLabels = append(catLabels, row.Category)
		catData = append(catData, math.Round(row.Revenue*100)/100)
	}

	recent, err := s.Repo.RecentActivity(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalOrders:    totalOrders,
		TotalRevenue:   totalRevenue,
		TotalProducts:  totalProducts,
		WeeklyGrowth:   weeklyGrowth,
		ChartLabels:    labels,
		ChartData:      data,
		CategoryLabels: catLabels,
		CategoryData:   catData,
		RecentActivity: recent,
	}, nil
}
