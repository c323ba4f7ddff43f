package repository

import (
	"context"

	"gorm.io/gorm"

	"fleet-telemetry-service/internal/model"
)

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) FleetStats(ctx context.Context) ([]model.FleetStat, error) {
	var fleet []model.FleetVehicle
	if err := r.db.WithContext(ctx).Order("display_order").Find(&fleet).Error; err != nil {
		return nil, err
	}

	stats := make([]model.FleetStat, 0, len(fleet))
	for _, vehicle := range fleet {
		stats = append(stats, vehicle.Stat())
	}
	return stats, nil
}

func (r *DashboardRepository) PerformanceStats(ctx context.Context) (map[string]string, error) {
	var rows []struct {
		Key   string
		Value string
	}
	if err := r.db.WithContext(ctx).
		Table("performance_stats").
		Select("key, value").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := make(map[string]string, len(rows))
	for _, row := range rows {
		stats[row.Key] = row.Value
	}
	return stats, nil
}

func (r *DashboardRepository) SummaryByFleetType(ctx context.Context, fleetType string) (*model.VehicleSummary, error) {
	var summary model.VehicleSummary
	if err := r.db.WithContext(ctx).
		Preload("Vehicles").
		Where("fleet_type = ?", fleetType).
		First(&summary).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *DashboardRepository) FirstSummary(ctx context.Context) (*model.VehicleSummary, error) {
	var summary model.VehicleSummary
	if err := r.db.WithContext(ctx).
		Preload("Vehicles").
		Order("id").
		First(&summary).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}
