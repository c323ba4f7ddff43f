package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fleet-telemetry-service/internal/model"
)

type TrailRepository struct {
	db *gorm.DB
}

func NewTrailRepository(db *gorm.DB) *TrailRepository {
	return &TrailRepository{db: db}
}

// TrailVehicleFilters lists every trail vehicle with its distinct
// trail dates, newest first.
func (r *TrailRepository) TrailVehicleFilters(ctx context.Context) ([]model.TrailVehicleFilter, error) {
	var vehicles []model.TrailVehicle
	if err := r.db.WithContext(ctx).Order("id").Find(&vehicles).Error; err != nil {
		return nil, err
	}

	var dateRows []struct {
		VehicleID uint
		Date      time.Time
	}
	if err := r.db.WithContext(ctx).
		Table("trail_data_points").
		Distinct("vehicle_id", "date").
		Order("date DESC").
		Scan(&dateRows).Error; err != nil {
		return nil, err
	}

	datesByVehicle := make(map[uint][]string)
	for _, row := range dateRows {
		datesByVehicle[row.VehicleID] = append(
			datesByVehicle[row.VehicleID], row.Date.Format(model.DateFormat))
	}

	filters := make([]model.TrailVehicleFilter, 0, len(vehicles))
	for _, vehicle := range vehicles {
		dates := datesByVehicle[vehicle.ID]
		if dates == nil {
			dates = []string{}
		}
		filters = append(filters, model.TrailVehicleFilter{
			ID:             vehicle.ID,
			VehicleType:    vehicle.VehicleType,
			RegistrationNo: vehicle.RegistrationNo,
			Fleet:          vehicle.Fleet,
			AvailableDates: dates,
		})
	}
	return filters, nil
}

// Trail returns the metric and ECU blobs of the first point recorded
// for the vehicle on the date plus the full path in recording order.
// gorm.ErrRecordNotFound when no point matches.
func (r *TrailRepository) Trail(ctx context.Context, vehicleID uint, date time.Time) (*model.TrailPayload, error) {
	var points []model.TrailDataPoint
	if err := r.db.WithContext(ctx).
		Where("vehicle_id = ? AND date = ?", vehicleID, date).
		Order("id").
		Find(&points).Error; err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	path := make([]model.Coordinate, 0, len(points))
	for _, point := range points {
		path = append(path, model.Coordinate{Lat: point.Lat, Lng: point.Lng})
	}

	return &model.TrailPayload{
		Metrics:   points[0].Metrics,
		ECUData:   points[0].ECUData,
		TrailPath: path,
	}, nil
}
