package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fleet-telemetry-service/internal/model"
)

type AnalysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// VehicleTypeFilters builds the discovery tree: every vehicle type,
// its registrations, and per registration the chart dates newest
// first. Assembled from three flat queries instead of nested
// relation traversal.
func (r *AnalysisRepository) VehicleTypeFilters(ctx context.Context) ([]model.VehicleTypeFilter, error) {
	var types []model.VehicleType
	if err := r.db.WithContext(ctx).Order("id").Find(&types).Error; err != nil {
		return nil, err
	}

	var registrations []model.VehicleRegistration
	if err := r.db.WithContext(ctx).Order("id").Find(&registrations).Error; err != nil {
		return nil, err
	}

	var dateRows []struct {
		RegistrationID uint
		Date           time.Time
	}
	if err := r.db.WithContext(ctx).
		Table("vehicle_chart_data").
		Select("registration_id, date").
		Order("date DESC").
		Scan(&dateRows).Error; err != nil {
		return nil, err
	}

	datesByRegistration := make(map[uint][]string)
	for _, row := range dateRows {
		datesByRegistration[row.RegistrationID] = append(
			datesByRegistration[row.RegistrationID], row.Date.Format(model.DateFormat))
	}

	registrationsByType := make(map[uint][]model.RegistrationFilter)
	for _, registration := range registrations {
		dates := datesByRegistration[registration.ID]
		if dates == nil {
			dates = []string{}
		}
		registrationsByType[registration.VehicleTypeID] = append(
			registrationsByType[registration.VehicleTypeID], model.RegistrationFilter{
				ID:                 registration.ID,
				RegistrationNumber: registration.RegistrationNumber,
				Dates:              dates,
			})
	}

	filters := make([]model.VehicleTypeFilter, 0, len(types))
	for _, vehicleType := range types {
		typeRegistrations := registrationsByType[vehicleType.ID]
		if typeRegistrations == nil {
			typeRegistrations = []model.RegistrationFilter{}
		}
		filters = append(filters, model.VehicleTypeFilter{
			ID:            vehicleType.ID,
			Name:          vehicleType.Name,
			Registrations: typeRegistrations,
		})
	}
	return filters, nil
}

func (r *AnalysisRepository) ChartData(ctx context.Context, registrationID uint, date time.Time) (*model.VehicleChartData, error) {
	var chart model.VehicleChartData
	if err := r.db.WithContext(ctx).
		Where("registration_id = ? AND date = ?", registrationID, date).
		First(&chart).Error; err != nil {
		return nil, err
	}
	return &chart, nil
}
