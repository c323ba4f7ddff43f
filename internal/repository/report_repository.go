package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fleet-telemetry-service/internal/model"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// filtered assembles the joined base query with every active
// predicate applied. Callers get a fresh builder each time so count
// and page queries do not share state.
func (r *ReportRepository) filtered(ctx context.Context, filter model.ReportFilter) *gorm.DB {
	query := r.db.WithContext(ctx).
		Table("reports r").
		Joins("JOIN vehicle_registrations reg ON reg.id = r.registration_id").
		Joins("JOIN vehicle_types vt ON vt.id = reg.vehicle_type_id")

	if filter.HasRange() {
		start, end := filter.RangeBounds()
		query = query.Where("r.reported_at >= ? AND r.reported_at < ?", start, end)
	}
	if filter.ReportType != "" {
		query = query.Where("r.report_type = ?", filter.ReportType)
	}
	if filter.VehicleType != "" {
		query = query.Where("vt.name = ?", filter.VehicleType)
	}
	if filter.RegistrationNo != "" {
		query = query.Where("reg.registration_number = ?", filter.RegistrationNo)
	}
	return query
}

func (r *ReportRepository) Count(ctx context.Context, filter model.ReportFilter) (int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Page returns one page of the filtered list, newest first, with the
// registration number and vehicle type name flattened in.
func (r *ReportRepository) Page(ctx context.Context, filter model.ReportFilter, offset, limit int) ([]model.ReportRow, error) {
	type row struct {
		ID                 uint
		ReportedAt         time.Time
		VehicleType        string
		RegistrationNumber string
		ReportType         string
		Col2               string
		Signal             string
		Signal0            string
		Signal1            string
		Signal2            string
	}
	var rows []row

	if err := r.filtered(ctx, filter).
		Select(`r.id,
			r.reported_at,
			vt.name AS vehicle_type,
			reg.registration_number,
			r.report_type,
			r.col2,
			r.signal,
			r.signal0,
			r.signal1,
			r.signal2`).
		Order("r.reported_at DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	results := make([]model.ReportRow, 0, len(rows))
	for _, row := range rows {
		results = append(results, model.ReportRow{
			ID:                 row.ID,
			Name:               row.ReportedAt.Format(model.ReportTimeFormat),
			VehicleType:        row.VehicleType,
			RegistrationNumber: row.RegistrationNumber,
			ReportType:         row.ReportType,
			Col2:               row.Col2,
			Signal:             row.Signal,
			Signal0:            row.Signal0,
			Signal1:            row.Signal1,
			Signal2:            row.Signal2,
		})
	}
	return results, nil
}

// FilterOptions builds the discovery payload: distinct report types,
// vehicle type names, registrations grouped by type name, and the
// distinct calendar dates reports exist for, newest first.
func (r *ReportRepository) FilterOptions(ctx context.Context) (*model.ReportFilterOptions, error) {
	var reportTypes []string
	if err := r.db.WithContext(ctx).
		Table("reports").
		Distinct().
		Order("report_type").
		Pluck("report_type", &reportTypes).Error; err != nil {
		return nil, err
	}

	var typeNames []string
	if err := r.db.WithContext(ctx).
		Table("vehicle_types").
		Order("id").
		Pluck("name", &typeNames).Error; err != nil {
		return nil, err
	}

	var registrationRows []struct {
		Name               string
		RegistrationNumber string
	}
	if err := r.db.WithContext(ctx).
		Table("vehicle_registrations reg").
		Joins("JOIN vehicle_types vt ON vt.id = reg.vehicle_type_id").
		Select("vt.name, reg.registration_number").
		Order("reg.id").
		Scan(&registrationRows).Error; err != nil {
		return nil, err
	}

	// Every type gets an entry even when it has no registrations yet.
	registrations := make(map[string][]string, len(typeNames))
	for _, name := range typeNames {
		registrations[name] = []string{}
	}
	for _, row := range registrationRows {
		registrations[row.Name] = append(registrations[row.Name], row.RegistrationNumber)
	}

	var dateRows []struct {
		DateOnly time.Time
	}
	if err := r.db.WithContext(ctx).
		Table("reports").
		Select("DISTINCT DATE(reported_at) AS date_only").
		Order("date_only DESC").
		Scan(&dateRows).Error; err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(dateRows))
	for _, row := range dateRows {
		dates = append(dates, row.DateOnly.Format(model.DateFormat))
	}

	if reportTypes == nil {
		reportTypes = []string{}
	}
	if typeNames == nil {
		typeNames = []string{}
	}

	return &model.ReportFilterOptions{
		ReportTypes:   reportTypes,
		VehicleTypes:  typeNames,
		Registrations: registrations,
		Dates:         dates,
	}, nil
}
