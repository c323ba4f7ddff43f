package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fleet-telemetry-service/internal/model"
	"fleet-telemetry-service/internal/repository"
)

var ErrNotFound = errors.New("not found")

// TelemetryService serves the read-only dashboard, selection,
// analysis, trail, and report queries.
type TelemetryService struct {
	dashboard *repository.DashboardRepository
	analysis  *repository.AnalysisRepository
	trails    *repository.TrailRepository
	reports   *repository.ReportRepository
}

func NewTelemetryService(
	dashboard *repository.DashboardRepository,
	analysis *repository.AnalysisRepository,
	trails *repository.TrailRepository,
	reports *repository.ReportRepository,
) *TelemetryService {
	return &TelemetryService{
		dashboard: dashboard,
		analysis:  analysis,
		trails:    trails,
		reports:   reports,
	}
}

func (s *TelemetryService) DashboardStats(ctx context.Context) (*model.DashboardPayload, error) {
	fleetStats, err := s.dashboard.FleetStats(ctx)
	if err != nil {
		return nil, err
	}
	performanceStats, err := s.dashboard.PerformanceStats(ctx)
	if err != nil {
		return nil, err
	}
	return &model.DashboardPayload{
		FleetStats:       fleetStats,
		PerformanceStats: performanceStats,
	}, nil
}

// VehicleSelection returns the summary for the requested fleet type,
// or the first summary when none is specified.
func (s *TelemetryService) VehicleSelection(ctx context.Context, fleetType string) (*model.SummaryPayload, error) {
	var (
		summary *model.VehicleSummary
		err     error
	)
	if fleetType != "" {
		summary, err = s.dashboard.SummaryByFleetType(ctx, fleetType)
	} else {
		summary, err = s.dashboard.FirstSummary(ctx)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	payload := summary.Payload()
	return &payload, nil
}

func (s *TelemetryService) AnalysisFilters(ctx context.Context) ([]model.VehicleTypeFilter, error) {
	return s.analysis.VehicleTypeFilters(ctx)
}

func (s *TelemetryService) AnalysisCharts(ctx context.Context, registrationID uint, date time.Time) (*model.ChartBundle, error) {
	chart, err := s.analysis.ChartData(ctx, registrationID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	bundle := chart.Bundle()
	return &bundle, nil
}

func (s *TelemetryService) TrailFilters(ctx context.Context) ([]model.TrailVehicleFilter, error) {
	return s.trails.TrailVehicleFilters(ctx)
}

func (s *TelemetryService) Trail(ctx context.Context, vehicleID uint, date time.Time) (*model.TrailPayload, error) {
	payload, err := s.trails.Trail(ctx, vehicleID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return payload, nil
}

func (s *TelemetryService) ReportFilterOptions(ctx context.Context) (*model.ReportFilterOptions, error) {
	return s.reports.FilterOptions(ctx)
}

func (s *TelemetryService) Reports(ctx context.Context, filter model.ReportFilter, offset, limit int) ([]model.ReportRow, int64, error) {
	total, err := s.reports.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	rows, err := s.reports.Page(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
