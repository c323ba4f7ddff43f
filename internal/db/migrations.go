package db

import (
	"fmt"

	"gorm.io/gorm"

	"fleet-telemetry-service/internal/model"
)

// Parents migrate before children so the cascade foreign keys resolve.
func runMigrations(db *gorm.DB) error {
	entities := []interface{}{
		&model.User{},
		&model.FleetVehicle{},
		&model.PerformanceStat{},
		&model.VehicleSummary{},
		&model.Vehicle{},
		&model.VehicleType{},
		&model.VehicleRegistration{},
		&model.VehicleChartData{},
		&model.TrailVehicle{},
		&model.TrailDataPoint{},
		&model.Report{},
	}
	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			return fmt.Errorf("migrate %T: %w", entity, err)
		}
	}
	return nil
}
