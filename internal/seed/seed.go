package seed

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fleet-telemetry-service/internal/model"
)

// Run wipes and repopulates every telemetry table inside a single
// transaction, so a failed seed leaves the database untouched.
func Run(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := clear(tx); err != nil {
			return err
		}
		if err := seedDashboard(tx); err != nil {
			return err
		}
		if err := seedVehicleSelection(tx); err != nil {
			return err
		}
		registrations, err := seedAnalysis(tx)
		if err != nil {
			return err
		}
		if err := seedTrails(tx); err != nil {
			return err
		}
		return seedReports(tx, registrations)
	})
}

// Children go first so the deletes never trip a foreign key.
func clear(tx *gorm.DB) error {
	tables := []string{
		"reports",
		"trail_data_points",
		"trail_vehicles",
		"vehicle_chart_data",
		"vehicle_registrations",
		"vehicle_types",
		"vehicles",
		"vehicle_summaries",
		"performance_stats",
		"fleet_vehicles",
	}
	for _, table := range tables {
		if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

func seedDashboard(tx *gorm.DB) error {
	fleet := []model.FleetVehicle{
		{Title: "EKA 7", TotalCount: 12, ActiveCount: 8, Special: true, Order: 1},
		{Title: "EKA 9", TotalCount: 8, ActiveCount: 6, Order: 2},
		{Title: "EKA 12", TotalCount: 5, ActiveCount: 5, Order: 3},
		{Title: "EKA Low Floor", TotalCount: 10, ActiveCount: 9, Order: 4},
		{Title: "EKA Coach", TotalCount: 3, ActiveCount: 2, Order: 5},
		{Title: "EKA 2.5T", TotalCount: 15, ActiveCount: 15, Order: 6},
	}
	if err := tx.Create(&fleet).Error; err != nil {
		return err
	}

	stats := []model.PerformanceStat{
		{Key: "total_distance", Title: "Total Distance", Value: "12,500 km", Order: 1},
		{Key: "co2_savings", Title: "CO2 Savings", Value: "1.2 tons", Order: 2},
		{Key: "avg_energy_consumption", Title: "Avg. Energy Consumption", Value: "0.8 kWh/km", Order: 3},
		{Key: "total_run_time", Title: "Total Run Time", Value: "350 hrs", Order: 4},
		{Key: "traction_energy", Title: "Traction Energy", Value: "10 MWh", Order: 5},
		{Key: "regen_energy", Title: "Regen. Energy", Value: "1.5 MWh", Order: 6},
	}
	return tx.Create(&stats).Error
}

func seedVehicleSelection(tx *gorm.DB) error {
	summary := model.VehicleSummary{
		FleetType:            "Eka 7",
		TotalDistance:        "1280 km",
		CO2Savings:           "150 kg",
		AvgEnergyConsumption: "0.9 kWh",
		RunTime:              "45 hrs",
		TractionEnergy:       "1.1 MWh",
		RegenEnergy:          "0.2 MWh",
		Vehicles: []model.Vehicle{
			{Name: "MH12 AB 1234", Rating: "4.8", Speed: 25, Soc: 78, Range: 90, Temp: 32, Address: "Near Balewadi High Street, Pune"},
			{Name: "MH14 CD 5678", Rating: "4.5", Speed: 0, Soc: 92, Range: 110, Temp: 28, Address: "Parked at Baner, Pune"},
			{Name: "MH01 EF 9101", Rating: "4.9", Speed: 40, Soc: 65, Range: 75, Temp: 35, Address: "Enroute Hinjewadi Phase 3, Pune"},
		},
	}
	return tx.Create(&summary).Error
}

// Axis bounds one random series of a generated chart blob.
type Axis struct {
	Name string
	Min  float64
	Max  float64
}

type chartSeries struct {
	Name string    `json:"name"`
	Data []float64 `json:"data"`
}

type chartBlob struct {
	Labels []string      `json:"labels"`
	Series []chartSeries `json:"series"`
}

// ChartBlob produces one labelled time-series blob: quarter-hour
// labels from 08:00 through 17:45 with one random series per axis.
func ChartBlob(axes []Axis) datatypes.JSON {
	var labels []string
	for hour := 8; hour < 18; hour++ {
		for quarter := 0; quarter < 4; quarter++ {
			labels = append(labels, fmt.Sprintf("%02d:%02d", hour, quarter*15))
		}
	}

	series := make([]chartSeries, 0, len(axes))
	for _, axis := range axes {
		data := make([]float64, len(labels))
		for i := range data {
			value := axis.Min + rand.Float64()*(axis.Max-axis.Min)
			data[i] = float64(int(value*100)) / 100
		}
		series = append(series, chartSeries{Name: axis.Name, Data: data})
	}

	blob, _ := json.Marshal(chartBlob{Labels: labels, Series: series})
	return blob
}

func seedAnalysis(tx *gorm.DB) ([]model.VehicleRegistration, error) {
	eka7 := model.VehicleType{Name: "Eka 7"}
	if err := tx.Create(&eka7).Error; err != nil {
		return nil, err
	}
	eka9 := model.VehicleType{Name: "Eka 9"}
	if err := tx.Create(&eka9).Error; err != nil {
		return nil, err
	}

	registrations := []model.VehicleRegistration{
		{VehicleTypeID: eka7.ID, RegistrationNumber: "MH12 AB 1234"},
		{VehicleTypeID: eka7.ID, RegistrationNumber: "MH14 CD 5678"},
		{VehicleTypeID: eka9.ID, RegistrationNumber: "MH01 EF 9101"},
	}
	if err := tx.Create(&registrations).Error; err != nil {
		return nil, err
	}

	today := midnight(time.Now())
	var charts []model.VehicleChartData
	for _, registration := range registrations {
		for day := 0; day < 2; day++ {
			charts = append(charts, model.VehicleChartData{
				RegistrationID:  registration.ID,
				Date:            today.AddDate(0, 0, -day),
				BatteryData:     ChartBlob([]Axis{{Name: "Voltage", Min: 20, Max: 28}}),
				TemperatureData: ChartBlob([]Axis{{Name: "Min Temp", Min: 20, Max: 32}, {Name: "Max Temp", Min: 22, Max: 36}}),
				VoltageData:     ChartBlob([]Axis{{Name: "A Pack", Min: 680, Max: 705}, {Name: "B Pack", Min: 685, Max: 710}}),
				CurrentData:     ChartBlob([]Axis{{Name: "Current", Min: 670, Max: 695}, {Name: "Peak", Min: 690, Max: 700}}),
			})
		}
	}
	if err := tx.Create(&charts).Error; err != nil {
		return nil, err
	}
	return registrations, nil
}

func seedTrails(tx *gorm.DB) error {
	vehicles := []model.TrailVehicle{
		{VehicleType: "EKA 9", RegistrationNo: "MH 14 AB 1234", Fleet: "PMPML"},
		{VehicleType: "EKA 7", RegistrationNo: "MH 01 CD 5678", Fleet: "BEST"},
	}
	if err := tx.Create(&vehicles).Error; err != nil {
		return err
	}

	metrics, _ := json.Marshal(map[string]map[string]string{
		"speed":        {"value": fmt.Sprintf("%d", 40+rand.Intn(21)), "unit": "kmph"},
		"soc":          {"value": fmt.Sprintf("%d", 70+rand.Intn(26)), "unit": "%"},
		"motorSpeed":   {"value": fmt.Sprintf("%d", 1500+rand.Intn(400)), "unit": "rpm"},
		"motorTorque":  {"value": fmt.Sprintf("%d", 150+rand.Intn(50)), "unit": "nm"},
		"acceleration": {"value": "3.1", "unit": "km/s²"},
		"brake":        {"value": "0", "unit": "%"},
		"faults":       {"value": "None", "unit": ""},
	})
	ecu, _ := json.Marshal([]map[string]interface{}{
		{"name": "BMS", "controls": []map[string]string{
			{"name": "Contactor Control", "value": "1"},
			{"name": "Enable", "value": "1"},
		}},
		{"name": "Motor", "controls": []map[string]string{
			{"name": "Torque Command (Nm)", "value": "1500"},
			{"name": "Enable", "value": "1"},
		}},
	})

	// A short diagonal path near Nanekarwadi, Pune.
	startLat, startLng := 18.6421, 73.7861
	today := midnight(time.Now())

	var points []model.TrailDataPoint
	for _, vehicle := range vehicles {
		for day := 0; day < 2; day++ {
			for i := 0; i < 8; i++ {
				points = append(points, model.TrailDataPoint{
					VehicleID: vehicle.ID,
					Date:      today.AddDate(0, 0, -day),
					Metrics:   metrics,
					ECUData:   ecu,
					Lat:       startLat + float64(i)*0.001,
					Lng:       startLng + float64(i)*0.001,
				})
			}
		}
	}
	return tx.Create(&points).Error
}

func seedReports(tx *gorm.DB, registrations []model.VehicleRegistration) error {
	reportTypes := []string{"Performance", "Health", "Charging", "Fault"}
	now := time.Now()

	reports := make([]model.Report, 0, 200)
	for i := 0; i < 200; i++ {
		reports = append(reports, model.Report{
			RegistrationID: registrations[rand.Intn(len(registrations))].ID,
			ReportType:     reportTypes[rand.Intn(len(reportTypes))],
			ReportedAt:     now.AddDate(0, 0, -rand.Intn(31)).Add(-time.Duration(rand.Intn(24)) * time.Hour),
			Col2:           fmt.Sprintf("Val-%d", 10+rand.Intn(90)),
			Signal:         fmt.Sprintf("Sig-%d", 100+rand.Intn(900)),
			Signal0:        fmt.Sprintf("S0-%d", rand.Intn(2)),
			Signal1:        fmt.Sprintf("S1-%d", rand.Intn(2)),
			Signal2:        fmt.Sprintf("S2-%d", rand.Intn(2)),
		})
	}
	return tx.Create(&reports).Error
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
