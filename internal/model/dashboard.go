package model

import "strings"

// FleetVehicle stores the aggregate counts shown per fleet model type
// on the dashboard.
type FleetVehicle struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:100;uniqueIndex;not null"`
	TotalCount  int    `gorm:"not null;default:0"`
	ActiveCount int    `gorm:"not null;default:0"`
	Special     bool   `gorm:"not null;default:false"`
	Order       int    `gorm:"column:display_order;not null;default:0"`
}

func (FleetVehicle) TableName() string {
	return "fleet_vehicles"
}

// FleetStat is the dashboard projection of a FleetVehicle row. The
// stored counts are renamed: total_count becomes value, active_count
// becomes active.
type FleetStat struct {
	Title   string `json:"title"`
	Value   int    `json:"value"`
	Active  int    `json:"active"`
	Special bool   `json:"special"`
}

func (f FleetVehicle) Stat() FleetStat {
	return FleetStat{
		Title:   f.Title,
		Value:   f.TotalCount,
		Active:  f.ActiveCount,
		Special: f.Special,
	}
}

// DashboardPayload is the /dashboard-stats/ response.
type DashboardPayload struct {
	FleetStats       []FleetStat       `json:"fleet_stats"`
	PerformanceStats map[string]string `json:"performance_stats"`
}

// PerformanceStat is a single key-value dashboard metric. The key is
// the primary key, e.g. "total_distance".
type PerformanceStat struct {
	Key   string `gorm:"primaryKey;size:100"`
	Title string `gorm:"size:100;not null"`
	Value string `gorm:"size:100;not null"`
	Order int    `gorm:"column:display_order;not null;default:0"`
}

func (PerformanceStat) TableName() string {
	return "performance_stats"
}

// VehicleSummary holds one aggregate row per fleet type. The metric
// fields are stored as combined "number unit" strings.
type VehicleSummary struct {
	ID                   uint      `gorm:"primaryKey"`
	FleetType            string    `gorm:"size:100;uniqueIndex;not null"`
	TotalDistance        string    `gorm:"size:50"`
	CO2Savings           string    `gorm:"size:50"`
	AvgEnergyConsumption string    `gorm:"size:50"`
	RunTime              string    `gorm:"size:50"`
	TractionEnergy       string    `gorm:"size:50"`
	RegenEnergy          string    `gorm:"size:50"`
	Vehicles             []Vehicle `gorm:"foreignKey:SummaryID;constraint:OnDelete:CASCADE"`
}

func (VehicleSummary) TableName() string {
	return "vehicle_summaries"
}

// Vehicle is one live snapshot belonging to a summary.
type Vehicle struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	SummaryID uint   `gorm:"index;not null" json:"-"`
	Name      string `gorm:"size:100" json:"name"`
	Rating    string `gorm:"size:10" json:"rating"`
	Speed     int    `json:"speed"`
	Soc       int    `json:"soc"`
	Range     int    `json:"range"`
	Temp      int    `json:"temp"`
	Address   string `gorm:"size:255" json:"address"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

type SummaryMetric struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

type SummaryPayload struct {
	FleetName   string          `json:"fleet_name"`
	SummaryData []SummaryMetric `json:"summary_data"`
	Vehicles    []Vehicle       `json:"vehicles"`
}

// metricValue extracts the leading numeric token from a stored
// "number unit" string. A string without whitespace is returned whole
// rather than rejected.
func metricValue(stored string) string {
	fields := strings.Fields(stored)
	if len(fields) == 0 {
		return stored
	}
	return fields[0]
}

// Metrics splits the six combined metric strings into title/value/unit
// triples in the fixed dashboard order.
func (s VehicleSummary) Metrics() []SummaryMetric {
	return []SummaryMetric{
		{Title: "Total Distance", Value: metricValue(s.TotalDistance), Unit: "km"},
		{Title: "CO2 Savings", Value: metricValue(s.CO2Savings), Unit: "kg"},
		{Title: "Avg. Energy Consumption", Value: metricValue(s.AvgEnergyConsumption), Unit: "kWh"},
		{Title: "Run Time", Value: metricValue(s.RunTime), Unit: "hrs"},
		{Title: "Traction Energy", Value: metricValue(s.TractionEnergy), Unit: "MWh"},
		{Title: "Regen. Energy", Value: metricValue(s.RegenEnergy), Unit: "MWh"},
	}
}

func (s VehicleSummary) Payload() SummaryPayload {
	vehicles := s.Vehicles
	if vehicles == nil {
		vehicles = []Vehicle{}
	}
	return SummaryPayload{
		FleetName:   s.FleetType,
		SummaryData: s.Metrics(),
		Vehicles:    vehicles,
	}
}
