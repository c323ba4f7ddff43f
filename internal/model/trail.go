package model

import (
	"time"

	"gorm.io/datatypes"
)

type TrailVehicle struct {
	ID             uint             `gorm:"primaryKey"`
	VehicleType    string           `gorm:"size:100;not null"`
	RegistrationNo string           `gorm:"size:100;uniqueIndex;not null"`
	Fleet          string           `gorm:"size:100;not null"`
	TrailData      []TrailDataPoint `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

func (TrailVehicle) TableName() string {
	return "trail_vehicles"
}

// TrailDataPoint is one timestamped location plus telemetry sample
// along a vehicle's path for a given date. Points for a date keep
// their insertion order.
type TrailDataPoint struct {
	ID        uint           `gorm:"primaryKey"`
	VehicleID uint           `gorm:"index;not null"`
	Date      time.Time      `gorm:"type:date;index;not null"`
	Metrics   datatypes.JSON `gorm:"type:jsonb"`
	ECUData   datatypes.JSON `gorm:"column:ecu_data;type:jsonb"`
	Lat       float64        `gorm:"not null"`
	Lng       float64        `gorm:"not null"`
}

func (TrailDataPoint) TableName() string {
	return "trail_data_points"
}

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TrailVehicleFilter lists one trail vehicle with the distinct dates
// for which trail points exist, newest first.
type TrailVehicleFilter struct {
	ID             uint     `json:"id"`
	VehicleType    string   `json:"vehicle_type"`
	RegistrationNo string   `json:"registration_no"`
	Fleet          string   `json:"fleet"`
	AvailableDates []string `json:"available_dates"`
}

// TrailPayload is the data-mode trails response: the metric and ECU
// blobs from the first point of the day plus the full ordered path.
type TrailPayload struct {
	Metrics   datatypes.JSON `json:"metrics"`
	ECUData   datatypes.JSON `json:"ecu_data"`
	TrailPath []Coordinate   `json:"trail_path"`
}
