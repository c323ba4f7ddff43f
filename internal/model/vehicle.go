package model

import (
	"time"

	"gorm.io/datatypes"
)

// DateFormat is the wire format for calendar dates in filter payloads
// and query parameters.
const DateFormat = "2006-01-02"

type VehicleType struct {
	ID            uint                  `gorm:"primaryKey"`
	Name          string                `gorm:"size:100;uniqueIndex;not null"`
	Registrations []VehicleRegistration `gorm:"foreignKey:VehicleTypeID;constraint:OnDelete:CASCADE"`
}

func (VehicleType) TableName() string {
	return "vehicle_types"
}

type VehicleRegistration struct {
	ID                 uint               `gorm:"primaryKey"`
	VehicleTypeID      uint               `gorm:"index;not null"`
	RegistrationNumber string             `gorm:"size:100;uniqueIndex;not null"`
	ChartData          []VehicleChartData `gorm:"foreignKey:RegistrationID;constraint:OnDelete:CASCADE"`
	Reports            []Report           `gorm:"foreignKey:RegistrationID;constraint:OnDelete:CASCADE"`
}

func (VehicleRegistration) TableName() string {
	return "vehicle_registrations"
}

// VehicleChartData bundles the four chart blobs recorded for one
// registration on one date. Each blob is a shared label axis plus
// named series, stored verbatim.
type VehicleChartData struct {
	ID              uint           `gorm:"primaryKey"`
	RegistrationID  uint           `gorm:"uniqueIndex:idx_chart_registration_date;not null"`
	Date            time.Time      `gorm:"type:date;uniqueIndex:idx_chart_registration_date;not null"`
	BatteryData     datatypes.JSON `gorm:"type:jsonb"`
	TemperatureData datatypes.JSON `gorm:"type:jsonb"`
	VoltageData     datatypes.JSON `gorm:"type:jsonb"`
	CurrentData     datatypes.JSON `gorm:"type:jsonb"`
}

func (VehicleChartData) TableName() string {
	return "vehicle_chart_data"
}

// ChartBundle is the data-mode analysis payload: the stored blobs pass
// through unmodified.
type ChartBundle struct {
	BatteryData     datatypes.JSON `json:"battery_data"`
	TemperatureData datatypes.JSON `json:"temperature_data"`
	VoltageData     datatypes.JSON `json:"voltage_data"`
	CurrentData     datatypes.JSON `json:"current_data"`
}

func (c VehicleChartData) Bundle() ChartBundle {
	return ChartBundle{
		BatteryData:     c.BatteryData,
		TemperatureData: c.TemperatureData,
		VoltageData:     c.VoltageData,
		CurrentData:     c.CurrentData,
	}
}

// RegistrationFilter lists one registration with the distinct dates
// for which chart data exists, newest first.
type RegistrationFilter struct {
	ID                 uint     `json:"id"`
	RegistrationNumber string   `json:"registration_number"`
	Dates              []string `json:"dates"`
}

type VehicleTypeFilter struct {
	ID            uint                 `json:"id"`
	Name          string               `json:"name"`
	Registrations []RegistrationFilter `json:"registrations"`
}
