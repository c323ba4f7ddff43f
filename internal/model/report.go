package model

import "time"

// ReportTimeFormat renders report timestamps as "11 Aug 2025, 14:30".
const ReportTimeFormat = "02 Jan 2006, 15:04"

// Report is one diagnostic report row for a registration. The signal
// fields are opaque strings produced upstream.
type Report struct {
	ID             uint      `gorm:"primaryKey"`
	RegistrationID uint      `gorm:"index;not null"`
	ReportType     string    `gorm:"size:100;index;not null"`
	ReportedAt     time.Time `gorm:"index;not null"`
	Col2           string    `gorm:"size:50"`
	Signal         string    `gorm:"size:50"`
	Signal0        string    `gorm:"size:50"`
	Signal1        string    `gorm:"size:50"`
	Signal2        string    `gorm:"size:50"`
}

func (Report) TableName() string {
	return "reports"
}

// ReportRow is the list projection of a report: the timestamp is
// formatted and the registration number plus vehicle type name are
// flattened in from their relations.
type ReportRow struct {
	ID                 uint   `json:"id"`
	Name               string `json:"name"`
	VehicleType        string `json:"vehicle_type"`
	RegistrationNumber string `json:"registration_number"`
	ReportType         string `json:"report_type"`
	Col2               string `json:"col2"`
	Signal             string `json:"signal"`
	Signal0            string `json:"signal0"`
	Signal1            string `json:"signal1"`
	Signal2            string `json:"signal2"`
}

// ReportFilterOptions is the discovery-mode payload for the reports
// endpoint.
type ReportFilterOptions struct {
	ReportTypes   []string            `json:"reportTypes"`
	VehicleTypes  []string            `json:"vehicleTypes"`
	Registrations map[string][]string `json:"registrations"`
	Dates         []string            `json:"dates"`
}
