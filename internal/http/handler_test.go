package http

import (
	"testing"
	"time"

	"fleet-telemetry-service/internal/model"
)

func TestParseReportFilter(t *testing.T) {
	c := testContext(t, "/reports/?report_type=Fault&vehicle_type=Eka+7&registration_no=MH12+AB+1234&start_date=2025-08-01&end_date=2025-08-14")

	filter := parseReportFilter(c)
	if filter.ReportType != "Fault" {
		t.Errorf("ReportType = %q", filter.ReportType)
	}
	if filter.VehicleType != "Eka 7" {
		t.Errorf("VehicleType = %q", filter.VehicleType)
	}
	if filter.RegistrationNo != "MH12 AB 1234" {
		t.Errorf("RegistrationNo = %q", filter.RegistrationNo)
	}
	if !filter.HasRange() {
		t.Fatal("filter should carry a date range")
	}
	if !filter.StartDate.Equal(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartDate = %v", filter.StartDate)
	}
	if !filter.EndDate.Equal(time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("EndDate = %v", filter.EndDate)
	}
}

func TestParseReportFilterDropsMalformedRange(t *testing.T) {
	cases := []string{
		"/reports/?start_date=2025-08-01",
		"/reports/?end_date=2025-08-14",
		"/reports/?start_date=08/01/2025&end_date=2025-08-14",
		"/reports/?start_date=2025-08-01&end_date=not-a-date",
	}
	for _, target := range cases {
		filter := parseReportFilter(testContext(t, target))
		if filter.HasRange() {
			t.Errorf("%s: range should be dropped", target)
		}
	}
}

func TestParseReportFilterEmpty(t *testing.T) {
	filter := parseReportFilter(testContext(t, "/reports/"))
	if filter != (model.ReportFilter{}) {
		t.Errorf("empty query should produce a zero filter, got %+v", filter)
	}
}

func TestDiscoveryRequested(t *testing.T) {
	cases := []struct {
		target string
		want   bool
	}{
		{"/vehicle-analysis/", true},
		{"/vehicle-analysis/?fetch_filters=true", true},
		{"/vehicle-analysis/?fetch_filters=", true},
		{"/vehicle-analysis/?registration_id=3&date=2025-08-14", false},
		{"/trails/?vehicle_id=1", false},
	}
	for _, tc := range cases {
		if got := discoveryRequested(testContext(t, tc.target)); got != tc.want {
			t.Errorf("discoveryRequested(%s) = %v, want %v", tc.target, got, tc.want)
		}
	}
}
