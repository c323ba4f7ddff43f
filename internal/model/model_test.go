package model

import (
	"testing"
	"time"
)

func TestFleetVehicleStat(t *testing.T) {
	row := FleetVehicle{Title: "EKA 9", TotalCount: 8, ActiveCount: 6, Special: true}
	stat := row.Stat()

	if stat.Title != "EKA 9" {
		t.Errorf("Title = %q, want %q", stat.Title, "EKA 9")
	}
	if stat.Value != 8 {
		t.Errorf("Value = %d, want 8", stat.Value)
	}
	if stat.Active != 6 {
		t.Errorf("Active = %d, want 6", stat.Active)
	}
	if !stat.Special {
		t.Error("Special should carry over")
	}
}

func TestMetricValue(t *testing.T) {
	cases := []struct {
		stored string
		want   string
	}{
		{"1280 km", "1280"},
		{"0.9 kWh", "0.9"},
		{"  45   hrs ", "45"},
		{"1280", "1280"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := metricValue(tc.stored); got != tc.want {
			t.Errorf("metricValue(%q) = %q, want %q", tc.stored, got, tc.want)
		}
	}
}

func TestVehicleSummaryMetrics(t *testing.T) {
	summary := VehicleSummary{
		FleetType:            "Eka 7",
		TotalDistance:        "1280 km",
		CO2Savings:           "150 kg",
		AvgEnergyConsumption: "0.9 kWh",
		RunTime:              "45 hrs",
		TractionEnergy:       "1.1 MWh",
		RegenEnergy:          "0.2 MWh",
	}

	metrics := summary.Metrics()
	if len(metrics) != 6 {
		t.Fatalf("len(metrics) = %d, want 6", len(metrics))
	}

	if metrics[0].Title != "Total Distance" || metrics[0].Value != "1280" || metrics[0].Unit != "km" {
		t.Errorf("metrics[0] = %+v", metrics[0])
	}
	if metrics[2].Title != "Avg. Energy Consumption" || metrics[2].Value != "0.9" || metrics[2].Unit != "kWh" {
		t.Errorf("metrics[2] = %+v", metrics[2])
	}
	if metrics[5].Title != "Regen. Energy" || metrics[5].Unit != "MWh" {
		t.Errorf("metrics[5] = %+v", metrics[5])
	}
}

func TestVehicleSummaryPayloadEmptyVehicles(t *testing.T) {
	payload := VehicleSummary{FleetType: "Eka 9"}.Payload()

	if payload.FleetName != "Eka 9" {
		t.Errorf("FleetName = %q, want %q", payload.FleetName, "Eka 9")
	}
	if payload.Vehicles == nil {
		t.Error("Vehicles should be an empty slice, not nil")
	}
	if len(payload.SummaryData) != 6 {
		t.Errorf("len(SummaryData) = %d, want 6", len(payload.SummaryData))
	}
}

func TestReportFilterHasRange(t *testing.T) {
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC)

	if (ReportFilter{}).HasRange() {
		t.Error("empty filter should not have a range")
	}
	if (ReportFilter{StartDate: &start}).HasRange() {
		t.Error("start-only filter should not have a range")
	}
	if !(ReportFilter{StartDate: &start, EndDate: &end}).HasRange() {
		t.Error("filter with both dates should have a range")
	}
}

func TestReportFilterRangeBounds(t *testing.T) {
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC)

	lo, hi := ReportFilter{StartDate: &start, EndDate: &end}.RangeBounds()
	if !lo.Equal(start) {
		t.Errorf("lower bound = %v, want %v", lo, start)
	}
	wantHi := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	if !hi.Equal(wantHi) {
		t.Errorf("upper bound = %v, want %v (exclusive end covers the whole last day)", hi, wantHi)
	}
}

func TestReportTimeFormat(t *testing.T) {
	ts := time.Date(2025, 8, 14, 9, 5, 0, 0, time.UTC)
	if got := ts.Format(ReportTimeFormat); got != "14 Aug 2025, 09:05" {
		t.Errorf("formatted timestamp = %q, want %q", got, "14 Aug 2025, 09:05")
	}
}

func TestUserIsAdmin(t *testing.T) {
	if !(User{Role: RoleSuperuser}).IsAdmin() {
		t.Error("superuser should be admin")
	}
	if (User{Role: RoleFleetOwner}).IsAdmin() {
		t.Error("fleet owner should not be admin")
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleSuperuser, RoleFleetOwner, RoleSales, RoleService} {
		if !ValidRole(role) {
			t.Errorf("ValidRole(%q) should be true", role)
		}
	}
	if ValidRole("driver") {
		t.Error(`ValidRole("driver") should be false`)
	}
}
