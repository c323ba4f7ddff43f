package seed

import (
	"encoding/json"
	"testing"
)

func TestChartBlobShape(t *testing.T) {
	blob := ChartBlob([]Axis{
		{Name: "Min Temp", Min: 20, Max: 32},
		{Name: "Max Temp", Min: 22, Max: 36},
	})

	var decoded struct {
		Labels []string `json:"labels"`
		Series []struct {
			Name string    `json:"name"`
			Data []float64 `json:"data"`
		} `json:"series"`
	}
	if err := json.Unmarshal(blob, &decoded); err != nil {
		t.Fatalf("blob is not valid JSON: %v", err)
	}

	// Quarter-hour labels from 08:00 through 17:45.
	if len(decoded.Labels) != 40 {
		t.Fatalf("len(labels) = %d, want 40", len(decoded.Labels))
	}
	if decoded.Labels[0] != "08:00" {
		t.Errorf("first label = %q, want %q", decoded.Labels[0], "08:00")
	}
	if decoded.Labels[39] != "17:45" {
		t.Errorf("last label = %q, want %q", decoded.Labels[39], "17:45")
	}

	if len(decoded.Series) != 2 {
		t.Fatalf("len(series) = %d, want 2", len(decoded.Series))
	}
	if decoded.Series[0].Name != "Min Temp" || decoded.Series[1].Name != "Max Temp" {
		t.Errorf("series names = %q, %q", decoded.Series[0].Name, decoded.Series[1].Name)
	}

	for _, series := range decoded.Series {
		if len(series.Data) != 40 {
			t.Fatalf("series %q has %d points, want 40", series.Name, len(series.Data))
		}
	}
	for _, v := range decoded.Series[0].Data {
		if v < 20 || v > 32 {
			t.Errorf("Min Temp value %v outside [20, 32]", v)
		}
	}
}
