// internal/export/collector_test.go
package export

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestCollector_GaugesFromSnapshot(t *testing.T) {
	snapshot := map[string]any{
		"actual_temperature": 23.5,
		"operation_mode":     2,
		"is_heating":         true,
		"active_error":       "no error", // text, not exported
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(NewCollector(
		func() map[string]any { return snapshot },
		func() string { return "WPM 3" },
	))

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	got := map[string]float64{}
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			got[fam.GetName()] = m.GetGauge().GetValue()
		}
	}

	want := map[string]float64{
		"isg_model_info":         1,
		"isg_actual_temperature": 23.5,
		"isg_operation_mode":     2,
		"isg_is_heating":         1,
	}
	for name, value := range want {
		if got[name] != value {
			t.Fatalf("%s = %v, want %v (all: %v)", name, got[name], value, got)
		}
	}
	if _, exported := got["isg_active_error"]; exported {
		t.Fatalf("text fields must not be exported")
	}
}
