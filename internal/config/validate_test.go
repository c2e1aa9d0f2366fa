// internal/config/validate_test.go
package config

import "testing"

// helper to build a config quickly
func isg(host string, port, intervalS int) *Config {
	return &Config{
		ISG: ISGConfig{
			Host:          host,
			Port:          port,
			ScanIntervalS: intervalS,
		},
	}
}

// ---- tests ----

func TestValidate_Minimal(t *testing.T) {
	if err := Validate(isg("192.168.1.20", 0, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_HostRequired(t *testing.T) {
	if err := Validate(isg("", 502, 30)); err == nil {
		t.Fatalf("expected error for missing host, got nil")
	}
}

func TestValidate_PortRange(t *testing.T) {
	if err := Validate(isg("h", 70000, 30)); err == nil {
		t.Fatalf("expected error for port out of range, got nil")
	}
}

func TestValidate_ScanIntervalMinimum(t *testing.T) {
	if err := Validate(isg("h", 502, MinScanIntervalS-1)); err == nil {
		t.Fatalf("expected error below minimum interval, got nil")
	}
	if err := Validate(isg("h", 502, MinScanIntervalS)); err != nil {
		t.Fatalf("unexpected error at minimum interval: %v", err)
	}
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := isg("192.168.1.20", 0, 0)
	Normalize(cfg)

	if cfg.ISG.Port != DefaultPort {
		t.Fatalf("port = %d, want %d", cfg.ISG.Port, DefaultPort)
	}
	if cfg.ISG.ScanIntervalS != DefaultScanIntervalS {
		t.Fatalf("scan interval = %d, want %d", cfg.ISG.ScanIntervalS, DefaultScanIntervalS)
	}
	if cfg.ISG.TimeoutMs != DefaultTimeoutMs {
		t.Fatalf("timeout = %d, want %d", cfg.ISG.TimeoutMs, DefaultTimeoutMs)
	}
	if cfg.ISG.Name != "192.168.1.20" {
		t.Fatalf("name = %q, want the host fallback", cfg.ISG.Name)
	}
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	cfg := isg("h", 1502, 60)
	cfg.ISG.Name = "cellar"
	Normalize(cfg)

	if cfg.ISG.Port != 1502 || cfg.ISG.ScanIntervalS != 60 || cfg.ISG.Name != "cellar" {
		t.Fatalf("explicit values must survive normalization: %+v", cfg.ISG)
	}
}
