// internal/config/validate.go
package config

import (
	"fmt"
)

// MinScanIntervalS is the fastest poll cadence allowed; quicker cycles
// risk starving the gateway, which answers one request at a time.
const MinScanIntervalS = 10

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	d := cfg.ISG

	if d.Host == "" {
		return fmt.Errorf("config: host is required")
	}

	if d.Port < 0 || d.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", d.Port)
	}

	if d.ScanIntervalS < 0 {
		return fmt.Errorf("config: scan_interval_s must be positive")
	}
	if d.ScanIntervalS != 0 && d.ScanIntervalS < MinScanIntervalS {
		return fmt.Errorf(
			"config: scan_interval_s %d below minimum %d",
			d.ScanIntervalS,
			MinScanIntervalS,
		)
	}

	if d.TimeoutMs < 0 {
		return fmt.Errorf("config: timeout_ms must be positive")
	}

	return nil
}
