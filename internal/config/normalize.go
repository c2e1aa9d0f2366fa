// internal/config/normalize.go
package config

// Defaults applied by Normalize.
const (
	DefaultPort          = 502
	DefaultScanIntervalS = 30
	DefaultTimeoutMs     = 5000
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	d := &cfg.ISG

	if d.Name == "" {
		d.Name = d.Host
	}
	if d.Port == 0 {
		d.Port = DefaultPort
	}
	if d.ScanIntervalS == 0 {
		d.ScanIntervalS = DefaultScanIntervalS
	}
	if d.TimeoutMs == 0 {
		d.TimeoutMs = DefaultTimeoutMs
	}
}
