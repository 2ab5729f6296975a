package configs

import "time"

// Refresh configures the periodic dashboard refresh job. The dashboard
// compares statistics against the previous computation, so the interval is
// effectively the change-comparison window.
type Refresh struct {
	Enabled  bool          `env:"ENABLED" envDefault:"true"`
	Interval time.Duration `env:"INTERVAL" envDefault:"30s"`
}
