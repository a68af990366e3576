package watch

import "time"

// WatchConfig contains configuration for the watch command
type WatchConfig struct {
	// Display settings
	Timezone    string
	LayoutStyle int

	// Refresh settings
	UIRefreshInterval time.Duration

	// Directory receiving files exported from the live view
	ExportDir string

	// Files whose changes trigger a thresholds reload
	ThresholdFiles []string
}

// Validate checks if the configuration is valid
func (c *WatchConfig) Validate() error {
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if c.UIRefreshInterval <= 0 {
		c.UIRefreshInterval = time.Second
	}
	if c.ExportDir == "" {
		c.ExportDir = "."
	}
	if c.LayoutStyle < 0 {
		c.LayoutStyle = 0
	}
	return nil
}
