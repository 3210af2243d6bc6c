package app

import "ohlcv-tools/internal/tstamp"

// Default values for optional configuration fields.
const (
	DefaultConfigPath  = "configs/ohlcv.yaml"
	DefaultLogLevel    = "info"
	DefaultTimezone    = tstamp.DefaultZone
	DefaultAdjustInput = "historical_ohlcv_15m.csv"
)

// DefaultDropColumns are the per-record metadata columns of a vendor OHLCV export.
var DefaultDropColumns = []string{"rtype", "publisher_id", "instrument_id", "symbol"}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Timezone == "" {
		c.Timezone = DefaultTimezone
	}
	if c.Adjust.Input == "" {
		c.Adjust.Input = DefaultAdjustInput
	}
	if c.Drop.Input == "" {
		c.Drop.Input = DefaultAdjustInput
	}
	c.Drop.Columns = cleanList(c.Drop.Columns)
	if len(c.Drop.Columns) == 0 {
		c.Drop.Columns = append([]string(nil), DefaultDropColumns...)
	}
}
