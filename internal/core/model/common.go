package model

// Storage keys
const (
	HistoryKey    = "viewport-history"
	ThresholdsKey = "viewport-thresholds"
)

// Limits
const (
	DefaultHistoryCap  = 50
	ReportHistoryLimit = 10
)

// Output formats
const (
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatSummary  = "summary"
	FormatReport   = "report"
	FormatSnapshot = "snapshot"
)

// Store backends
const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// ReportTitle is the title stamped on every exported report
const ReportTitle = "Viewport Report"
