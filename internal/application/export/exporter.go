// Package export writes reports, CSV histories and snapshots to disk.
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/penwyp/go-viewport-monitor/internal/core/model"
	"github.com/penwyp/go-viewport-monitor/internal/core/report"
	"github.com/penwyp/go-viewport-monitor/internal/presentation/formatter"
	"github.com/penwyp/go-viewport-monitor/internal/util"
)

// Exporter saves export files into a directory
type Exporter struct {
	dir string
}

func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

func (e *Exporter) Dir() string {
	return e.dir
}

// Export renders data in format and writes it under the conventional file
// name for that format. It returns the written path.
func (e *Exporter) Export(format string, data formatter.ViewportData) (string, error) {
	var name string
	switch format {
	case model.FormatReport, model.FormatJSON:
		format = model.FormatReport
		name = report.ReportFileName(data.Now)
	case model.FormatCSV:
		name = report.CSVFileName(data.Now)
	case model.FormatSnapshot:
		name = report.SnapshotFileName(data.Now)
	default:
		return "", fmt.Errorf("unsupported export format: %s", format)
	}

	f, err := formatter.New(format)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := f.Format(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s export: %w", format, err)
	}

	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	util.LogInfo("Exported viewport data", util.F("format", format), util.F("path", path), util.F("entries", len(data.History)))
	return path, nil
}
