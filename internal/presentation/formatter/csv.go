package formatter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/penwyp/go-viewport-monitor/internal/util"
)

// CSVTimeLayout formats history timestamps; it never contains a comma
const CSVTimeLayout = "2006-01-02 15:04:05"

var csvHeaders = []string{"Timestamp", "Width", "Height", "Device Pixel Ratio", "Orientation"}

// CSVFormatter writes the history as CSV, one row per entry
type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(w io.Writer, data ViewportData) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeaders); err != nil {
		return err
	}

	tp := util.GetTimeProvider()
	for _, entry := range data.Rows() {
		record := []string{
			tp.FormatMillis(entry.Timestamp, CSVTimeLayout),
			strconv.Itoa(entry.Width),
			strconv.Itoa(entry.Height),
			util.FormatFloat(entry.PixelDensity),
			string(entry.Orientation),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
