package interaction

import (
	"fmt"
	"sort"

	"github.com/penwyp/go-viewport-monitor/internal/core/model"
)

// SortField represents the field to sort history entries by
type SortField int

const (
	SortByTime SortField = iota
	SortByWidth
	SortByHeight
	SortByDensity
)

// SortOrder represents the sort order
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
)

// ParseSortField maps a flag value onto a field
func ParseSortField(name string) (SortField, error) {
	switch name {
	case "time", "":
		return SortByTime, nil
	case "width":
		return SortByWidth, nil
	case "height":
		return SortByHeight, nil
	case "density":
		return SortByDensity, nil
	default:
		return SortByTime, fmt.Errorf("unknown sort field: %s", name)
	}
}

// HistorySorter orders history entries for display. Ties keep their
// newest-first order.
type HistorySorter struct {
	field SortField
	order SortOrder
}

// NewHistorySorter creates a sorter with the natural newest-first order
func NewHistorySorter() *HistorySorter {
	return &HistorySorter{
		field: SortByTime,
		order: SortDescending,
	}
}

func (s *HistorySorter) SetField(field SortField) {
	s.field = field
}

func (s *HistorySorter) SetOrder(order SortOrder) {
	s.order = order
}

// Sort sorts a copy of entries based on current settings
func (s *HistorySorter) Sort(entries []model.HistoryEntry) []model.HistoryEntry {
	sorted := make([]model.HistoryEntry, len(entries))
	copy(sorted, entries)

	key := func(e model.HistoryEntry) float64 {
		switch s.field {
		case SortByWidth:
			return float64(e.Width)
		case SortByHeight:
			return float64(e.Height)
		case SortByDensity:
			return e.PixelDensity
		default:
			return float64(e.Timestamp)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if s.order == SortDescending {
			return key(sorted[i]) > key(sorted[j])
		}
		return key(sorted[i]) < key(sorted[j])
	})
	return sorted
}
