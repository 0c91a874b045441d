package models

import (
	"errors"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// BusStopSlots is the number of configurable bus stops.
	BusStopSlots = 3
	// ArrivalsPerStop caps how many predictions are taken from a single stop.
	ArrivalsPerStop = 10
	// BusPoolCapacity bounds the merged bus list before sorting.
	BusPoolCapacity = BusStopSlots * ArrivalsPerStop
	// MaxDisplayedArrivals is the number of rows per mode.
	MaxDisplayedArrivals = 4

	maxLineLen        = 15
	maxDestinationLen = 31
	missingField      = "?"
)

// ErrArrivalListFull is returned by Append when the list is at capacity.
var ErrArrivalListFull = errors.New("arrival list full")

// ArrivalInfo is a single predicted vehicle arrival.
type ArrivalInfo struct {
	Line             string `json:"line"`
	Destination      string `json:"destination"`
	SecondsToArrival int    `json:"seconds_to_arrival"`
}

// NewArrival fills missing fields with "?" and clips them to the row widths.
func NewArrival(line, destination string, seconds int) ArrivalInfo {
	return ArrivalInfo{
		Line:             clip(orMissing(line), maxLineLen),
		Destination:      clip(orMissing(destination), maxDestinationLen),
		SecondsToArrival: seconds,
	}
}

func orMissing(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return missingField
	}
	return s
}

// clip cuts s to at most n bytes without splitting a rune.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// ArrivalList is a bounded sequence that rejects appends once full.
type ArrivalList struct {
	items    []ArrivalInfo
	capacity int
}

// NewArrivalList returns an empty list holding at most capacity arrivals.
func NewArrivalList(capacity int) *ArrivalList {
	return &ArrivalList{items: make([]ArrivalInfo, 0, capacity), capacity: capacity}
}

// Append adds a to the list or returns ErrArrivalListFull.
func (l *ArrivalList) Append(a ArrivalInfo) error {
	if len(l.items) >= l.capacity {
		return ErrArrivalListFull
	}
	l.items = append(l.items, a)
	return nil
}

func (l *ArrivalList) Len() int { return len(l.items) }

func (l *ArrivalList) Full() bool { return len(l.items) >= l.capacity }

// SortAndTruncate returns the n soonest arrivals. Ties keep insertion order.
func (l *ArrivalList) SortAndTruncate(n int) []ArrivalInfo {
	out := make([]ArrivalInfo, len(l.items))
	copy(out, l.items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SecondsToArrival < out[j].SecondsToArrival
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// TransitConfig lists the stops shown on the transit panel.
type TransitConfig struct {
	BusStopIDs    [BusStopSlots]string `json:"bus_stop_ids"`
	TubeStationID string               `json:"tube_station_id"`
}

// Normalize trims whitespace from every ID.
func (c TransitConfig) Normalize() TransitConfig {
	for i := range c.BusStopIDs {
		c.BusStopIDs[i] = strings.TrimSpace(c.BusStopIDs[i])
	}
	c.TubeStationID = strings.TrimSpace(c.TubeStationID)
	return c
}

// BusConfigured reports whether at least one bus stop is set.
func (c TransitConfig) BusConfigured() bool {
	for _, id := range c.BusStopIDs {
		if strings.TrimSpace(id) != "" {
			return true
		}
	}
	return false
}

// TubeConfigured reports whether a tube station is set.
func (c TransitConfig) TubeConfigured() bool { return strings.TrimSpace(c.TubeStationID) != "" }

// StopCount is the number of stop points a refresh requests.
func (c TransitConfig) StopCount() int {
	n := 0
	for _, id := range c.BusStopIDs {
		if strings.TrimSpace(id) != "" {
			n++
		}
	}
	if c.TubeConfigured() {
		n++
	}
	return n
}

// Enabled gates the transit panel and its refresh.
func (c TransitConfig) Enabled() bool { return c.BusConfigured() || c.TubeConfigured() }

// TransitBoard is the result of one transit refresh.
type TransitBoard struct {
	Bus            []ArrivalInfo `json:"bus"`
	Tube           []ArrivalInfo `json:"tube"`
	BusConfigured  bool          `json:"bus_configured"`
	TubeConfigured bool          `json:"tube_configured"`
	FetchedAt      time.Time     `json:"fetched_at"`
}
