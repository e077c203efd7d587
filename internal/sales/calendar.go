//-------------------------------------------------------------------------
//
// pgEdge Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package sales

import (
	"fmt"
	"time"

	"github.com/pgEdge/pgedge-datagen/internal/dims"
)

// CalendarProfile shapes how order dates are distributed over the date
// dimension. The profile assigns a relative weight to each calendar day;
// the engine normalizes the weights into a draw distribution.
type CalendarProfile interface {
	// Name returns the profile name.
	Name() string

	// Description returns a human-readable description.
	Description() string

	// Weight returns the relative order volume for a calendar day.
	Weight(day dims.DateRow) float64
}

var calendarRegistry = make(map[string]CalendarProfile)

func registerCalendar(p CalendarProfile) {
	calendarRegistry[p.Name()] = p
}

// GetCalendarProfile retrieves a calendar profile by name.
func GetCalendarProfile(name string) (CalendarProfile, error) {
	p, ok := calendarRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown calendar profile: %s", name)
	}
	return p, nil
}

// CalendarProfiles returns all registered profiles.
func CalendarProfiles() []CalendarProfile {
	out := make([]CalendarProfile, 0, len(calendarRegistry))
	for _, name := range []string{"uniform", "retail", "office", "seasonal"} {
		if p, ok := calendarRegistry[name]; ok {
			out = append(out, p)
		}
	}
	return out
}

func init() {
	registerCalendar(uniformCalendar{})
	registerCalendar(retailCalendar{})
	registerCalendar(officeCalendar{})
	registerCalendar(seasonalCalendar{})
}

// uniformCalendar spreads orders evenly over every day.
type uniformCalendar struct{}

func (uniformCalendar) Name() string        { return "uniform" }
func (uniformCalendar) Description() string { return "Even order volume on every day" }

func (uniformCalendar) Weight(dims.DateRow) float64 { return 1.0 }

// retailCalendar is the default consumer pattern: weekends busier than
// weekdays, holidays nearly dead.
type retailCalendar struct{}

func (retailCalendar) Name() string { return "retail" }
func (retailCalendar) Description() string {
	return "Consumer retail (weekend peak, quiet holidays)"
}

func (retailCalendar) Weight(day dims.DateRow) float64 {
	switch {
	case day.IsHoliday:
		return 0.25
	case day.IsWeekend:
		return 1.5
	default:
		return 1.0
	}
}

// officeCalendar models B2B ordering: weekday focus, weekends and
// holidays nearly idle.
type officeCalendar struct{}

func (officeCalendar) Name() string { return "office" }
func (officeCalendar) Description() string {
	return "Business ordering (weekday focus, idle weekends)"
}

func (officeCalendar) Weight(day dims.DateRow) float64 {
	switch {
	case day.IsHoliday:
		return 0.10
	case day.IsWeekend:
		return 0.30
	default:
		return 1.0
	}
}

// seasonalCalendar layers a holiday-season surge on top of the retail
// pattern.
type seasonalCalendar struct{}

func (seasonalCalendar) Name() string { return "seasonal" }
func (seasonalCalendar) Description() string {
	return "Retail pattern with a November/December surge"
}

func (seasonalCalendar) Weight(day dims.DateRow) float64 {
	w := retailCalendar{}.Weight(day)
	if day.Date.Month() == time.November {
		w *= 1.4
	}
	if day.Date.Month() == time.December {
		w *= 1.8
	}
	return w
}
