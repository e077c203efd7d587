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
	"testing"
	"time"

	"github.com/pgEdge/pgedge-datagen/internal/dims"
)

func day(date string, weekend, holiday bool) dims.DateRow {
	t, _ := time.Parse("2006-01-02", date)
	return dims.DateRow{Date: t, IsWeekend: weekend, IsHoliday: holiday}
}

func TestCalendarProfileWeights(t *testing.T) {
	weekday := day("2023-03-15", false, false)
	weekend := day("2023-03-18", true, false)
	holiday := day("2023-12-25", false, true)
	december := day("2023-12-16", true, false)

	tests := []struct {
		profile string
		check   func(t *testing.T, p CalendarProfile)
	}{
		{"uniform", func(t *testing.T, p CalendarProfile) {
			if p.Weight(weekday) != p.Weight(weekend) {
				t.Error("uniform profile should weight all days equally")
			}
		}},
		{"retail", func(t *testing.T, p CalendarProfile) {
			if p.Weight(weekend) <= p.Weight(weekday) {
				t.Error("retail weekends should outweigh weekdays")
			}
			if p.Weight(holiday) >= p.Weight(weekday) {
				t.Error("retail holidays should be quieter than weekdays")
			}
		}},
		{"office", func(t *testing.T, p CalendarProfile) {
			if p.Weight(weekend) >= p.Weight(weekday) {
				t.Error("office weekends should be quieter than weekdays")
			}
		}},
		{"seasonal", func(t *testing.T, p CalendarProfile) {
			if p.Weight(december) <= p.Weight(weekend) {
				t.Error("seasonal December should outweigh an ordinary weekend")
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			p, err := GetCalendarProfile(tt.profile)
			if err != nil {
				t.Fatalf("GetCalendarProfile(%q): %v", tt.profile, err)
			}
			tt.check(t, p)
		})
	}
}

func TestGetCalendarProfileUnknown(t *testing.T) {
	if _, err := GetCalendarProfile("bogus"); err == nil {
		t.Error("expected error for unknown profile")
	}
}

func TestCalendarProfilesListsAll(t *testing.T) {
	profiles := CalendarProfiles()
	if len(profiles) != 4 {
		t.Fatalf("got %d profiles, want 4", len(profiles))
	}
}
