//-------------------------------------------------------------------------
//
// pgEdge Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package dims

import (
	"context"
	"time"

	"github.com/pgEdge/pgedge-datagen/internal/config"
)

type datesGenerator struct{}

type datesParams struct {
	DateStart         string `json:"date_start"`
	DateEnd           string `json:"date_end"`
	FiscalMonthOffset int    `json:"fiscal_month_offset"`
}

func init() {
	Register(&datesGenerator{})
}

func (g *datesGenerator) Name() string        { return "dates" }
func (g *datesGenerator) DependsOn() []string { return nil }

func (g *datesGenerator) Params(cfg *config.Config) any {
	return datesParams{
		DateStart:         cfg.Defaults.DateStart,
		DateEnd:           cfg.Defaults.DateEnd,
		FiscalMonthOffset: cfg.Dates.FiscalMonthOffset,
	}
}

func (g *datesGenerator) OutputPath(dimsDir string) string {
	return parquetPath(dimsDir, g.Name())
}

// DateKey encodes the calendar date as YYYYMMDD.
func DateKey(t time.Time) int64 {
	return int64(t.Year())*10000 + int64(t.Month())*100 + int64(t.Day())
}

func (g *datesGenerator) Generate(_ context.Context, cfg *config.Config, dimsDir string) (int64, error) {
	start, end, err := cfg.DateRange()
	if err != nil {
		return 0, err
	}
	offset := cfg.Dates.FiscalMonthOffset

	var rows []DateRow
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		// Fiscal calendar shifts forward by the configured month offset:
		// with offset 6, July 2022 starts fiscal year 2023.
		fiscal := d.AddDate(0, offset, 0)

		dow := int32(d.Weekday()) // Sunday == 0
		rows = append(rows, DateRow{
			DateKey:       DateKey(d),
			Date:          d,
			Year:          int32(d.Year()),
			Quarter:       (int32(d.Month())-1)/3 + 1,
			Month:         int32(d.Month()),
			MonthName:     d.Month().String(),
			Day:           int32(d.Day()),
			DayOfWeek:     dow,
			DayName:       d.Weekday().String(),
			FiscalYear:    int32(fiscal.Year()),
			FiscalQuarter: (int32(fiscal.Month())-1)/3 + 1,
			IsWeekend:     dow == 0 || dow == 6,
			IsHoliday:     isFixedHoliday(d),
		})
	}

	if err := writeTable(g.OutputPath(dimsDir), rows); err != nil {
		return 0, err
	}
	return int64(len(rows)), nil
}

// isFixedHoliday flags a small set of fixed-date holidays. Floating
// holidays are out of scope for the calendar table.
func isFixedHoliday(d time.Time) bool {
	switch {
	case d.Month() == time.January && d.Day() == 1:
		return true
	case d.Month() == time.July && d.Day() == 4:
		return true
	case d.Month() == time.December && d.Day() == 25:
		return true
	case d.Month() == time.December && d.Day() == 26:
		return true
	}
	return false
}
