//-------------------------------------------------------------------------
//
// pgEdge Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package dims

import "time"

// GeographyRow is one row of the geography dimension.
type GeographyRow struct {
	GeographyKey int64  `parquet:"geography_key"`
	City         string `parquet:"city"`
	State        string `parquet:"state"`
	Country      string `parquet:"country"`
	Continent    string `parquet:"continent"`
	ISOCode      string `parquet:"iso_code"`
}

// CustomerRow is one row of the customer dimension.
type CustomerRow struct {
	CustomerKey  int64  `parquet:"customer_key"`
	Name         string `parquet:"name"`
	Email        string `parquet:"email"`
	Phone        string `parquet:"phone"`
	CustomerType string `parquet:"customer_type"`
	GeographyKey int64  `parquet:"geography_key"`
}

// StoreRow is one row of the store dimension.
type StoreRow struct {
	StoreKey      int64      `parquet:"store_key"`
	StoreName     string     `parquet:"store_name"`
	StoreType     string     `parquet:"store_type"`
	Status        string     `parquet:"status"`
	GeographyKey  int64      `parquet:"geography_key"`
	OpeningDate   time.Time  `parquet:"opening_date"`
	ClosingDate   *time.Time `parquet:"closing_date,optional"`
	SquareFootage int32      `parquet:"square_footage"`
	EmployeeCount int32      `parquet:"employee_count"`
}

// PromotionRow is one row of the promotion dimension. The row with
// PromotionKey == NoDiscountKey is the "no promotion" sentinel.
type PromotionRow struct {
	PromotionKey  int64     `parquet:"promotion_key"`
	PromotionName string    `parquet:"promotion_name"`
	PromotionType string    `parquet:"promotion_type"`
	DiscountPct   float64   `parquet:"discount_pct"`
	ValidStart    time.Time `parquet:"valid_start"`
	ValidEnd      time.Time `parquet:"valid_end"`
}

// DateRow is one row of the date dimension.
type DateRow struct {
	DateKey       int64     `parquet:"date_key"`
	Date          time.Time `parquet:"date"`
	Year          int32     `parquet:"year"`
	Quarter       int32     `parquet:"quarter"`
	Month         int32     `parquet:"month"`
	MonthName     string    `parquet:"month_name"`
	Day           int32     `parquet:"day"`
	DayOfWeek     int32     `parquet:"day_of_week"`
	DayName       string    `parquet:"day_name"`
	FiscalYear    int32     `parquet:"fiscal_year"`
	FiscalQuarter int32     `parquet:"fiscal_quarter"`
	IsWeekend     bool      `parquet:"is_weekend"`
	IsHoliday     bool      `parquet:"is_holiday"`
}

// CurrencyRow is one row of the currency dimension.
type CurrencyRow struct {
	CurrencyKey  int64  `parquet:"currency_key"`
	ISOCode      string `parquet:"iso_code"`
	CurrencyName string `parquet:"currency_name"`
}

// ExchangeRateRow is one daily rate from the base currency.
type ExchangeRateRow struct {
	Date         time.Time `parquet:"date"`
	FromCurrency string    `parquet:"from_currency"`
	ToCurrency   string    `parquet:"to_currency"`
	ExchangeRate float64   `parquet:"exchange_rate"`
}

// ProductRow is one row of the product dimension.
type ProductRow struct {
	ProductKey  int64   `parquet:"product_key"`
	ProductName string  `parquet:"product_name"`
	Category    string  `parquet:"category"`
	Brand       string  `parquet:"brand"`
	UnitPrice   float64 `parquet:"unit_price"`
	UnitCost    float64 `parquet:"unit_cost"`
}
