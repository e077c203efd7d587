//-------------------------------------------------------------------------
//
// pgEdge Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package sales

import "time"

// SalesLine is one fact row. Year and Month are partition columns
// derived from the order date before any write happens.
type SalesLine struct {
	OrderID        int64     `parquet:"order_id"`
	LineNumber     int32     `parquet:"line_number"`
	OrderDate      time.Time `parquet:"order_date"`
	DueDate        time.Time `parquet:"due_date"`
	DeliveryDate   time.Time `parquet:"delivery_date"`
	DeliveryStatus string    `parquet:"delivery_status"`
	StoreKey       int64     `parquet:"store_key"`
	ProductKey     int64     `parquet:"product_key"`
	CustomerKey    int64     `parquet:"customer_key"`
	CurrencyKey    int64     `parquet:"currency_key"`
	PromotionKey   int64     `parquet:"promotion_key"`
	Quantity       int32     `parquet:"quantity"`
	UnitPrice      float64   `parquet:"unit_price"`
	UnitCost       float64   `parquet:"unit_cost"`
	DiscountAmount float64   `parquet:"discount_amount"`
	NetPrice       float64   `parquet:"net_price"`
	IsOrderDelayed bool      `parquet:"is_order_delayed"`
	Year           int32     `parquet:"year"`
	Month          int32     `parquet:"month"`
}

// anonLine is SalesLine without the order columns, used when
// skip_order_columns is set.
type anonLine struct {
	OrderDate      time.Time `parquet:"order_date"`
	DueDate        time.Time `parquet:"due_date"`
	DeliveryDate   time.Time `parquet:"delivery_date"`
	DeliveryStatus string    `parquet:"delivery_status"`
	StoreKey       int64     `parquet:"store_key"`
	ProductKey     int64     `parquet:"product_key"`
	CustomerKey    int64     `parquet:"customer_key"`
	CurrencyKey    int64     `parquet:"currency_key"`
	PromotionKey   int64     `parquet:"promotion_key"`
	Quantity       int32     `parquet:"quantity"`
	UnitPrice      float64   `parquet:"unit_price"`
	UnitCost       float64   `parquet:"unit_cost"`
	DiscountAmount float64   `parquet:"discount_amount"`
	NetPrice       float64   `parquet:"net_price"`
	IsOrderDelayed bool      `parquet:"is_order_delayed"`
	Year           int32     `parquet:"year"`
	Month          int32     `parquet:"month"`
}

func anonymize(rows []SalesLine) []anonLine {
	out := make([]anonLine, len(rows))
	for i, r := range rows {
		out[i] = anonLine{
			OrderDate:      r.OrderDate,
			DueDate:        r.DueDate,
			DeliveryDate:   r.DeliveryDate,
			DeliveryStatus: r.DeliveryStatus,
			StoreKey:       r.StoreKey,
			ProductKey:     r.ProductKey,
			CustomerKey:    r.CustomerKey,
			CurrencyKey:    r.CurrencyKey,
			PromotionKey:   r.PromotionKey,
			Quantity:       r.Quantity,
			UnitPrice:      r.UnitPrice,
			UnitCost:       r.UnitCost,
			DiscountAmount: r.DiscountAmount,
			NetPrice:       r.NetPrice,
			IsOrderDelayed: r.IsOrderDelayed,
			Year:           r.Year,
			Month:          r.Month,
		}
	}
	return out
}
