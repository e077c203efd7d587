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
	"time"

	"github.com/pgEdge/pgedge-datagen/internal/datagen"
)

var (
	linesPerOrder        = []int{1, 2, 3, 4, 5}
	linesPerOrderWeights = []float64{0.55, 0.25, 0.10, 0.06, 0.04}
)

// Order is the grouping unit shared by up to five fact lines. It is an
// explicit value object handed to the later stages, never re-derived from
// the lines themselves.
type Order struct {
	ID          int64
	Date        time.Time
	CustomerKey int64
	Lines       int
}

// newOrder draws one order with its id, date, customer and line count.
// The id encodes the order date as YYYYMMDD followed by a random suffix.
func newOrder(faker *datagen.Faker, ref *RefData, lines int) Order {
	date := datagen.ChooseWeightedF(faker, ref.OrderDates, ref.OrderDateWeights)
	id := (int64(date.Year())*10000+int64(date.Month())*100+int64(date.Day()))*1_000_000_000 +
		faker.Int64(0, 999_999_999)

	return Order{
		ID:          id,
		Date:        date,
		CustomerKey: datagen.Choose(faker, ref.CustomerKeys),
		Lines:       lines,
	}
}

// expandOrders draws orders until their lines cover exactly n fact rows.
// The last drawn order is truncated if it would overshoot, and fresh
// single-line orders pad any shortfall, so the sum of Lines is always n.
func expandOrders(faker *datagen.Faker, ref *RefData, n int64, avgLines float64) []Order {
	if n < 1 {
		return nil
	}

	estimate := int(float64(n)/avgLines + 0.5)
	if estimate < 1 {
		estimate = 1
	}

	orders := make([]Order, 0, estimate)
	var total int64
	for i := 0; i < estimate && total < n; i++ {
		lines := datagen.ChooseWeightedF(faker, linesPerOrder, linesPerOrderWeights)
		if total+int64(lines) > n {
			lines = int(n - total)
		}
		orders = append(orders, newOrder(faker, ref, lines))
		total += int64(lines)
	}
	for total < n {
		orders = append(orders, newOrder(faker, ref, 1))
		total++
	}
	return orders
}
