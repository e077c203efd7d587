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

// Delivery statuses, decided once per line by the sign of the delivery
// offset. Terminal per line.
const (
	StatusEarly   = "Early Delivery"
	StatusOnTime  = "On Time"
	StatusDelayed = "Delayed"
)

// dueDate is the promised delivery date: 3 to 7 days after the order
// date, keyed off the order id so every line of an order agrees.
func dueDate(order Order) time.Time {
	return order.Date.AddDate(0, 0, int(order.ID%5)+3)
}

// deliveryOffset computes the base delivery offset in days for one line.
// Late deliveries cluster on "hot" order/product seed combinations so
// delays correlate within an order instead of being uniform noise.
func deliveryOffset(orderID, productKey int64) int {
	orderSeed := orderID % 100
	productSeed := (orderID + productKey) % 100
	lineSeed := (productKey + orderSeed) % 100

	switch {
	case orderSeed >= 60 && orderSeed < 85 && productSeed >= 60:
		return int(lineSeed%4) + 1
	case orderSeed >= 85:
		return int(productSeed%5) + 2
	default:
		return 0
	}
}

// lineDelivery resolves the delivery date and status for one line. 10%
// of lines get an early override of 1 or 2 days regardless of the base
// offset.
func lineDelivery(faker *datagen.Faker, order Order, productKey int64) (due, delivery time.Time, status string) {
	due = dueDate(order)

	offset := deliveryOffset(order.ID, productKey)
	if faker.Float64(0, 1) < 0.10 {
		offset = -faker.Int(1, 2)
	}

	delivery = due.AddDate(0, 0, offset)
	switch {
	case offset < 0:
		status = StatusEarly
	case offset > 0:
		status = StatusDelayed
	default:
		status = StatusOnTime
	}
	return due, delivery, status
}
