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
	"github.com/pgEdge/pgedge-datagen/internal/dims"
)

// matchPromotion returns the promotion key and discount percentage for an
// order date: a uniform choice among all windows active on that date, or
// the no-discount sentinel when none match.
func matchPromotion(faker *datagen.Faker, ref *RefData, orderDate time.Time) (int64, float64) {
	var active []dims.PromotionRow
	for _, p := range ref.Promotions {
		if !orderDate.Before(p.ValidStart) && !orderDate.After(p.ValidEnd) {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return dims.NoDiscountKey, 0
	}
	chosen := datagen.Choose(faker, active)
	return chosen.PromotionKey, chosen.DiscountPct
}
