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

// RefData holds the read-only reference tables every chunk task needs.
// It is loaded once from the dimension artifacts before the worker pool
// starts and is never mutated afterwards, so all workers can share it.
type RefData struct {
	Products     []dims.ProductRow
	StoreKeys    []int64
	CustomerKeys []int64

	// StoreGeography and GeographyCurrency realize the fixed
	// Store → Geography → Currency lookup chain.
	StoreGeography    map[int64]int64
	GeographyCurrency map[int64]int64

	// Promotions holds the non-sentinel windows sorted as stored.
	Promotions []dims.PromotionRow

	// OrderDates is the order calendar; OrderDateWeights sums to 1,
	// shaped by the configured calendar profile.
	OrderDates       []time.Time
	OrderDateWeights []float64
}

// LoadRefData reads all reference tables from the dimension artifacts in
// dimsDir. Every table must be present and non-empty. The calendar
// profile shapes the order date distribution.
func LoadRefData(dimsDir, calendarProfile string) (*RefData, error) {
	profile, err := GetCalendarProfile(calendarProfile)
	if err != nil {
		return nil, err
	}
	products, err := dims.LoadTable[dims.ProductRow](dimsDir, "products")
	if err != nil {
		return nil, err
	}
	stores, err := dims.LoadTable[dims.StoreRow](dimsDir, "stores")
	if err != nil {
		return nil, err
	}
	customers, err := dims.LoadTable[dims.CustomerRow](dimsDir, "customers")
	if err != nil {
		return nil, err
	}
	geos, err := dims.LoadTable[dims.GeographyRow](dimsDir, "geography")
	if err != nil {
		return nil, err
	}
	currencies, err := dims.LoadTable[dims.CurrencyRow](dimsDir, "currency")
	if err != nil {
		return nil, err
	}
	promotions, err := dims.LoadTable[dims.PromotionRow](dimsDir, "promotions")
	if err != nil {
		return nil, err
	}
	dates, err := dims.LoadTable[dims.DateRow](dimsDir, "dates")
	if err != nil {
		return nil, err
	}

	ref := &RefData{
		Products:          products,
		StoreGeography:    make(map[int64]int64, len(stores)),
		GeographyCurrency: make(map[int64]int64, len(geos)),
	}

	byISO := make(map[string]int64, len(currencies))
	for _, c := range currencies {
		byISO[c.ISOCode] = c.CurrencyKey
	}
	for _, g := range geos {
		key, ok := byISO[g.ISOCode]
		if !ok {
			return nil, fmt.Errorf("geography %d references unknown currency %q", g.GeographyKey, g.ISOCode)
		}
		ref.GeographyCurrency[g.GeographyKey] = key
	}

	for _, s := range stores {
		ref.StoreKeys = append(ref.StoreKeys, s.StoreKey)
		ref.StoreGeography[s.StoreKey] = s.GeographyKey
	}
	for _, c := range customers {
		ref.CustomerKeys = append(ref.CustomerKeys, c.CustomerKey)
	}
	for _, p := range promotions {
		if p.PromotionKey != dims.NoDiscountKey {
			ref.Promotions = append(ref.Promotions, p)
		}
	}

	total := 0.0
	for _, d := range dates {
		w := profile.Weight(d)
		ref.OrderDates = append(ref.OrderDates, d.Date)
		ref.OrderDateWeights = append(ref.OrderDateWeights, w)
		total += w
	}
	if total <= 0 {
		return nil, fmt.Errorf("calendar profile %q assigns no weight to any date", calendarProfile)
	}
	for i := range ref.OrderDateWeights {
		ref.OrderDateWeights[i] /= total
	}

	return ref, ref.validate()
}

func (r *RefData) validate() error {
	switch {
	case len(r.Products) == 0:
		return fmt.Errorf("products reference table is empty")
	case len(r.StoreKeys) == 0:
		return fmt.Errorf("stores reference table is empty")
	case len(r.CustomerKeys) == 0:
		return fmt.Errorf("customers reference table is empty")
	case len(r.OrderDates) == 0:
		return fmt.Errorf("dates reference table is empty")
	}
	return nil
}

// CurrencyForStore resolves the Store → Geography → Currency chain.
func (r *RefData) CurrencyForStore(storeKey int64) (int64, error) {
	geoKey, ok := r.StoreGeography[storeKey]
	if !ok {
		return 0, fmt.Errorf("store %d has no geography", storeKey)
	}
	curKey, ok := r.GeographyCurrency[geoKey]
	if !ok {
		return 0, fmt.Errorf("geography %d has no currency", geoKey)
	}
	return curKey, nil
}
