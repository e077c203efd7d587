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
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress"

	"github.com/pgEdge/pgedge-datagen/internal/config"
)

// writeChunk writes one finished chunk in the configured format and
// returns the file path. Per-chunk write failures are fatal immediately;
// chunks are cheap to regenerate.
func writeChunk(factsDir string, index int, rows []SalesLine, sc config.SalesConfig) (string, error) {
	switch sc.FileFormat {
	case "csv":
		path := filepath.Join(factsDir, fmt.Sprintf("sales_chunk%04d.csv", index))
		if err := writeCSV(path, rows, sc.SkipOrderColumns); err != nil {
			return "", &WriteError{Path: path, Err: err}
		}
		return path, nil
	case "parquet":
		path := filepath.Join(factsDir, fmt.Sprintf("sales_chunk%04d.parquet", index))
		if err := writeParquet(path, rows, sc); err != nil {
			return "", &WriteError{Path: path, Err: err}
		}
		return path, nil
	default:
		return "", fmt.Errorf("unsupported file format %q", sc.FileFormat)
	}
}

func writeCSV(path string, rows []SalesLine, skipOrderColumns bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{
		"order_id", "line_number", "order_date", "due_date", "delivery_date",
		"delivery_status", "store_key", "product_key", "customer_key",
		"currency_key", "promotion_key", "quantity", "unit_price",
		"unit_cost", "discount_amount", "net_price", "is_order_delayed",
		"year", "month",
	}
	if skipOrderColumns {
		header = header[2:]
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			strconv.FormatInt(r.OrderID, 10),
			strconv.FormatInt(int64(r.LineNumber), 10),
			r.OrderDate.Format(config.DateFormat),
			r.DueDate.Format(config.DateFormat),
			r.DeliveryDate.Format(config.DateFormat),
			r.DeliveryStatus,
			strconv.FormatInt(r.StoreKey, 10),
			strconv.FormatInt(r.ProductKey, 10),
			strconv.FormatInt(r.CustomerKey, 10),
			strconv.FormatInt(r.CurrencyKey, 10),
			strconv.FormatInt(r.PromotionKey, 10),
			strconv.FormatInt(int64(r.Quantity), 10),
			strconv.FormatFloat(r.UnitPrice, 'f', 4, 64),
			strconv.FormatFloat(r.UnitCost, 'f', 4, 64),
			strconv.FormatFloat(r.DiscountAmount, 'f', 4, 64),
			strconv.FormatFloat(r.NetPrice, 'f', 4, 64),
			strconv.FormatBool(r.IsOrderDelayed),
			strconv.FormatInt(int64(r.Year), 10),
			strconv.FormatInt(int64(r.Month), 10),
		}
		if skipOrderColumns {
			record = record[2:]
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func writeParquet(path string, rows []SalesLine, sc config.SalesConfig) error {
	opts := parquetOptions(sc)
	if sc.SkipOrderColumns {
		return parquet.WriteFile(path, anonymize(rows), opts...)
	}
	return parquet.WriteFile(path, rows, opts...)
}

func parquetOptions(sc config.SalesConfig) []parquet.WriterOption {
	var opts []parquet.WriterOption
	if codec := compressionCodec(sc.Compression); codec != nil {
		opts = append(opts, parquet.Compression(codec))
	}
	if sc.RowGroupSize > 0 {
		opts = append(opts, parquet.MaxRowsPerRowGroup(int64(sc.RowGroupSize)))
	}
	return opts
}

func compressionCodec(name string) compress.Codec {
	switch name {
	case "snappy":
		return &parquet.Snappy
	case "gzip":
		return &parquet.Gzip
	case "zstd":
		return &parquet.Zstd
	case "none", "uncompressed", "":
		return &parquet.Uncompressed
	default:
		return &parquet.Snappy
	}
}
