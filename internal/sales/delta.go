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
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pgEdge/pgedge-datagen/internal/config"
	"github.com/pgEdge/pgedge-datagen/internal/datagen"
	"github.com/pgEdge/pgedge-datagen/internal/logging"
)

// maxCommitRetries bounds retries of a delta commit that lost the race
// for its version file. Collisions are expected under contention; losing
// maxCommitRetries times in a row is not.
const maxCommitRetries = 5

// runDelta handles the deltaparquet format. Workers synthesize chunks
// concurrently but every append goes through a single committer, because
// the transaction log tolerates no concurrent writers.
func (e *Engine) runDelta(ctx context.Context, plan []Chunk, factsDir string, workers int, progress *datagen.ProgressReporter) ([]ChunkFile, error) {
	table, err := openDeltaTable(factsDir, e.cfg.Sales)
	if err != nil {
		return nil, err
	}

	type batch struct {
		chunk Chunk
		rows  []SalesLine
	}

	files := make([]ChunkFile, len(plan))
	batches := make(chan batch)

	g, ctx := errgroup.WithContext(ctx)

	// Committer: the sole serialization point.
	g.Go(func() error {
		for b := range batches {
			cf, err := table.Append(b.chunk.Index, b.rows)
			if err != nil {
				return err
			}
			files[b.chunk.Index] = cf
			progress.Update(cf.Rows)
			logging.Debug().Int("chunk", b.chunk.Index).Str("path", cf.Path).Msg("Delta chunk committed")
		}
		return nil
	})

	// Synthesis pool.
	g.Go(func() error {
		defer close(batches)

		pool, pctx := errgroup.WithContext(ctx)
		pool.SetLimit(workers)
		for _, chunk := range plan {
			pool.Go(func() error {
				rows, err := e.synthesizeChunk(chunk)
				if err != nil {
					return &GenerationError{Chunk: chunk.Index, Err: err}
				}
				select {
				case batches <- batch{chunk: chunk, rows: rows}:
					return nil
				case <-pctx.Done():
					return pctx.Err()
				}
			})
		}
		return pool.Wait()
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// deltaTable appends parquet part files to a delta-format table rooted
// at root, writing one transaction per chunk to _delta_log. Not safe for
// concurrent use; the engine funnels all appends through one goroutine.
type deltaTable struct {
	root    string
	sc      config.SalesConfig
	version int64
}

func openDeltaTable(root string, sc config.SalesConfig) (*deltaTable, error) {
	logDir := filepath.Join(root, "_delta_log")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, &WriteError{Path: logDir, Err: err}
	}

	// Resume after the highest existing commit.
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return nil, &WriteError{Path: logDir, Err: err}
	}
	var version int64
	for _, entry := range entries {
		name := entry.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		v, err := strconv.ParseInt(name[:len(name)-len(".json")], 10, 64)
		if err == nil && v+1 > version {
			version = v + 1
		}
	}

	return &deltaTable{root: root, sc: sc, version: version}, nil
}

type addAction struct {
	Path             string            `json:"path"`
	PartitionValues  map[string]string `json:"partitionValues"`
	Size             int64             `json:"size"`
	ModificationTime int64             `json:"modificationTime"`
	DataChange       bool              `json:"dataChange"`
}

// Append writes the chunk's rows as one or more parquet part files and
// commits them in a single transaction.
func (t *deltaTable) Append(chunkIndex int, rows []SalesLine) (ChunkFile, error) {
	var adds []addAction
	for _, group := range t.partition(rows) {
		name := fmt.Sprintf("part-%04d-%s.parquet", chunkIndex, uuid.NewString())
		rel := name
		if group.dir != "" {
			rel = group.dir + "/" + name
		}

		abs := filepath.Join(t.root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			return ChunkFile{}, &WriteError{Path: abs, Err: err}
		}
		if err := writeParquet(abs, group.rows, t.sc); err != nil {
			return ChunkFile{}, &WriteError{Path: abs, Err: err}
		}
		info, err := os.Stat(abs)
		if err != nil {
			return ChunkFile{}, &WriteError{Path: abs, Err: err}
		}

		adds = append(adds, addAction{
			Path:             rel,
			PartitionValues:  group.values,
			Size:             info.Size(),
			ModificationTime: info.ModTime().UnixMilli(),
			DataChange:       true,
		})
	}

	if err := t.commit(adds); err != nil {
		return ChunkFile{}, err
	}
	return ChunkFile{Index: chunkIndex, Path: filepath.Join(t.root, filepath.FromSlash(adds[0].Path)), Rows: int64(len(rows))}, nil
}

type partGroup struct {
	dir    string
	values map[string]string
	rows   []SalesLine
}

// partition splits a chunk by the Year/Month partition columns when
// partitioning is enabled, preserving row order within each group.
func (t *deltaTable) partition(rows []SalesLine) []partGroup {
	if !t.sc.PartitionEnabled {
		return []partGroup{{values: map[string]string{}, rows: rows}}
	}

	index := make(map[string]int)
	var groups []partGroup
	for _, r := range rows {
		year := strconv.FormatInt(int64(r.Year), 10)
		month := strconv.FormatInt(int64(r.Month), 10)
		dir := "year=" + year + "/month=" + month

		i, ok := index[dir]
		if !ok {
			i = len(groups)
			index[dir] = i
			groups = append(groups, partGroup{
				dir:    dir,
				values: map[string]string{"year": year, "month": month},
			})
		}
		groups[i].rows = append(groups[i].rows, r)
	}
	return groups
}

// commit writes one transaction file. The version file is created
// exclusively; a collision means another writer took the version, so we
// advance and retry a bounded number of times.
func (t *deltaTable) commit(adds []addAction) error {
	var lines [][]byte

	if t.version == 0 {
		protocol := map[string]any{"protocol": map[string]any{
			"minReaderVersion": 1,
			"minWriterVersion": 2,
		}}
		meta := map[string]any{"metaData": map[string]any{
			"id":               uuid.NewString(),
			"format":           map[string]any{"provider": "parquet", "options": map[string]string{}},
			"schemaString":     deltaSchemaString(t.sc.SkipOrderColumns),
			"partitionColumns": t.partitionColumns(),
			"configuration":    map[string]string{},
			"createdTime":      time.Now().UnixMilli(),
		}}
		for _, action := range []map[string]any{protocol, meta} {
			line, err := json.Marshal(action)
			if err != nil {
				return fmt.Errorf("encoding delta action: %w", err)
			}
			lines = append(lines, line)
		}
	}

	for _, add := range adds {
		line, err := json.Marshal(map[string]addAction{"add": add})
		if err != nil {
			return fmt.Errorf("encoding delta action: %w", err)
		}
		lines = append(lines, line)
	}

	logDir := filepath.Join(t.root, "_delta_log")
	for attempt := 0; attempt < maxCommitRetries; attempt++ {
		path := filepath.Join(logDir, fmt.Sprintf("%020d.json", t.version))
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if os.IsExist(err) {
			t.version++
			continue
		}
		if err != nil {
			return &WriteError{Path: path, Err: err}
		}

		for _, line := range lines {
			if _, err := f.Write(append(line, '\n')); err != nil {
				f.Close()
				return &WriteError{Path: path, Err: err}
			}
		}
		if err := f.Close(); err != nil {
			return &WriteError{Path: path, Err: err}
		}
		t.version++
		return nil
	}
	return &WriteError{
		Path: logDir,
		Err:  fmt.Errorf("commit version collision persisted after %d attempts", maxCommitRetries),
	}
}

func (t *deltaTable) partitionColumns() []string {
	if t.sc.PartitionEnabled {
		return []string{"year", "month"}
	}
	return []string{}
}

// deltaSchemaString renders the table schema in the Spark JSON form the
// delta log expects.
func deltaSchemaString(skipOrderColumns bool) string {
	type field struct {
		Name     string         `json:"name"`
		Type     string         `json:"type"`
		Nullable bool           `json:"nullable"`
		Metadata map[string]any `json:"metadata"`
	}

	fields := []field{
		{Name: "order_id", Type: "long"},
		{Name: "line_number", Type: "integer"},
		{Name: "order_date", Type: "timestamp"},
		{Name: "due_date", Type: "timestamp"},
		{Name: "delivery_date", Type: "timestamp"},
		{Name: "delivery_status", Type: "string"},
		{Name: "store_key", Type: "long"},
		{Name: "product_key", Type: "long"},
		{Name: "customer_key", Type: "long"},
		{Name: "currency_key", Type: "long"},
		{Name: "promotion_key", Type: "long"},
		{Name: "quantity", Type: "integer"},
		{Name: "unit_price", Type: "double"},
		{Name: "unit_cost", Type: "double"},
		{Name: "discount_amount", Type: "double"},
		{Name: "net_price", Type: "double"},
		{Name: "is_order_delayed", Type: "boolean"},
		{Name: "year", Type: "integer"},
		{Name: "month", Type: "integer"},
	}
	if skipOrderColumns {
		fields = fields[2:]
	}
	for i := range fields {
		fields[i].Metadata = map[string]any{}
	}

	schema, _ := json.Marshal(map[string]any{
		"type":   "struct",
		"fields": fields,
	})
	return string(schema)
}
