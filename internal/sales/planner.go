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
	"encoding/binary"
	"hash/fnv"
)

// Chunk is one independent slice of the requested fact row count. Each
// chunk carries its own seed so it reproduces identically regardless of
// worker count or scheduling order.
type Chunk struct {
	Index int
	Rows  int64
	Seed  uint64
}

// chunkSeed derives a chunk seed as a pure function of the base seed and
// the chunk index.
func chunkSeed(baseSeed int64, index int) uint64 {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], uint64(baseSeed))
	binary.BigEndian.PutUint64(buf[8:], uint64(index))

	h := fnv.New64a()
	h.Write(buf[:])
	return h.Sum64()
}

// Plan splits totalRows into chunks of chunkSize. Sizes sum exactly to
// totalRows; the final chunk absorbs the remainder. totalRows smaller
// than chunkSize yields a single chunk.
func Plan(totalRows, chunkSize, baseSeed int64) []Chunk {
	if totalRows < 1 || chunkSize < 1 {
		return nil
	}

	var chunks []Chunk
	for offset := int64(0); offset < totalRows; offset += chunkSize {
		rows := chunkSize
		if remaining := totalRows - offset; remaining < chunkSize {
			rows = remaining
		}
		index := len(chunks)
		chunks = append(chunks, Chunk{
			Index: index,
			Rows:  rows,
			Seed:  chunkSeed(baseSeed, index),
		})
	}
	return chunks
}
