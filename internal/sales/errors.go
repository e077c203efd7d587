//-------------------------------------------------------------------------
//
// pgEdge Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package sales

import "fmt"

// GenerationError marks a failure synthesizing a chunk. The whole run is
// aborted; already-written chunk files must not be treated as a complete
// dataset.
type GenerationError struct {
	Chunk int
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("synthesizing chunk %d: %v", e.Chunk, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// WriteError marks an I/O failure writing a chunk file or committing a
// delta transaction.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
