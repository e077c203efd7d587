//-------------------------------------------------------------------------
//
// pgEdge Data Generator
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package artifacts

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
)

// Fingerprint hashes an artifact's resolved parameters together with the
// current fingerprint of every upstream artifact it depends on.
//
// Because each upstream contribution is itself a fingerprint (not a
// changed/unchanged bit), staleness propagates transitively: any rebuild
// upstream yields a new fingerprint here, forcing a rebuild of this
// artifact even when its own parameters are unchanged.
//
// Determinism rules:
//   - Parameters are canonicalized through JSON encoding (struct fields
//     marshal in declaration order).
//   - Upstream entries are sorted by artifact name.
//   - All fields are length-prefixed to avoid ambiguity.
func Fingerprint(params any, upstream map[string]string) (string, error) {
	h := sha256.New()

	writeField := func(data []byte) {
		length := uint64(len(data))
		lengthBytes := []byte{
			byte(length >> 56),
			byte(length >> 48),
			byte(length >> 40),
			byte(length >> 32),
			byte(length >> 24),
			byte(length >> 16),
			byte(length >> 8),
			byte(length),
		}
		h.Write(lengthBytes)
		h.Write(data)
	}

	encoded, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("encoding artifact parameters: %w", err)
	}
	writeField(encoded)

	names := make([]string, 0, len(upstream))
	for name := range upstream {
		names = append(names, name)
	}
	sort.Strings(names)

	writeField([]byte{byte(len(names))})
	for _, name := range names {
		writeField([]byte(name))
		writeField([]byte(upstream[name]))
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
