// Package testutil provides testing utilities for hubgo.
//
// This package is intended for use in tests and benchmarks only.
// It generates deterministic image fixtures and metadata records.
//
// # Image Fixtures
//
//	rng := testutil.NewRNG(seed)
//	data := rng.PNG(10, 10, testutil.RGB)   // encoded PNG bytes
//	path := testutil.WriteFile(t, dir, "photo.png", data)
//
// # Metadata Records
//
//	record := rng.Record(3) // nested JSON-native map, depth <= 3
package testutil
