// Package meta persists the dataset-level metadata record.
//
// The record is a JSON object stored under keys.DatasetMeta in any
// storage.Provider. It is written whole and read whole; the last write
// wins.
//
//	err := meta.Write(ctx, store, meta.DatasetMeta{"version": 1, "tensors": []any{"images"}})
//	m, err := meta.Read(ctx, store)
//
// Reads distinguish three failures: ErrMissing when nothing has been
// written, *MalformedError when the stored bytes are not a JSON object, and
// *BackendError for everything the provider reports.
package meta
