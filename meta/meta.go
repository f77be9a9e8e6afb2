package meta

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/hubgo/keys"
	"github.com/hupe1980/hubgo/storage"
)

// DatasetMeta is the dataset-level metadata record.
//
// Values read back as nil, bool, int64, uint64, float64, string, []any and
// map[string]any. Integral numbers come back as int64 (uint64 above
// math.MaxInt64) without loss; any other number is a float64.
type DatasetMeta map[string]any

// Clone returns a shallow copy of m.
func (m DatasetMeta) Clone() DatasetMeta {
	if m == nil {
		return nil
	}
	out := make(DatasetMeta, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Write stores record under keys.DatasetMeta, replacing any previous record.
// A nil record is stored as an empty object.
func Write(ctx context.Context, p storage.Provider, record DatasetMeta, opts ...Option) error {
	return put(ctx, p, keys.DatasetMeta, record, newOptions(opts))
}

// Read loads the record stored under keys.DatasetMeta.
func Read(ctx context.Context, p storage.Provider, opts ...Option) (DatasetMeta, error) {
	return get(ctx, p, keys.DatasetMeta, newOptions(opts))
}

// WriteTensor stores the metadata record of tensor under keys.TensorMeta.
func WriteTensor(ctx context.Context, p storage.Provider, tensor string, record DatasetMeta, opts ...Option) error {
	return put(ctx, p, keys.TensorMeta(tensor), record, newOptions(opts))
}

// ReadTensor loads the metadata record of tensor.
func ReadTensor(ctx context.Context, p storage.Provider, tensor string, opts ...Option) (DatasetMeta, error) {
	return get(ctx, p, keys.TensorMeta(tensor), newOptions(opts))
}

func put(ctx context.Context, p storage.Provider, key string, record DatasetMeta, o options) error {
	if record == nil {
		record = DatasetMeta{}
	}

	data, err := o.codec.Encode(map[string]any(record))
	if err != nil {
		return &MalformedError{Key: key, Err: err}
	}

	if err := p.Set(ctx, key, data); err != nil {
		return &BackendError{Op: "write", Key: key, Err: err}
	}
	return nil
}

func get(ctx context.Context, p storage.Provider, key string, o options) (DatasetMeta, error) {
	data, err := p.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrMissing, err)
		}
		return nil, &BackendError{Op: "read", Key: key, Err: err}
	}

	v, err := o.codec.Decode(data)
	if err != nil {
		return nil, &MalformedError{Key: key, Err: err}
	}

	m, ok := v.(map[string]any)
	if !ok {
		return nil, &MalformedError{Key: key, Err: fmt.Errorf("expected a JSON object, got %s", kind(v))}
	}
	return DatasetMeta(m), nil
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case int64, uint64, float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
