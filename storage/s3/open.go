package s3

import (
	"context"
	"fmt"

	"github.com/hupe1980/hubgo/storage"
)

// Open returns a store for "s3://bucket/prefix" or "dynamodb://table/prefix".
// Additional options are applied after the prefix from the URL.
func Open(ctx context.Context, raw string, opts ...Option) (storage.Store, error) {
	loc, err := storage.ParseLocation(raw)
	if err != nil {
		return nil, err
	}
	if loc.Host == "" {
		return nil, fmt.Errorf("missing bucket or table in storage url %q", raw)
	}

	opts = append([]Option{WithPrefix(loc.Path)}, opts...)

	switch loc.Scheme {
	case "s3":
		s, err := New(ctx, loc.Host, opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "dynamodb", "ddb":
		s, err := NewDynamo(ctx, loc.Host, opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", storage.ErrUnsupportedScheme, loc.Scheme)
	}
}
