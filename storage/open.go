package storage

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// ErrUnsupportedScheme is returned by Open for URL schemes it cannot serve.
var ErrUnsupportedScheme = errors.New("unsupported storage scheme")

// Location is a parsed storage URL.
type Location struct {
	Scheme string // "mem", "file", "s3", "minio", ...
	Host   string // bucket for s3, endpoint for minio
	Path   string // prefix or directory, without leading slash for object stores
}

// ParseLocation splits a storage URL. Plain paths are treated as file URLs.
func ParseLocation(raw string) (Location, error) {
	if !strings.Contains(raw, "://") {
		return Location{Scheme: "file", Path: raw}, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("parse storage url %q: %w", raw, err)
	}
	loc := Location{Scheme: strings.ToLower(u.Scheme), Host: u.Host, Path: u.Path}
	switch loc.Scheme {
	case "file":
		loc.Path = filepath.FromSlash(u.Host + u.Path)
		loc.Host = ""
	default:
		loc.Path = strings.TrimPrefix(u.Path, "/")
	}
	return loc, nil
}

// Open returns a provider for the local schemes: "mem://" and "file://" or a
// plain directory path. Object-store schemes are served by the s3 and minio
// subpackages.
func Open(raw string) (Store, error) {
	loc, err := ParseLocation(raw)
	if err != nil {
		return nil, err
	}
	switch loc.Scheme {
	case "mem", "memory":
		return NewMemoryStore(), nil
	case "file":
		if loc.Path == "" {
			return nil, fmt.Errorf("empty path in storage url %q", raw)
		}
		return NewLocalStore(loc.Path), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, loc.Scheme)
	}
}
