// SPDX-License-Identifier: MIT
package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Options configures Open.
type Options struct {
	// Stdin backs the "-" location; defaults to os.Stdin.
	Stdin io.Reader
	// S3 configures the default minio Fetcher.
	S3 S3Config
	// Fetcher overrides the S3 client.
	Fetcher Fetcher
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions reads "-" from os.Stdin and has no S3 endpoint.
func DefaultOptions() Options {
	return Options{Stdin: os.Stdin}
}

// WithStdin replaces os.Stdin for the "-" location.
func WithStdin(r io.Reader) Option {
	return func(o *Options) {
		if r != nil {
			o.Stdin = r
		}
	}
}

// WithS3 sets the S3 client settings.
func WithS3(cfg S3Config) Option {
	return func(o *Options) {
		o.S3 = cfg
	}
}

// WithFetcher installs a custom S3 Fetcher.
func WithFetcher(f Fetcher) Option {
	return func(o *Options) {
		o.Fetcher = f
	}
}

// Open returns a reader over the matrix at location. The caller closes it.
// Every failure wraps ErrOpen (and ErrBadLocation / ErrNotFound / ErrS3Config
// where they apply).
func Open(ctx context.Context, location string, opts ...Option) (io.ReadCloser, error) {
	// 1. Parse location
	loc, err := ParseLocation(location)
	if err != nil {
		return nil, fmt.Errorf("Open: %w: %w", ErrOpen, err)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Dispatch on scheme
	switch loc.Scheme {
	case SchemeStdin:
		return io.NopCloser(o.Stdin), nil

	case SchemeS3:
		fetch := o.Fetcher
		if fetch == nil {
			if fetch, err = NewS3Fetcher(o.S3); err != nil {
				return nil, fmt.Errorf("Open(%s): %w: %w", loc, ErrOpen, err)
			}
		}
		rc, err := fetch(ctx, loc.Bucket, loc.Key)
		if err != nil {
			return nil, fmt.Errorf("Open(%s): %w: %w", loc, ErrOpen, err)
		}
		return rc, nil
	}

	f, err := os.Open(loc.Path)
	if err != nil {
		return nil, fmt.Errorf("Open(%s): %w: %w", loc, ErrOpen, err)
	}

	return f, nil
}

// NewCSVReader reads headerless comma-separated rows. Field counts are not
// enforced here so the loader can report ragged rows with their index.
// A leading byte-order mark is dropped; UTF-16 input with a BOM is decoded
// to UTF-8.
func NewCSVReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = false

	return cr
}
