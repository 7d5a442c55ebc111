// SPDX-License-Identifier: MIT
// Package source opens connectivity matrices from local files, stdin or S3
// and wraps them in a CSV row reader for the loader.
package source

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBadLocation indicates an empty or malformed location string.
	ErrBadLocation = errors.New("source: bad location")

	// ErrOpen indicates the location could not be opened.
	ErrOpen = errors.New("source: can't open")

	// ErrNotFound indicates a missing S3 bucket or object.
	ErrNotFound = errors.New("source: object not found")

	// ErrS3Config indicates missing or invalid S3 client settings.
	ErrS3Config = errors.New("source: invalid s3 configuration")
)

// Scheme is the kind of location.
type Scheme int

const (
	// SchemeFile is a local filesystem path.
	SchemeFile Scheme = iota
	// SchemeStdin is "-".
	SchemeStdin
	// SchemeS3 is "s3://bucket/key".
	SchemeS3
)

// String returns the scheme name.
func (s Scheme) String() string {
	switch s {
	case SchemeStdin:
		return "stdin"
	case SchemeS3:
		return "s3"
	default:
		return "file"
	}
}

const (
	stdinName = "-"
	s3Prefix  = "s3://"
	fsPrefix  = "file://"
)

// Location is a parsed matrix location.
type Location struct {
	Scheme Scheme
	Path   string // SchemeFile
	Bucket string // SchemeS3
	Key    string // SchemeS3
}

// String renders the location back in its input form.
func (l Location) String() string {
	switch l.Scheme {
	case SchemeStdin:
		return stdinName
	case SchemeS3:
		return s3Prefix + l.Bucket + "/" + l.Key
	default:
		return l.Path
	}
}

// ParseLocation splits s into a Location.
//
//	"-"              → stdin
//	"s3://bkt/a/b"   → bucket "bkt", key "a/b"
//	"file:///x.csv"  → path "/x.csv"
//	anything else    → local path
func ParseLocation(s string) (Location, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Location{}, fmt.Errorf("ParseLocation: empty: %w", ErrBadLocation)

	case s == stdinName:
		return Location{Scheme: SchemeStdin}, nil

	case strings.HasPrefix(s, s3Prefix):
		bucket, key, ok := strings.Cut(strings.TrimPrefix(s, s3Prefix), "/")
		if !ok || bucket == "" || key == "" {
			return Location{}, fmt.Errorf("ParseLocation(%q): want s3://bucket/key: %w", s, ErrBadLocation)
		}
		return Location{Scheme: SchemeS3, Bucket: bucket, Key: key}, nil

	case strings.HasPrefix(s, fsPrefix):
		path := strings.TrimPrefix(s, fsPrefix)
		if path == "" {
			return Location{}, fmt.Errorf("ParseLocation(%q): empty path: %w", s, ErrBadLocation)
		}
		return Location{Scheme: SchemeFile, Path: path}, nil
	}

	return Location{Scheme: SchemeFile, Path: s}, nil
}
