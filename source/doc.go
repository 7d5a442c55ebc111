// SPDX-License-Identifier: MIT
// Package source turns a location string into a stream of CSV rows.
//
// Locations:
//
//	-               standard input
//	s3://bkt/key    object in an S3-compatible store (minio-go client)
//	file:///p, p    local file
//
// Open returns an io.ReadCloser; NewCSVReader wraps it in a headerless
// encoding/csv reader whose *csv.Reader satisfies loader.RowReader.
package source
