// seqsleuth: a tool for predicting sequencing technology and extracting
// metadata from genomic sequencing files.
// Copyright (c) 2023-2026 N.D. Olson.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License along with this program. If not, see
// <https://github.com/nate-d-olson/SeqSleuth/blob/master/LICENSE.txt>.

package internal

import (
	"github.com/cockroachdb/errors"
)

// The error kinds that seqsleuth distinguishes. ErrMalformedManifest is
// fatal to a run and aborts before any worker starts. The other kinds are
// caught at the per-file boundary and recorded in the output row for the
// affected file, so a row is emitted for every manifest entry.
var (
	ErrUnreadableFile    = errors.New("unreadable file")
	ErrUnknownFormat     = errors.New("unknown format")
	ErrMalformedManifest = errors.New("malformed manifest")
	ErrExtractionFailure = errors.New("extraction failure")
)

// Unreadable wraps err with the source that could not be read and marks
// it as an UnreadableFile error.
func Unreadable(err error, source string) error {
	return errors.Mark(errors.Wrapf(err, "reading %v", source), ErrUnreadableFile)
}

// ErrorKind returns the label recorded in the error column of the output
// for the given error, or the empty string for a nil error.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnreadableFile):
		return "UnreadableFile"
	case errors.Is(err, ErrUnknownFormat):
		return "UnknownFormat"
	case errors.Is(err, ErrMalformedManifest):
		return "MalformedManifest"
	case errors.Is(err, ErrExtractionFailure):
		return "ExtractionFailure"
	default:
		return "Error"
	}
}
