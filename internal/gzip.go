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
	"bufio"
	"io"

	"github.com/klauspost/compress/gzip"
)

// IsGzip checks if the given reader starts with the gzip magic byte
// sequence, without consuming any input. BGZF files used for BAM and
// bgzipped VCF are gzip files as well, and a multistream gzip reader
// decodes their member blocks transparently.
func IsGzip(buf *bufio.Reader) (bool, error) {
	magic, err := buf.Peek(2)
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return magic[0] == 0x1F && magic[1] == 0x8B, nil
}

// HandleGzip checks if the given reader produces a gzip stream by
// looking at the initial bytes. It then either returns a gzip reader,
// or returns the given reader unchanged.
func HandleGzip(buf *bufio.Reader) (io.Reader, error) {
	ok, err := IsGzip(buf)
	if err != nil {
		return nil, err
	}
	if !ok {
		return buf, nil
	}
	return gzip.NewReader(buf)
}
