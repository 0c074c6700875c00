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

// Package fastq samples read identifier lines from FASTQ files. Files
// may be local or remote, plain or gzipped, and arbitrarily large: the
// sampler reads the source in bounded byte chunks and stops as soon as
// the requested number of identifier lines has been seen.
package fastq

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/nate-d-olson/SeqSleuth/internal"
)

const (
	// DefaultChunkSize is the byte chunk size used for reading when the
	// Sampler does not specify one.
	DefaultChunkSize = 4 << 20

	// DefaultMaxReads is the number of reads sampled per file when the
	// Sampler does not specify one.
	DefaultMaxReads = 5
)

// A Sampler configures how read identifier lines are drawn from FASTQ
// files. The zero value samples DefaultMaxReads reads in chunks of
// DefaultChunkSize bytes.
type Sampler struct {
	// MaxReads is the number of identifier lines to yield per file.
	// -1 yields every identifier line in the file.
	MaxReads int

	// ChunkSize is the size in bytes of the chunks the source is read
	// in.
	ChunkSize int

	// Timeout and Retries bound remote fetches; see internal.Open.
	Timeout time.Duration
	Retries int
}

// Open opens the FASTQ file named by rawurl and returns a scanner over
// its read identifier lines. The scanner is finite and non-restartable.
func (s *Sampler) Open(rawurl string) (*ReadNameScanner, error) {
	src, err := internal.Open(rawurl, s.Timeout, s.Retries)
	if err != nil {
		return nil, err
	}
	chunkSize := s.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	max := s.MaxReads
	if max == 0 {
		max = DefaultMaxReads
	}
	sc := &ReadNameScanner{
		source: rawurl,
		src:    src,
		chunk:  make([]byte, chunkSize),
		max:    max,
	}
	if err := sc.sniff(); err != nil {
		_ = src.Close()
		return nil, err
	}
	return sc, nil
}

// Sample collects the read identifier lines of the FASTQ file named by
// rawurl. Failures to open, fetch, or decompress the file are reported
// as UnreadableFile errors.
func (s *Sampler) Sample(rawurl string) ([]string, error) {
	sc, err := s.Open(rawurl)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = sc.Close()
	}()
	var names []string
	for sc.Scan() {
		names = append(names, sc.Name())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// A ReadNameScanner yields the read identifier lines of one FASTQ
// stream, one call to Scan at a time.
type ReadNameScanner struct {
	source  string
	src     io.ReadCloser
	gz      *gzip.Reader
	r       io.Reader
	chunk   []byte
	pending []byte
	lineno  int
	reads   int
	max     int
	name    string
	err     error
	done    bool
}

// sniff checks the leading bytes of the source for the gzip magic byte
// sequence and sets up transparent decompression if present.
func (sc *ReadNameScanner) sniff() error {
	in, err := internal.HandleGzip(bufio.NewReader(sc.src))
	if err != nil {
		return internal.Unreadable(err, sc.source)
	}
	if zr, ok := in.(*gzip.Reader); ok {
		sc.gz = zr
	}
	sc.r = in
	return nil
}

// Scan advances to the next read identifier line. It returns false when
// the configured number of reads has been yielded, the input is
// exhausted, or an error occurred.
func (sc *ReadNameScanner) Scan() bool {
	if sc.err != nil {
		return false
	}
	if sc.max >= 0 && sc.reads >= sc.max {
		return false
	}
	for {
		if i := bytes.IndexByte(sc.pending, '\n'); i >= 0 {
			line := sc.pending[:i]
			sc.pending = sc.pending[i+1:]
			if sc.consume(line) {
				return true
			}
			if sc.err != nil {
				return false
			}
			continue
		}
		if sc.done {
			if len(sc.pending) > 0 {
				line := sc.pending
				sc.pending = nil
				return sc.consume(line)
			}
			return false
		}
		n, err := sc.r.Read(sc.chunk)
		if n > 0 {
			// A partial line at the end of the previous chunk stays in
			// pending and is completed by the next chunk, so a line
			// split across a chunk boundary is counted exactly once.
			sc.pending = append(sc.pending, sc.chunk[:n]...)
		}
		if err == io.EOF {
			sc.done = true
		} else if err != nil {
			sc.err = internal.Unreadable(err, sc.source)
			return false
		}
	}
}

// consume processes one line and reports whether it was an identifier
// line. FASTQ quality lines may start with '@' as well, so identifier
// lines are located by their position in the four-line record cycle,
// not by their leading byte.
func (sc *ReadNameScanner) consume(line []byte) bool {
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	if len(line) == 0 {
		return false
	}
	pos := sc.lineno % 4
	sc.lineno++
	if pos != 0 {
		return false
	}
	if line[0] != '@' {
		sc.err = internal.Unreadable(
			fmt.Errorf("malformed fastq record at read %v", sc.reads+1), sc.source)
		return false
	}
	sc.name = string(line[1:])
	sc.reads++
	return true
}

// Name returns the identifier line the last call to Scan advanced to,
// without the leading '@'.
func (sc *ReadNameScanner) Name() string { return sc.name }

// Err returns the first error encountered while scanning, if any.
func (sc *ReadNameScanner) Err() error { return sc.err }

// Close closes the underlying source. It is safe to call after a failed
// Scan.
func (sc *ReadNameScanner) Close() error {
	var err error
	if sc.gz != nil {
		err = sc.gz.Close()
		sc.gz = nil
	}
	if sc.src != nil {
		if nerr := sc.src.Close(); err == nil {
			err = nerr
		}
		sc.src = nil
	}
	return err
}
