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

// Package vcf reads the meta-information section of VCF files. Only the
// header is parsed; variant records are never touched. See
// http://samtools.github.io/hts-specs/VCFv4.3.pdf for the format.
package vcf

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/nate-d-olson/SeqSleuth/internal"
)

// A Meta is one ##key=value meta-information line. Value is the raw
// text after the first '=', including any <...> structure.
type Meta struct {
	Key   string
	Value string
}

// A Header is the parsed meta-information section of a VCF file.
type Header struct {
	// Meta holds the ## lines in file order.
	Meta []Meta

	// Samples holds the sample column names of the #CHROM line, if
	// present.
	Samples []string
}

// ReadHeader parses the meta-information section of the VCF file read
// from r, stopping after the #CHROM column header line. Gzipped and
// BGZF-compressed input is decompressed transparently. An input with no
// header lines yields an empty Header.
func ReadHeader(r io.Reader) (*Header, error) {
	in, err := internal.HandleGzip(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}
	buf := bufio.NewReader(in)
	hdr := &Header{}
	for {
		line, err := buf.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if done := hdr.addLine(line); done || err == io.EOF {
			return hdr, nil
		}
	}
}

// Open opens the VCF file named by rawurl and parses its
// meta-information section. Failures to open or parse are reported as
// UnreadableFile errors.
func Open(rawurl string, timeout time.Duration, retries int) (*Header, error) {
	src, err := internal.Open(rawurl, timeout, retries)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = src.Close()
	}()
	hdr, err := ReadHeader(src)
	if err != nil {
		return nil, internal.Unreadable(err, rawurl)
	}
	return hdr, nil
}

// addLine processes one line and reports whether the header section has
// ended.
func (hdr *Header) addLine(line string) bool {
	switch {
	case strings.HasPrefix(line, "##"):
		if key, value, found := strings.Cut(line[2:], "="); found && key != "" {
			hdr.Meta = append(hdr.Meta, Meta{Key: key, Value: value})
		}
		return false
	case strings.HasPrefix(line, "#"):
		// The #CHROM line names the fixed columns, FORMAT, and then one
		// column per sample.
		columns := strings.Split(line, "\t")
		for i, column := range columns {
			if column == "FORMAT" {
				hdr.Samples = append(hdr.Samples, columns[i+1:]...)
				break
			}
		}
		return true
	default:
		return true
	}
}

// Value returns the value of the first meta-information line with the
// given key, or the empty string.
func (hdr *Header) Value(key string) string {
	for _, meta := range hdr.Meta {
		if meta.Key == key {
			return meta.Value
		}
	}
	return ""
}

// Values returns the values of every meta-information line with the
// given key, in file order.
func (hdr *Header) Values(key string) []string {
	var values []string
	for _, meta := range hdr.Meta {
		if meta.Key == key {
			values = append(values, meta.Value)
		}
	}
	return values
}
