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

// Package sam reads the header section of SAM and BAM files. Only the
// header is parsed; alignment records are never touched, so reading the
// header of an arbitrarily large file stays cheap. See
// http://samtools.github.io/hts-specs/SAMv1.pdf for the format.
package sam

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nate-d-olson/SeqSleuth/internal"
)

// bamMagic is the magic string for the BAM format. See
// http://samtools.github.io/hts-specs/SAMv1.pdf - Section 4.2.
const bamMagic = "BAM\x01"

// A Line is one header line, holding the two-letter tag fields of the
// line keyed by tag.
type Line map[string]string

// A Header is the parsed header section of a SAM or BAM file.
type Header struct {
	// ReadGroups, Programs, and Sequences hold the @RG, @PG, and @SQ
	// lines in file order.
	ReadGroups []Line
	Programs   []Line
	Sequences  []Line

	// Comments holds the text of the @CO lines.
	Comments []string
}

// ReadHeader parses the header section of the SAM or BAM file read from
// r. BAM files are recognized by their magic bytes, gzipped or not;
// anything else is expected to be SAM text starting with '@'. An input
// with no header lines yields an empty Header.
func ReadHeader(r io.Reader) (*Header, error) {
	// BAM files are BGZF-compressed, which is a sequence of gzip
	// members, so a multistream gzip reader decodes them.
	in, err := internal.HandleGzip(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}
	buf := bufio.NewReader(in)
	magic, err := buf.Peek(4)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if string(magic) == bamMagic {
		return readBamHeader(buf)
	}
	return readSamHeader(buf)
}

// Open opens the SAM or BAM file named by rawurl and parses its header
// section. Failures to open or parse are reported as UnreadableFile
// errors.
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

// readBamHeader reads the SAM header text embedded in a BAM file: the
// magic bytes, the length of the header text, and the text itself.
func readBamHeader(buf *bufio.Reader) (*Header, error) {
	if _, err := buf.Discard(len(bamMagic)); err != nil {
		return nil, err
	}
	var lText int32
	if err := binary.Read(buf, binary.LittleEndian, &lText); err != nil {
		return nil, err
	}
	if lText < 0 {
		return nil, fmt.Errorf("negative header length %v", lText)
	}
	text := make([]byte, int(lText))
	if _, err := io.ReadFull(buf, text); err != nil {
		return nil, err
	}
	// The header text may be NUL-terminated.
	for i, b := range text {
		if b == 0 {
			text = text[:i]
			break
		}
	}
	return readSamHeader(bufio.NewReader(strings.NewReader(string(text))))
}

// readSamHeader parses SAM header text, stopping at the first line that
// does not start with '@'.
func readSamHeader(buf *bufio.Reader) (*Header, error) {
	hdr := &Header{}
	for {
		first, err := buf.Peek(1)
		if err == io.EOF {
			return hdr, nil
		}
		if err != nil {
			return nil, err
		}
		if first[0] != '@' {
			return hdr, nil
		}
		line, err := buf.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		hdr.addLine(strings.TrimRight(line, "\r\n"))
		if err == io.EOF {
			return hdr, nil
		}
	}
}

func (hdr *Header) addLine(line string) {
	fields := strings.Split(line, "\t")
	switch fields[0] {
	case "@RG":
		hdr.ReadGroups = append(hdr.ReadGroups, parseTags(fields[1:]))
	case "@PG":
		hdr.Programs = append(hdr.Programs, parseTags(fields[1:]))
	case "@SQ":
		hdr.Sequences = append(hdr.Sequences, parseTags(fields[1:]))
	case "@CO":
		hdr.Comments = append(hdr.Comments, strings.Join(fields[1:], "\t"))
	}
}

func parseTags(fields []string) Line {
	line := Line{}
	for _, field := range fields {
		if tag, value, found := strings.Cut(field, ":"); found && tag != "" {
			line[tag] = value
		}
	}
	return line
}

// Tag returns the first non-empty value of the given tag across the
// given header lines, or the empty string.
func Tag(lines []Line, tag string) string {
	for _, line := range lines {
		if value := line[tag]; value != "" {
			return value
		}
	}
	return ""
}

// Tags returns every non-empty value of the given tag across the given
// header lines, in file order.
func Tags(lines []Line, tag string) []string {
	var values []string
	for _, line := range lines {
		if value := line[tag]; value != "" {
			values = append(values, value)
		}
	}
	return values
}
