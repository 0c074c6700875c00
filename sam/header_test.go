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

package sam

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

const headerText = "@HD\tVN:1.6\tSO:coordinate\n" +
	"@SQ\tSN:chr1\tLN:248956422\tAS:GRCh38\n" +
	"@RG\tID:rg1\tSM:HG002\tPL:ILLUMINA\tCN:NIST\n" +
	"@PG\tID:bwa\tPN:bwa\tVN:0.7.17\tCL:bwa mem -t 16 GRCh38.fa reads.fq\n" +
	"@CO\tprepared for GIAB\n"

// bamContents encodes the given header text as a gzipped BAM file with
// an empty reference dictionary.
func bamContents(t *testing.T, text string) []byte {
	t.Helper()
	var body bytes.Buffer
	body.WriteString(bamMagic)
	if err := binary.Write(&body, binary.LittleEndian, int32(len(text))); err != nil {
		t.Fatal(err)
	}
	body.WriteString(text)
	if err := binary.Write(&body, binary.LittleEndian, int32(0)); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(body.Bytes()); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func checkHeader(t *testing.T, hdr *Header) {
	t.Helper()
	if Tag(hdr.ReadGroups, "SM") != "HG002" {
		t.Error("wrong read group sample", hdr.ReadGroups)
	}
	if Tag(hdr.ReadGroups, "PL") != "ILLUMINA" {
		t.Error("wrong read group platform", hdr.ReadGroups)
	}
	if Tag(hdr.Programs, "CL") != "bwa mem -t 16 GRCh38.fa reads.fq" {
		t.Error("wrong program command line", hdr.Programs)
	}
	if Tag(hdr.Sequences, "AS") != "GRCh38" {
		t.Error("wrong assembly", hdr.Sequences)
	}
	if len(hdr.Comments) != 1 || hdr.Comments[0] != "prepared for GIAB" {
		t.Error("wrong comments", hdr.Comments)
	}
}

func TestReadSamHeader(t *testing.T) {
	hdr, err := ReadHeader(strings.NewReader(headerText + "read1\t4\t*\t0\t0\t*\t*\t0\t0\tACGT\tFFFF\n"))
	if err != nil {
		t.Fatal(err)
	}
	checkHeader(t, hdr)
}

func TestReadBamHeader(t *testing.T) {
	hdr, err := ReadHeader(bytes.NewReader(bamContents(t, headerText)))
	if err != nil {
		t.Fatal(err)
	}
	checkHeader(t, hdr)
}

func TestReadHeaderEmptyInput(t *testing.T) {
	hdr, err := ReadHeader(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(hdr.ReadGroups) != 0 || len(hdr.Programs) != 0 || len(hdr.Sequences) != 0 {
		t.Error("empty input must yield an empty header")
	}
}

func TestReadHeaderNoHeaderLines(t *testing.T) {
	hdr, err := ReadHeader(strings.NewReader("read1\t4\t*\t0\t0\t*\t*\t0\t0\tACGT\tFFFF\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(hdr.ReadGroups) != 0 {
		t.Error("headerless input must yield an empty header")
	}
}

func TestTagFirstNonEmptyWins(t *testing.T) {
	lines := []Line{{"SM": ""}, {"SM": "HG003"}, {"SM": "HG004"}}
	if Tag(lines, "SM") != "HG003" {
		t.Error("wrong tag value", Tag(lines, "SM"))
	}
	if values := Tags(lines, "SM"); len(values) != 2 || values[0] != "HG003" || values[1] != "HG004" {
		t.Error("wrong tag values", values)
	}
}
