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

package vcf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

const headerText = "##fileformat=VCFv4.2\n" +
	"##source=GATK HaplotypeCaller\n" +
	"##reference=file:///refs/GRCh37.fa\n" +
	"##contig=<ID=1,length=249250621>\n" +
	"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\tHG002\tHG003\n" +
	"1\t10000\t.\tA\tT\t50\tPASS\t.\tGT\t0/1\t0/0\n"

func checkHeader(t *testing.T, hdr *Header) {
	t.Helper()
	if hdr.Value("source") != "GATK HaplotypeCaller" {
		t.Error("wrong source", hdr.Value("source"))
	}
	if hdr.Value("reference") != "file:///refs/GRCh37.fa" {
		t.Error("wrong reference", hdr.Value("reference"))
	}
	if len(hdr.Samples) != 2 || hdr.Samples[0] != "HG002" || hdr.Samples[1] != "HG003" {
		t.Error("wrong samples", hdr.Samples)
	}
}

func TestReadVcfHeader(t *testing.T) {
	hdr, err := ReadHeader(strings.NewReader(headerText))
	if err != nil {
		t.Fatal(err)
	}
	checkHeader(t, hdr)
}

func TestReadGzippedVcfHeader(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(headerText)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	hdr, err := ReadHeader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	checkHeader(t, hdr)
}

func TestReadVcfHeaderEmptyInput(t *testing.T) {
	hdr, err := ReadHeader(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(hdr.Meta) != 0 || len(hdr.Samples) != 0 {
		t.Error("empty input must yield an empty header")
	}
}

func TestReadVcfHeaderNoSampleColumns(t *testing.T) {
	hdr, err := ReadHeader(strings.NewReader(
		"##fileformat=VCFv4.2\n#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(hdr.Samples) != 0 {
		t.Error("sites-only file must yield no samples", hdr.Samples)
	}
	if hdr.Value("fileformat") != "VCFv4.2" {
		t.Error("wrong fileformat", hdr.Value("fileformat"))
	}
}

func TestValues(t *testing.T) {
	hdr, err := ReadHeader(strings.NewReader(
		"##ALT=<ID=DEL,Description=\"Deletion\">\n##ALT=<ID=DUP,Description=\"Duplication\">\n"))
	if err != nil {
		t.Fatal(err)
	}
	if values := hdr.Values("ALT"); len(values) != 2 {
		t.Error("wrong number of values", values)
	}
	if hdr.Value("no-such-key") != "" {
		t.Error("missing keys must yield the empty string")
	}
}
