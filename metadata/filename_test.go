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

package metadata

import (
	"testing"

	"github.com/nate-d-olson/SeqSleuth/keywords"
)

func TestParseFilenameKeywords(t *testing.T) {
	found := ParseFilename(
		"https://ftp-trace.ncbi.nlm.nih.gov/ReferenceSamples/giab/data/"+
			"AshkenazimTrio/HG002/NIST_Illumina_2x250bps/reads/HG002_GRCh38_bwa.fastq.gz", nil)
	want := map[string]string{
		"sample_id":  "HG002",
		"trio":       "AshkenazimTrio",
		"center":     "NIST",
		"technology": "Illumina",
		"ref_genome": "GRCh38",
		"aligner":    "bwa",
	}
	for column, value := range want {
		if found[column] != value {
			t.Errorf("wrong %v: %v, expected %v", column, found[column], value)
		}
	}
}

func TestParseFilenameTechnologyFromName(t *testing.T) {
	found := ParseFilename("HG002_PacBio_CCS.fastq.gz", nil)
	if found["technology"] != "PacBio" {
		t.Error("wrong technology", found["technology"])
	}
	if found["sample_id"] != "HG002" {
		t.Error("wrong sample_id", found["sample_id"])
	}
}

func TestParseFilenameSampleAliases(t *testing.T) {
	found := ParseFilename("NA24385_novaseq.fastq.gz", nil)
	if found["sample_id"] != "HG002" {
		t.Error("NA aliases must normalize to HG ids", found["sample_id"])
	}
	if found["technology"] != "Illumina" {
		t.Error("wrong technology", found["technology"])
	}
}

func TestParseFilenameLongestKeywordWins(t *testing.T) {
	tables := &keywords.Tables{
		Technologies: keywords.Table{"ab": "Short", "abcdef": "Long"},
	}
	found := ParseFilename("reads_abcdef.fastq", tables)
	if found["technology"] != "Long" {
		t.Error("longest keyword must win", found["technology"])
	}
}

func TestParseFilenameNearestComponentWins(t *testing.T) {
	found := ParseFilename("/archive/GRCh37/HG002_GRCh38.fastq", nil)
	if found["ref_genome"] != "GRCh38" {
		t.Error("component nearest the file must win", found["ref_genome"])
	}
}

func TestParseFilenameDates(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"reads_2018-08-09.fastq", "2018-08-09"},
		{"reads_11-22-2015.fastq", "2015-11-22"},
		{"run_20160212/reads.fastq", "2016-02-12"},
		{"run_02122016/reads.fastq", "2016-02-12"},
		{"reads_99999999.fastq", ""},
		{"reads.fastq", ""},
	}
	for _, c := range cases {
		if found := ParseFilename(c.path, nil); found["date"] != c.want {
			t.Errorf("wrong date for %v: %v, expected %v", c.path, found["date"], c.want)
		}
	}
}

func TestParseFilenameNoEvidence(t *testing.T) {
	found := ParseFilename("reads.fastq", nil)
	for column, value := range found {
		if value != "" {
			t.Error("unexpected evidence", column, value)
		}
	}
}
