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

package keywords

import (
	"testing"
)

func TestLookup(t *testing.T) {
	tables := Default()
	cases := []struct {
		table Table
		text  string
		want  string
	}{
		{tables.Samples, "hg002_novaseq_reads", "HG002"},
		{tables.Samples, "na24385_reads", "HG002"},
		{tables.Technologies, "hg002_pacbio_ccs", "PacBio"},
		{tables.Technologies, "promethion_run3", "OxfordNanopore"},
		{tables.RefGenomes, "aligned_to_hs37d5", "GRCh37"},
		{tables.Trios, "ashkenazimtrio", "AshkenazimTrio"},
		{tables.VariantCallers, "haplotypecaller_calls", "GATK"},
	}
	for _, c := range cases {
		canonical, ok := c.table.Lookup(c.text)
		if !ok {
			t.Errorf("no match in %v", c.text)
			continue
		}
		if canonical != c.want {
			t.Errorf("wrong value for %v: %v, expected %v", c.text, canonical, c.want)
		}
	}
}

func TestLookupLongestWins(t *testing.T) {
	// gatk4 contains gatk; the longer keyword decides, even though both
	// map to the same value here.
	table := Table{"gatk": "short", "gatk4": "long"}
	if canonical, ok := table.Lookup("calls_gatk4"); !ok || canonical != "long" {
		t.Error("longest keyword must win", canonical)
	}
	// mutect2 over mutect, across different values.
	tables := Default()
	if canonical, ok := tables.VariantCallers.Lookup("strelka2_somatic"); !ok || canonical != "Strelka2" {
		t.Error("wrong value", canonical)
	}
}

func TestLookupNoMatch(t *testing.T) {
	tables := Default()
	if _, ok := tables.Samples.Lookup("completely unrelated"); ok {
		t.Error("unrelated text must not match")
	}
	if _, ok := tables.Samples.Lookup(""); ok {
		t.Error("empty text must not match")
	}
}

func TestLookupDeterministicTies(t *testing.T) {
	table := Table{"aaa": "first", "bbb": "second"}
	for i := 0; i < 10; i++ {
		if canonical, _ := table.Lookup("aaa bbb"); canonical != "first" {
			t.Fatal("equal-length ties must resolve deterministically", canonical)
		}
	}
}
