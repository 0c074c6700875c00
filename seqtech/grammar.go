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

// Package seqtech encodes the read name conventions of the supported
// sequencing platforms as grammars, and classifies FASTQ files by
// matching sampled read names against them.
package seqtech

// Canonical technology labels.
const (
	TechIllumina       = "Illumina"
	TechPacBio         = "PacBio"
	TechOxfordNanopore = "OxfordNanopore"
	TechTenXGenomics   = "10XGenomics"
	TechDovetail       = "Dovetail"
	TechUnknown        = "Unknown"
)

// Fields holds the metadata fields extracted from read names. Fields a
// grammar does not define are absent, never guessed.
type Fields map[string]string

// A Grammar encodes the read name convention of one sequencing platform
// family as a recognizer and a field extractor.
type Grammar interface {
	// Name returns the canonical technology label.
	Name() string

	// Recognize reports whether the read name follows this grammar's
	// convention. It is total over arbitrary strings and has no side
	// effects.
	Recognize(readName string) bool

	// Extract returns the metadata fields of a read name. A read name
	// that does not follow the convention yields nil rather than a
	// failure, so Extract is total as well.
	Extract(readName string) Fields
}

// A reducer merges per-read field maps into the fields reported for a
// whole file. Grammars that do not implement it get the default merge,
// which keeps the first non-empty value seen per field.
type reducer interface {
	Reduce(perRead []Fields) Fields
}

// ClassifierGrammars is the priority-ordered grammar set used for
// content classification. The order is a design invariant: more
// constrained grammars come first, and a tally tie resolves toward the
// earlier entry. Only structurally disjoint grammars belong here; the
// 10XGenomics and Dovetail grammars describe Illumina-shaped read names
// and are reachable only through ByName, driven by filename or header
// evidence.
var ClassifierGrammars = []Grammar{
	Illumina{},
	PacBio{},
	OxfordNanopore{},
}

var grammarsByName = map[string]Grammar{
	TechIllumina:       Illumina{},
	TechPacBio:         PacBio{},
	TechOxfordNanopore: OxfordNanopore{},
	TechTenXGenomics:   TenXGenomics{},
	TechDovetail:       Dovetail{},
}

// ByName returns the grammar for a canonical technology label. This
// includes the extraction-only grammars that never take part in content
// classification.
func ByName(tech string) (Grammar, bool) {
	g, ok := grammarsByName[tech]
	return g, ok
}

// Reduce merges per-read field maps according to the grammar: either the
// grammar's own reduction, or the default merge that keeps the first
// non-empty value per field so a few corrupted reads in a sample never
// overwrite fields filled from intact ones.
func Reduce(g Grammar, perRead []Fields) Fields {
	if r, ok := g.(reducer); ok {
		return r.Reduce(perRead)
	}
	merged := Fields{}
	for _, fields := range perRead {
		for key, value := range fields {
			if value == "" {
				continue
			}
			if merged[key] == "" {
				merged[key] = value
			}
		}
	}
	return merged
}

// ExtractAll runs a grammar over a sample of read names, extracting
// fields from every read the grammar recognizes and reducing them into
// one field map. It also reports how many reads were recognized.
func ExtractAll(g Grammar, readNames []string) (Fields, int) {
	var perRead []Fields
	for _, name := range readNames {
		if !g.Recognize(name) {
			continue
		}
		if fields := g.Extract(name); fields != nil {
			perRead = append(perRead, fields)
		}
	}
	return Reduce(g, perRead), len(perRead)
}
