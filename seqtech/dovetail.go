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

package seqtech

import (
	"regexp"
	"strings"
)

// Dovetail libraries are sequenced on Illumina instruments, so this is
// another extraction-only grammar, selected by filename or header
// evidence rather than content classification.
var dovetailPattern = regexp.MustCompile(
	`^\S+:\S+:\S+:\S+:\S+:\S+:\S+\s\d:\S:\d+:\S+$`)

// Dovetail is the grammar for Dovetail Genomics read names.
type Dovetail struct{}

// Name implements the Grammar interface.
func (Dovetail) Name() string { return TechDovetail }

// Recognize implements the Grammar interface.
func (Dovetail) Recognize(readName string) bool {
	return dovetailPattern.MatchString(readName)
}

// Extract implements the Grammar interface. The underlying instrument
// is an Illumina sequencer, so the head fields map onto the same
// vocabulary as the Illumina grammar.
func (g Dovetail) Extract(readName string) Fields {
	if !g.Recognize(readName) {
		return nil
	}
	parts := strings.Split(readName, ":")
	return Fields{
		"instrument_id":  parts[0],
		"run_number":     parts[1],
		"flow_cell_id":   parts[2],
		"flow_cell_lane": parts[3],
	}
}
