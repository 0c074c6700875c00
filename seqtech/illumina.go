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

// Casava 1.8+ read names:
// instrument:run:flowcell:lane:tile:x:y read:filtered:control:index
var illuminaPattern = regexp.MustCompile(
	`^[\w-]+:\d+:[\w-]+:\d+:\d+:\d+:\d+\s[12]:[YN]:\d+:(?:\d+|[ATCGN+]+)$`)

// Illumina is the grammar for Illumina read names.
type Illumina struct{}

// Name implements the Grammar interface.
func (Illumina) Name() string { return TechIllumina }

// Recognize implements the Grammar interface.
func (Illumina) Recognize(readName string) bool {
	return illuminaPattern.MatchString(readName)
}

// Extract implements the Grammar interface.
func (g Illumina) Extract(readName string) Fields {
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
