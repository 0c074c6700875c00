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

// Linked-reads run through Illumina instruments, so the read name shape
// is a loose superset of the Illumina grammar. The grammar is therefore
// extraction-only: it is selected by filename or header evidence, never
// by content classification.
var tenxPattern = regexp.MustCompile(`^\S+:\S+:\S+:\S+:\S+:.*$`)

// TenXGenomics is the grammar for 10X Genomics linked-read names.
type TenXGenomics struct{}

// Name implements the Grammar interface.
func (TenXGenomics) Name() string { return TechTenXGenomics }

// Recognize implements the Grammar interface.
func (TenXGenomics) Recognize(readName string) bool {
	return tenxPattern.MatchString(readName)
}

// Extract implements the Grammar interface.
func (g TenXGenomics) Extract(readName string) Fields {
	if !g.Recognize(readName) {
		return nil
	}
	parts := strings.Split(readName, ":")
	return Fields{
		"sample":  parts[0],
		"library": parts[1],
		"set":     parts[3],
	}
}
