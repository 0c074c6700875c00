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

// RS-era continuous long reads: movie/zmw/start_end, with the movie name
// carrying chip and set identifiers. Sequel CCS reads: movie/zmw/ccs.
var (
	pacbioClrPattern = regexp.MustCompile(`^m\d+_\d+_\d+_c\d+_s\d+_p\d+/\d+/\d+_\d+$`)
	pacbioCcsPattern = regexp.MustCompile(`^m\d+[A-Za-z]*_\d+_\d+/\d+/ccs$`)
)

// PacBio is the grammar for PacBio read names, covering both CLR and
// CCS conventions.
type PacBio struct{}

// Name implements the Grammar interface.
func (PacBio) Name() string { return TechPacBio }

// Recognize implements the Grammar interface.
func (PacBio) Recognize(readName string) bool {
	return pacbioClrPattern.MatchString(readName) ||
		pacbioCcsPattern.MatchString(readName)
}

// Extract implements the Grammar interface.
func (g PacBio) Extract(readName string) Fields {
	if !g.Recognize(readName) {
		return nil
	}
	parts := strings.Split(readName, "/")
	readType := "CLR"
	if parts[2] == "ccs" {
		readType = "CCS"
	}
	return Fields{
		"movie_name": parts[0],
		"read_type":  readType,
	}
}
