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

package utils

const (
	// ProgramName is "seqsleuth"
	ProgramName = "seqsleuth"

	// ProgramVersion is the version of the seqsleuth binary
	ProgramVersion = "1.0.0"

	// ProgramURL is the repository for the seqsleuth source code
	ProgramURL = "http://github.com/nate-d-olson/SeqSleuth"
)
