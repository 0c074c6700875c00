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
	"time"
)

// MinKNOW basecalled read names: a UUID followed by key=value pairs for
// the run, channel, and start time.
var nanoporePattern = regexp.MustCompile(
	`^[0-9a-f]{8}-(?:[0-9a-f]{4}-){3}[0-9a-f]{12}` +
		` runid=[0-9a-f]{40} read=\d+ ch=\d+` +
		` start_time=\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`)

// OxfordNanopore is the grammar for Oxford Nanopore read names.
type OxfordNanopore struct{}

// Name implements the Grammar interface.
func (OxfordNanopore) Name() string { return TechOxfordNanopore }

// Recognize implements the Grammar interface.
func (OxfordNanopore) Recognize(readName string) bool {
	return nanoporePattern.MatchString(readName)
}

// Extract implements the Grammar interface. The read and ch pairs are
// unique per read and carry no file-level metadata, so they are skipped.
func (g OxfordNanopore) Extract(readName string) Fields {
	if !g.Recognize(readName) {
		return nil
	}
	fields := Fields{}
	for _, pair := range strings.Fields(readName)[1:] {
		key, value, _ := strings.Cut(pair, "=")
		if key == "read" || key == "ch" {
			continue
		}
		fields[key] = value
	}
	return fields
}

// Reduce merges the per-read start_time values into the earliest start
// date of the run, keeping the first non-empty value for the remaining
// fields.
func (OxfordNanopore) Reduce(perRead []Fields) Fields {
	merged := Fields{}
	var earliest time.Time
	for _, fields := range perRead {
		for key, value := range fields {
			if key == "start_time" || value == "" {
				continue
			}
			if merged[key] == "" {
				merged[key] = value
			}
		}
		if ts := fields["start_time"]; ts != "" {
			if t, err := time.Parse(time.RFC3339, ts); err == nil {
				if earliest.IsZero() || t.Before(earliest) {
					earliest = t
				}
			}
		}
	}
	if !earliest.IsZero() {
		merged["earliest_start_date"] = earliest.Format("2006-01-02")
	}
	return merged
}
