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
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/nate-d-olson/SeqSleuth/keywords"
	"github.com/nate-d-olson/SeqSleuth/utils"
)

// Dashed date forms are matched before the digit-only forms so that an
// eight-digit run of a dashed date never gets misread as YYYYMMDD.
// Underscores count as word characters, so digit runs are delimited
// explicitly rather than with word boundaries.
var (
	dashedYMDPattern = regexp.MustCompile(`(?:^|\D)(\d{4}-\d{2}-\d{2})(?:\D|$)`)
	dashedMDYPattern = regexp.MustCompile(`(?:^|\D)(\d{2}-\d{2}-\d{4})(?:\D|$)`)
	digitsPattern    = regexp.MustCompile(`(?:^|\D)(\d{8})(?:\D|$)`)
)

// ParseFilename derives metadata from the name and path of a file by
// keyword matching. Path components are scanned from the file name
// upward, so a keyword close to the file wins over one further up the
// directory tree; within a component, the longest keyword wins. The
// result maps output column names to canonical values, holding only the
// columns for which evidence was found. A nil tables uses
// keywords.Default.
func ParseFilename(rawurl string, tables *keywords.Tables) utils.StringMap {
	if tables == nil {
		tables = keywords.Default()
	}
	path := rawurl
	if u, err := url.Parse(rawurl); err == nil && u.Scheme != "" {
		path = u.Path
	}
	categories := []struct {
		column string
		table  keywords.Table
	}{
		{"center", tables.Centers},
		{"sample_id", tables.Samples},
		{"trio", tables.Trios},
		{"technology", tables.Technologies},
		{"ref_genome", tables.RefGenomes},
		{"aligner", tables.Aligners},
		{"variant_caller", tables.VariantCallers},
	}
	found := utils.StringMap{}
	components := strings.Split(path, "/")
	for i := len(components) - 1; i >= 0; i-- {
		component := components[i]
		if component == "" {
			continue
		}
		lower := strings.ToLower(component)
		for _, category := range categories {
			if found[category.column] != "" {
				continue
			}
			if canonical, ok := category.table.Lookup(lower); ok {
				found[category.column] = canonical
			}
		}
		if found["date"] == "" {
			if date := parseDate(component); date != "" {
				found["date"] = date
			}
		}
	}
	return found
}

// parseDate extracts a date embedded in one path component and
// normalizes it to YYYY-MM-DD. Eight-digit runs are tried as YYYYMMDD
// first and as MMDDYYYY otherwise; implausible years rule out the
// former.
func parseDate(component string) string {
	if m := dashedYMDPattern.FindStringSubmatch(component); m != nil {
		if t, err := time.Parse("2006-01-02", m[1]); err == nil {
			return t.Format("2006-01-02")
		}
	}
	if m := dashedMDYPattern.FindStringSubmatch(component); m != nil {
		if t, err := time.Parse("01-02-2006", m[1]); err == nil {
			return t.Format("2006-01-02")
		}
	}
	if m := digitsPattern.FindStringSubmatch(component); m != nil {
		if t, err := time.Parse("20060102", m[1]); err == nil && t.Year() >= 1990 && t.Year() <= 2100 {
			return t.Format("2006-01-02")
		}
		if t, err := time.Parse("01022006", m[1]); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}
