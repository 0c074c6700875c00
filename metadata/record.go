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

// Package metadata turns a manifest of sequencing files into one
// metadata record per file. It combines the content-based technology
// classification of package seqtech, the header extraction of packages
// sam and vcf, and keyword matching against file names and paths into a
// fixed-vocabulary CSV output.
package metadata

import (
	"github.com/nate-d-olson/SeqSleuth/utils"
)

// Columns lists the output columns in order. Every output row has all
// of them; a column whose value could not be determined for a file is
// left empty.
var Columns = []string{
	"file_type",
	"filename",
	"url",
	"center",
	"sample_id",
	"trio",
	"technology",
	"date",
	"ref_genome",
	"aligner",
	"variant_caller",
	"instrument_id",
	"run_number",
	"flow_cell_id",
	"flow_cell_lane",
	"movie_name",
	"read_type",
	"runid",
	"earliest_start_date",
	"sample",
	"library",
	"set",
	"reads_sampled",
	"reads_matched",
	"error",
}

// A Record holds the extracted metadata for one manifest entry, keyed
// by column name. Keys outside Columns are ignored when the record is
// written out.
type Record utils.StringMap

// NewRecord returns a record prefilled with the identifying columns of
// the given manifest entry.
func NewRecord(entry Entry, url string) Record {
	return Record{
		"file_type": entry.FileType,
		"filename":  entry.Filename,
		"url":       url,
	}
}

// Fill adds all entries of fields for which the record does not have a
// non-empty value yet. Values extracted earlier take precedence over
// values filled in later.
func (record Record) Fill(fields map[string]string) {
	utils.StringMap(record).FillFrom(utils.StringMap(fields))
}

// Row renders the record as one CSV row in Columns order.
func (record Record) Row() []string {
	row := make([]string, len(Columns))
	for i, column := range Columns {
		row[i] = record[column]
	}
	return row
}
