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
	"encoding/csv"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/nate-d-olson/SeqSleuth/internal"
)

// DefaultBaseURL is the download location that relative manifest paths
// resolve against, following the GIAB hosting conventions.
const DefaultBaseURL = "https://ftp-trace.ncbi.nlm.nih.gov/ReferenceSamples/giab/data"

// An Entry is one row of the input manifest.
type Entry struct {
	// FileType is one of fastq, bam, or vcf, lowercased.
	FileType string

	// Filename is the base name of the file.
	Filename string

	// Filepath locates the directory holding the file: a full URL
	// prefix, an absolute local directory, or a path relative to the
	// download base.
	Filepath string
}

// URL resolves the entry to the location it is read from. The empty
// string selects DefaultBaseURL as the base for relative paths.
func (entry Entry) URL(base string) string {
	if u, err := url.Parse(entry.Filepath); err == nil {
		switch u.Scheme {
		case "http", "https", "file":
			return strings.TrimSuffix(entry.Filepath, "/") + "/" + entry.Filename
		}
	}
	if filepath.IsAbs(entry.Filepath) {
		return filepath.Join(entry.Filepath, entry.Filename)
	}
	if base == "" {
		base = DefaultBaseURL
	}
	base = strings.TrimSuffix(base, "/")
	if rel := strings.Trim(entry.Filepath, "/"); rel != "" {
		return base + "/" + rel + "/" + entry.Filename
	}
	return base + "/" + entry.Filename
}

// manifestColumns are the required manifest columns. Additional columns
// are ignored.
var manifestColumns = []string{"file_type", "filename", "filepath"}

// ReadManifest reads the file manifest at the given path, a CSV file
// with a header line naming at least the file_type, filename, and
// filepath columns, in any order. Files with a .tsv extension are read
// as tab-separated instead. A manifest that cannot be parsed or lacks a
// required column is a MalformedManifest error, which is fatal to the
// run.
func ReadManifest(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Mark(err, internal.ErrMalformedManifest)
	}
	defer func() {
		_ = f.Close()
	}()
	r := csv.NewReader(f)
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		r.Comma = '\t'
	}
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "parsing manifest %v", path), internal.ErrMalformedManifest)
	}
	if len(rows) == 0 {
		return nil, errors.Mark(errors.Newf("manifest %v has no header line", path), internal.ErrMalformedManifest)
	}
	index := map[string]int{}
	for i, column := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(column))] = i
	}
	for _, column := range manifestColumns {
		if _, found := index[column]; !found {
			return nil, errors.Mark(errors.Newf("manifest %v lacks the %v column", path, column), internal.ErrMalformedManifest)
		}
	}
	entries := make([]Entry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		entries = append(entries, Entry{
			FileType: strings.ToLower(strings.TrimSpace(row[index["file_type"]])),
			Filename: strings.TrimSpace(row[index["filename"]]),
			Filepath: strings.TrimSpace(row[index["filepath"]]),
		})
	}
	return entries, nil
}
