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
	"bytes"
	"encoding/csv"
	"testing"
)

func runPipeline(t *testing.T, runner *Runner, entries []Entry) [][]string {
	t.Helper()
	var buf bytes.Buffer
	if err := runner.RunPipeline(entries, &buf); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func column(t *testing.T, rows [][]string, name string) int {
	t.Helper()
	for i, col := range rows[0] {
		if col == name {
			return i
		}
	}
	t.Fatal("missing column", name)
	return -1
}

func TestRunPipelineManifestOrder(t *testing.T) {
	dir := t.TempDir()
	entries := []Entry{
		writeReads(t, dir, "a.fastq", "D00360:18:H8VC6ADXX:1:1101:1241:2121 1:N:0:CAGATC"),
		{FileType: "fastq", Filename: "missing.fastq", Filepath: dir},
		writeReads(t, dir, "c.fastq", "m64017_191118_150849/43322019/ccs"),
	}
	runner := Runner{Extractor: &Extractor{}, Workers: 2}
	rows := runPipeline(t, &runner, entries)
	if len(rows) != 4 {
		t.Fatal("one header line plus one row per entry expected", len(rows))
	}
	filename := column(t, rows, "filename")
	errcol := column(t, rows, "error")
	tech := column(t, rows, "technology")
	for i, want := range []string{"a.fastq", "missing.fastq", "c.fastq"} {
		if rows[i+1][filename] != want {
			t.Error("output must keep manifest order", rows[i+1][filename])
		}
	}
	if rows[1][errcol] != "" || rows[3][errcol] != "" {
		t.Error("readable files must not report errors", rows[1][errcol], rows[3][errcol])
	}
	if rows[2][errcol] != "UnreadableFile" {
		t.Error("wrong error kind", rows[2][errcol])
	}
	if rows[1][tech] != "Illumina" || rows[3][tech] != "PacBio" {
		t.Error("wrong technologies", rows[1][tech], rows[3][tech])
	}
}

func TestRunPipelineAllCores(t *testing.T) {
	dir := t.TempDir()
	var entries []Entry
	for _, name := range []string{"a.fastq", "b.fastq", "c.fastq", "d.fastq", "e.fastq"} {
		entries = append(entries, writeReads(t, dir, name,
			"D00360:18:H8VC6ADXX:1:1101:1241:2121 1:N:0:CAGATC"))
	}
	runner := Runner{Extractor: &Extractor{}}
	rows := runPipeline(t, &runner, entries)
	if len(rows) != 6 {
		t.Fatal("wrong number of rows", len(rows))
	}
	filename := column(t, rows, "filename")
	for i, entry := range entries {
		if rows[i+1][filename] != entry.Filename {
			t.Error("output must keep manifest order", rows[i+1][filename])
		}
	}
}

func TestRunPipelineEmptyManifest(t *testing.T) {
	runner := Runner{Extractor: &Extractor{}}
	rows := runPipeline(t, &runner, nil)
	if len(rows) != 1 {
		t.Fatal("empty manifest must yield only the header line", len(rows))
	}
	if len(rows[0]) != len(Columns) {
		t.Error("wrong number of columns", len(rows[0]))
	}
}
