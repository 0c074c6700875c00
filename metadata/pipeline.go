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
	"io"
	"log"

	"github.com/exascience/pargo/pipeline"
)

// A Runner extracts the metadata for a list of manifest entries in
// parallel and writes the records out in manifest order.
type Runner struct {
	Extractor *Extractor

	// Workers is the number of files extracted concurrently. 0 uses all
	// logical cores.
	Workers int

	// Progress logs one line per finished file; Verbose additionally
	// logs the classification evidence.
	Progress bool
	Verbose  bool
}

// RunPipeline extracts every entry and writes the CSV output, one
// header line plus one row per entry, in entry order. Per-entry
// failures are recorded in the error column of the affected row and
// never abort the run; only a failure to write the output itself is
// returned as an error.
func (runner *Runner) RunPipeline(entries []Entry, out io.Writer) error {
	w := csv.NewWriter(out)
	if err := w.Write(Columns); err != nil {
		return err
	}
	if len(entries) == 0 {
		w.Flush()
		return w.Error()
	}
	done := 0
	var p pipeline.Pipeline
	p.Source(entries)
	// One entry per batch: a batch is one file, which is already a
	// coarse unit of work.
	p.SetVariableBatchSize(1, 1)
	p.Add(
		pipeline.LimitedPar(runner.Workers, pipeline.Receive(func(_ int, data interface{}) interface{} {
			batch := data.([]Entry)
			records := make([]Record, len(batch))
			for i, entry := range batch {
				records[i] = runner.Extractor.Extract(entry)
			}
			return records
		})),
		pipeline.StrictOrd(pipeline.Receive(func(_ int, data interface{}) interface{} {
			for _, record := range data.([]Record) {
				if err := w.Write(record.Row()); err != nil {
					p.SetErr(err)
					return data
				}
				done++
				if runner.Progress {
					if kind := record["error"]; kind != "" {
						log.Printf("%v/%v %v failed: %v", done, len(entries), record["filename"], kind)
					} else {
						log.Printf("%v/%v %v done", done, len(entries), record["filename"])
					}
				}
				if runner.Verbose {
					log.Printf("%v: technology=%v reads_matched=%v/%v",
						record["filename"], record["technology"],
						record["reads_matched"], record["reads_sampled"])
				}
			}
			return data
		})),
	)
	p.Run()
	if err := p.Err(); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
