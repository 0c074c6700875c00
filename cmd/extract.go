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

package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/nate-d-olson/SeqSleuth/fastq"
	"github.com/nate-d-olson/SeqSleuth/internal"
	"github.com/nate-d-olson/SeqSleuth/metadata"
	"github.com/nate-d-olson/SeqSleuth/utils"
)

// ExtractHelp shows the help message of the extract command.
const ExtractHelp = "\nextract parameters:\n" +
	"seqsleuth extract file_list.csv\n" +
	"[--max-reads nr]\n" +
	"[--workers nr | all]\n" +
	"[--output-dir dir]\n" +
	"[--base-url url]\n" +
	"[--chunk-size bytes]\n" +
	"[--timeout duration]\n" +
	"[--retries nr]\n" +
	"[--log-path path]\n" +
	"[--progress]\n" +
	"[--verbose]\n"

// Extract implements the seqsleuth extract command.
func Extract() error {
	var (
		workers, outputDir, baseURL, logPath string
		maxReads, chunkSize, retries         int
		timeout                              time.Duration
		progress, verbose                    bool
	)

	var flags flag.FlagSet

	flags.IntVar(&maxReads, "max-reads", fastq.DefaultMaxReads, "number of reads sampled per file, -1 for all")
	flags.StringVar(&workers, "workers", "all", "number of files processed concurrently")
	flags.StringVar(&outputDir, "output-dir", ".", "directory for the output file")
	flags.StringVar(&baseURL, "base-url", "", "download base for relative manifest paths")
	flags.IntVar(&chunkSize, "chunk-size", fastq.DefaultChunkSize, "read chunk size in bytes")
	flags.DurationVar(&timeout, "timeout", internal.DefaultTimeout, "timeout per remote fetch")
	flags.IntVar(&retries, "retries", internal.DefaultRetries, "retries per failed remote fetch")
	flags.StringVar(&logPath, "log-path", "", "log file path")
	flags.BoolVar(&progress, "progress", false, "log progress per finished file")
	flags.BoolVar(&verbose, "verbose", false, "log classification evidence per file")

	parseFlags(flags, 3, ExtractHelp)

	manifest := getFilename(os.Args[2], ExtractHelp)

	setLogOutput(logPath)

	// sanity checks

	var sanityChecksFailed bool

	if maxReads == 0 || maxReads < -1 {
		log.Println("Error: Invalid max-reads: ", maxReads)
		sanityChecksFailed = true
	}

	if chunkSize <= 0 {
		log.Println("Error: Invalid chunk-size: ", chunkSize)
		sanityChecksFailed = true
	}

	if retries < 0 {
		log.Println("Error: Invalid retries: ", retries)
		sanityChecksFailed = true
	}

	nofWorkers, err := parseWorkers(workers)
	if err != nil {
		log.Println("Error: ", err)
		sanityChecksFailed = true
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, ExtractHelp)
		os.Exit(1)
	}

	// A malformed manifest is the one fatal input error: no output file
	// is created for it.
	entries, err := metadata.ReadManifest(manifest)
	if err != nil {
		return err
	}
	log.Println("Read manifest with", len(entries), "entries from", manifest)

	runID := uuid.New().String()
	outputFile, err := internal.FullPathname(
		filepath.Join(outputDir, fmt.Sprintf("%v-metadata-%v.csv", utils.ProgramName, runID)))
	if err != nil {
		return err
	}
	internal.MkdirAll(filepath.Dir(outputFile), 0700)
	out, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	log.Println("Writing metadata to", outputFile)

	extractor := metadata.Extractor{
		Sampler: fastq.Sampler{
			MaxReads:  maxReads,
			ChunkSize: chunkSize,
			Timeout:   timeout,
			Retries:   retries,
		},
		BaseURL: baseURL,
	}
	runner := metadata.Runner{
		Extractor: &extractor,
		Workers:   nofWorkers,
		Progress:  progress,
		Verbose:   verbose,
	}
	if err := runner.RunPipeline(entries, out); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
