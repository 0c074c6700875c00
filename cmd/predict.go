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
	"os"
	"time"

	"github.com/nate-d-olson/SeqSleuth/fastq"
	"github.com/nate-d-olson/SeqSleuth/internal"
	"github.com/nate-d-olson/SeqSleuth/metadata"
	"github.com/nate-d-olson/SeqSleuth/seqtech"
)

// PredictTechHelp shows the help message of the predict-tech command.
const PredictTechHelp = "\npredict-tech parameters:\n" +
	"seqsleuth predict-tech file.fastq[.gz]\n" +
	"[--max-reads nr]\n" +
	"[--chunk-size bytes]\n" +
	"[--timeout duration]\n" +
	"[--retries nr]\n"

// PredictTech implements the seqsleuth predict-tech command. It
// classifies a single FASTQ file, local or remote, and prints the
// predicted technology.
func PredictTech() error {
	var (
		maxReads, chunkSize, retries int
		timeout                      time.Duration
	)

	var flags flag.FlagSet

	flags.IntVar(&maxReads, "max-reads", fastq.DefaultMaxReads, "number of reads sampled, -1 for all")
	flags.IntVar(&chunkSize, "chunk-size", fastq.DefaultChunkSize, "read chunk size in bytes")
	flags.DurationVar(&timeout, "timeout", internal.DefaultTimeout, "timeout per remote fetch")
	flags.IntVar(&retries, "retries", internal.DefaultRetries, "retries per failed remote fetch")

	parseFlags(flags, 3, PredictTechHelp)

	file := getFilename(os.Args[2], PredictTechHelp)

	sampler := fastq.Sampler{
		MaxReads:  maxReads,
		ChunkSize: chunkSize,
		Timeout:   timeout,
		Retries:   retries,
	}
	names, err := sampler.Sample(file)
	if err != nil {
		return err
	}
	result := seqtech.Classify(names)
	tech := result.Technology
	if tech == seqtech.TechUnknown {
		if found := metadata.ParseFilename(file, nil); found["technology"] != "" {
			tech = found["technology"]
		}
	}
	fmt.Println(tech)
	return nil
}
