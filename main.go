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

// seqsleuth predicts the sequencing technology of genomic sequencing
// files from sampled read names and extracts metadata from their
// contents, names, and paths into a CSV summary.
//
// Please see https://github.com/nate-d-olson/SeqSleuth for a
// documentation of the tool.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/nate-d-olson/SeqSleuth/cmd"
	"github.com/nate-d-olson/SeqSleuth/utils"
)

func printHelp() {
	fmt.Fprintln(os.Stderr, "Available commands: extract, predict-tech, version")
	fmt.Fprint(os.Stderr, "\n", cmd.ExtractHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.PredictTechHelp)
}

func main() {
	fmt.Fprintln(os.Stderr, cmd.ProgramMessage)
	if len(os.Args) < 2 {
		log.Println("Incorrect number of parameters.")
		fmt.Fprint(os.Stderr, cmd.HelpMessage)
		printHelp()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "extract":
		err = cmd.Extract()
	case "predict-tech":
		err = cmd.PredictTech()
	case "version":
		fmt.Println(utils.ProgramName, "version", utils.ProgramVersion)
	case "help", "-help", "--help", "-h", "--h":
		printHelp()
	default:
		log.Println("Unknown command:", os.Args[1])
		fmt.Fprint(os.Stderr, cmd.HelpMessage)
		printHelp()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}
