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
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/nate-d-olson/SeqSleuth/fastq"
	"github.com/nate-d-olson/SeqSleuth/internal"
	"github.com/nate-d-olson/SeqSleuth/keywords"
	"github.com/nate-d-olson/SeqSleuth/sam"
	"github.com/nate-d-olson/SeqSleuth/seqtech"
	"github.com/nate-d-olson/SeqSleuth/utils"
	"github.com/nate-d-olson/SeqSleuth/vcf"
)

// A Status names the phase an extraction is in. Each file moves from
// Pending through the working phases to Done or Failed.
type Status int

const (
	Pending Status = iota
	Sampling
	Classifying
	Merging
	Done
	Failed
)

var statusNames = []string{"pending", "sampling", "classifying", "merging", "done", "failed"}

func (status Status) String() string {
	if status < 0 || int(status) >= len(statusNames) {
		return "invalid"
	}
	return statusNames[status]
}

// An Extractor turns manifest entries into metadata records. Extractors
// hold no per-file state and can be shared across workers.
type Extractor struct {
	// Tables are the keyword tables used for filename and header
	// matching. Nil uses keywords.Default.
	Tables *keywords.Tables

	// Sampler draws read names from FASTQ entries. Its Timeout and
	// Retries also bound the header fetches for BAM and VCF entries.
	Sampler fastq.Sampler

	// BaseURL is the download base that relative manifest paths resolve
	// against. Empty selects DefaultBaseURL.
	BaseURL string
}

// Extract produces the metadata record for one manifest entry. It never
// fails: any error, including a panic in the extraction itself, is
// recorded in the error column of the returned record, and the columns
// that could still be determined are filled in.
func (x *Extractor) Extract(entry Entry) (record Record) {
	url := entry.URL(x.BaseURL)
	record = NewRecord(entry, url)
	status := Pending
	defer func() {
		if p := recover(); p != nil {
			err := errors.Mark(errors.Newf("%v while %v", p, status), internal.ErrExtractionFailure)
			record["error"] = internal.ErrorKind(err)
		}
	}()
	fromName := ParseFilename(url, x.tables())
	var err error
	switch entry.FileType {
	case "fastq":
		err = x.extractFastq(url, record, fromName, &status)
	case "bam":
		err = x.extractBam(url, record, &status)
	case "vcf":
		err = x.extractVcf(url, record, &status)
	default:
		err = errors.Mark(errors.Newf("unknown file type %v", entry.FileType), internal.ErrUnknownFormat)
	}
	status = Merging
	// Content-derived values win; the filename only fills the gaps.
	record.Fill(fromName)
	if err != nil {
		status = Failed
		record["error"] = internal.ErrorKind(err)
	} else {
		status = Done
	}
	return record
}

func (x *Extractor) tables() *keywords.Tables {
	if x.Tables != nil {
		return x.Tables
	}
	return keywords.Default()
}

// extractFastq samples read names and classifies them. When the content
// matches no classifier grammar but the filename names a technology
// with a known grammar, that grammar extracts over the same sample, so
// extraction-only technologies still yield their fields.
func (x *Extractor) extractFastq(url string, record Record, fromName utils.StringMap, status *Status) error {
	*status = Sampling
	names, err := x.Sampler.Sample(url)
	if err != nil {
		return err
	}
	*status = Classifying
	result := seqtech.Classify(names)
	record["reads_sampled"] = strconv.Itoa(result.ReadsSampled)
	record["reads_matched"] = strconv.Itoa(result.ReadsMatched)
	if result.Technology != seqtech.TechUnknown {
		record["technology"] = result.Technology
		record.Fill(result.Fields)
		return nil
	}
	if tech := fromName["technology"]; tech != "" {
		if g, ok := seqtech.ByName(tech); ok {
			fields, matched := seqtech.ExtractAll(g, names)
			record["reads_matched"] = strconv.Itoa(matched)
			record.Fill(fields)
		}
	}
	return nil
}

// extractBam maps BAM header records onto the output columns: @RG for
// the sample and platform, @PG for the aligner and variant caller, @SQ
// for the reference.
func (x *Extractor) extractBam(url string, record Record, status *Status) error {
	*status = Sampling
	hdr, err := sam.Open(url, x.Sampler.Timeout, x.Sampler.Retries)
	if err != nil {
		return err
	}
	*status = Classifying
	tables := x.tables()
	if sm := sam.Tag(hdr.ReadGroups, "SM"); sm != "" {
		record["sample_id"] = canonicalOr(tables.Samples, sm)
	}
	if pl := sam.Tag(hdr.ReadGroups, "PL"); pl != "" {
		record["technology"] = canonicalOr(tables.Technologies, pl)
	}
	programs := append(sam.Tags(hdr.Programs, "PN"), sam.Tags(hdr.Programs, "CL")...)
	for _, text := range programs {
		if canonical, ok := tables.Aligners.Lookup(strings.ToLower(text)); ok {
			record.Fill(utils.StringMap{"aligner": canonical})
		}
		if canonical, ok := tables.VariantCallers.Lookup(strings.ToLower(text)); ok {
			record.Fill(utils.StringMap{"variant_caller": canonical})
		}
	}
	references := append(sam.Tags(hdr.Sequences, "AS"), sam.Tags(hdr.Sequences, "UR")...)
	for _, text := range references {
		if canonical, ok := tables.RefGenomes.Lookup(strings.ToLower(text)); ok {
			record.Fill(utils.StringMap{"ref_genome": canonical})
		}
	}
	return nil
}

// extractVcf maps VCF meta-information onto the output columns:
// ##source for the variant caller, ##reference for the reference, the
// #CHROM sample columns for the sample.
func (x *Extractor) extractVcf(url string, record Record, status *Status) error {
	*status = Sampling
	hdr, err := vcf.Open(url, x.Sampler.Timeout, x.Sampler.Retries)
	if err != nil {
		return err
	}
	*status = Classifying
	tables := x.tables()
	if source := strings.Trim(hdr.Value("source"), `"`); source != "" {
		record["variant_caller"] = canonicalOr(tables.VariantCallers, source)
	}
	if reference := hdr.Value("reference"); reference != "" {
		if canonical, ok := tables.RefGenomes.Lookup(strings.ToLower(reference)); ok {
			record["ref_genome"] = canonical
		}
	}
	if len(hdr.Samples) > 0 {
		record["sample_id"] = canonicalOr(tables.Samples, hdr.Samples[0])
	}
	return nil
}

// canonicalOr normalizes text through the given keyword table, falling
// back to the text itself when no keyword matches.
func canonicalOr(table keywords.Table, text string) string {
	if canonical, ok := table.Lookup(strings.ToLower(text)); ok {
		return canonical
	}
	return text
}
