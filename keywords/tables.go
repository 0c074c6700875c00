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

// Package keywords holds the static tables that map substrings found in
// file names, paths, and headers to canonical metadata values. The tables
// are constructed once at startup and are read-only afterwards, so they
// can be shared across workers without locking.
package keywords

import "strings"

// A Table maps lowercase keywords to their canonical value.
type Table map[string]string

// Lookup returns the canonical value for the longest keyword contained
// in the given text, matching case-insensitively against the lowercase
// keywords of the table. When several keywords occur in the text, the
// longest one wins, so a short code embedded in a longer keyword never
// shadows it. The caller passes text already lowercased.
func (t Table) Lookup(text string) (canonical string, ok bool) {
	bestLen, bestKeyword := -1, ""
	for keyword, value := range t {
		if !strings.Contains(text, keyword) {
			continue
		}
		// Ties between equally long keywords resolve to the
		// lexicographically smaller one, so lookups stay deterministic
		// across map iteration orders.
		if len(keyword) > bestLen || (len(keyword) == bestLen && keyword < bestKeyword) {
			bestLen, bestKeyword = len(keyword), keyword
			canonical = value
			ok = true
		}
	}
	return canonical, ok
}

// Tables bundles one Table per metadata category.
type Tables struct {
	Centers        Table
	Samples        Table
	Trios          Table
	Technologies   Table
	RefGenomes     Table
	Aligners       Table
	VariantCallers Table
}

// Default returns the tables for the GIAB hosting conventions.
func Default() *Tables {
	return &Tables{
		Centers:        centers,
		Samples:        samples,
		Trios:          trios,
		Technologies:   technologies,
		RefGenomes:     refGenomes,
		Aligners:       aligners,
		VariantCallers: variantCallers,
	}
}

var centers = Table{
	"mpg":             "MPG",
	"clcbio":          "CLCBIO",
	"platinumgenomes": "PlatinumGenomes",
	"mtsinai":         "MtSinai",
	"nebraska":        "Nebraska",
	"oslo":            "OsloUniversityHospital",
	"dnanexus":        "DNAnexus",
	"sevenbridges":    "SevenBridges",
	"rutgers":         "Rutgers",
	"bilkent":         "BilkentUni",
	"baylor":          "Baylor",
	"10xgenomics":     "10XGenomics",
	"broad":           "Broad",
	"roche":           "Roche",
	"bina":            "Roche",
	"bionano":         "Bionano",
	"bu":              "BU",
	"cornell":         "Cornell",
	"cshl":            "CSHL",
	"nist":            "NIST",
	"rtg":             "RealTimeGenomics",
	"sentieon":        "Sentieon",
	"completegenomics": "CompleteGenomics",
	"mdanderson":      "MDAnderson",
	"leicester":       "Leicester",
	"mssm":            "MSSM",
	"stanford":        "Stanford",
	"pacbio":          "PacBio",
	"nhgri":           "NHGRI",
	"ncbi":            "NCBI",
	"spiral":          "SpiralGenomics",
}

var samples = Table{
	"hg001":   "HG001",
	"na12878": "HG001",
	"hg002":   "HG002",
	"na24385": "HG002",
	"hg003":   "HG003",
	"na24149": "HG003",
	"hg004":   "HG004",
	"na24143": "HG004",
	"hg005":   "HG005",
	"na24631": "HG005",
	"hg006":   "HG006",
	"na24694": "HG006",
	"hg007":   "HG007",
	"na24695": "HG007",
}

var trios = Table{
	"ashkenazimtrio": "AshkenazimTrio",
	"chinesetrio":    "ChineseTrio",
	"ceph":           "CEPH",
}

var technologies = Table{
	"illumina":         "Illumina",
	"ilum":             "Illumina",
	"ill":              "Illumina",
	"nextseq":          "Illumina",
	"hiseq":            "Illumina",
	"miseq":            "Illumina",
	"novaseq":          "Illumina",
	"pacbio":           "PacBio",
	"pb":               "PacBio",
	"sequel":           "PacBio",
	"smrt":             "PacBio",
	"nanopore":         "OxfordNanopore",
	"ont":              "OxfordNanopore",
	"minion":           "OxfordNanopore",
	"promethion":       "OxfordNanopore",
	"bgi":              "BGI",
	"completegenomics": "CompleteGenomics",
	"dovetail":         "Dovetail",
	"strandseq":        "StrandSeq",
	"10xgenomics":      "10XGenomics",
	"moleculo":         "Moleculo",
}

var refGenomes = Table{
	"grch38": "GRCh38",
	"hg38":   "GRCh38",
	"grch37": "GRCh37",
	"hs37d5": "GRCh37",
	"hg19":   "GRCh37",
	"chm13":  "CHM13",
}

var aligners = Table{
	"bwa":      "bwa",
	"bwamem":   "bwa",
	"bowtie2":  "bowtie2",
	"novalign": "novalign",
	"minimap2": "minimap2",
	"ngmlr":    "ngmlr",
	"pbmm2":    "pbmm2",
}

var variantCallers = Table{
	"varscan":         "VarScan",
	"mutect":          "Mutect2",
	"mutect2":         "Mutect2",
	"strelka":         "Strelka2",
	"strelka2":        "Strelka2",
	"deepvariant":     "deepvariant",
	"pbsv":            "pbsv",
	"gatk":            "GATK",
	"gatk4":           "GATK",
	"haplotypecaller": "GATK",
	"gatk_hc":         "GATK",
	"tardis":          "tardis",
	"mrcanavar":       "mrCaNaVar",
	"sniffles":        "sniffles",
	"rtg":             "rtg",
	"tnscope":         "tnscope",
	"longranger":      "LongRanger",
	"supernova":       "Supernova",
	"metasv":          "MetaSV",
	"krunch":          "Krunch",
	"fermikit":        "fermikit",
	"manta":           "manta",
	"snpeff":          "snpeff",
	"svaba":           "svaba",
	"discovar":        "DISCOVAR",
	"freebayes":       "freebayes",
	"pbhoney":         "PBHoney",
	"breakseq":        "breakseq",
	"cnvnator":        "cnvnator",
	"lumpy":           "lumpy",
	"palmer":          "PALMER",
	"parliament":      "Parliament",
	"scalpel":         "scalpel",
	"cgatools":        "CGAtools",
	"delly":           "delly",
	"tvc":             "TVC",
	"gangstr":         "GangSTR",
	"hipstr":          "HipSTR",
	"hysa":            "HySA",
	"breakscan":       "BreakScan",
	"assemblytics":    "Assemblytics",
	"jitterbug":       "Jitterbug",
}
