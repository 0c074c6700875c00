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

package seqtech

import (
	"github.com/willf/bitset"
)

// A Classification is the outcome of matching a sample of read names
// against the classifier grammars. It is created fresh per file and not
// modified afterwards.
type Classification struct {
	// Technology is the canonical label of the winning grammar, or
	// TechUnknown when no sampled read matched any grammar. Unknown is
	// a normal outcome, not a failure.
	Technology string

	// Fields holds the merged metadata extracted from the reads that
	// matched the winning grammar.
	Fields Fields

	// ReadsSampled and ReadsMatched record the classification evidence:
	// how many read names were inspected, and how many of them matched
	// the winning grammar.
	ReadsSampled int
	ReadsMatched int
}

// Classify determines the sequencing technology of a file from a sample
// of its read names. Each read is matched by the first grammar in
// ClassifierGrammars that recognizes it; the grammar with the most
// matching reads wins, and ties resolve to the earlier grammar. Fields
// are then extracted from every read that matched the winning grammar.
// An empty sample, or a sample in which no read matches any grammar,
// classifies as TechUnknown with empty fields.
func Classify(readNames []string) Classification {
	result := Classification{
		Technology:   TechUnknown,
		Fields:       Fields{},
		ReadsSampled: len(readNames),
	}
	if len(readNames) == 0 {
		return result
	}

	matched := make([]*bitset.BitSet, len(ClassifierGrammars))
	for i := range matched {
		matched[i] = bitset.New(uint(len(readNames)))
	}
	for i, name := range readNames {
		for j, g := range ClassifierGrammars {
			if g.Recognize(name) {
				matched[j].Set(uint(i))
				break
			}
		}
	}

	winner := -1
	var winnerCount uint
	for j := range ClassifierGrammars {
		if count := matched[j].Count(); count > winnerCount {
			winner, winnerCount = j, count
		}
	}
	if winner < 0 {
		return result
	}

	g := ClassifierGrammars[winner]
	perRead := make([]Fields, 0, winnerCount)
	for i, e := matched[winner].NextSet(0); e; i, e = matched[winner].NextSet(i + 1) {
		if fields := g.Extract(readNames[i]); fields != nil {
			perRead = append(perRead, fields)
		}
	}

	result.Technology = g.Name()
	result.Fields = Reduce(g, perRead)
	result.ReadsMatched = int(winnerCount)
	return result
}
