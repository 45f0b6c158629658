// Package lexicon holds the canonical sentiment marker sets and their
// substring matchers. Sets are fixed at construction and shared read-only
// by every consumer; matching is case-insensitive substring containment,
// not word-boundary matching, so a marker also fires inside larger words.
// Thresholds elsewhere in the pipeline were tuned against these semantics.
package lexicon

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// Set is an immutable group of phrase markers with an Aho-Corasick
// matcher built once over all markers.
type Set struct {
	name    string
	markers []string
	matcher *ahocorasick.Matcher
}

func newSet(name string, markers []string) Set {
	return Set{
		name:    name,
		markers: markers,
		matcher: ahocorasick.NewStringMatcher(markers),
	}
}

// Name returns the indicator set name.
func (s Set) Name() string { return s.name }

// Size returns the number of markers in the set.
func (s Set) Size() int { return len(s.markers) }

// Count returns how many distinct markers appear as substrings of text.
// Text must already be folded with Fold.
func (s Set) Count(text string) int {
	return len(s.matcher.Match([]byte(text)))
}

// Contains reports whether at least one marker appears in text.
// Text must already be folded with Fold.
func (s Set) Contains(text string) bool {
	return s.Count(text) > 0
}

// Matched returns the distinct markers present in text, for diagnostics.
// Text must already be folded with Fold.
func (s Set) Matched(text string) []string {
	hits := s.matcher.Match([]byte(text))
	out := make([]string, 0, len(hits))
	for _, idx := range hits {
		if idx >= 0 && idx < len(s.markers) {
			out = append(out, s.markers[idx])
		}
	}
	return out
}

// Fold normalizes text for marker matching. Plain ASCII lowercase
// folding only; no locale-dependent transforms.
func Fold(text string) string {
	return strings.ToLower(text)
}

// Lexicon bundles every indicator set used by the pipeline. A single
// value is constructed at startup and shared by reference.
type Lexicon struct {
	Negative        Set
	Positive        Set
	Neutral         Set
	MixedStructure  Set
	ExtremeNegative Set
	Success         Set
	Limitation      Set
	HardNegative    Set
}

// New builds the canonical lexicon.
func New() *Lexicon {
	return &Lexicon{
		Negative:        newSet("negative", negativeMarkers),
		Positive:        newSet("positive", positiveMarkers),
		Neutral:         newSet("neutral", neutralMarkers),
		MixedStructure:  newSet("mixed_structure", mixedStructureMarkers),
		ExtremeNegative: newSet("extreme_negative", extremeNegativeMarkers),
		Success:         newSet("success", successMarkers),
		Limitation:      newSet("limitation", limitationMarkers),
		HardNegative:    newSet("hard_negative", hardNegativeMarkers),
	}
}

// Sets returns every indicator set, for introspection endpoints.
func (l *Lexicon) Sets() []Set {
	return []Set{
		l.Negative, l.Positive, l.Neutral,
		l.MixedStructure, l.ExtremeNegative,
		l.Success, l.Limitation, l.HardNegative,
	}
}
