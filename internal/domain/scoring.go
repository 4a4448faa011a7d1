package domain

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

const (
	// Scoring weights
	ScoreExactMatch     = 100.0
	ScorePrefixMatch    = 75.0
	ScoreSubstringMatch = 50.0
	ScoreFuzzyMatch     = 25.0

	// Position bonus (earlier is better)
	ScorePositionBonus = 10.0

	// Usage weight (launch counter contributes to final score)
	ScoreUsageWeight = 0.1

	// MaxSuggestions caps the names offered for an unknown shortcut.
	MaxSuggestions = 3
)

// Candidate is a shortcut name with its match score.
type Candidate struct {
	Name         string
	LexicalScore float64
	UsageScore   float64
	TotalScore   float64
}

// ScoreName scores a configured shortcut name against a queried name.
func ScoreName(query, name string) float64 {
	query = normalizeName(query)
	name = normalizeName(name)

	if query == "" || name == "" {
		return 0.0
	}

	if query == name {
		return ScoreExactMatch
	}

	if strings.HasPrefix(name, query) {
		return ScorePrefixMatch
	}

	// Queried name longer than the shortcut, e.g. "docss" for "docs"
	if strings.HasPrefix(query, name) {
		return ScorePrefixMatch * float64(len(name)) / float64(len(query))
	}

	if idx := strings.Index(name, query); idx >= 0 {
		// Earlier substring matches get higher score
		bonus := ScorePositionBonus * (1.0 - float64(idx)/float64(len(name)))
		return ScoreSubstringMatch + bonus
	}

	similarity := calculateSimilarity(query, name)
	if similarity > 0.5 {
		return ScoreFuzzyMatch * similarity
	}

	return 0.0
}

// RankCandidates ranks names by lexical score plus a logarithmic usage score.
// usage may be nil.
func RankCandidates(query string, names []string, usage map[string]int64) []*Candidate {
	candidates := make([]*Candidate, 0, len(names))

	for _, name := range names {
		lexicalScore := ScoreName(query, name)
		if lexicalScore == 0.0 {
			continue
		}

		// Logarithmic to prevent dominance
		usageScore := 0.0
		if count := usage[name]; count > 0 {
			usageScore = math.Log10(float64(count)+1) * ScoreUsageWeight * 100
		}

		candidates = append(candidates, &Candidate{
			Name:         name,
			LexicalScore: lexicalScore,
			UsageScore:   usageScore,
			TotalScore:   lexicalScore + usageScore,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].TotalScore != candidates[j].TotalScore {
			return candidates[i].TotalScore > candidates[j].TotalScore
		}
		return candidates[i].Name < candidates[j].Name
	})

	return candidates
}

// Suggest returns up to MaxSuggestions configured names close to query.
func Suggest(query string, cfg Configuration, usage map[string]int64) []string {
	candidates := RankCandidates(query, cfg.Names(), usage)
	if len(candidates) > MaxSuggestions {
		candidates = candidates[:MaxSuggestions]
	}

	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.Name)
	}
	return names
}

// calculateSimilarity is the ratio of characters of s1 found in s2.
func calculateSimilarity(s1, s2 string) float64 {
	if s1 == "" || s2 == "" {
		return 0.0
	}

	matches := 0
	total := 0
	for _, c := range s1 {
		total++
		if strings.ContainsRune(s2, c) {
			matches++
		}
	}

	return float64(matches) / float64(total)
}

// normalizeName lowercases and keeps only letters and digits.
func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
}
