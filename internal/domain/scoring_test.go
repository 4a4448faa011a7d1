package domain

import (
	"testing"
)

func TestScoreName(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		target   string
		minScore float64
		maxScore float64
	}{
		{name: "exact match", query: "docs", target: "Docs", minScore: ScoreExactMatch, maxScore: ScoreExactMatch},
		{name: "prefix match", query: "doc", target: "Documents", minScore: ScorePrefixMatch, maxScore: ScorePrefixMatch},
		{name: "query longer than name", query: "docss", target: "docs", minScore: 1, maxScore: ScorePrefixMatch},
		{name: "substring match", query: "ment", target: "documents", minScore: ScoreSubstringMatch, maxScore: ScoreSubstringMatch + ScorePositionBonus},
		{name: "fuzzy match", query: "dcos", target: "docs", minScore: 1, maxScore: ScoreFuzzyMatch},
		{name: "no match", query: "xyz", target: "docs", minScore: 0, maxScore: 0},
		{name: "empty query", query: "", target: "docs", minScore: 0, maxScore: 0},
		{name: "punctuation ignored", query: "my-site", target: "MySite", minScore: ScoreExactMatch, maxScore: ScoreExactMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := ScoreName(tt.query, tt.target)
			if score < tt.minScore || score > tt.maxScore {
				t.Errorf("ScoreName(%q, %q) = %.2f, want [%.2f, %.2f]",
					tt.query, tt.target, score, tt.minScore, tt.maxScore)
			}
		})
	}
}

func TestRankCandidatesOrdersByScore(t *testing.T) {
	names := []string{"jellyseerr", "jellyfin", "traefik"}

	candidates := RankCandidates("jellyfin", names, nil)
	if len(candidates) == 0 {
		t.Fatal("RankCandidates() returned no candidates")
	}
	if candidates[0].Name != "jellyfin" {
		t.Errorf("top candidate = %q, want jellyfin", candidates[0].Name)
	}
	for _, c := range candidates {
		if c.Name == "traefik" {
			t.Errorf("traefik should not match jellyfin, score %.2f", c.TotalScore)
		}
	}
}

func TestRankCandidatesUsageBreaksTies(t *testing.T) {
	names := []string{"docs-work", "docs-home"}
	usage := map[string]int64{"docs-work": 50}

	candidates := RankCandidates("docs", names, usage)
	if len(candidates) != 2 {
		t.Fatalf("RankCandidates() = %d candidates, want 2", len(candidates))
	}
	if candidates[0].Name != "docs-work" {
		t.Errorf("top candidate = %q, want docs-work (higher usage)", candidates[0].Name)
	}
	if candidates[0].UsageScore <= 0 {
		t.Errorf("UsageScore = %.2f, want > 0", candidates[0].UsageScore)
	}
}

func TestRankCandidatesEqualScoresSortByName(t *testing.T) {
	candidates := RankCandidates("doc", []string{"docz", "doca"}, nil)
	if len(candidates) != 2 || candidates[0].Name != "doca" {
		t.Errorf("RankCandidates() order = %v, want doca first", candidates)
	}
}

func TestSuggestCapsResults(t *testing.T) {
	cfg := Configuration{
		"docs1": {Name: "docs1"},
		"docs2": {Name: "docs2"},
		"docs3": {Name: "docs3"},
		"docs4": {Name: "docs4"},
		"music": {Name: "music"},
	}

	got := Suggest("docs", cfg, nil)
	if len(got) != MaxSuggestions {
		t.Fatalf("Suggest() = %v, want %d names", got, MaxSuggestions)
	}
	for _, name := range got {
		if name == "music" {
			t.Error("Suggest() should not offer music for docs")
		}
	}
}

func TestSuggestNoMatches(t *testing.T) {
	got := Suggest("zzz", Configuration{"docs": {Name: "docs"}}, nil)
	if len(got) != 0 {
		t.Errorf("Suggest() = %v, want none", got)
	}
}
