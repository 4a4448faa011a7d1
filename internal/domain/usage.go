package domain

import (
	"sort"
	"time"
)

// UsageStat is how often and when a shortcut was last launched.
type UsageStat struct {
	Name     string    `json:"name" yaml:"name"`
	Count    int64     `json:"count" yaml:"count"`
	LastUsed time.Time `json:"last_used,omitempty" yaml:"last_used,omitempty"`
}

// SortUsage orders stats by count descending, then by name.
func SortUsage(stats []UsageStat) {
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Name < stats[j].Name
	})
}

// UsageCounts indexes stats by name, the shape RankCandidates expects.
func UsageCounts(stats []UsageStat) map[string]int64 {
	counts := make(map[string]int64, len(stats))
	for _, s := range stats {
		counts[s.Name] = s.Count
	}
	return counts
}
