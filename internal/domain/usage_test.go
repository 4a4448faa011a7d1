package domain

import "testing"

func TestSortUsage(t *testing.T) {
	stats := []UsageStat{
		{Name: "b", Count: 2},
		{Name: "c", Count: 5},
		{Name: "a", Count: 2},
	}

	SortUsage(stats)

	want := []string{"c", "a", "b"}
	for i, name := range want {
		if stats[i].Name != name {
			t.Fatalf("SortUsage() order = %v, want %v", stats, want)
		}
	}
}

func TestUsageCounts(t *testing.T) {
	counts := UsageCounts([]UsageStat{{Name: "Docs", Count: 3}, {Name: "Site", Count: 1}})
	if counts["Docs"] != 3 || counts["Site"] != 1 || len(counts) != 2 {
		t.Errorf("UsageCounts() = %v", counts)
	}
}
