package redis

import "testing"

func TestUsageKeys(t *testing.T) {
	if got := UsageKey("Docs"); got != "lc:usage:Docs" {
		t.Errorf("UsageKey() = %q", got)
	}
	if got := LastUsedKey("Docs"); got != "lc:usage:last:Docs" {
		t.Errorf("LastUsedKey() = %q", got)
	}
	if got := AllUsageKey(); got != "lc:usage:all" {
		t.Errorf("AllUsageKey() = %q", got)
	}
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		key     string
		want    string
		wantErr bool
	}{
		{"lc:usage:Docs", "Docs", false},
		{"lc:usage:My Site", "My Site", false},
		{"lc:usage:", "", true},
		{"lc:usage:last:Docs", "", true},
		{"jump:service:x", "", true},
	}

	for _, tt := range tests {
		got, err := ExtractName(tt.key)
		if (err != nil) != tt.wantErr {
			t.Errorf("ExtractName(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ExtractName(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
