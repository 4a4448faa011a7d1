package domain

import (
	"encoding/json"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected ShortcutType
	}{
		{name: "empty path", path: "", expected: DiskLocation},
		{name: "windows folder", path: `C:\Users\me\Documents`, expected: DiskLocation},
		{name: "unix file", path: "/home/me/notes.txt", expected: DiskLocation},
		{name: "https url", path: "https://example.com", expected: URL},
		{name: "http url", path: "http://localhost:8080", expected: URL},
		{name: "bare http prefix", path: "httpfoo", expected: URL},
		{name: "executable", path: `C:\Tools\app.exe`, expected: Executable},
		{name: "verbatim", path: "!notepad", expected: Verbatim},
		{name: "monitored verbatim", path: "!?ping 127.0.0.1", expected: Verbatim},
		{name: "verbatim wins over url", path: "!https://example.com", expected: Verbatim},
		{name: "verbatim wins over exe", path: "!tool.exe", expected: Verbatim},
		{name: "url wins over exe", path: "http://example.com/setup.exe", expected: URL},
		{name: "exe suffix is case sensitive", path: `C:\Tools\APP.EXE`, expected: DiskLocation},
		{name: "leading space is not verbatim", path: " !cmd", expected: DiskLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.path); got != tt.expected {
				t.Errorf("Classify(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestClassifyPrefixProperties(t *testing.T) {
	suffixes := []string{"", "x", "http", ".exe", "?", " spaced value", "!"}

	for _, x := range suffixes {
		if got := Classify("!" + x); got != Verbatim {
			t.Errorf("Classify(%q) = %v, want Verbatim", "!"+x, got)
		}
		if got := Classify("http" + x); got != URL {
			t.Errorf("Classify(%q) = %v, want URL", "http"+x, got)
		}
		if got := Classify("dir/" + x + ".exe"); got != Executable {
			t.Errorf("Classify(%q) = %v, want Executable", "dir/"+x+".exe", got)
		}
	}
}

func TestShortcutTypeString(t *testing.T) {
	tests := []struct {
		typ      ShortcutType
		expected string
	}{
		{Executable, "Executable"},
		{DiskLocation, "DiskLocation"},
		{URL, "URL"},
		{Verbatim, "Verbatim"},
		{ShortcutType(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.expected {
			t.Errorf("ShortcutType(%d).String() = %q, want %q", int(tt.typ), got, tt.expected)
		}
	}
}

func TestShortcutTypeIsDerivedFromPath(t *testing.T) {
	s := Shortcut{Name: "Site", Path: "https://example.com"}
	if !s.IsURL() {
		t.Error("IsURL() = false, want true")
	}
	if s.IsExecutable() {
		t.Error("IsExecutable() = true, want false")
	}

	s.Path = `C:\Tools\app.exe`
	if s.Type() != Executable {
		t.Errorf("Type() = %v after path change, want Executable", s.Type())
	}
}

func TestShortcutTypeMarshalsByName(t *testing.T) {
	data, err := json.Marshal(struct {
		Type ShortcutType `json:"type"`
	}{Type: URL})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `{"type":"URL"}` {
		t.Errorf("json.Marshal() = %s, want {\"type\":\"URL\"}", data)
	}
}

func TestConfigurationSorted(t *testing.T) {
	cfg := Configuration{
		"b": {Name: "b", Path: "2"},
		"a": {Name: "a", Path: "1"},
		"c": {Name: "c", Path: "3"},
	}

	sorted := cfg.Sorted()
	if len(sorted) != 3 {
		t.Fatalf("Sorted() returned %d shortcuts, want 3", len(sorted))
	}
	for i, want := range []string{"a", "b", "c"} {
		if sorted[i].Name != want {
			t.Errorf("Sorted()[%d].Name = %q, want %q", i, sorted[i].Name, want)
		}
	}
}

func TestShortcutLine(t *testing.T) {
	s := Shortcut{Name: "Docs", Path: `C:\Users\me\Documents`}
	if got := s.Line(); got != `Docs: C:\Users\me\Documents` {
		t.Errorf("Line() = %q", got)
	}
}
