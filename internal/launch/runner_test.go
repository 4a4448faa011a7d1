package launch

import (
	"bufio"
	"strings"
	"testing"
)

func TestScanOutputLines(t *testing.T) {
	long := strings.Repeat("x", maxLineChunk+10)

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"newlines", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"carriage returns", "10%\r50%\r100%\n", []string{"10%", "50%", "100%"}},
		{"trailing carriage return", "a\r", []string{"a"}},
		{"empty lines kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"exact chunk", strings.Repeat("y", maxLineChunk) + "\nz\n", []string{strings.Repeat("y", maxLineChunk), "z"}},
		{"long line chunked", long + "\nend\n", []string{long[:maxLineChunk], long[maxLineChunk:], "end"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scanner := bufio.NewScanner(strings.NewReader(tt.input))
			scanner.Buffer(make([]byte, 0, 16), 2*maxLineChunk)
			scanner.Split(scanOutputLines)

			var got []string
			for scanner.Scan() {
				got = append(got, scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				t.Fatalf("Scan() error = %v", err)
			}
			if !equalStrings(got, tt.want) {
				t.Errorf("lines = %d %q, want %d", len(got), truncate(got), len(tt.want))
			}
		})
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Command{Program: "xdg-open", Args: []string{"/x"}}, "xdg-open /x"},
		{Command{Program: "true"}, "true"},
		{Command{Program: "explorer.exe", Line: `/select,"C:\x"`}, `explorer.exe /select,"C:\x"`},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func truncate(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		if len(l) > 20 {
			l = l[:20] + "..."
		}
		out[i] = l
	}
	return out
}
