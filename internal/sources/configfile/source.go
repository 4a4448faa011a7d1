// Package configfile reads and appends the flat shortcut file.
// The file on disk is the only source of truth: every Load parses it again.
package configfile

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/MrSnakeDoc/lc/internal/domain"
	"github.com/MrSnakeDoc/lc/internal/utils"
)

// maxLineSize bounds a single shortcut line.
const maxLineSize = 1 << 20

// utf8BOM is written by some Windows editors at the start of the file.
const utf8BOM = "\ufeff"

// Source reads and writes one shortcut file.
type Source struct {
	filePath string
}

// NewSource creates a Source for filePath.
func NewSource(filePath string) *Source {
	return &Source{
		filePath: filePath,
	}
}

// Path returns the shortcut file path.
func (s *Source) Path() string {
	return s.filePath
}

// Load reads the whole file into a Configuration.
// When only some lines are malformed, the Configuration is returned together
// with the joined MalformedLineErrors.
func (s *Source) Load() (domain.Configuration, error) {
	lines, err := s.ReadLines()
	if err != nil {
		return nil, err
	}
	return domain.ParseConfiguration(lines)
}

// ReadLines returns the raw lines of the file.
func (s *Source) ReadLines() ([]string, error) {
	f, err := os.Open(s.filePath)
	if err != nil {
		return nil, s.fileErr("read", err)
	}
	defer utils.Close(f)

	lines, err := readLines(f)
	if err != nil {
		return nil, s.fileErr("scan", err)
	}
	return lines, nil
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) > 0 {
		lines[0] = strings.TrimPrefix(lines[0], utf8BOM)
	}
	return lines, nil
}

// Append writes each shortcut as a "Name: Path" line at the end of the file.
// There is no validation and no duplicate check; a later line simply wins on the next Load.
func (s *Source) Append(shortcuts ...domain.Shortcut) error {
	if len(shortcuts) == 0 {
		return nil
	}

	f, err := os.OpenFile(s.filePath, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return s.fileErr("open", err)
	}

	needsNewline, err := endsWithoutNewline(f)
	if err != nil {
		utils.Close(f)
		return s.fileErr("inspect", err)
	}

	w := bufio.NewWriter(f)
	if needsNewline {
		_ = w.WriteByte('\n')
	}
	for _, sc := range shortcuts {
		_, _ = w.WriteString(sc.Line())
		_ = w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil {
		utils.Close(f)
		return s.fileErr("append to", err)
	}
	if err := f.Close(); err != nil {
		return s.fileErr("close", err)
	}
	return nil
}

func (s *Source) fileErr(op string, err error) error {
	return &domain.FileError{Op: op, Path: s.filePath, Err: err}
}

// endsWithoutNewline reports whether a non-empty file lacks a trailing '\n'.
func endsWithoutNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] != '\n', nil
}
