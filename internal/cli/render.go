package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/lc/internal/domain"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

type shortcutRow struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
	Path string `json:"path" yaml:"path"`
}

type statRow struct {
	Name     string     `json:"name" yaml:"name"`
	Count    int64      `json:"count" yaml:"count"`
	LastUsed *time.Time `json:"lastUsed,omitempty" yaml:"lastUsed,omitempty"`
}

// renderer prints result sets as a table, JSON or YAML.
type renderer struct {
	out    io.Writer
	format string
}

func newRenderer(out io.Writer, format string) (*renderer, error) {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return &renderer{out: out, format: format}, nil
	default:
		return nil, &usageError{msg: fmt.Sprintf("Invalid argument: --format %s (use table, json or yaml)", format)}
	}
}

func (r *renderer) Shortcuts(shortcuts []domain.Shortcut) error {
	rows := make([]shortcutRow, 0, len(shortcuts))
	for _, s := range shortcuts {
		rows = append(rows, shortcutRow{Name: s.Name, Type: s.Type().String(), Path: s.Path})
	}

	if r.format != formatTable {
		return r.encode(rows)
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{row.Name, row.Type, row.Path})
	}
	return r.table([]string{"Name", "Type", "Path"}, cells)
}

func (r *renderer) Stats(stats []domain.UsageStat) error {
	rows := make([]statRow, 0, len(stats))
	for _, s := range stats {
		row := statRow{Name: s.Name, Count: s.Count}
		if !s.LastUsed.IsZero() {
			t := s.LastUsed
			row.LastUsed = &t
		}
		rows = append(rows, row)
	}

	if r.format != formatTable {
		return r.encode(rows)
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		last := "-"
		if row.LastUsed != nil {
			last = row.LastUsed.Local().Format(time.DateTime)
		}
		cells = append(cells, []string{row.Name, fmt.Sprint(row.Count), last})
	}
	return r.table([]string{"Name", "Count", "Last used"}, cells)
}

func (r *renderer) encode(v any) error {
	switch r.format {
	case formatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
}

// table aligns the columns first and colors the header afterwards so escape
// codes do not skew the widths.
func (r *renderer) table(header []string, rows [][]string) error {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	rule := make([]string, len(header))
	for i, h := range header {
		rule[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))
	fmt.Fprintln(w, strings.Join(rule, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	head, rest, _ := strings.Cut(buf.String(), "\n")
	bold := color.New(color.FgWhite, color.Bold)
	if _, err := fmt.Fprintln(r.out, bold.Sprint(strings.TrimRight(head, " "))); err != nil {
		return err
	}
	_, err := io.WriteString(r.out, rest)
	return err
}
