package domain

import (
	"errors"
	"fmt"
)

// ErrShortcutNotFound is matched by every NotFoundError.
var ErrShortcutNotFound = errors.New("shortcut not found")

// NotFoundError reports a name absent from the configuration.
type NotFoundError struct {
	Name        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Shortcut %s is not defined.", e.Name)
}

func (e *NotFoundError) Unwrap() error { return ErrShortcutNotFound }

// MalformedLineError reports a shortcut file line without a ':' delimiter.
type MalformedLineError struct {
	Line int // 1-based, 0 when unknown
	Text string
}

func (e *MalformedLineError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: missing ':' delimiter: %q", e.Line, e.Text)
	}
	return fmt.Sprintf("missing ':' delimiter: %q", e.Text)
}

// LaunchError reports a target that is neither a directory, a file nor a URL.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("Invalid path: %s", e.Path)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// MalformedLines extracts every MalformedLineError from err, including joined errors.
func MalformedLines(err error) []*MalformedLineError {
	if err == nil {
		return nil
	}

	var out []*MalformedLineError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, MalformedLines(e)...)
		}
		return out
	}

	var mle *MalformedLineError
	if errors.As(err, &mle) {
		out = append(out, mle)
	}
	return out
}

// FileError reports an I/O failure on the shortcut file itself.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to %s shortcut file %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
