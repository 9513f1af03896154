package token

import (
	"bytes"
	"fmt"
	"os"
)

// File is a named source with a table of line offsets, used to map
// positions back to source lines in diagnostics.
type File struct {
	Name  string
	Src   []byte
	Lines []int // Byte offset of the first character of each line
	Err   error // Set by NewFile when the source could not be loaded
}

// NewFile creates a File from src, which may be a string or []byte. If src
// is nil the file is read from disk. Errors are stored in File.Err so the
// result is always usable.
func NewFile(filename string, src any) *File {
	f := &File{Name: filename}
	f.Src, f.Err = loadSource(filename, src)
	f.Lines = lineOffsets(f.Src)
	return f
}

func loadSource(filename string, src any) ([]byte, error) {
	switch src := src.(type) {
	case nil:
		return os.ReadFile(filename)
	case string:
		return []byte(src), nil
	case []byte:
		return src, nil
	}
	return nil, fmt.Errorf("invalid src type %T", src)
}

// Line returns the text of the given row (line number -1) without its line
// ending. Rows outside the file give an empty string.
func (f *File) Line(row int) string {
	if row < 0 || row >= len(f.Lines) {
		return ""
	}

	line := f.Src[f.Lines[row]:]
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return string(bytes.TrimSuffix(line, []byte("\r")))
}

// A trailing newline does not start a new line.
func lineOffsets(src []byte) []int {
	lines := []int{}
	if len(src) == 0 {
		return lines
	}

	lines = append(lines, 0)
	for i, c := range src {
		if c == '\n' && i+1 < len(src) {
			lines = append(lines, i+1)
		}
	}
	return lines
}
