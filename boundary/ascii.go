package boundary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// SaveASCII writes one line per column: the cell dimension followed by the
// space-separated row indices, newline-terminated, no header.
func (m *Matrix) SaveASCII(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := int64(0); i < m.NumColumns(); i++ {
		if _, err := fmt.Fprintf(bw, "%d", m.dims[i]); err != nil {
			return err
		}
		for _, r := range m.store.GetColumn(i) {
			if _, err := fmt.Fprintf(bw, " %d", r); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// LoadASCII replaces the matrix content from text form.
func (m *Matrix) LoadASCII(r io.Reader) error {
	var (
		cols [][]int64
		dims []int64
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		dim, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: line %d: bad dimension: %w", ErrMalformedFile, line, err)
		}
		col := make([]int64, 0, len(fields)-1)
		for _, f := range fields[1:] {
			row, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: line %d: bad row index: %w", ErrMalformedFile, line, err)
			}
			col = append(col, row)
		}
		dims = append(dims, dim)
		cols = append(cols, col)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedFile, err)
	}

	return m.Load(cols, dims)
}

// SaveASCIIFile saves the matrix to a text file.
func (m *Matrix) SaveASCIIFile(name string) error {
	f, err := os.Create(name) //nolint:gosec // G304: path is caller-provided
	if err != nil {
		return err
	}
	if err := m.SaveASCII(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// LoadASCIIFile loads the matrix from a text file.
func (m *Matrix) LoadASCIIFile(name string) error {
	f, err := os.Open(name) //nolint:gosec // G304: path is caller-provided
	if err != nil {
		return err
	}
	defer f.Close()
	return m.LoadASCII(f)
}
