package pairs

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMalformedFile indicates truncated or inconsistent persistence data.
var ErrMalformedFile = errors.New("pairs: malformed file")

// SaveBinary writes the container in binary form: a little-endian int64
// pair count followed by (birth, death) int64 values.
func (p *Pairs) SaveBinary(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, int64(len(p.data))); err != nil {
		return err
	}
	for _, pair := range p.data {
		if err := binary.Write(bw, binary.LittleEndian, pair.Birth); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, pair.Death); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// LoadBinary replaces the container's content from binary form.
func (p *Pairs) LoadBinary(r io.Reader) error {
	br := bufio.NewReader(r)

	var count int64
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return fmt.Errorf("%w: reading pair count: %w", ErrMalformedFile, err)
	}
	if count < 0 {
		return fmt.Errorf("%w: negative pair count %d", ErrMalformedFile, count)
	}

	data := make([]Pair, 0, count)
	for i := int64(0); i < count; i++ {
		var pair [2]int64
		if err := binary.Read(br, binary.LittleEndian, &pair); err != nil {
			return fmt.Errorf("%w: reading pair %d of %d: %w", ErrMalformedFile, i, count, err)
		}
		data = append(data, Pair{Birth: pair[0], Death: pair[1]})
	}

	p.data = data
	return nil
}

// SaveASCII writes one "birth death" line per pair, newline-terminated.
func (p *Pairs) SaveASCII(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, pair := range p.data {
		if _, err := fmt.Fprintf(bw, "%d %d\n", pair.Birth, pair.Death); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// LoadASCII replaces the container's content from text form.
func (p *Pairs) LoadASCII(r io.Reader) error {
	var data []Pair

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrMalformedFile, line, len(fields))
		}
		birth, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrMalformedFile, line, err)
		}
		death, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: line %d: %w", ErrMalformedFile, line, err)
		}
		data = append(data, Pair{Birth: birth, Death: death})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedFile, err)
	}

	p.data = data
	return nil
}

// SaveBinaryFile saves the container to a binary file.
func (p *Pairs) SaveBinaryFile(name string) error {
	return p.saveFile(name, p.SaveBinary)
}

// LoadBinaryFile loads the container from a binary file.
func (p *Pairs) LoadBinaryFile(name string) error {
	return p.loadFile(name, p.LoadBinary)
}

// SaveASCIIFile saves the container to a text file.
func (p *Pairs) SaveASCIIFile(name string) error {
	return p.saveFile(name, p.SaveASCII)
}

// LoadASCIIFile loads the container from a text file.
func (p *Pairs) LoadASCIIFile(name string) error {
	return p.loadFile(name, p.LoadASCII)
}

func (p *Pairs) saveFile(name string, save func(io.Writer) error) error {
	f, err := os.Create(name) //nolint:gosec // G304: path is caller-provided
	if err != nil {
		return err
	}
	if err := save(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (p *Pairs) loadFile(name string, load func(io.Reader) error) error {
	f, err := os.Open(name) //nolint:gosec // G304: path is caller-provided
	if err != nil {
		return err
	}
	defer f.Close()
	return load(f)
}
