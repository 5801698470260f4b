package diskspace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// ParseLine parses one "<blocks><whitespace><path>" line.
// The path is everything after the whitespace run, so names may contain spaces.
func ParseLine(line string) (Measurement, error) {
	line = strings.TrimRight(line, "\r\n")
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)

	digits := strings.IndexFunc(trimmed, func(r rune) bool { return r < '0' || r > '9' })
	if digits == 0 || trimmed == "" {
		return Measurement{}, errors.New("missing leading block count")
	}

	if digits < 0 {
		return Measurement{}, errors.New("missing path")
	}

	rest := trimmed[digits:]

	path := strings.TrimLeftFunc(rest, unicode.IsSpace)
	if len(path) == len(rest) {
		return Measurement{}, errors.New("missing separator after block count")
	}

	if path == "" {
		return Measurement{}, errors.New("missing path")
	}

	blocks, err := strconv.ParseInt(trimmed[:digits], 10, 64)
	if err != nil {
		return Measurement{}, fmt.Errorf("parsing block count: %w", err)
	}

	return Measurement{Blocks: blocks, Path: path}, nil
}

// ParseMeasurements reads du-style output from r, one measurement per line.
// Malformed lines are reported to warn, when set, and skipped.
func ParseMeasurements(r io.Reader, warn func(error)) ([]Measurement, error) {
	var measurements []Measurement

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0

	for scanner.Scan() {
		lineNo++

		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		m, err := ParseLine(text)
		if err != nil {
			if warn != nil {
				warn(&ParseError{Line: lineNo, Text: text, Reason: err.Error()})
			}

			continue
		}

		measurements = append(measurements, m)
	}

	if err := scanner.Err(); err != nil {
		return measurements, fmt.Errorf("reading measurements: %w", err)
	}

	return measurements, nil
}
