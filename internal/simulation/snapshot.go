package simulation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"robotarena-sim/internal/common"
)

// Save serializes the arena as text: "<width> <height>" on the first line, then one
// "<Kind> <x> <y> <radius>" line per item in insertion order. Headings, speeds and
// sensor memory are not persisted.
func (a *Arena) Save() string {
	var sb strings.Builder
	sb.WriteString(formatNumber(a.width))
	sb.WriteByte(' ')
	sb.WriteString(formatNumber(a.height))
	sb.WriteByte('\n')

	for _, it := range a.items {
		fmt.Fprintf(&sb, "%s %s %s %s\n", it.kind,
			formatNumber(it.pos.X), formatNumber(it.pos.Y), formatNumber(it.radius))
	}
	return sb.String()
}

// formatNumber writes the shortest decimal that parses back to v, always with a fractional part.
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Load replaces the arena contents with a snapshot produced by Save.
//
// A missing or invalid dimension line aborts the load and leaves the arena untouched.
// Otherwise the arena is cleared, resized and refilled; item lines that cannot be used
// (unknown type, wrong field count, bad numbers, non-positive radius) are skipped and
// returned as *ParseError values. Every loaded agent starts with fresh behaviour state.
func (a *Arena) Load(data string) ([]error, error) {
	lines := strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n")

	first := -1
	for i, l := range lines {
		if strings.TrimSpace(l) != "" {
			first = i
			break
		}
	}
	if first < 0 {
		a.logf("load aborted: %v", ErrEmptySnapshot)
		return nil, ErrEmptySnapshot
	}

	width, height, err := parseDimensions(lines[first])
	if err != nil {
		perr := &ParseError{Line: first + 1, Text: lines[first], Err: err}
		a.logf("load aborted: %v", perr)
		return nil, perr
	}

	a.Clear()
	a.width, a.height = width, height
	a.ticks = 0

	var skipped []error
	for i := first + 1; i < len(lines); i++ {
		text := lines[i]
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := a.loadItemLine(text); err != nil {
			perr := &ParseError{Line: i + 1, Text: text, Err: err}
			a.logf("load: skipping %v", perr)
			skipped = append(skipped, perr)
		}
	}
	return skipped, nil
}

func parseDimensions(line string) (float64, float64, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: want \"<width> <height>\", got %d fields", ErrMalformedLine, len(fields))
	}
	width, err := parseNumber(fields[0])
	if err != nil {
		return 0, 0, err
	}
	height, err := parseNumber(fields[1])
	if err != nil {
		return 0, 0, err
	}
	if err := validateDimensions(width, height); err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

func (a *Arena) loadItemLine(text string) error {
	fields := strings.Fields(text)
	if len(fields) != 4 {
		return fmt.Errorf("%w: want \"<Kind> <x> <y> <radius>\", got %d fields", ErrMalformedLine, len(fields))
	}
	kind, err := ParseKind(fields[0])
	if err != nil {
		return err
	}

	var nums [3]float64
	for i, f := range fields[1:] {
		if nums[i], err = parseNumber(f); err != nil {
			return err
		}
	}
	_, err = a.insert(kind, common.NewVec(nums[0], nums[1]), nums[2])
	return err
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not a finite number", ErrMalformedLine, s)
	}
	return v, nil
}
