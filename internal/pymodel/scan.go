package pymodel

import (
	"regexp"
	"strings"
)

var (
	// classRe matches a top-level class header with an optional single parent.
	classRe = regexp.MustCompile(`^class ([A-Za-z_]\w*)(?:\(([A-Za-z_]\w*)\))?:\s*$`)

	// fieldRe matches "name: type" or "name: type = default" with the line
	// indentation already stripped. The type submatch is everything before
	// the first "=", so defaults may themselves contain "=" (e.g.
	// "field(default_factory=dict)").
	fieldRe = regexp.MustCompile(`^([A-Za-z_]\w*):\s+([^=]+?)(?:\s*=\s*(.+?))?\s*$`)
)

type srcLine struct {
	text       string
	start, end int
}

// ParseField parses a single field declaration with its indentation already
// stripped. The second return value reports whether the line matches the
// convention.
func ParseField(line string) (Field, bool) {
	m := fieldRe.FindStringSubmatch(line)
	if m == nil {
		return Field{}, false
	}

	f := Field{
		Name: m[1],
		Type: strings.TrimSpace(m[2]),
	}
	if m[3] != "" {
		f.Default = m[3]
		f.HasDefault = true
	}

	return f, true
}

// Scan extracts every record definition from generated source text.
//
// A record is a "@dataclass" marker line followed by a class header and an
// indented body. Body lines that are not field declarations (docstrings,
// "pass", comments) contribute no fields but still belong to the record's
// span. Anything else in the source is left untouched by not being reported.
func Scan(src string) []Record {
	var records []Record

	lines := splitLines(src)

	for i := 0; i < len(lines); i++ {
		if strings.TrimSpace(lines[i].text) != "@dataclass" {
			continue
		}

		// Blank lines may sit between the marker and the header.
		j := i + 1
		for j < len(lines) && strings.TrimSpace(lines[j].text) == "" {
			j++
		}

		if j >= len(lines) {
			break
		}

		m := classRe.FindStringSubmatch(lines[j].text)
		if m == nil {
			// Marker without a matching header. Skip silently.
			continue
		}

		rec := Record{
			Name:   m[1],
			Parent: m[2],
			Start:  lines[i].start,
			End:    lines[j].end,
		}

		// Body: indented lines up to the next top-level line. Trailing blank
		// lines stay outside the span so inter-record spacing survives
		// splicing.
		k := j + 1
		for ; k < len(lines); k++ {
			text := lines[k].text
			trimmed := strings.TrimSpace(text)

			if trimmed == "" {
				continue
			}

			if text[0] != ' ' && text[0] != '\t' {
				break
			}

			rec.End = lines[k].end

			if f, ok := ParseField(trimmed); ok {
				rec.Fields = append(rec.Fields, f)
			}
		}

		records = append(records, rec)
		i = k - 1
	}

	return records
}

// splitLines splits src into lines while keeping byte offsets. The terminating
// newline is excluded from each line's span.
func splitLines(src string) []srcLine {
	var lines []srcLine

	start := 0

	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lines = append(lines, srcLine{text: src[start:i], start: start, end: i})
			start = i + 1
		}
	}

	if start < len(src) {
		lines = append(lines, srcLine{text: src[start:], start: start, end: len(src)})
	}

	return lines
}
