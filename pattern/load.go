package pattern

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/sarchlab/benzene/hexerr"
)

// Load parses a ring pattern catalogue from r, using a flat line-oriented
// text file grammar: each record begins with a type tag (`v:` variation,
// `m:` miai) followed by six space-separated groups of five comma-separated
// signed integers (one per ring offset, in ring.go's canonical order), then
// any number of trailing tokens: a bare integer sets the pattern's weight,
// and a `moves=i,j` token (0-2 comma-separated ring-offset indices) sets its
// auxiliary move cells, resolved against ringOffsets at load time. A line
// consisting of a name followed by a colon (and nothing else) attaches that
// name to the next record. Any other non-blank, non-comment line is a
// malformed record and is rejected rather than skipped.
func Load(r io.Reader) (*Catalogue, error) {
	cat := &Catalogue{}
	scanner := bufio.NewScanner(r)

	pendingName := ""
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if tag, rest, ok := strings.Cut(line, ":"); ok && (tag == "v" || tag == "m") {
			p, err := parseRecord(tag, strings.TrimSpace(rest), lineNo)
			if err != nil {
				return nil, err
			}
			p.Name = pendingName
			pendingName = ""
			cat.Patterns = append(cat.Patterns, p)
			continue
		}

		if isNameLine(line) {
			pendingName = strings.TrimSuffix(line, ":")
			continue
		}

		return nil, hexerr.FileFormatf("pattern: unrecognised record at line %d: %q", lineNo, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cat, nil
}

func isNameLine(line string) bool {
	if len(line) == 0 || !strings.HasSuffix(line, ":") {
		return false
	}
	name := line[:len(line)-1]
	if name == "" {
		return false
	}
	c := name[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func parseRecord(tag, rest string, lineNo int) (Pattern, error) {
	fields := strings.Fields(rest)
	if len(fields) < 6 {
		return Pattern{}, hexerr.FileFormatf(
			"pattern: line %d: expected at least 6 offset groups, got %d fields",
			lineNo, len(fields))
	}

	var p Pattern
	if tag == "v" {
		p.Kind = Variation
	} else {
		p.Kind = Miai
	}

	idx := 0
	for _, group := range fields[:6] {
		values := strings.Split(group, ",")
		if len(values) != 5 {
			return Pattern{}, hexerr.FileFormatf(
				"pattern: line %d: offset group %q does not have 5 values", lineNo, group)
		}
		for _, v := range values {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return Pattern{}, hexerr.FileFormatf(
					"pattern: line %d: invalid integer %q: %v", lineNo, v, err)
			}
			p.Slots[idx] = slotFromInt(n)
			idx++
		}
	}

	for _, tok := range fields[6:] {
		if rest, ok := strings.CutPrefix(tok, "moves="); ok {
			moves, err := parseMoves(rest, lineNo)
			if err != nil {
				return Pattern{}, err
			}
			p.Moves = moves
			continue
		}
		w, err := strconv.Atoi(tok)
		if err != nil {
			return Pattern{}, hexerr.FileFormatf("pattern: line %d: invalid trailing token %q: %v", lineNo, tok, err)
		}
		p.Weight = w
	}

	return p, nil
}

func parseMoves(field string, lineNo int) ([][2]int, error) {
	if field == "" {
		return nil, nil
	}
	var moves [][2]int
	for _, tok := range strings.Split(field, ",") {
		i, err := strconv.Atoi(tok)
		if err != nil || i < 0 || i >= len(ringOffsets) {
			return nil, hexerr.FileFormatf("pattern: line %d: invalid move index %q", lineNo, tok)
		}
		moves = append(moves, ringOffsets[i])
	}
	return moves, nil
}
