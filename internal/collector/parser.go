package collector

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// sectionPattern matches a section header: a bracketed, quoted label on a
// line of its own, e.g. ["parity"] or ["disk3"].
var sectionPattern = regexp.MustCompile(`^\["(.*)"\]$`)

// ParseSections scans the status file line by line and hands one RawRecord
// per section to emit, in file order.
//
// The previous section is flushed when the next header appears, and the
// final section is flushed explicitly once the input is exhausted - that
// last flush is load-bearing, since no trailing header follows the last
// section in the file. Key/value lines seen before the first header belong
// to no section and are dropped.
func ParseSections(r io.Reader, emit func(RawRecord)) error {
	var current RawRecord // nil until the first header

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if m := sectionPattern.FindStringSubmatch(line); m != nil {
			if current != nil {
				emit(current)
			}
			current = RawRecord{}
			// The label doubles as the disk name; an explicit
			// name= key inside the section overrides it.
			if m[1] != "" {
				current.set(keyName, m[1])
			}
			continue
		}

		if current == nil {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"`)
		current.set(strings.TrimSpace(key), value)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if current != nil {
		emit(current)
	}
	return nil
}
