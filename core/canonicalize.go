package core

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ParseParticipants reads the one-name-per-line participant format.
// Surrounding whitespace is trimmed from every line and blank or
// whitespace-only lines are dropped, so the file can contain spacing for
// readability without affecting the draw.
func ParseParticipants(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read participant list: %w", err)
	}
	return names, nil
}

// Canonicalize normalizes a raw participant list into the canonical form all
// hashing and shuffling operate on: names trimmed, blanks dropped, then
// sorted ascending by exact byte content. Duplicate names are kept as
// distinct adjacent slots, each carrying equal weight.
//
// The result is a pure function of the input multiset: permuting the input
// never changes the output, which is what makes the published commitment
// independent of file ordering.
//
// Returns ErrEmptyParticipantList when nothing usable remains.
func Canonicalize(names []string) ([]string, error) {
	canonical := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		canonical = append(canonical, name)
	}
	if len(canonical) == 0 {
		return nil, ErrEmptyParticipantList
	}
	sort.Strings(canonical)
	return canonical, nil
}
