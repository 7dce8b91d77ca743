package input

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Kind identifies how the raw input argument was classified.
type Kind int

// Input classification variants, in precedence order.
const (
	// KindCommaList is a comma-separated domain list such as "a.com,b.com".
	KindCommaList Kind = iota

	// KindFilePath is a path to an existing file with one domain per line.
	KindFilePath

	// KindLiteral is a single domain given directly on the command line.
	KindLiteral
)

// String returns a human-readable name for the classification.
func (k Kind) String() string {
	switch k {
	case KindCommaList:
		return "comma list"
	case KindFilePath:
		return "file"
	case KindLiteral:
		return "literal domain"
	default:
		return "unknown"
	}
}

// Classify determines how the raw input should be interpreted.
// Precedence is fixed: a comma anywhere in the string always wins, even if
// a file of that exact name exists; otherwise an existing regular file wins
// over the literal interpretation.
//
// Design decision: classification is an explicit three-way decision rather
// than attempt-to-open-and-recover control flow. The comma-over-file
// precedence is documented behavior, not an accident to be fixed.
func Classify(raw string) Kind {
	if strings.Contains(raw, ",") {
		return KindCommaList
	}
	if info, err := os.Stat(raw); err == nil && info.Mode().IsRegular() {
		return KindFilePath
	}
	return KindLiteral
}

// Parse classifies the raw input and expands it into a domain list.
// Each domain is trimmed of surrounding whitespace; blank entries from a
// file are skipped. The returned kind reports which interpretation won.
func Parse(raw string) ([]string, Kind, error) {
	kind := Classify(raw)

	switch kind {
	case KindCommaList:
		parts := strings.Split(raw, ",")
		domains := make([]string, 0, len(parts))
		for _, part := range parts {
			domains = append(domains, strings.TrimSpace(part))
		}
		return domains, kind, nil

	case KindFilePath:
		domains, err := readDomainFile(raw)
		if err != nil {
			return nil, kind, err
		}
		return domains, kind, nil

	default:
		return []string{strings.TrimSpace(raw)}, KindLiteral, nil
	}
}

// readDomainFile reads one domain per line, skipping blank lines.
func readDomainFile(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open domain file: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	var domains []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		domains = append(domains, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read domain file: %w", err)
	}

	return domains, nil
}
