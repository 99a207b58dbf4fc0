package mail

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseRecipients reads a plain-text recipient list and splits it into a
// flat, ordered slice of addresses. Each line is split on sep and every
// token is trimmed of surrounding whitespace. Order is preserved and
// duplicates are kept; empty tokens (blank lines, consecutive separators,
// trailing separators) are dropped. Content never fails — only a read
// error from r is reported.
func ParseRecipients(r io.Reader, sep string) ([]string, error) {
	if sep == "" || sep == "\n" {
		sep = "\n"
	}

	var recipients []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if sep == "\n" {
			if line != "" {
				recipients = append(recipients, line)
			}
			continue
		}
		for _, token := range strings.Split(line, sep) {
			token = strings.TrimSpace(token)
			if token != "" {
				recipients = append(recipients, token)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read recipient list: %w", err)
	}
	return recipients, nil
}
