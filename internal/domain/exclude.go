package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/sjavac/internal/model"
)

type excludeRule struct {
	patterns []*regexp.Regexp
}

func parseExcludeRule(patterns []string) (excludeRule, error) {
	rule := excludeRule{patterns: make([]*regexp.Regexp, 0, len(patterns))}

	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		re, err := regexp.Compile(pattern)
		if err != nil {
			return excludeRule{}, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		rule.patterns = append(rule.patterns, re)
	}

	return rule, nil
}

// excludes matches against the full path and the slash-separated form so
// patterns behave the same on every platform.
func (r excludeRule) excludes(path m.Path) bool {
	full := string(path)
	slashed := filepath.ToSlash(full)

	for _, re := range r.patterns {
		if re.MatchString(full) || re.MatchString(slashed) {
			return true
		}
	}

	return false
}

func (r excludeRule) filter(sources []m.Source) []m.Source {
	if len(r.patterns) == 0 {
		return sources
	}

	kept := make([]m.Source, 0, len(sources))

	for _, source := range sources {
		if r.excludes(source.Path()) {
			continue
		}

		kept = append(kept, source)
	}

	return kept
}
