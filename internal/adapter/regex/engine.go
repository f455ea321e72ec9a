package regex

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gbabichev/Simple-Renamer/internal/domain"
)

// Engine implements port.PatternMatcher using Go's regexp package.
type Engine struct{}

// shortcuts maps user-friendly tokens to regex fragments so filters like
// "img[number]" work without regex knowledge.
var shortcuts = map[string]string{
	"[number]": `(\d+)`,
	"[any]":    `(.*)`,
	"[word]":   `(\w+)`,
	"[alpha]":  `([a-zA-Z]+)`,
}

func (e *Engine) ExpandShortcuts(pattern string) string {
	expanded := pattern
	for token, fragment := range shortcuts {
		expanded = strings.ReplaceAll(expanded, token, fragment)
	}
	return expanded
}

func (e *Engine) Match(pattern, name string) (bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, fmt.Errorf("%w: %s", domain.ErrInvalidPattern, err)
	}
	return re.MatchString(name), nil
}
