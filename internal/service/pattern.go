package service

import (
	"strings"

	"github.com/gbabichev/Simple-Renamer/internal/domain"
	"github.com/gbabichev/Simple-Renamer/internal/port"
)

// PatternService narrows a working set by filename pattern. Filtering never
// changes the batch scope, it only drops items.
type PatternService struct {
	pm port.PatternMatcher
}

func NewPatternService(pm port.PatternMatcher) *PatternService {
	return &PatternService{pm: pm}
}

// MatchItems keeps the items whose name stem matches pattern. An empty
// pattern keeps everything. Matching runs against the stem (name without
// extension) so shortcuts like [alpha] don't accidentally match ".jpg".
func (s *PatternService) MatchItems(items []domain.Item, pattern string) ([]domain.Item, error) {
	if pattern == "" {
		return items, nil
	}

	expanded := s.pm.ExpandShortcuts(pattern)

	var matched []domain.Item
	for _, it := range items {
		stem := strings.TrimSuffix(it.Name, it.Extension)
		ok, err := s.pm.Match(expanded, stem)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, it)
		}
	}
	return matched, nil
}
