package service

import (
	"log/slog"
	"slices"

	"github.com/gbabichev/Simple-Renamer/internal/domain"
)

// PlannerService turns a working set and a template into an ordered rename
// plan with proposed names assigned.
type PlannerService struct {
	log *slog.Logger
}

func NewPlannerService() *PlannerService {
	return &PlannerService{log: slog.Default()}
}

// Plan parses template and assigns sequence numbers. Grouped file batches
// are partitioned by owning subfolder with the sequence restarting at the
// template's start value in every group; flat batches number the items in
// their current in-memory order across the whole set. The returned group
// and item order governs both preview and execution. An empty working set
// produces an empty plan.
func (s *PlannerService) Plan(items []domain.Item, scope domain.BatchScope, template string, grouped bool) *domain.RenamePlan {
	tmpl := domain.ParseTemplate(template)
	plan := &domain.RenamePlan{Scope: scope, Template: tmpl}
	if len(items) == 0 {
		return plan
	}

	isFile := scope == domain.ScopeFiles

	if grouped && isFile && items[0].Group != "" {
		plan.Groups = groupedPlan(items, tmpl)
	} else {
		flat := slices.Clone(items)
		for i := range flat {
			flat[i].ProposedName = tmpl.Name(i, flat[i].Extension, isFile)
		}
		plan.Groups = []domain.PlanGroup{{Key: "", Items: flat}}
	}

	s.log.Info("plan computed",
		"template", template,
		"scope", scope.String(),
		"group_count", len(plan.Groups),
		"item_count", plan.Len())
	return plan
}

// groupedPlan partitions items by owning subfolder, orders groups and their
// members naturally, and numbers each group independently.
func groupedPlan(items []domain.Item, tmpl domain.Template) []domain.PlanGroup {
	byGroup := make(map[string][]domain.Item)
	var keys []string
	for _, it := range items {
		if _, seen := byGroup[it.Group]; !seen {
			keys = append(keys, it.Group)
		}
		byGroup[it.Group] = append(byGroup[it.Group], it)
	}
	domain.SortNames(keys)

	groups := make([]domain.PlanGroup, 0, len(keys))
	for _, key := range keys {
		members := byGroup[key]
		domain.SortItems(members)
		for i := range members {
			members[i].ProposedName = tmpl.Name(i, members[i].Extension, true)
		}
		groups = append(groups, domain.PlanGroup{Key: key, Items: members})
	}
	return groups
}
