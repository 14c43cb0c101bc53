package usecase

import (
	"github.com/fixturematch/backend/internal/domain"
)

// ReasonAllExcluded is the category-level reason set when blacklist entries
// empty an otherwise-nonempty result.
const ReasonAllExcluded = "all matches excluded by override"

// OverrideResolver applies curated whitelist/blacklist entries on top of a
// computed result. A whitelist-replace entry overrides the whole result,
// including any computed incompatibility reason; blacklist entries only
// subtract. That ordering is load-bearing and must not change.
type OverrideResolver struct{}

// NewOverrideResolver creates an override resolver.
func NewOverrideResolver() *OverrideResolver {
	return &OverrideResolver{}
}

// Resolve returns the final result for a subject/category pair after
// applying the snapshot's override entries to the computed result.
func (r *OverrideResolver) Resolve(cat domain.CatalogReader, subjectID string, category domain.Category, computed domain.MatchResult) domain.MatchResult {
	entries := cat.Overrides(subjectID, category)
	if len(entries) == 0 {
		return computed
	}

	var whitelists, blacklists []domain.OverrideEntry
	for _, e := range entries {
		switch e.Effect {
		case domain.OverrideWhitelistReplace:
			whitelists = append(whitelists, e)
		case domain.OverrideBlacklistExclude:
			blacklists = append(blacklists, e)
		}
	}

	if len(whitelists) > 0 {
		return r.replace(cat, category, computed, whitelists)
	}
	if len(blacklists) > 0 {
		return r.exclude(computed, blacklists)
	}
	return computed
}

// replace discards the computed result entirely and substitutes the listed
// targets in their listed order. A listed id absent from the catalog is
// silently dropped, never fatal.
func (r *OverrideResolver) replace(cat domain.CatalogReader, category domain.Category, computed domain.MatchResult, entries []domain.OverrideEntry) domain.MatchResult {
	result := domain.MatchResult{Category: category, Applicable: computed.Applicable}
	seen := make(map[string]bool)
	for _, e := range entries {
		for _, id := range e.TargetIDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			p, err := cat.Get(id)
			if err != nil {
				continue
			}
			result.Matches = append(result.Matches, domain.Match{Product: p, Ranking: p.Rank()})
		}
	}
	return result
}

// exclude removes the listed target ids from the computed result. A combo is
// removed when either of its members is listed. Emptying a nonempty result
// marks the category incompatible.
func (r *OverrideResolver) exclude(computed domain.MatchResult, entries []domain.OverrideEntry) domain.MatchResult {
	excluded := make(map[string]bool)
	for _, e := range entries {
		for _, id := range e.TargetIDs {
			excluded[id] = true
		}
	}

	hadMatches := len(computed.Matches) > 0
	kept := computed.Matches[:0:0]
	for _, m := range computed.Matches {
		if excluded[m.Product.ID] {
			continue
		}
		if m.Secondary != nil && excluded[m.Secondary.ID] {
			continue
		}
		kept = append(kept, m)
	}

	computed.Matches = kept
	if hadMatches && len(kept) == 0 {
		computed.Reason = ReasonAllExcluded
	}
	return computed
}
