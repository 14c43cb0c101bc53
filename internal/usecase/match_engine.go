package usecase

import (
	"sort"

	"github.com/fixturematch/backend/internal/domain"
)

// Engine matches one subject product against one target category: it
// enumerates the category's candidates, evaluates the pair's predicate
// chain, ranks survivors, synthesizes combo pairs where the pair is
// combo-eligible, and applies overrides as the final step.
//
// Match is a deterministic pure function of the snapshot it reads: an
// unchanged snapshot yields byte-identical ordered output.
type Engine struct {
	overrides *OverrideResolver
}

// NewEngine creates a match engine.
func NewEngine(overrides *OverrideResolver) *Engine {
	return &Engine{overrides: overrides}
}

// Match resolves the subject against every candidate in the target category.
// A pair with no defined predicate chain returns a non-applicable result,
// which is not an error and carries no reason.
func (e *Engine) Match(cat domain.CatalogReader, subject *domain.Product, target domain.Category) domain.MatchResult {
	chain, ok := chainFor(subject.Category, target)
	if !ok {
		return domain.MatchResult{Category: target}
	}

	computed := domain.MatchResult{Category: target, Applicable: true}

	if reason, blocked := subject.Incompatibilities[target]; blocked && reason != "" {
		// Curated category-level incompatibility: skip computation. A
		// whitelist override can still supersede the reason below.
		computed.Reason = reason
		return e.overrides.Resolve(cat, subject.ID, target, computed)
	}

	survivors := e.survivors(cat, subject, target, chain)
	for _, p := range survivors {
		computed.Matches = append(computed.Matches, domain.Match{Product: p, Ranking: p.Rank()})
	}

	// Stable sort on ranking only: ties keep catalog insertion order.
	sort.SliceStable(computed.Matches, func(i, j int) bool {
		return computed.Matches[i].Ranking < computed.Matches[j].Ranking
	})

	if partner, comboEligible := comboPartners[categoryPair{subject.Category, target}]; comboEligible {
		combos := e.synthesizeCombos(cat, subject, survivors, partner)
		computed.Matches = append(computed.Matches, combos...)
	}

	return e.overrides.Resolve(cat, subject.ID, target, computed)
}

// survivors returns the target category's candidates that pass every
// predicate in the chain, in catalog insertion order. Malformed candidates
// simply fail a predicate; they never abort the resolution.
func (e *Engine) survivors(cat domain.CatalogReader, subject *domain.Product, target domain.Category, chain []predicateID) []*domain.Product {
	var out []*domain.Product
candidates:
	for _, candidate := range cat.ListByCategory(target) {
		for _, id := range chain {
			if !predicateRegistry[id](subject, candidate) {
				continue candidates
			}
		}
		out = append(out, candidate)
	}
	return out
}

// synthesizeCombos pairs each surviving wall with each of the subject's
// surviving partner doors that agree on door type and fit each other
// dimensionally. The wall is the main member; combos sort by displayed
// ranking, then main ranking, then secondary ranking, and are appended after
// the plain results, never interleaved.
func (e *Engine) synthesizeCombos(cat domain.CatalogReader, subject *domain.Product, walls []*domain.Product, partner domain.Category) []domain.Match {
	partnerChain, ok := chainFor(subject.Category, partner)
	if !ok {
		return nil
	}
	if _, blocked := subject.Incompatibilities[partner]; blocked {
		return nil
	}
	doors := e.survivors(cat, subject, partner, partnerChain)
	if len(doors) == 0 {
		return nil
	}

	var combos []domain.Match
	for _, wall := range walls {
		for _, door := range doors {
			if !comboDoorTypeCompatible(wall, door) {
				continue
			}
			if !comboDimensionFit(wall, door) {
				continue
			}
			combos = append(combos, domain.Match{
				Product:   wall,
				Secondary: door,
				IsCombo:   true,
				Ranking:   minInt(wall.Rank(), door.Rank()),
			})
		}
	}

	sort.SliceStable(combos, func(i, j int) bool {
		a, b := combos[i], combos[j]
		if a.Ranking != b.Ranking {
			return a.Ranking < b.Ranking
		}
		if a.Product.Rank() != b.Product.Rank() {
			return a.Product.Rank() < b.Product.Rank()
		}
		return a.Secondary.Rank() < b.Secondary.Rank()
	})
	return combos
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
