package usecase

import (
	"strings"

	"github.com/fixturematch/backend/internal/domain"
)

// wallFitTolerance is the equality band, in inches, for matching a wall's
// nominal length/width against a tub or base footprint.
const wallFitTolerance = 3.0

// Every predicate in this file is a pure boolean function, total over
// well-formed inputs. A missing field on either side makes the pair
// incompatible; predicates never return an error and never panic.

// seriesDirectory tabulates which candidate series each base series accepts.
// The membership tables are symmetric in practice for every pair the engine
// enumerates, but argument order is still fixed: the first argument is always
// the subject's series.
var seriesDirectory = map[string][]string{
	"Retail":       {"Retail", "MAAX"},
	"MAAX":         {"Retail", "MAAX", "Collection", "Professional"},
	"Collection":   {"MAAX", "Collection", "Professional"},
	"Professional": {"MAAX", "Collection", "Professional"},
}

// seriesCompatible reports whether a candidate's series is acceptable for a
// subject's series. Identical series always match, case-insensitively; an
// empty series on either side never matches.
func seriesCompatible(subjectSeries, candidateSeries string) bool {
	subjectSeries = strings.TrimSpace(subjectSeries)
	candidateSeries = strings.TrimSpace(candidateSeries)

	if subjectSeries == "" || candidateSeries == "" {
		return false
	}
	if strings.EqualFold(subjectSeries, candidateSeries) {
		return true
	}
	for _, accepted := range seriesDirectory[subjectSeries] {
		if accepted == candidateSeries {
			return true
		}
	}
	return false
}

// isDoorCategory reports whether the category holds doors.
func isDoorCategory(c domain.Category) bool {
	return c == domain.CategoryShowerDoors || c == domain.CategoryTubDoors
}

// isOpeningCategory reports whether the category holds products with an
// opening a door must cover.
func isOpeningCategory(c domain.Category) bool {
	switch c {
	case domain.CategoryBathtubs, domain.CategoryShowers, domain.CategoryTubShowers, domain.CategoryShowerBases:
		return true
	}
	return false
}

// doorRoles splits a subject/candidate pair into its door and opening sides
// regardless of lookup direction. Returns ok=false when the pair does not
// consist of exactly one door and one opening.
func doorRoles(subject, candidate *domain.Product) (door, opening *domain.Product, ok bool) {
	switch {
	case isDoorCategory(subject.Category) && isOpeningCategory(candidate.Category):
		return subject, candidate, true
	case isOpeningCategory(subject.Category) && isDoorCategory(candidate.Category):
		return candidate, subject, true
	}
	return nil, nil, false
}

// wallRoles splits a subject/candidate pair into its wall and opening sides.
func wallRoles(subject, candidate *domain.Product) (wall, opening *domain.Product, ok bool) {
	switch {
	case subject.Category == domain.CategoryWalls && isOpeningCategory(candidate.Category):
		return subject, candidate, true
	case isOpeningCategory(subject.Category) && candidate.Category == domain.CategoryWalls:
		return candidate, subject, true
	}
	return nil, nil, false
}

// doorWidthContainment holds when the opening's maximum door width falls
// inside the door's adjustable width range, inclusive at both ends.
func doorWidthContainment(subject, candidate *domain.Product) bool {
	door, opening, ok := doorRoles(subject, candidate)
	if !ok {
		return false
	}
	minW := door.Dimensions.MinWidth
	maxW := door.Dimensions.MaxWidth
	w := opening.Dimensions.MaxDoorWidth
	if minW == nil || maxW == nil || w == nil {
		return false
	}
	return *minW <= *w && *w <= *maxW
}

// doorHeightFit holds when the opening accepts doors at least as tall as the
// candidate door.
func doorHeightFit(subject, candidate *domain.Product) bool {
	door, opening, ok := doorRoles(subject, candidate)
	if !ok {
		return false
	}
	h := door.Dimensions.MaxHeight
	maxH := opening.Dimensions.MaxDoorHeight
	if h == nil || maxH == nil {
		return false
	}
	return *maxH >= *h
}

// alcoveInstallation gates door matching on the opening side being an
// alcove installation.
func alcoveInstallation(subject, candidate *domain.Product) bool {
	_, opening, ok := doorRoles(subject, candidate)
	if !ok {
		return false
	}
	return opening.Installation == domain.InstallAlcove
}

// showerDoorKind holds when the door side's descriptive type mentions
// "shower". Falls back to the product name when the source data carried no
// type column for the row.
func showerDoorKind(subject, candidate *domain.Product) bool {
	door, _, ok := doorRoles(subject, candidate)
	if !ok {
		return false
	}
	kind := door.Kind
	if kind == "" {
		kind = door.Name
	}
	return strings.Contains(strings.ToLower(kind), "shower")
}

// wallDimensionFit holds when the wall's nominal length and width each fall
// within the equality band around the opening's footprint.
func wallDimensionFit(subject, candidate *domain.Product) bool {
	wall, opening, ok := wallRoles(subject, candidate)
	if !ok {
		return false
	}
	wl, ww := wall.Dimensions.Length, wall.Dimensions.Width
	ol, ow := opening.Dimensions.Length, opening.Dimensions.Width
	if wl == nil || ww == nil || ol == nil || ow == nil {
		return false
	}
	return withinBand(*ol, *wl, wallFitTolerance) && withinBand(*ow, *ww, wallFitTolerance)
}

func withinBand(a, b, tolerance float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}

// doorTypeKeywords is the classification tie-break order: the first keyword
// found in the product name wins.
var doorTypeKeywords = []struct {
	keywords []string
	doorType domain.DoorType
}{
	{[]string{"sliding"}, domain.DoorTypeSliding},
	{[]string{"pivot"}, domain.DoorTypePivot},
	{[]string{"hinged", "swing"}, domain.DoorTypeHinged},
	{[]string{"bypass"}, domain.DoorTypeBypass},
	{[]string{"corner"}, domain.DoorTypeCorner},
	{[]string{"round"}, domain.DoorTypeRound},
	{[]string{"square"}, domain.DoorTypeSquare},
}

// classifyDoorType resolves a product's door type for combo synthesis: the
// explicit classification when present, otherwise keyword matching against
// the product name.
func classifyDoorType(p *domain.Product) domain.DoorType {
	if p.DoorType != "" {
		return p.DoorType
	}
	name := strings.ToLower(p.Name)
	for _, entry := range doorTypeKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(name, kw) {
				return entry.doorType
			}
		}
	}
	return domain.DoorTypeStandard
}

// comboDoorTypeCompatible reports whether a wall and a door may form a combo
// pair. The classifications must agree; a wall classified Standard carries no
// door-type constraint and pairs with any door.
func comboDoorTypeCompatible(wall, door *domain.Product) bool {
	wt := classifyDoorType(wall)
	if wt == domain.DoorTypeStandard {
		return true
	}
	return wt == classifyDoorType(door)
}

// comboDimensionFit holds when one of the wall's spans falls inside the
// combo door's adjustable range, inclusive at both ends. Either orientation
// counts: the door covers whichever wall side faces the opening.
func comboDimensionFit(wall, door *domain.Product) bool {
	minW := door.Dimensions.MinWidth
	maxW := door.Dimensions.MaxWidth
	if minW == nil || maxW == nil {
		return false
	}
	for _, span := range []*float64{wall.Dimensions.Length, wall.Dimensions.Width} {
		if span != nil && *minW <= *span && *span <= *maxW {
			return true
		}
	}
	return false
}
