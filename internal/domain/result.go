package domain

// Match is one compatible offering: either a single product or a combo pair
// that must be presented together.
type Match struct {
	Product *Product `json:"product"`

	// Secondary is set for combo pairs (e.g. the door a wall panel was
	// designed for). Neither member is independently sufficient.
	Secondary *Product `json:"secondary_product,omitempty"`
	IsCombo   bool     `json:"is_combo"`

	// Ranking is the displayed ranking: the product's own for plain
	// matches, min(main, secondary) for combos.
	Ranking int `json:"ranking"`
}

// MatchResult is the outcome of matching one subject against one target
// category.
type MatchResult struct {
	Category Category `json:"category"`
	Matches  []Match  `json:"products,omitempty"`

	// Reason explains a category-level incompatibility when no match
	// exists. A result with matches never carries a reason.
	Reason string `json:"reason,omitempty"`

	// Applicable is false when the category pair has no defined predicate
	// chain at all; distinct from "computed but zero matches".
	Applicable bool `json:"-"`
}

// Lookup is the full directory answer for one subject product.
type Lookup struct {
	Product     *Product      `json:"product"`
	Compatibles []MatchResult `json:"compatibles"`
}
