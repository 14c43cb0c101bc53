package domain

// OverrideEffect selects what an override entry does to a computed result.
type OverrideEffect string

const (
	// OverrideWhitelistReplace discards the computed result for the
	// subject/category pair and substitutes the listed targets.
	OverrideWhitelistReplace OverrideEffect = "whitelist-replace"

	// OverrideBlacklistExclude removes the listed targets from an
	// otherwise-computed result.
	OverrideBlacklistExclude OverrideEffect = "blacklist-exclude"
)

// OverrideEntry is a manually curated exception that forces or forbids
// specific pairings, superseding computed rules. Entries are versioned with
// the catalog snapshot they apply to.
type OverrideEntry struct {
	SubjectID string         `json:"subject_id"`
	Category  Category       `json:"category"`
	Effect    OverrideEffect `json:"effect"`
	TargetIDs []string       `json:"target_ids"`
}
