package domain

// Category identifies one of the fixed product categories in the catalog.
type Category string

const (
	CategoryBathtubs    Category = "Bathtubs"
	CategoryShowers     Category = "Showers"
	CategoryTubShowers  Category = "Tub Showers"
	CategoryShowerBases Category = "Shower Bases"
	CategoryWalls       Category = "Walls"
	CategoryShowerDoors Category = "Shower Doors"
	CategoryTubDoors    Category = "Tub Doors"
)

// AllCategories lists every category in the fixed directory iteration order.
// The order is stable so lookup output is reproducible for identical catalogs.
var AllCategories = []Category{
	CategoryBathtubs,
	CategoryShowers,
	CategoryTubShowers,
	CategoryShowerBases,
	CategoryWalls,
	CategoryShowerDoors,
	CategoryTubDoors,
}

// Installation is the optional installation type of a tub, shower or base.
type Installation string

const (
	InstallAlcove Installation = "Alcove"
	InstallCorner Installation = "Corner"
	InstallDropIn Installation = "Drop-in"
)

// DoorType classifies a door for combo synthesis.
type DoorType string

const (
	DoorTypeSliding  DoorType = "Sliding"
	DoorTypePivot    DoorType = "Pivot"
	DoorTypeHinged   DoorType = "Hinged"
	DoorTypeBypass   DoorType = "Bypass"
	DoorTypeCorner   DoorType = "Corner"
	DoorTypeRound    DoorType = "Round"
	DoorTypeSquare   DoorType = "Square"
	DoorTypeStandard DoorType = "Standard"
)

// RankingSentinel is the ranking assumed for products without one.
// Lower ranking means higher display priority, so an unranked product
// sorts after every explicitly ranked product below 999.
const RankingSentinel = 999

// Dimensions holds the category-specific numeric attributes of a product.
// Pointer fields distinguish "absent" from zero: a rule comparing against an
// absent bound must evaluate to incompatible, never to always-true.
type Dimensions struct {
	// Door fields: the opening width range a door can cover and its height.
	MinWidth  *float64 `json:"min_width,omitempty"`
	MaxWidth  *float64 `json:"max_width,omitempty"`
	MaxHeight *float64 `json:"max_height,omitempty"`

	// Tub/shower/base fields: the opening a door must cover.
	MaxDoorWidth  *float64 `json:"max_door_width,omitempty"`
	MaxDoorHeight *float64 `json:"max_door_height,omitempty"`

	// Footprint, used for wall matching.
	Length *float64 `json:"length,omitempty"`
	Width  *float64 `json:"width,omitempty"`

	RequiredDeckWidth *float64 `json:"required_deck_width,omitempty"`
}

// Product is one catalog entry. ID is unique across all categories and a
// product belongs to exactly one category for the lifetime of a snapshot.
type Product struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`

	Name   string `json:"name"`
	Brand  string `json:"brand,omitempty"`
	Series string `json:"series,omitempty"`
	Family string `json:"family,omitempty"`

	// Kind is the descriptive type string from the source data,
	// e.g. "Sliding Shower Door" or "Alcove Shower Wall".
	Kind string `json:"kind,omitempty"`

	Dimensions   Dimensions   `json:"dimensions"`
	Installation Installation `json:"installation_type,omitempty"`

	// DoorType is an explicit classification; when empty it is derived
	// from the product name for combo synthesis.
	DoorType DoorType `json:"door_type,omitempty"`

	// Ranking orders display results; nil is treated as RankingSentinel.
	Ranking *int `json:"ranking,omitempty"`

	// Incompatibilities maps a target category to the curated reason no
	// product in it can fit this one (e.g. "designed for tiled walls").
	Incompatibilities map[Category]string `json:"incompatibility_reasons,omitempty"`

	// Passthrough display metadata, never consulted by matching logic.
	ImageURL       string `json:"image_url,omitempty"`
	ProductPageURL string `json:"product_page_url,omitempty"`
}

// Rank returns the product's ranking, substituting the sentinel when absent.
func (p *Product) Rank() int {
	if p == nil || p.Ranking == nil {
		return RankingSentinel
	}
	return *p.Ranking
}
