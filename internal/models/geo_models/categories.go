package geo_models

// SuperCategory is one of the ten fixed display groupings.
type SuperCategory string

const (
	SuperHealthcare SuperCategory = "healthcare"
	SuperEducation  SuperCategory = "education"
	SuperShopping   SuperCategory = "shopping"
	SuperFoodDrink  SuperCategory = "food_drink"
	SuperTransport  SuperCategory = "transport"
	SuperFinancial  SuperCategory = "financial"
	SuperLeisure    SuperCategory = "leisure"
	SuperOffice     SuperCategory = "office"
	SuperCommunity  SuperCategory = "community"
	SuperOther      SuperCategory = "other"
)

// SuperCategoryDef couples a super-category with its display metadata and
// the keywords a raw category must contain to be assigned to it.
type SuperCategoryDef struct {
	Key         SuperCategory
	DisplayName string
	Color       string
	Patterns    []string
}

// SuperCategories is the classification rule table. It is evaluated
// top-to-bottom with first match winning; the declaration order is a
// contract for both classification precedence and chart ordering. "other"
// has no patterns and is the unconditional default. Read-only.
var SuperCategories = []SuperCategoryDef{
	{
		Key:         SuperHealthcare,
		DisplayName: "Healthcare",
		Color:       "#0088FE",
		Patterns:    []string{"hospital", "healthcare", "doctors", "pharmacy", "blood_bank", "optometrist", "alternative"},
	},
	{
		Key:         SuperEducation,
		DisplayName: "Education",
		Color:       "#00C49F",
		Patterns:    []string{"school", "college", "university", "kindergarten", "training", "language_school", "education"},
	},
	{
		Key:         SuperShopping,
		DisplayName: "Shopping",
		Color:       "#FFBB28",
		Patterns:    []string{"shop", "supermarket", "mall", "market", "bakery", "convenience"},
	},
	{
		Key:         SuperFoodDrink,
		DisplayName: "Food & Drink",
		Color:       "#FF8042",
		Patterns:    []string{"restaurant", "cafe", "pub", "bar", "fast_food", "food_court", "ice_cream"},
	},
	{
		Key:         SuperTransport,
		DisplayName: "Transport",
		Color:       "#AF19FF",
		Patterns:    []string{"bus", "train", "station", "taxi", "parking", "transport"},
	},
	{
		Key:         SuperFinancial,
		DisplayName: "Financial",
		Color:       "#FF1919",
		Patterns:    []string{"bank", "atm", "money", "financial", "insurance"},
	},
	{
		Key:         SuperLeisure,
		DisplayName: "Leisure",
		Color:       "#17BECF",
		Patterns:    []string{"leisure", "park", "garden", "playground", "swimming", "sports", "pitch", "track"},
	},
	{
		Key:         SuperOffice,
		DisplayName: "Office",
		Color:       "#9467BD",
		Patterns:    []string{"office", "administrative", "government", "estate_agent", "tax", "telecommunication"},
	},
	{
		Key:         SuperCommunity,
		DisplayName: "Community",
		Color:       "#D62728",
		Patterns:    []string{"community", "social", "public", "toilets", "drinking_water", "bench", "library"},
	},
	{
		Key:         SuperOther,
		DisplayName: "Other",
		Color:       "#7F7F7F",
		Patterns:    nil,
	},
}

// legacyPalette colors geometry features in the raw-category keyed mode.
// Independent from the super-category colors above; see DESIGN.md.
var legacyPalette = [...]string{
	"#0088FE", "#00C49F", "#FFBB28", "#FF8042", "#AF19FF", "#FF1919",
}

// PaletteColor returns the legacy palette color for the i-th raw category
// in insertion order, cycling when the palette is exhausted.
func PaletteColor(i int) string {
	return legacyPalette[i%len(legacyPalette)]
}
