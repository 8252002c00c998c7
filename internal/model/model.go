package model

// Item is a wishlist entry. IDs are assigned by the server on create and are
// stable afterwards; the client never invents one.
type Item struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	URL      string  `json:"url"`
}

// Category pairs a category name with its display accent color.
type Category struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// DefaultCategory is preselected in the add form.
const DefaultCategory = "Casa"

// NeutralColor is used for category names the client does not know
// (the server may grow categories ahead of the client).
const NeutralColor = "#9ca3af"

// Categories is the fixed category set. Read-only after init.
var Categories = []Category{
	{Name: "Casa", Color: "#f87171"},
	{Name: "Svago", Color: "#60a5fa"},
	{Name: "Scrivania", Color: "#34d399"},
	{Name: "Libri", Color: "#fbbf24"},
}

// LookupCategory resolves a category name against the fixed set.
// Unknown names resolve to a neutral-colored category so rendering
// never fails on data the server knows about but this build does not.
func LookupCategory(name string) Category {
	for _, c := range Categories {
		if c.Name == name {
			return c
		}
	}
	return Category{Name: name, Color: NeutralColor}
}

// CategoryNames returns the names of the fixed set, in display order.
func CategoryNames() []string {
	out := make([]string, 0, len(Categories))
	for _, c := range Categories {
		out = append(out, c.Name)
	}
	return out
}

// ValidCategory reports whether name is in the fixed set.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c.Name == name {
			return true
		}
	}
	return false
}
