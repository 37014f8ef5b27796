package shopping

// Category is the closed set of grocery aisles an item can belong to.
type Category string

const (
	CategoryProduce   Category = "produce"
	CategoryDairy     Category = "dairy"
	CategoryMeat      Category = "meat"
	CategoryBakery    Category = "bakery"
	CategoryFrozen    Category = "frozen"
	CategoryBeverages Category = "beverages"
	CategoryHousehold Category = "household"
	CategoryPantry    Category = "pantry"
)

// ParsedItem is the structured inference result for one shopping-list entry.
type ParsedItem struct {
	Name     string   `json:"name"`
	Quantity float64  `json:"quantity"` // defaults to 1
	Unit     string   `json:"unit,omitempty"`
	Category Category `json:"category"` // always resolved, defaults to pantry
}
