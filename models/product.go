package models

// Ingredient is one row of a formula panel: what's in the scoop and why.
type Ingredient struct {
	Name    string `json:"name"`
	Amount  string `json:"amount"`
	Benefit string `json:"benefit"`
}

// Product is an immutable catalog entry. The catalog is defined at process
// start and never mutated at runtime; prices are whole rupees.
type Product struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Price       int          `json:"price"`
	Image       string       `json:"image"`
	ImageURL    string       `json:"image_url"`
	Images      []string     `json:"images"`
	Description string       `json:"description"`
	Ingredients []Ingredient `json:"ingredients"`
	Servings    int          `json:"servings"`
	Rating      float64      `json:"rating"`
	Reviews     int          `json:"reviews"`
	InStock     bool         `json:"in_stock"`
	Available   bool         `json:"available"`
}
