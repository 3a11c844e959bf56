package stores

import "github.com/sanyamChaudhary27/project-panther/models"

// Well-known catalog ids
const (
	ProductCore    = "panther-core"
	ProductExtreme = "panther-extreme"
	ProductElite   = "panther-elite"
)

// The Panther pre-workout line. Prices in whole rupees.
var catalog = []models.Product{
	{
		ID:       ProductCore,
		Name:     "Panther Core",
		Price:    1999,
		Image:    "🔥",
		ImageURL: "https://images.unsplash.com/photo-1593095948071-474c5cc2989d?w=400&h=400&fit=crop",
		Images: []string{
			"https://images.unsplash.com/photo-1593095948071-474c5cc2989d?w=600&h=600&fit=crop",
			"https://images.unsplash.com/photo-1579758682665-53a1a614eea6?w=600&h=600&fit=crop",
			"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=600&h=600&fit=crop",
		},
		Description: "Balanced intensity for consistent performance. Perfect for daily training.",
		Ingredients: []models.Ingredient{
			{Name: "Caffeine", Amount: "250mg", Benefit: "Balanced Energy"},
			{Name: "Citrulline Malate", Amount: "5g", Benefit: "Muscle Pumps"},
			{Name: "Beta-Alanine", Amount: "2.5g", Benefit: "Extended Sets"},
			{Name: "Creatine Monohydrate", Amount: "1.5g", Benefit: "Strength"},
		},
		Servings:  30,
		Rating:    4.8,
		Reviews:   342,
		InStock:   true,
		Available: true,
	},
	{
		ID:       ProductExtreme,
		Name:     "Panther Extreme",
		Price:    2499,
		Image:    "⚡",
		ImageURL: "https://images.unsplash.com/photo-1579758682665-53a1a614eea6?w=400&h=400&fit=crop",
		Images:   []string{},
		Description: "Maximum intensity formula for extreme training sessions.",
		Ingredients: []models.Ingredient{
			{Name: "Caffeine", Amount: "400mg", Benefit: "Maximum Energy"},
			{Name: "Citrulline Malate", Amount: "8g", Benefit: "Intense Pumps"},
			{Name: "Beta-Alanine", Amount: "3.5g", Benefit: "Endurance"},
			{Name: "Creatine Monohydrate", Amount: "2.5g", Benefit: "Max Strength"},
		},
		Servings:  30,
		Rating:    4.7,
		Reviews:   198,
		InStock:   false,
		Available: false,
	},
	{
		ID:       ProductElite,
		Name:     "Panther Elite",
		Price:    2999,
		Image:    "💎",
		ImageURL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=400&fit=crop",
		Images:   []string{},
		Description: "Premium formula with advanced ingredients for elite athletes.",
		Ingredients: []models.Ingredient{
			{Name: "Caffeine Anhydrous", Amount: "300mg", Benefit: "Pure Energy"},
			{Name: "Citrulline Malate", Amount: "10g", Benefit: "Elite Pumps"},
			{Name: "Beta-Alanine", Amount: "4g", Benefit: "Peak Performance"},
			{Name: "Creatine Monohydrate", Amount: "3g", Benefit: "Elite Strength"},
		},
		Servings:  40,
		Rating:    4.9,
		Reviews:   287,
		InStock:   false,
		Available: false,
	},
}
