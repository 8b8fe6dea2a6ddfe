package rules

import (
	"github.com/shopspring/decimal"

	"github.com/Deepak11085/Expenses-measure/internal/models"
)

// builtinCatalog returns the default ordered rule table. The order matters:
// earlier rules win when a description matches several keyword sets.
func builtinCatalog() []models.CategoryRule {
	return []models.CategoryRule{
		{
			Category: "Food & Dining",
			Keywords: []string{"zomato", "swiggy", "uber eats", "dominos", "mcdonald", "kfc", "pizza", "restaurant", "cafe", "food", "dining", "eat", "meal"},
			Color:    "#EF4444",
			Icon:     models.IconUtensils,
			Budget:   decimal.NewFromInt(1000),
		},
		{
			Category: "Shopping",
			Keywords: []string{"amazon", "flipkart", "myntra", "nykaa", "shopping", "retail", "store", "mall", "purchase", "buy"},
			Color:    "#8B5CF6",
			Icon:     models.IconShoppingBag,
			Budget:   decimal.NewFromInt(1500),
		},
		{
			Category: "Transportation",
			Keywords: []string{"uber", "ola", "taxi", "metro", "bus", "train", "petrol", "fuel", "transport", "travel"},
			Color:    "#06B6D4",
			Icon:     models.IconCar,
			Budget:   decimal.NewFromInt(800),
		},
		{
			Category: "Entertainment",
			Keywords: []string{"netflix", "spotify", "amazon prime", "hotstar", "movie", "cinema", "entertainment", "gaming", "music"},
			Color:    "#F59E0B",
			Icon:     models.IconPlayCircle,
			Budget:   decimal.NewFromInt(500),
		},
		{
			Category: "Education",
			Keywords: []string{"course", "udemy", "coursera", "books", "education", "learning", "study", "fees", "tuition"},
			Color:    "#10B981",
			Icon:     models.IconBookOpen,
			Budget:   decimal.NewFromInt(2000),
		},
		{
			Category: "Healthcare",
			Keywords: []string{"medical", "pharmacy", "hospital", "doctor", "medicine", "health", "clinic", "appointment"},
			Color:    "#EC4899",
			Icon:     models.IconHospital,
			Budget:   decimal.NewFromInt(1000),
		},
		{
			Category: "Utilities",
			Keywords: []string{"electricity", "water", "gas", "internet", "mobile", "phone", "recharge", "bill", "utility"},
			Color:    "#6366F1",
			Icon:     models.IconZap,
			Budget:   decimal.NewFromInt(800),
		},
	}
}

// Fallback returns the implicit "Others" rule applied when no catalog rule
// matches. It is not part of the ordered catalog.
func Fallback() models.CategoryRule {
	return models.CategoryRule{
		Category: "Others",
		Color:    "#6B7280",
		Icon:     models.IconMoreHorizontal,
		Budget:   decimal.NewFromInt(500),
	}
}
