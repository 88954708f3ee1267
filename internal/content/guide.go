package content

import "github.com/ADARSH-E404/diet-eco-plan/internal/models"

var shoppingTips = []models.ShoppingTip{
	{
		Title:       "Choose Local & Seasonal",
		Description: "Local produce reduces transportation emissions and supports local farmers. Seasonal foods are fresher and more sustainable.",
		Impact:      "Reduces CO₂ by up to 40%",
	},
	{
		Title:       "Minimize Packaging",
		Description: "Opt for products with minimal or recyclable packaging. Bring reusable bags and containers.",
		Impact:      "Prevents 500kg plastic waste/year",
	},
	{
		Title:       "Buy in Bulk",
		Description: "Bulk buying reduces packaging waste and often saves money. Store properly to prevent spoilage.",
		Impact:      "Saves up to ₹5,000/year",
	},
	{
		Title:       "Reduce Food Waste",
		Description: "Plan meals ahead, store food properly, and use leftovers creatively to minimize waste.",
		Impact:      "Saves ₹10,000+ annually",
	},
}

var ecoProducts = []models.EcoProduct{
	{Name: "Organic Vegetables Bundle", Price: "₹450", Saving: "₹100", CO2: "2.5kg saved", Rating: 4.8, Sustainable: true},
	{Name: "Local Farm Eggs (12 pack)", Price: "₹180", Saving: "₹30", CO2: "0.8kg saved", Rating: 4.9, Sustainable: true},
	{Name: "Biodegradable Cleaning Set", Price: "₹320", Saving: "₹80", CO2: "1.2kg saved", Rating: 4.7, Sustainable: true},
	{Name: "Reusable Storage Bags (10 pack)", Price: "₹250", Saving: "₹0", CO2: "5kg saved/year", Rating: 4.9, Sustainable: true},
}

var impactComparison = []models.ImpactStat{
	{Label: "CO₂ per week", Sustainable: "4.2kg", Conventional: "11.8kg"},
	{Label: "Plastic packaging", Sustainable: "0.3kg", Conventional: "1.6kg"},
	{Label: "Weekly grocery cost", Sustainable: "₹1,450", Conventional: "₹1,720"},
	{Label: "Food wasted", Sustainable: "5%", Conventional: "22%"},
}

func ShoppingTips() []models.ShoppingTip {
	out := make([]models.ShoppingTip, len(shoppingTips))
	copy(out, shoppingTips)
	return out
}

func EcoProducts() []models.EcoProduct {
	out := make([]models.EcoProduct, len(ecoProducts))
	copy(out, ecoProducts)
	return out
}

func ImpactComparison() []models.ImpactStat {
	out := make([]models.ImpactStat, len(impactComparison))
	copy(out, impactComparison)
	return out
}
