// Package content holds the immutable lookup tables behind the meal planner
// and the sustainable shopping guide.
package content

import "github.com/ADARSH-E404/diet-eco-plan/internal/models"

var weekdaySuggestions = map[string][]models.MealSuggestion{
	"monday": {
		{Name: "Avocado Toast with Poached Eggs", Type: "Breakfast", Calories: 350, Protein: "18g", PrepTime: "15 min", Sustainable: true, Price: "₹120"},
		{Name: "Mediterranean Quinoa Bowl", Type: "Lunch", Calories: 480, Protein: "22g", PrepTime: "25 min", Sustainable: true, Price: "₹180"},
		{Name: "Grilled Salmon with Vegetables", Type: "Dinner", Calories: 520, Protein: "35g", PrepTime: "30 min", Sustainable: false, Price: "₹350"},
		{Name: "Greek Yogurt with Berries", Type: "Snack", Calories: 180, Protein: "12g", PrepTime: "5 min", Sustainable: true, Price: "₹80"},
	},
	"tuesday": {
		{Name: "Overnight Oats Delight", Type: "Breakfast", Calories: 320, Protein: "14g", PrepTime: "10 min", Sustainable: true, Price: "₹90"},
		{Name: "Chickpea Salad Wrap", Type: "Lunch", Calories: 420, Protein: "19g", PrepTime: "15 min", Sustainable: true, Price: "₹140"},
		{Name: "Paneer Tikka with Roti", Type: "Dinner", Calories: 560, Protein: "28g", PrepTime: "35 min", Sustainable: true, Price: "₹220"},
		{Name: "Roasted Almonds", Type: "Snack", Calories: 160, Protein: "6g", PrepTime: "2 min", Sustainable: true, Price: "₹60"},
	},
	"wednesday": {
		{Name: "Green Smoothie Power", Type: "Breakfast", Calories: 280, Protein: "10g", PrepTime: "5 min", Sustainable: true, Price: "₹110"},
		{Name: "Grilled Chicken Salad", Type: "Lunch", Calories: 380, Protein: "32g", PrepTime: "20 min", Sustainable: false, Price: "₹260"},
		{Name: "Lentil Curry with Brown Rice", Type: "Dinner", Calories: 540, Protein: "24g", PrepTime: "40 min", Sustainable: true, Price: "₹160"},
		{Name: "Apple with Peanut Butter", Type: "Snack", Calories: 200, Protein: "7g", PrepTime: "3 min", Sustainable: true, Price: "₹70"},
	},
	"thursday": {
		{Name: "Masala Omelette with Toast", Type: "Breakfast", Calories: 340, Protein: "21g", PrepTime: "12 min", Sustainable: false, Price: "₹100"},
		{Name: "Buddha Bowl with Tahini", Type: "Lunch", Calories: 460, Protein: "18g", PrepTime: "25 min", Sustainable: true, Price: "₹200"},
		{Name: "Vegetable Stir-Fry with Tofu", Type: "Dinner", Calories: 430, Protein: "26g", PrepTime: "20 min", Sustainable: true, Price: "₹190"},
		{Name: "Fruit Chaat", Type: "Snack", Calories: 140, Protein: "3g", PrepTime: "10 min", Sustainable: true, Price: "₹50"},
	},
	"friday": {
		{Name: "Banana Oat Pancakes", Type: "Breakfast", Calories: 380, Protein: "13g", PrepTime: "20 min", Sustainable: true, Price: "₹110"},
		{Name: "Rajma Chawal", Type: "Lunch", Calories: 520, Protein: "21g", PrepTime: "35 min", Sustainable: true, Price: "₹130"},
		{Name: "Grilled Fish with Lemon Rice", Type: "Dinner", Calories: 510, Protein: "34g", PrepTime: "30 min", Sustainable: false, Price: "₹320"},
		{Name: "Sprout Salad", Type: "Snack", Calories: 120, Protein: "9g", PrepTime: "8 min", Sustainable: true, Price: "₹40"},
	},
	"saturday": {
		{Name: "Idli with Sambar", Type: "Breakfast", Calories: 310, Protein: "12g", PrepTime: "15 min", Sustainable: true, Price: "₹80"},
		{Name: "Mediterranean Quinoa Bowl", Type: "Lunch", Calories: 480, Protein: "22g", PrepTime: "25 min", Sustainable: true, Price: "₹180"},
		{Name: "Mushroom Risotto", Type: "Dinner", Calories: 580, Protein: "16g", PrepTime: "45 min", Sustainable: true, Price: "₹240"},
		{Name: "Greek Yogurt with Berries", Type: "Snack", Calories: 180, Protein: "12g", PrepTime: "5 min", Sustainable: true, Price: "₹80"},
	},
	"sunday": {
		{Name: "Stuffed Paratha with Curd", Type: "Breakfast", Calories: 420, Protein: "15g", PrepTime: "25 min", Sustainable: true, Price: "₹90"},
		{Name: "Grilled Vegetable Panini", Type: "Lunch", Calories: 440, Protein: "17g", PrepTime: "15 min", Sustainable: true, Price: "₹170"},
		{Name: "Palak Paneer with Jeera Rice", Type: "Dinner", Calories: 550, Protein: "27g", PrepTime: "35 min", Sustainable: true, Price: "₹210"},
		{Name: "Trail Mix", Type: "Snack", Calories: 190, Protein: "8g", PrepTime: "2 min", Sustainable: true, Price: "₹75"},
	},
}

// Weekdays lists the planner's day keys in display order.
func Weekdays() []string {
	return []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
}

// SuggestionsFor returns the fixed suggestions for a lowercase weekday name,
// or an empty slice for an unrecognized key.
func SuggestionsFor(weekday string) []models.MealSuggestion {
	suggestions, ok := weekdaySuggestions[weekday]
	if !ok {
		return nil
	}
	out := make([]models.MealSuggestion, len(suggestions))
	copy(out, suggestions)
	return out
}
