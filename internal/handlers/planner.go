package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ADARSH-E404/diet-eco-plan/internal/content"
	"github.com/ADARSH-E404/diet-eco-plan/internal/middleware"
	"github.com/ADARSH-E404/diet-eco-plan/internal/models"
	ical "github.com/arran4/golang-ical"
)

type PlannerHandler struct{}

func NewPlannerHandler() *PlannerHandler {
	return &PlannerHandler{}
}

// Day returns the suggestions for the requested weekday, defaulting to
// today. Unknown day names yield an empty plan, not an error.
func (handler *PlannerHandler) Day(w http.ResponseWriter, r *http.Request) {
	day := strings.ToLower(r.URL.Query().Get("day"))
	if day == "" {
		day = strings.ToLower(time.Now().Weekday().String())
	}

	suggestions := content.SuggestionsFor(day)
	if suggestions == nil {
		suggestions = []models.MealSuggestion{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"day":         day,
		"weekdays":    content.Weekdays(),
		"suggestions": suggestions,
	})
}

// Feed serves the coming week's suggestions as an iCal calendar, one all-day
// event per meal.
func (handler *PlannerHandler) Feed(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	calendar := ical.NewCalendar()
	calendar.SetMethod(ical.MethodPublish)

	now := time.Now()
	for offset := 0; offset < 7; offset++ {
		day := now.AddDate(0, 0, offset)
		weekday := strings.ToLower(day.Weekday().String())

		for index, suggestion := range content.SuggestionsFor(weekday) {
			uid := fmt.Sprintf("%s-%s-%d@diet-eco-plan", user.ID, day.Format("20060102"), index)
			event := calendar.AddEvent(uid)
			event.SetDtStampTime(now)
			event.SetAllDayStartAt(day)
			event.SetAllDayEndAt(day.AddDate(0, 0, 1))
			event.SetSummary(fmt.Sprintf("%s: %s", suggestion.Type, suggestion.Name))
			event.SetDescription(fmt.Sprintf("%d cal, %s protein, %s prep, %s",
				suggestion.Calories, suggestion.Protein, suggestion.PrepTime, suggestion.Price))
		}
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=meal-plan.ics")
	w.Write([]byte(calendar.Serialize()))
}
