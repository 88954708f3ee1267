package handlers

import (
	"net/http"

	"github.com/ADARSH-E404/diet-eco-plan/internal/content"
)

type GuideHandler struct{}

func NewGuideHandler() *GuideHandler {
	return &GuideHandler{}
}

func (handler *GuideHandler) Show(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tips":         content.ShoppingTips(),
		"eco_products": content.EcoProducts(),
	})
}
