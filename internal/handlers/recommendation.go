package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cardwise/cardwise-backend/internal/models"
	"github.com/cardwise/cardwise-backend/internal/services"
)

// RecommendationHandler serves direct ranking requests
type RecommendationHandler struct {
	recommender *services.RecommendationService
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(recommender *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recommender: recommender,
	}
}

// GetRecommendations ranks the catalog against the supplied preferences
func (h *RecommendationHandler) GetRecommendations(c *fiber.Ctx) error {
	var req models.RecommendationRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	profile := models.UserProfile{
		MonthlyIncome:      req.MonthlyIncome,
		SpendingCategories: req.SpendingCategories,
		CreditScore:        req.CreditScore,
	}

	return c.JSON(h.recommender.Recommend(profile))
}
