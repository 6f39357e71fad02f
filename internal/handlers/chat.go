package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/cardwise/cardwise-backend/internal/models"
	"github.com/cardwise/cardwise-backend/internal/services"
)

// ChatHandler handles the conversational advisor endpoints
type ChatHandler struct {
	manager     *services.ConversationManager
	recommender *services.RecommendationService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(manager *services.ConversationManager, recommender *services.RecommendationService) *ChatHandler {
	return &ChatHandler{
		manager:     manager,
		recommender: recommender,
	}
}

// Chat advances the conversation by one message
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req models.ChatRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.Message == "" || req.SessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Message and sessionId are required",
		})
	}

	result, err := h.manager.HandleMessage(req.SessionID, req.Message)
	if err != nil {
		log.Printf("Error in chat for session %s: %v", req.SessionID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to process chat message",
		})
	}

	// Recommendations appear once the script has gathered enough facts
	recommendations := []*models.CreditCard{}
	if result.Stage == services.StageRecommendations && result.Profile.MonthlyIncome > 0 {
		recommendations = h.recommender.Recommend(result.Profile)
	}

	return c.JSON(fiber.Map{
		"message":         result.Reply,
		"recommendations": recommendations,
		"userProfile":     result.Profile,
		"stage":           result.Stage,
	})
}

// History replays the messages of a session in order
func (h *ChatHandler) History(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	messages, err := h.manager.History(sessionID)
	if err != nil {
		log.Printf("Error fetching chat history for session %s: %v", sessionID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch chat history",
		})
	}

	return c.JSON(messages)
}
