package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cardwise/cardwise-backend/internal/models"
	"github.com/cardwise/cardwise-backend/internal/storage"
)

// FavoriteHandler handles saved-card requests
type FavoriteHandler struct {
	store storage.Store
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(store storage.Store) *FavoriteHandler {
	return &FavoriteHandler{
		store: store,
	}
}

// GetFavorites lists a user's saved cards, newest first
func (h *FavoriteHandler) GetFavorites(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "userId is required",
		})
	}

	favorites, err := h.store.GetUserFavorites(userID)
	if err != nil {
		log.Printf("Error fetching favorites for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch favorites",
		})
	}

	return c.JSON(favorites)
}

// AddFavorite saves a (user, card) pair. Re-adding is a no-op.
func (h *FavoriteHandler) AddFavorite(c *fiber.Ctx) error {
	var req models.FavoriteRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.UserID == "" || req.CardID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "userId and cardId are required",
		})
	}

	if _, err := h.store.GetCard(req.CardID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Card not found",
			})
		}
		log.Printf("Error checking card %d: %v", req.CardID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to add favorite",
		})
	}

	favorite, err := h.store.AddFavorite(req.UserID, req.CardID)
	if err != nil {
		log.Printf("Error adding favorite for user %s: %v", req.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to add favorite",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(favorite)
}

// RemoveFavorite deletes a saved card; removing a non-existent one is a no-op
func (h *FavoriteHandler) RemoveFavorite(c *fiber.Ctx) error {
	cardID, err := strconv.Atoi(c.Params("cardId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid card ID",
		})
	}

	userID := c.Query("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "userId is required",
		})
	}

	if err := h.store.RemoveFavorite(userID, cardID); err != nil {
		log.Printf("Error removing favorite for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to remove favorite",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Favorite removed",
	})
}

// CheckFavorite reports whether a card is saved by the user
func (h *FavoriteHandler) CheckFavorite(c *fiber.Ctx) error {
	cardID, err := strconv.Atoi(c.Params("cardId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid card ID",
		})
	}

	userID := c.Query("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "userId is required",
		})
	}

	favorited, err := h.store.IsCardFavorited(userID, cardID)
	if err != nil {
		log.Printf("Error checking favorite for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to check favorite",
		})
	}

	return c.JSON(fiber.Map{
		"favorited": favorited,
	})
}
