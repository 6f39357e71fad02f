package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cardwise/cardwise-backend/internal/models"
	"github.com/cardwise/cardwise-backend/internal/storage"
)

// CardHandler handles catalog requests
type CardHandler struct {
	store storage.Store
}

// NewCardHandler creates a new card handler
func NewCardHandler(store storage.Store) *CardHandler {
	return &CardHandler{
		store: store,
	}
}

// GetCards returns a filtered, sorted page of the catalog
func (h *CardHandler) GetCards(c *fiber.Ctx) error {
	filter := &models.CardFilter{
		Page:     c.QueryInt("page", 1),
		Limit:    c.QueryInt("limit", 12),
		Search:   c.Query("search"),
		Issuer:   c.Query("issuer"),
		CardType: c.Query("cardType"),
		SortBy:   c.Query("sortBy"),
	}

	cards, total, err := h.store.ListCards(filter)
	if err != nil {
		log.Printf("Error fetching cards: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch cards",
		})
	}

	return c.JSON(fiber.Map{
		"cards": cards,
		"total": total,
	})
}

// GetCard returns a single card by ID
func (h *CardHandler) GetCard(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid card ID",
		})
	}

	card, err := h.store.GetCard(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Card not found",
			})
		}
		log.Printf("Error fetching card %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch card",
		})
	}

	return c.JSON(card)
}

// CreateCard inserts a new card into the catalog (admin only)
func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	var card models.CreditCard

	if err := c.BodyParser(&card); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if card.Name == "" || card.Issuer == "" || card.CardType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Name, issuer, and card type are required",
		})
	}
	if card.MinCreditScore != nil && *card.MinCreditScore < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Minimum credit score must be non-negative",
		})
	}

	created, err := h.store.CreateCard(&card)
	if err != nil {
		log.Printf("Error creating card: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create card",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}
