package storage

import (
	"errors"
	"time"

	"github.com/cardwise/cardwise-backend/internal/models"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

var storeInstance Store

// SetStore sets the global store instance (call from main.go)
func SetStore(s Store) {
	storeInstance = s
}

// GetStore returns the global store instance
func GetStore() Store {
	return storeInstance
}

// Store defines the interface for storage operations
type Store interface {
	// Card operations
	ListCards(filter *models.CardFilter) ([]*models.CreditCard, int64, error)
	GetCard(id int) (*models.CreditCard, error)
	CreateCard(card *models.CreditCard) (*models.CreditCard, error)
	GetActiveCards() ([]*models.CreditCard, error)
	SeedCards() error

	// Favorite operations
	GetUserFavorites(userID string) ([]*models.FavoriteWithCard, error)
	AddFavorite(userID string, cardID int) (*models.Favorite, error)
	RemoveFavorite(userID string, cardID int) error
	IsCardFavorited(userID string, cardID int) (bool, error)

	// Chat history operations
	SaveChatMessage(msg *models.ChatMessage) (*models.ChatMessage, error)
	GetChatHistory(sessionID string) ([]*models.ChatMessage, error)
	DeleteChatHistoryBefore(cutoff time.Time) (int64, error)
}
