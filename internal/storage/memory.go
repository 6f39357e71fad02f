package storage

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cardwise/cardwise-backend/internal/models"
)

// MemoryStore holds all data in memory for testing and local development
type MemoryStore struct {
	cards     map[int]*models.CreditCard
	favorites map[string]map[int]*models.Favorite // userID -> cardID -> favorite
	messages  map[string][]*models.ChatMessage    // sessionID -> ordered messages

	// Mutexes for thread safety
	cardMu     sync.RWMutex
	favoriteMu sync.RWMutex
	messageMu  sync.RWMutex

	// Counters for ID generation
	cardCounter     int
	favoriteCounter int
	messageCounter  int
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cards:     make(map[int]*models.CreditCard),
		favorites: make(map[string]map[int]*models.Favorite),
		messages:  make(map[string][]*models.ChatMessage),
	}
}

// Card operations

func (m *MemoryStore) CreateCard(card *models.CreditCard) (*models.CreditCard, error) {
	m.cardMu.Lock()
	defer m.cardMu.Unlock()

	m.cardCounter++
	card.ID = m.cardCounter
	if card.CreatedAt.IsZero() {
		card.CreatedAt = time.Now()
	}

	m.cards[card.ID] = card
	return card, nil
}

func (m *MemoryStore) GetCard(id int) (*models.CreditCard, error) {
	m.cardMu.RLock()
	defer m.cardMu.RUnlock()

	card, exists := m.cards[id]
	if !exists {
		return nil, ErrNotFound
	}
	return card, nil
}

func (m *MemoryStore) GetActiveCards() ([]*models.CreditCard, error) {
	m.cardMu.RLock()
	defer m.cardMu.RUnlock()

	var cards []*models.CreditCard
	for _, card := range m.cards {
		if card.IsActive {
			cards = append(cards, card)
		}
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })
	return cards, nil
}

func (m *MemoryStore) ListCards(filter *models.CardFilter) ([]*models.CreditCard, int64, error) {
	m.cardMu.RLock()
	defer m.cardMu.RUnlock()

	var matched []*models.CreditCard
	for _, card := range m.cards {
		if !card.IsActive {
			continue
		}
		if !matchesFilter(card, filter) {
			continue
		}
		matched = append(matched, card)
	}

	sortCards(matched, filter.SortBy)

	total := int64(len(matched))

	// Paginate
	offset := filter.Offset()
	limit := filter.PageLimit()
	if offset >= len(matched) {
		return []*models.CreditCard{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func matchesFilter(card *models.CreditCard, filter *models.CardFilter) bool {
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(card.Name), needle) &&
			!strings.Contains(strings.ToLower(card.Issuer), needle) {
			return false
		}
	}
	if filter.Issuer != "" && filter.Issuer != "All Issuers" && card.Issuer != filter.Issuer {
		return false
	}
	if filter.CardType != "" && filter.CardType != "All Types" && card.CardType != filter.CardType {
		return false
	}
	return true
}

func sortCards(cards []*models.CreditCard, sortBy string) {
	switch sortBy {
	case models.SortLowestAnnualFee:
		sort.SliceStable(cards, func(i, j int) bool {
			return parseDecimal(cards[i].AnnualFee) < parseDecimal(cards[j].AnnualFee)
		})
	case models.SortHighestCashback:
		sort.SliceStable(cards, func(i, j int) bool {
			return cards[i].RewardRate > cards[j].RewardRate
		})
	default:
		// Newest first, ID as tiebreaker
		sort.SliceStable(cards, func(i, j int) bool {
			if cards[i].CreatedAt.Equal(cards[j].CreatedAt) {
				return cards[i].ID > cards[j].ID
			}
			return cards[i].CreatedAt.After(cards[j].CreatedAt)
		})
	}
}

func parseDecimal(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func (m *MemoryStore) SeedCards() error {
	m.cardMu.Lock()
	alreadySeeded := len(m.cards) > 0
	m.cardMu.Unlock()

	if alreadySeeded {
		return nil
	}

	for _, card := range ReferenceCards() {
		c := card
		if _, err := m.CreateCard(&c); err != nil {
			return err
		}
	}
	return nil
}

// Favorite operations

func (m *MemoryStore) AddFavorite(userID string, cardID int) (*models.Favorite, error) {
	m.favoriteMu.Lock()
	defer m.favoriteMu.Unlock()

	userFavs, exists := m.favorites[userID]
	if !exists {
		userFavs = make(map[int]*models.Favorite)
		m.favorites[userID] = userFavs
	}

	// One favorite per (user, card)
	if existing, ok := userFavs[cardID]; ok {
		return existing, nil
	}

	m.favoriteCounter++
	fav := &models.Favorite{
		ID:        m.favoriteCounter,
		UserID:    userID,
		CardID:    cardID,
		CreatedAt: time.Now(),
	}
	userFavs[cardID] = fav
	return fav, nil
}

func (m *MemoryStore) RemoveFavorite(userID string, cardID int) error {
	m.favoriteMu.Lock()
	defer m.favoriteMu.Unlock()

	if userFavs, exists := m.favorites[userID]; exists {
		delete(userFavs, cardID)
	}
	return nil
}

func (m *MemoryStore) IsCardFavorited(userID string, cardID int) (bool, error) {
	m.favoriteMu.RLock()
	defer m.favoriteMu.RUnlock()

	userFavs, exists := m.favorites[userID]
	if !exists {
		return false, nil
	}
	_, ok := userFavs[cardID]
	return ok, nil
}

func (m *MemoryStore) GetUserFavorites(userID string) ([]*models.FavoriteWithCard, error) {
	m.favoriteMu.RLock()
	userFavs := make([]*models.Favorite, 0, len(m.favorites[userID]))
	for _, fav := range m.favorites[userID] {
		userFavs = append(userFavs, fav)
	}
	m.favoriteMu.RUnlock()

	// Most recently favorited first
	sort.Slice(userFavs, func(i, j int) bool {
		if userFavs[i].CreatedAt.Equal(userFavs[j].CreatedAt) {
			return userFavs[i].ID > userFavs[j].ID
		}
		return userFavs[i].CreatedAt.After(userFavs[j].CreatedAt)
	})

	result := make([]*models.FavoriteWithCard, 0, len(userFavs))
	for _, fav := range userFavs {
		card, err := m.GetCard(fav.CardID)
		if err != nil {
			continue
		}
		result = append(result, &models.FavoriteWithCard{
			Favorite: *fav,
			Card:     *card,
		})
	}
	return result, nil
}

// Chat history operations

func (m *MemoryStore) SaveChatMessage(msg *models.ChatMessage) (*models.ChatMessage, error) {
	m.messageMu.Lock()
	defer m.messageMu.Unlock()

	m.messageCounter++
	msg.ID = m.messageCounter
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	m.messages[msg.SessionID] = append(m.messages[msg.SessionID], msg)
	return msg, nil
}

func (m *MemoryStore) GetChatHistory(sessionID string) ([]*models.ChatMessage, error) {
	m.messageMu.RLock()
	defer m.messageMu.RUnlock()

	history := m.messages[sessionID]
	result := make([]*models.ChatMessage, len(history))
	copy(result, history)
	return result, nil
}

func (m *MemoryStore) DeleteChatHistoryBefore(cutoff time.Time) (int64, error) {
	m.messageMu.Lock()
	defer m.messageMu.Unlock()

	var removed int64
	for sessionID, history := range m.messages {
		kept := history[:0]
		for _, msg := range history {
			if msg.Timestamp.Before(cutoff) {
				removed++
				continue
			}
			kept = append(kept, msg)
		}
		if len(kept) == 0 {
			delete(m.messages, sessionID)
		} else {
			m.messages[sessionID] = kept
		}
	}
	return removed, nil
}
