package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cardwise/cardwise-backend/internal/models"
)

// DatabaseStore implements Store backed by PostgreSQL via GORM
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a new database-backed store
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// Card operations

func (d *DatabaseStore) CreateCard(card *models.CreditCard) (*models.CreditCard, error) {
	if err := d.db.Create(card).Error; err != nil {
		return nil, err
	}
	return card, nil
}

func (d *DatabaseStore) GetCard(id int) (*models.CreditCard, error) {
	var card models.CreditCard
	err := d.db.First(&card, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (d *DatabaseStore) GetActiveCards() ([]*models.CreditCard, error) {
	var cards []*models.CreditCard
	err := d.db.Where("is_active = ?", true).Order("id asc").Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (d *DatabaseStore) ListCards(filter *models.CardFilter) ([]*models.CreditCard, int64, error) {
	query := d.db.Model(&models.CreditCard{}).Where("is_active = ?", true)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR issuer ILIKE ?", pattern, pattern)
	}
	if filter.Issuer != "" && filter.Issuer != "All Issuers" {
		query = query.Where("issuer = ?", filter.Issuer)
	}
	if filter.CardType != "" && filter.CardType != "All Types" {
		query = query.Where("card_type = ?", filter.CardType)
	}

	// Total reflects the filtered count, not the page
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.SortBy {
	case models.SortLowestAnnualFee:
		query = query.Order("annual_fee asc")
	case models.SortHighestCashback:
		query = query.Order("reward_rate desc")
	default:
		query = query.Order("created_at desc")
	}

	var cards []*models.CreditCard
	err := query.Offset(filter.Offset()).Limit(filter.PageLimit()).Find(&cards).Error
	if err != nil {
		return nil, 0, err
	}
	return cards, total, nil
}

func (d *DatabaseStore) SeedCards() error {
	var count int64
	if err := d.db.Model(&models.CreditCard{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // already seeded
	}

	cards := ReferenceCards()
	return d.db.Create(&cards).Error
}

// Favorite operations

func (d *DatabaseStore) AddFavorite(userID string, cardID int) (*models.Favorite, error) {
	fav := &models.Favorite{
		UserID: userID,
		CardID: cardID,
	}
	// Duplicate adds land on the unique (user_id, card_id) index
	err := d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "card_id"}},
		DoNothing: true,
	}).Create(fav).Error
	if err != nil {
		return nil, err
	}

	if fav.ID == 0 {
		// Conflict path: return the existing row
		err = d.db.Where("user_id = ? AND card_id = ?", userID, cardID).First(fav).Error
		if err != nil {
			return nil, err
		}
	}
	return fav, nil
}

func (d *DatabaseStore) RemoveFavorite(userID string, cardID int) error {
	return d.db.
		Where("user_id = ? AND card_id = ?", userID, cardID).
		Delete(&models.Favorite{}).Error
}

func (d *DatabaseStore) IsCardFavorited(userID string, cardID int) (bool, error) {
	var count int64
	err := d.db.Model(&models.Favorite{}).
		Where("user_id = ? AND card_id = ?", userID, cardID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (d *DatabaseStore) GetUserFavorites(userID string) ([]*models.FavoriteWithCard, error) {
	var favorites []*models.Favorite
	err := d.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}

	if len(favorites) == 0 {
		return []*models.FavoriteWithCard{}, nil
	}

	cardIDs := make([]int, 0, len(favorites))
	for _, fav := range favorites {
		cardIDs = append(cardIDs, fav.CardID)
	}

	var cards []*models.CreditCard
	if err := d.db.Where("id IN ?", cardIDs).Find(&cards).Error; err != nil {
		return nil, err
	}

	return joinFavoriteCards(favorites, cards), nil
}

// joinFavoriteCards pairs favorites with their cards, preserving the
// favorites ordering and dropping rows whose card no longer exists.
func joinFavoriteCards(favorites []*models.Favorite, cards []*models.CreditCard) []*models.FavoriteWithCard {
	byID := make(map[int]*models.CreditCard, len(cards))
	for _, card := range cards {
		byID[card.ID] = card
	}

	result := make([]*models.FavoriteWithCard, 0, len(favorites))
	for _, fav := range favorites {
		card, ok := byID[fav.CardID]
		if !ok {
			continue
		}
		result = append(result, &models.FavoriteWithCard{
			Favorite: *fav,
			Card:     *card,
		})
	}
	return result
}

// Chat history operations

func (d *DatabaseStore) SaveChatMessage(msg *models.ChatMessage) (*models.ChatMessage, error) {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	if err := d.db.Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

func (d *DatabaseStore) GetChatHistory(sessionID string) ([]*models.ChatMessage, error) {
	var messages []*models.ChatMessage
	err := d.db.
		Where("session_id = ?", sessionID).
		Order("timestamp asc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (d *DatabaseStore) DeleteChatHistoryBefore(cutoff time.Time) (int64, error) {
	result := d.db.Where("timestamp < ?", cutoff).Delete(&models.ChatMessage{})
	return result.RowsAffected, result.Error
}
