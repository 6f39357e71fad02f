package models

import "time"

// Favorite links a user to a saved card. At most one row per (user, card).
type Favorite struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"userId" gorm:"size:255;not null;uniqueIndex:idx_user_card"`
	CardID    int       `json:"cardId" gorm:"not null;uniqueIndex:idx_user_card"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName overrides the default pluralization
func (Favorite) TableName() string {
	return "user_favorites"
}

// FavoriteWithCard is a favorite joined with its card details
type FavoriteWithCard struct {
	Favorite
	Card CreditCard `json:"card"`
}
