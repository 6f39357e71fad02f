package models

import "time"

// ChatMessage is a persisted conversation message
type ChatMessage struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"userId" gorm:"size:255;not null"`
	SessionID string    `json:"sessionId" gorm:"size:255;not null;index"`
	Message   string    `json:"message" gorm:"not null"`
	IsUser    bool      `json:"isUser" gorm:"not null"`
	Timestamp time.Time `json:"timestamp"`
}

// TableName overrides the default pluralization
func (ChatMessage) TableName() string {
	return "chat_history"
}

// UserProfile holds the facts gathered across a conversation.
// Zero values mean "not yet known".
type UserProfile struct {
	MonthlyIncome      int      `json:"monthlyIncome,omitempty"`
	SpendingCategories []string `json:"spendingCategories,omitempty"`
	CreditScore        int      `json:"creditScore,omitempty"`
}

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

// RecommendationRequest is the body of POST /api/recommendations
type RecommendationRequest struct {
	MonthlyIncome      int      `json:"monthlyIncome"`
	SpendingCategories []string `json:"spendingCategories"`
	CreditScore        int      `json:"creditScore"`
}

// FavoriteRequest is the body of POST /api/favorites
type FavoriteRequest struct {
	UserID string `json:"userId"`
	CardID int    `json:"cardId"`
}
