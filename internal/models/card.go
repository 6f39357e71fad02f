package models

import "time"

// CreditCard represents a credit card product in the catalog
type CreditCard struct {
	ID     int    `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"size:255;not null"`
	Issuer string `json:"issuer" gorm:"size:255;not null"`

	// Fees stored as decimal strings, e.g. "2500" or "2500.00"
	JoiningFee string `json:"joiningFee" gorm:"type:decimal(10,2);not null"`
	AnnualFee  string `json:"annualFee" gorm:"type:decimal(10,2);not null"`

	// Rewards
	RewardType string `json:"rewardType" gorm:"size:100;not null"`
	RewardRate string `json:"rewardRate" gorm:"size:255;not null"`

	// Eligibility
	EligibilityCriteria string `json:"eligibilityCriteria" gorm:"not null"`
	MinCreditScore      *int   `json:"minCreditScore"`
	MinIncome           string `json:"minIncome" gorm:"type:decimal(10,2)"`

	SpecialPerks []string `json:"specialPerks" gorm:"serializer:json;not null"`

	AffiliateLink string `json:"affiliateLink" gorm:"size:500"`
	ApplyLink     string `json:"applyLink" gorm:"size:500"`

	CardType string `json:"cardType" gorm:"size:100;not null"` // cashback, travel, dining, fuel, etc.

	IsActive  bool      `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName overrides the default pluralization
func (CreditCard) TableName() string {
	return "credit_cards"
}

// CardFilter holds listing parameters for the catalog
type CardFilter struct {
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	Search   string `json:"search"`   // free-text over name and issuer
	Issuer   string `json:"issuer"`   // exact match, "All Issuers" ignored
	CardType string `json:"cardType"` // exact match, "All Types" ignored
	SortBy   string `json:"sortBy"`
}

// Sort options accepted by CardFilter.SortBy
const (
	SortLowestAnnualFee = "Lowest Annual Fee"
	SortHighestCashback = "Highest Cashback"
)

// Offset converts page/limit into a row offset
func (f *CardFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.PageLimit()
}

// PageLimit returns the effective page size
func (f *CardFilter) PageLimit() int {
	if f.Limit < 1 {
		return 12
	}
	return f.Limit
}
