package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"github.com/cardwise/cardwise-backend/internal/cache"
	"github.com/cardwise/cardwise-backend/internal/models"
	"github.com/cardwise/cardwise-backend/internal/storage"
)

// maxRecommendations caps every recommendation response
const maxRecommendations = 5

const recommendationCacheTTL = 5 * time.Minute

// RecommendationService ranks catalog cards against a user profile
type RecommendationService struct {
	store storage.Store
	cache cache.Repository
}

// NewRecommendationService creates a new recommendation service.
// The cache is optional; pass nil to disable caching.
func NewRecommendationService(store storage.Store, cacheRepo cache.Repository) *RecommendationService {
	return &RecommendationService{
		store: store,
		cache: cacheRepo,
	}
}

// Recommend returns at most five active cards matching the profile,
// cheapest annual fee first. It never fails: a ranking error degrades
// to the first five active cards unsorted, and a store error yields an
// empty list.
func (r *RecommendationService) Recommend(profile models.UserProfile) []*models.CreditCard {
	if cached, ok := r.cachedRecommendations(profile); ok {
		return cached
	}

	cards, err := r.store.GetActiveCards()
	if err != nil {
		log.Printf("Failed to load active cards for recommendations: %v", err)
		return []*models.CreditCard{}
	}

	ranked, err := rankCards(profile, cards)
	if err != nil {
		log.Printf("Ranking failed, falling back to unranked cards: %v", err)
		ranked = capCards(cards)
	}

	r.cacheRecommendations(profile, ranked)
	return ranked
}

// rankCards filters by the profile's income and credit score, then
// sorts ascending by annual fee. Missing card thresholds count as 0.
func rankCards(profile models.UserProfile, cards []*models.CreditCard) ([]*models.CreditCard, error) {
	if profile.MonthlyIncome < 0 || profile.CreditScore < 0 {
		return nil, fmt.Errorf("invalid profile: income=%d score=%d", profile.MonthlyIncome, profile.CreditScore)
	}

	filtered := make([]*models.CreditCard, 0, len(cards))
	for _, card := range cards {
		if profile.MonthlyIncome > 0 && cardMinIncome(card) > float64(profile.MonthlyIncome) {
			continue
		}
		if profile.CreditScore > 0 && cardMinScore(card) > profile.CreditScore {
			continue
		}
		filtered = append(filtered, card)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return annualFee(filtered[i]) < annualFee(filtered[j])
	})

	return capCards(filtered), nil
}

func capCards(cards []*models.CreditCard) []*models.CreditCard {
	if cards == nil {
		return []*models.CreditCard{}
	}
	if len(cards) > maxRecommendations {
		return cards[:maxRecommendations]
	}
	return cards
}

func cardMinIncome(card *models.CreditCard) float64 {
	if card.MinIncome == "" {
		return 0
	}
	v, err := strconv.ParseFloat(card.MinIncome, 64)
	if err != nil {
		return 0
	}
	return v
}

func cardMinScore(card *models.CreditCard) int {
	if card.MinCreditScore == nil {
		return 0
	}
	return *card.MinCreditScore
}

func annualFee(card *models.CreditCard) float64 {
	v, err := strconv.ParseFloat(card.AnnualFee, 64)
	if err != nil {
		return 0
	}
	return v
}

// Categories do not change the ranking, so the cache key only carries
// the numeric constraints.
func recommendationKey(profile models.UserProfile) string {
	return fmt.Sprintf("recommendations:income=%d:score=%d", profile.MonthlyIncome, profile.CreditScore)
}

func (r *RecommendationService) cachedRecommendations(profile models.UserProfile) ([]*models.CreditCard, bool) {
	if r.cache == nil {
		return nil, false
	}
	raw, ok := r.cache.Get(recommendationKey(profile))
	if !ok {
		return nil, false
	}
	var cards []*models.CreditCard
	if err := json.Unmarshal([]byte(raw), &cards); err != nil {
		return nil, false
	}
	return cards, true
}

func (r *RecommendationService) cacheRecommendations(profile models.UserProfile, cards []*models.CreditCard) {
	if r.cache == nil {
		return
	}
	raw, err := json.Marshal(cards)
	if err != nil {
		return
	}
	if err := r.cache.Set(recommendationKey(profile), string(raw), recommendationCacheTTL); err != nil {
		log.Printf("Failed to cache recommendations: %v", err)
	}
}
