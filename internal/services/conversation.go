package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cardwise/cardwise-backend/internal/models"
)

// Stage is a step in the scripted advisor conversation
type Stage string

const (
	StageWelcome         Stage = "welcome"
	StageIncome          Stage = "income"
	StageSpending        Stage = "spending"
	StageCreditScore     Stage = "credit_score"
	StageRecommendations Stage = "recommendations"
	StageGeneral         Stage = "general"
)

// StageReply is the outcome of advancing the conversation by one message
type StageReply struct {
	Response  string
	NextStage Stage
	Patch     ProfilePatch
}

// ProfilePatch holds profile fields to merge after a transition.
// Nil pointers leave the existing value untouched.
type ProfilePatch struct {
	MonthlyIncome      *int
	SpendingCategories []string
	HasCategories      bool
	CreditScore        *int
}

// Apply merges the patch into a profile
func (p ProfilePatch) Apply(profile *models.UserProfile) {
	if p.MonthlyIncome != nil {
		profile.MonthlyIncome = *p.MonthlyIncome
	}
	if p.HasCategories {
		profile.SpendingCategories = p.SpendingCategories
	}
	if p.CreditScore != nil {
		profile.CreditScore = *p.CreditScore
	}
}

var numberPattern = regexp.MustCompile(`\d+`)

// spendingKeywords maps message keywords to spending category tags.
// Order matters for the reply text, so it is a slice rather than a map.
var spendingKeywords = []struct {
	category string
	words    []string
}{
	{"dining", []string{"dining", "restaurant"}},
	{"travel", []string{"travel", "flight", "hotel"}},
	{"shopping", []string{"shopping", "online"}},
	{"fuel", []string{"fuel", "petrol", "gas"}},
	{"grocery", []string{"grocery", "groceries"}},
}

// Advance produces the reply, next stage, and profile patch for one user
// message. It is a pure function: the caller owns persisting the merge.
func Advance(userMessage string, profile models.UserProfile, stage Stage) StageReply {
	message := strings.ToLower(userMessage)

	switch stage {
	case StageWelcome:
		return advanceWelcome(message)
	case StageIncome:
		return advanceIncome(message)
	case StageSpending:
		return advanceSpending(message)
	case StageCreditScore:
		return advanceCreditScore(message, profile)
	default:
		return StageReply{
			Response:  "Thank you for that information! Is there anything specific about credit cards you'd like to know more about?",
			NextStage: StageGeneral,
		}
	}
}

func advanceWelcome(message string) StageReply {
	if strings.Contains(message, "income") || numberPattern.MatchString(message) {
		income := extractIncome(message)
		return StageReply{
			Response: fmt.Sprintf(
				"Great! With a monthly income of ₹%d, you have good options. What are your main spending categories? For example: dining, shopping, travel, fuel, or online purchases?",
				income),
			NextStage: StageSpending,
			Patch:     ProfilePatch{MonthlyIncome: &income},
		}
	}
	return StageReply{
		Response:  "I'd be happy to help you find the perfect credit card! Let's start with your approximate monthly income so I can recommend suitable options.",
		NextStage: StageIncome,
	}
}

func advanceIncome(message string) StageReply {
	income := extractIncome(message)
	return StageReply{
		Response: fmt.Sprintf(
			"Perfect! With ₹%d monthly income, you qualify for several great cards. Now, what are your main spending categories? For example: dining out, online shopping, travel, fuel, groceries?",
			income),
		NextStage: StageSpending,
		Patch:     ProfilePatch{MonthlyIncome: &income},
	}
}

func advanceSpending(message string) StageReply {
	var categories []string
	for _, entry := range spendingKeywords {
		for _, word := range entry.words {
			if strings.Contains(message, word) {
				categories = append(categories, entry.category)
				break
			}
		}
	}
	return StageReply{
		Response: fmt.Sprintf(
			"Excellent! I can see you spend on %s. One more question - do you know your approximate credit score? This helps me recommend cards you're likely to get approved for. (You can say: above 750, 700-750, 650-700, or below 650)",
			strings.Join(categories, ", ")),
		NextStage: StageCreditScore,
		Patch:     ProfilePatch{SpendingCategories: categories, HasCategories: true},
	}
}

func advanceCreditScore(message string, profile models.UserProfile) StageReply {
	creditScore := 700 // default when nothing matches
	switch {
	case strings.Contains(message, "750") || strings.Contains(message, "excellent"):
		creditScore = 780
	case strings.Contains(message, "700") || strings.Contains(message, "good"):
		creditScore = 720
	case strings.Contains(message, "650") || strings.Contains(message, "fair"):
		creditScore = 670
	case strings.Contains(message, "below") || strings.Contains(message, "poor"):
		creditScore = 600
	}

	return StageReply{
		Response: fmt.Sprintf(
			"Perfect! Based on your profile - income: ₹%d, spending on %s, and credit score around %d - I've found the best cards that match your needs! Check out the recommendations below.",
			profile.MonthlyIncome, strings.Join(profile.SpendingCategories, ", "), creditScore),
		NextStage: StageRecommendations,
		Patch:     ProfilePatch{CreditScore: &creditScore},
	}
}

// extractIncome pulls the first integer out of a message. Values below
// 1000 are read as thousands, so "50" means 50,000. No number means 0.
func extractIncome(message string) int {
	match := numberPattern.FindString(message)
	income := 0
	if match != "" {
		income, _ = strconv.Atoi(match)
	}
	if income < 1000 {
		income = income * 1000
	}
	return income
}
