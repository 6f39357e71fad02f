package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardwise/cardwise-backend/internal/models"
	"github.com/cardwise/cardwise-backend/internal/storage"
)

func TestAdvanceIncomeShorthand(t *testing.T) {
	reply := Advance("I earn 50 a month", models.UserProfile{}, StageWelcome)

	require.NotNil(t, reply.Patch.MonthlyIncome)
	assert.Equal(t, 50000, *reply.Patch.MonthlyIncome)
	assert.Equal(t, StageSpending, reply.NextStage)
}

func TestAdvanceIncomeFullAmount(t *testing.T) {
	reply := Advance("my salary is 45000", models.UserProfile{}, StageIncome)

	require.NotNil(t, reply.Patch.MonthlyIncome)
	assert.Equal(t, 45000, *reply.Patch.MonthlyIncome)
	assert.Equal(t, StageSpending, reply.NextStage)
}

func TestAdvanceIncomeNoNumberDefaultsToZero(t *testing.T) {
	reply := Advance("not telling you", models.UserProfile{}, StageIncome)

	require.NotNil(t, reply.Patch.MonthlyIncome)
	assert.Equal(t, 0, *reply.Patch.MonthlyIncome)
	assert.Equal(t, StageSpending, reply.NextStage)
}

func TestAdvanceWelcomeWithoutNumberAsksForIncome(t *testing.T) {
	reply := Advance("hello there", models.UserProfile{}, StageWelcome)

	assert.Equal(t, StageIncome, reply.NextStage)
	assert.Nil(t, reply.Patch.MonthlyIncome)
	assert.Contains(t, reply.Response, "monthly income")
}

func TestAdvanceSpendingCategories(t *testing.T) {
	reply := Advance("I love dining and travel", models.UserProfile{}, StageSpending)

	assert.Equal(t, []string{"dining", "travel"}, reply.Patch.SpendingCategories)
	assert.True(t, reply.Patch.HasCategories)
	assert.Equal(t, StageCreditScore, reply.NextStage)
}

func TestAdvanceSpendingNoKeywords(t *testing.T) {
	reply := Advance("nothing in particular", models.UserProfile{}, StageSpending)

	assert.Empty(t, reply.Patch.SpendingCategories)
	assert.True(t, reply.Patch.HasCategories)
	assert.Equal(t, StageCreditScore, reply.NextStage)
}

func TestAdvanceCreditScoreMapping(t *testing.T) {
	tests := []struct {
		message string
		want    int
	}{
		{"above 750", 780},
		{"excellent", 780},
		{"good", 720},
		{"fair", 670},
		{"poor", 600},
		{"no idea", 700},
	}

	for _, tt := range tests {
		reply := Advance(tt.message, models.UserProfile{MonthlyIncome: 50000}, StageCreditScore)
		require.NotNil(t, reply.Patch.CreditScore, "message %q", tt.message)
		assert.Equal(t, tt.want, *reply.Patch.CreditScore, "message %q", tt.message)
		assert.Equal(t, StageRecommendations, reply.NextStage)
	}
}

func TestAdvanceAfterRecommendationsStaysGeneral(t *testing.T) {
	reply := Advance("tell me more", models.UserProfile{MonthlyIncome: 50000}, StageRecommendations)
	assert.Equal(t, StageGeneral, reply.NextStage)

	reply = Advance("anything else", models.UserProfile{MonthlyIncome: 50000}, StageGeneral)
	assert.Equal(t, StageGeneral, reply.NextStage)
}

func TestConversationProgressesForward(t *testing.T) {
	store := storage.NewMemoryStore()
	cm := NewConversationManager(store, nil)
	defer cm.Stop()

	result, err := cm.HandleMessage("s1", "I earn 50 a month")
	require.NoError(t, err)
	assert.Equal(t, StageSpending, result.Stage)
	assert.Equal(t, 50000, result.Profile.MonthlyIncome)

	result, err = cm.HandleMessage("s1", "I love dining and travel")
	require.NoError(t, err)
	assert.Equal(t, StageCreditScore, result.Stage)
	assert.Equal(t, []string{"dining", "travel"}, result.Profile.SpendingCategories)

	result, err = cm.HandleMessage("s1", "above 750")
	require.NoError(t, err)
	assert.Equal(t, StageRecommendations, result.Stage)
	assert.Equal(t, 780, result.Profile.CreditScore)

	// Earlier facts survive every transition
	assert.Equal(t, 50000, result.Profile.MonthlyIncome)
}

func TestHistoryIncludesGreeting(t *testing.T) {
	store := storage.NewMemoryStore()
	cm := NewConversationManager(store, nil)
	defer cm.Stop()

	_, err := cm.HandleMessage("s2", "hello")
	require.NoError(t, err)

	messages, err := cm.History("s2")
	require.NoError(t, err)
	require.Len(t, messages, 3) // greeting, user, assistant
	assert.Equal(t, "assistant", messages[0].Role)
	assert.Equal(t, "user", messages[1].Role)
	assert.Equal(t, "hello", messages[1].Content)
}

func TestHistoryFallsBackToStoreAfterEviction(t *testing.T) {
	store := storage.NewMemoryStore()
	cm := NewConversationManager(store, nil)
	defer cm.Stop()

	_, err := cm.HandleMessage("s3", "I earn 40 a month")
	require.NoError(t, err)

	evicted := cm.evictExpired(time.Now().Add(time.Hour))
	assert.Equal(t, 1, evicted)
	assert.Equal(t, 0, cm.ActiveSessions())

	messages, err := cm.History("s3")
	require.NoError(t, err)
	// The greeting only lives in the session; the exchange is persisted
	require.Len(t, messages, 2)
	assert.Equal(t, "user", messages[0].Role)
	assert.Equal(t, "I earn 40 a month", messages[0].Content)
	assert.Equal(t, "assistant", messages[1].Role)
}

// blockingGenerator stalls inside Generate until released, signalling
// when a caller has entered it.
type blockingGenerator struct {
	entered chan struct{}
	release chan struct{}
}

func (g *blockingGenerator) Generate(_ []ChatMessage, fallback string) string {
	close(g.entered)
	<-g.release
	return fallback
}

func TestSlowGeneratorDoesNotBlockOtherSessions(t *testing.T) {
	store := storage.NewMemoryStore()
	gen := &blockingGenerator{entered: make(chan struct{}), release: make(chan struct{})}
	cm := NewConversationManager(store, gen)
	defer cm.Stop()

	// Drive one session to the free-form stage
	for _, message := range []string{"I earn 50 a month", "dining", "good"} {
		_, err := cm.HandleMessage("slow", message)
		require.NoError(t, err)
	}

	slowDone := make(chan struct{})
	go func() {
		defer close(slowDone)
		result, err := cm.HandleMessage("slow", "tell me more")
		assert.NoError(t, err)
		if result != nil {
			assert.Equal(t, StageGeneral, result.Stage)
		}
	}()
	<-gen.entered

	// A second session must complete while the first sits in generation
	fastDone := make(chan struct{})
	go func() {
		defer close(fastDone)
		result, err := cm.HandleMessage("fast", "I earn 60 a month")
		assert.NoError(t, err)
		if result != nil {
			assert.Equal(t, 60000, result.Profile.MonthlyIncome)
		}
	}()

	select {
	case <-fastDone:
	case <-time.After(2 * time.Second):
		t.Fatal("second session waited on the first session's generation")
	}

	close(gen.release)
	<-slowDone
}

func TestExpiredSessionRestartsScript(t *testing.T) {
	store := storage.NewMemoryStore()
	cm := NewConversationManager(store, nil)
	defer cm.Stop()

	result, err := cm.HandleMessage("s4", "50000")
	require.NoError(t, err)
	assert.Equal(t, StageSpending, result.Stage)

	cm.evictExpired(time.Now().Add(time.Hour))

	result, err = cm.HandleMessage("s4", "60000")
	require.NoError(t, err)
	// Fresh session starts at the income stage again
	assert.Equal(t, StageSpending, result.Stage)
	assert.Equal(t, 60000, result.Profile.MonthlyIncome)
}
