package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardwise/cardwise-backend/internal/cache"
	"github.com/cardwise/cardwise-backend/internal/models"
	"github.com/cardwise/cardwise-backend/internal/routes"
	"github.com/cardwise/cardwise-backend/internal/services"
	"github.com/cardwise/cardwise-backend/internal/storage"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := storage.NewMemoryStore()
	require.NoError(t, store.SeedCards())

	recommender := services.NewRecommendationService(store, cache.NewMock())
	manager := services.NewConversationManager(store, nil)
	t.Cleanup(manager.Stop)

	app := fiber.New()
	routes.SetupRoutes(app, store, manager, recommender)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, payload
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]string
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, "ok", result["status"])
}

type cardListResponse struct {
	Cards []models.CreditCard `json:"cards"`
	Total int64               `json:"total"`
}

func TestGetCardsPagination(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/cards?page=2&limit=12", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result cardListResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, int64(len(storage.ReferenceCards())), result.Total)
	assert.Len(t, result.Cards, 12)
}

func TestGetCardsFilteredTotal(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/cards?issuer=HDFC+Bank", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result cardListResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, int64(3), result.Total)
	for _, card := range result.Cards {
		assert.Equal(t, "HDFC Bank", card.Issuer)
	}
}

func TestGetCardByID(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/cards/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var card models.CreditCard
	require.NoError(t, json.Unmarshal(body, &card))
	assert.Equal(t, 1, card.ID)
	assert.NotEmpty(t, card.Name)
}

func TestGetCardNotFound(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/cards/9999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetCardInvalidID(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/cards/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateCardRequiresAdminKey(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/cards", models.CreditCard{
		Name: "New Card", Issuer: "Test Bank", CardType: "General",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateCardWithAdminKey(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "secret")
	app := newTestApp(t)

	card := models.CreditCard{
		Name: "New Card", Issuer: "Test Bank", CardType: "General",
		JoiningFee: "0", AnnualFee: "0", RewardType: "Cashback", RewardRate: "1%",
		IsActive: true,
	}
	raw, err := json.Marshal(card)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/cards", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Key", "secret")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

type chatResponse struct {
	Message         string              `json:"message"`
	Recommendations []models.CreditCard `json:"recommendations"`
	UserProfile     models.UserProfile  `json:"userProfile"`
	Stage           string              `json:"stage"`
}

func TestChatMissingFields(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/chat", models.ChatRequest{Message: "hi"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/chat", models.ChatRequest{SessionID: "s1"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChatFullScript(t *testing.T) {
	app := newTestApp(t)

	send := func(message string) chatResponse {
		resp, body := doJSON(t, app, http.MethodPost, "/api/chat", models.ChatRequest{
			Message:   message,
			SessionID: "session-1",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result chatResponse
		require.NoError(t, json.Unmarshal(body, &result))
		return result
	}

	result := send("I earn 50 a month")
	assert.Equal(t, "spending", result.Stage)
	assert.Equal(t, 50000, result.UserProfile.MonthlyIncome)
	assert.Empty(t, result.Recommendations)

	result = send("I love dining and travel")
	assert.Equal(t, "credit_score", result.Stage)
	assert.Equal(t, []string{"dining", "travel"}, result.UserProfile.SpendingCategories)

	result = send("above 750")
	assert.Equal(t, "recommendations", result.Stage)
	assert.Equal(t, 780, result.UserProfile.CreditScore)

	require.NotEmpty(t, result.Recommendations)
	assert.LessOrEqual(t, len(result.Recommendations), 5)

	prevFee := -1.0
	for _, card := range result.Recommendations {
		fee, err := strconv.ParseFloat(card.AnnualFee, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, fee, prevFee, "recommendations not sorted by annual fee")
		prevFee = fee

		income, err := strconv.ParseFloat(card.MinIncome, 64)
		require.NoError(t, err)
		assert.LessOrEqual(t, income, 50000.0)
		if card.MinCreditScore != nil {
			assert.LessOrEqual(t, *card.MinCreditScore, 780)
		}
	}
}

func TestChatHistoryReplay(t *testing.T) {
	app := newTestApp(t)

	for _, message := range []string{"I earn 50 a month", "dining"} {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/chat", models.ChatRequest{
			Message:   message,
			SessionID: "session-2",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, body := doJSON(t, app, http.MethodGet, "/api/chat/session-2/history", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var messages []services.ChatMessage
	require.NoError(t, json.Unmarshal(body, &messages))
	// greeting + two user/assistant exchanges
	require.Len(t, messages, 5)
	assert.Equal(t, "assistant", messages[0].Role)
	assert.Equal(t, "I earn 50 a month", messages[1].Content)
}

func TestRecommendationsEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/recommendations", models.RecommendationRequest{
		MonthlyIncome: 50000,
		CreditScore:   780,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cards []models.CreditCard
	require.NoError(t, json.Unmarshal(body, &cards))
	require.NotEmpty(t, cards)
	assert.LessOrEqual(t, len(cards), 5)
}

func TestFavoritesLifecycle(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/favorites", models.FavoriteRequest{
		UserID: "user-1",
		CardID: 2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var fav models.Favorite
	require.NoError(t, json.Unmarshal(body, &fav))

	// Duplicate add returns the same favorite
	resp, body = doJSON(t, app, http.MethodPost, "/api/favorites", models.FavoriteRequest{
		UserID: "user-1",
		CardID: 2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var dup models.Favorite
	require.NoError(t, json.Unmarshal(body, &dup))
	assert.Equal(t, fav.ID, dup.ID)

	resp, body = doJSON(t, app, http.MethodGet, "/api/favorites/2/check?userId=user-1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var check map[string]bool
	require.NoError(t, json.Unmarshal(body, &check))
	assert.True(t, check["favorited"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/favorites?userId=user-1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var favorites []models.FavoriteWithCard
	require.NoError(t, json.Unmarshal(body, &favorites))
	require.Len(t, favorites, 1)
	assert.Equal(t, 2, favorites[0].Card.ID)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/favorites/2?userId=user-1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, "/api/favorites/2/check?userId=user-1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &check))
	assert.False(t, check["favorited"])

	// Removing a favorite that no longer exists is still a 200
	resp, _ = doJSON(t, app, http.MethodDelete, "/api/favorites/2?userId=user-1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAddFavoriteUnknownCard(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/favorites", models.FavoriteRequest{
		UserID: "user-1",
		CardID: 9999,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFavoritesRequireUserID(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/api/favorites", "/api/favorites/1/check"} {
		resp, _ := doJSON(t, app, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, fmt.Sprintf("GET %s", path))
	}
}
