package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cardwise/cardwise-backend/internal/handlers"
	"github.com/cardwise/cardwise-backend/internal/middleware"
	"github.com/cardwise/cardwise-backend/internal/services"
	"github.com/cardwise/cardwise-backend/internal/storage"
)

// SetupRoutes configures all API routes
func SetupRoutes(
	app *fiber.App,
	store storage.Store,
	manager *services.ConversationManager,
	recommender *services.RecommendationService,
) {
	healthHandler := handlers.NewHealthHandler()
	cardHandler := handlers.NewCardHandler(store)
	chatHandler := handlers.NewChatHandler(manager, recommender)
	recommendationHandler := handlers.NewRecommendationHandler(recommender)
	favoriteHandler := handlers.NewFavoriteHandler(store)

	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)

	// Catalog
	cards := api.Group("/cards")
	cards.Get("/", cardHandler.GetCards)
	cards.Get("/:id", cardHandler.GetCard)
	cards.Post("/", middleware.RequireAdminKey(), cardHandler.CreateCard)

	// Conversational advisor
	api.Post("/chat", chatHandler.Chat)
	api.Get("/chat/:sessionId/history", chatHandler.History)

	// Direct ranking
	api.Post("/recommendations", recommendationHandler.GetRecommendations)

	// Favorites
	favorites := api.Group("/favorites")
	favorites.Get("/", favoriteHandler.GetFavorites)
	favorites.Post("/", favoriteHandler.AddFavorite)
	favorites.Delete("/:cardId", favoriteHandler.RemoveFavorite)
	favorites.Get("/:cardId/check", favoriteHandler.CheckFavorite)
}
