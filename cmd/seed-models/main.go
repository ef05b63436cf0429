package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/baldimario/promptly/internal/models"
	"github.com/baldimario/promptly/internal/services"
	"github.com/baldimario/promptly/pkg/config"
)

// catalog is the curated list of AI models prompts can suggest. Seeding is
// idempotent, entries are upserted by slug.
var catalog = []models.Model{
	{Name: "GPT-5", Slug: "gpt-5", Provider: "OpenAI", Description: "OpenAI's most capable model"},
	{Name: "GPT-4o", Slug: "gpt-4o", Provider: "OpenAI", Description: "Multimodal flagship model"},
	{Name: "GPT-4 Turbo", Slug: "gpt-4-turbo", Provider: "OpenAI", Description: "Fast GPT-4 class model"},
	{Name: "Gemini 1.5 Pro", Slug: "gemini-1.5-pro", Provider: "Google", Description: "Long-context reasoning model"},
	{Name: "Gemini 1.5 Flash", Slug: "gemini-1.5-flash", Provider: "Google", Description: "Low-latency Gemini model"},
	{Name: "Claude 3 Opus", Slug: "claude-3-opus", Provider: "Anthropic", Description: "Most capable Claude 3 model"},
	{Name: "Claude 3 Sonnet", Slug: "claude-3-sonnet", Provider: "Anthropic", Description: "Balanced Claude 3 model"},
	{Name: "Claude 3 Haiku", Slug: "claude-3-haiku", Provider: "Anthropic", Description: "Fastest Claude 3 model"},
	{Name: "Mistral Large", Slug: "mistral-large", Provider: "Mistral AI", Description: "Mistral's flagship model"},
	{Name: "Mistral Small", Slug: "mistral-small", Provider: "Mistral AI", Description: "Cost-efficient Mistral model"},
	{Name: "Llama 3", Slug: "llama-3", Provider: "Meta", Description: "Open-weights model family"},
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if err := db.Postgres.AutoMigrate(&models.Model{}); err != nil {
		sugar.Fatalw("failed to migrate model table", "error", err)
	}

	modelService := services.NewModelService(db.Postgres, sugar)
	if err := modelService.Seed(catalog); err != nil {
		sugar.Fatalw("failed to seed models", "error", err)
	}
	sugar.Infow("model catalog seeded", "count", len(catalog))
}
