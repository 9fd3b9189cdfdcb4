package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"go-purchase-analytics/internal/api"
	"go-purchase-analytics/internal/api/handler"
	"go-purchase-analytics/internal/chat"
	"go-purchase-analytics/internal/llm"
	"go-purchase-analytics/internal/reader"
	"go-purchase-analytics/internal/store"
	"go-purchase-analytics/pkg/router"
)

// @title Purchase Analytics API
// @version 1.0
// @description Dashboard KPIs, file analysis and chat over SAP purchase documents data
// @host localhost:8080
// @BasePath /api
func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("ℹ️ No .env file found, using process environment")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "analytics.db"
	}
	if err := store.InitDB(dbPath); err != nil {
		panic(err)
	}

	source := &reader.Source{Cfg: reader.ConfigFromEnv()}
	provider := &llm.GeminiProvider{Model: os.Getenv("GEMINI_MODEL")}
	assistant := chat.NewAssistant(provider, source)

	r := router.New()
	api.RegisterRoutes(r,
		handler.NewDashboardHandler(source),
		handler.NewChatHandler(assistant),
		handler.NewFileHandler(assistant),
	)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	r.Start(addr)
}
