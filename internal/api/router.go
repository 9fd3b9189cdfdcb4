package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "go-purchase-analytics/docs" // swagger spec registration
	"go-purchase-analytics/internal/api/handler"
	"go-purchase-analytics/pkg/router"
)

// RegisterRoutes wires every HTTP endpoint onto the router.
func RegisterRoutes(r *router.Router, dashboard *handler.DashboardHandler, chat *handler.ChatHandler, files *handler.FileHandler) {
	r.GET("/api/health", handler.Health)
	r.GET("/api/dashboard/kpis", dashboard.GetKPIs)
	r.POST("/api/chat", chat.HandleChat)

	r.POST("/api/v1/files", files.Upload)
	r.GET("/api/v1/files", files.List)
	// More specific routes first
	r.GET("/api/v1/files/*/preview", files.Preview)
	r.GET("/api/v1/files/*/kpis", files.KPIs)
	r.POST("/api/v1/files/*/analyze", files.Analyze)
	// Generic file routes last
	r.GET("/api/v1/files/*", files.Get)
	r.DELETE("/api/v1/files/*", files.Delete)

	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
