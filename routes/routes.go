package routes

import (
	"fmt"

	"github.com/JinJinHistory/climb-hub/graph"
	"github.com/JinJinHistory/climb-hub/handlers"
	"github.com/JinJinHistory/climb-hub/middleware"
	"github.com/JinJinHistory/climb-hub/services"
	"github.com/JinJinHistory/climb-hub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Setup wires services, the GraphQL schema, and the realtime feed into
// a gin engine.
func Setup(db *gorm.DB, log *zap.Logger) (*gin.Engine, error) {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	wsManager := utils.NewWebSocketManager(log)

	resolver := &graph.Resolver{
		Brands:       services.NewBrandService(db),
		Gyms:         services.NewGymService(db),
		RouteUpdates: services.NewRouteUpdateService(db, wsManager),
		CrawlLogs:    services.NewCrawlLogService(db),
	}

	schema, err := graph.NewSchema(resolver)
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}

	graphqlHandler := handlers.NewGraphQLHandler(schema)
	healthHandler := handlers.NewHealthHandler(db)
	websocketHandler := handlers.NewWebSocketHandler(wsManager, log)

	r.GET("/ws", websocketHandler.HandleWebSocket)

	api := r.Group("/api")
	{
		api.POST("/graphql", graphqlHandler.Handle)
		api.GET("/health", healthHandler.Health)
	}

	return r, nil
}
