package handlers

import (
	"github.com/JinJinHistory/climb-hub/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler reports service and database liveness.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health pings the database and reports status.
func (h *HealthHandler) Health(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		utils.ServiceUnavailable(c, "database unavailable")
		return
	}
	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		utils.ServiceUnavailable(c, "database unavailable")
		return
	}
	utils.Success(c, gin.H{"status": "ok"}, "healthy")
}
