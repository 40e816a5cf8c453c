package api

import (
	"net/http"
	"time"

	"github.com/BoysInc/volair-dashboard-sub000/internal/repository"
	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	operatorID string
	repo       repository.ActivityRepository
	pageSize   int
}

type activityResponse struct {
	ID        string `json:"id"`
	FlightID  string `json:"flight_id"`
	Action    string `json:"action"`
	CreatedAt string `json:"created_at"`
}

func NewActivityHandler(operatorID string, repo repository.ActivityRepository, pageSize int) *ActivityHandler {
	if pageSize <= 0 {
		pageSize = 50
	}
	return &ActivityHandler{operatorID: operatorID, repo: repo, pageSize: pageSize}
}

func (h *ActivityHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
}

func (h *ActivityHandler) list(c *gin.Context) {
	entries, err := h.repo.ListByOperator(c.Request.Context(), h.operatorID, h.pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]activityResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, activityResponse{
			ID:        e.ID,
			FlightID:  e.FlightID,
			Action:    e.Action,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}
