package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"devmeup/models"
)

// HistoryProvider is the service surface the history endpoints depend on
type HistoryProvider interface {
	GetHistoryByEmail(ctx context.Context, email string) ([]models.HistoryEntry, error)
	GetHistory(ctx context.Context, identifier string) ([]models.HistoryEntry, error)
	CreateEntry(ctx context.Context, identifier, query, response string) (models.HistoryEntry, error)
}

type HistoryController struct {
	service HistoryProvider
}

func NewHistoryController(service HistoryProvider) *HistoryController {
	return &HistoryController{service: service}
}

// GetByEmail handles GET /api/history/:identifier. The path segment carries
// an email address; percent-encoding is undone once by the router, so the
// param arrives decoded and must not be unescaped again.
func (h *HistoryController) GetByEmail(c *gin.Context) {
	email := c.Param("identifier")

	entries, err := h.service.GetHistoryByEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetByIdentifier handles GET /api/history?identifier=, the form used with
// opaque user ids
func (h *HistoryController) GetByIdentifier(c *gin.Context) {
	identifier := c.Query("identifier")
	if identifier == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "identifier query parameter is required"})
		return
	}

	entries, err := h.service.GetHistory(c.Request.Context(), identifier)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Create handles POST /api/history
func (h *HistoryController) Create(c *gin.Context) {
	var input struct {
		Identifier string `json:"identifier"`
		Query      string `json:"query"`
		Response   string `json:"response"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.service.CreateEntry(c.Request.Context(), input.Identifier, input.Query, input.Response)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}
