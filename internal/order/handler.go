package order

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"touchpos/internal/catalog"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Price preview on every screen interaction
// --------------------------------------------------
func (h *Handler) Quote(c *gin.Context) {
	var req struct {
		ItemID int    `json:"item_id"`
		Picks  []Pick `json:"picks"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	quote, validation, err := h.service.Quote(c.Request.Context(), req.ItemID, req.Picks)
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quote":      quote,
		"validation": validation,
	})
}

// --------------------------------------------------
// Confirm a configured item into the cart
// --------------------------------------------------
func (h *Handler) AddToCart(c *gin.Context) {
	var req struct {
		Table  string `json:"table"`
		ItemID int    `json:"item_id"`
		Qty    int    `json:"qty"`
		Picks  []Pick `json:"picks"`
	}
	if err := c.BindJSON(&req); err != nil || req.Table == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	composed, err := h.service.AddToCart(
		c.Request.Context(),
		req.Table,
		req.ItemID,
		req.Qty,
		req.Picks,
	)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		case errors.Is(err, ErrIncompleteSelection):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, composed)
}

// --------------------------------------------------
// Current cart for a table
// --------------------------------------------------
func (h *Handler) GetCart(c *gin.Context) {
	items, err := h.service.Cart(c.Request.Context(), c.Param("table"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// --------------------------------------------------
// Submit the table's order to the sales backend
// --------------------------------------------------
func (h *Handler) Submit(c *gin.Context) {
	var header Header
	if err := c.BindJSON(&header); err != nil || header.Table == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	lines, err := h.service.Submit(c.Request.Context(), header)
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "submitted",
		"lines":  lines,
	})
}
