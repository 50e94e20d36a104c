package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scraty/internal/service"
)

type CardHandler struct {
	cards *service.CardService
}

func NewCardHandler(cards *service.CardService) *CardHandler {
	return &CardHandler{cards: cards}
}

// CardRequest is the create/update payload for a card
type CardRequest struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Story  string `json:"story"`
	User   string `json:"user"`
	Status string `json:"status"`
}

// CardMoveRequest reassigns a card's story and status
type CardMoveRequest struct {
	Story  string `json:"story"`
	Status string `json:"status"`
}

// Save creates a card, or updates one when the payload carries a known id
func (h *CardHandler) Save(c *gin.Context) {
	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	card, err := h.cards.Save(c.Request.Context(), service.CardInput{
		ID:       req.ID,
		Text:     req.Text,
		StoryID:  req.Story,
		UserName: req.User,
		Status:   req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCardResponse(card))
}

// Update modifies the card addressed by the path id
func (h *CardHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID format"})
		return
	}

	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	card, err := h.cards.Update(c.Request.Context(), id, service.CardInput{
		Text:     req.Text,
		StoryID:  req.Story,
		UserName: req.User,
		Status:   req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCardResponse(card))
}

// Delete soft-deletes the card
func (h *CardHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID format"})
		return
	}

	if err := h.cards.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Move reassigns the card's story and status in one step
func (h *CardHandler) Move(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID format"})
		return
	}

	var req CardMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	card, err := h.cards.Move(c.Request.Context(), id, req.Story, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCardResponse(card))
}
