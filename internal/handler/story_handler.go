package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scraty/internal/service"
)

type StoryHandler struct {
	stories *service.StoryService
}

func NewStoryHandler(stories *service.StoryService) *StoryHandler {
	return &StoryHandler{stories: stories}
}

// StoryRequest is the create/update payload for a story
type StoryRequest struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Link  string `json:"link"`
}

// Save creates a story, or updates one when the payload carries a known id
func (h *StoryHandler) Save(c *gin.Context) {
	var req StoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	story, err := h.stories.Save(c.Request.Context(), service.StoryInput{
		ID:    req.ID,
		Title: req.Title,
		Link:  req.Link,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newStoryResponse(story, false))
}

// Update modifies the story addressed by the path id
func (h *StoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid story ID format"})
		return
	}

	var req StoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	story, err := h.stories.Update(c.Request.Context(), id, service.StoryInput{
		Title: req.Title,
		Link:  req.Link,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newStoryResponse(story, false))
}

// Delete soft-deletes the story; its cards leave the board with it
func (h *StoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid story ID format"})
		return
	}

	if err := h.stories.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
