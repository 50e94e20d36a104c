package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scraty/internal/service"
)

type BoardHandler struct {
	stories *service.StoryService
}

func NewBoardHandler(stories *service.StoryService) *BoardHandler {
	return &BoardHandler{stories: stories}
}

// Index renders the board page. The page's script re-fetches the board
// JSON on an interval; the server holds no subscription state.
func (h *BoardHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "board.html", gin.H{})
}

// Board returns the active board as JSON: every non-done story with its
// non-done cards and resolved assignees
func (h *BoardHandler) Board(c *gin.Context) {
	stories, err := h.stories.ActiveBoard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := BoardResponse{Stories: make([]StoryResponse, len(stories))}
	for i := range stories {
		resp.Stories[i] = newStoryResponse(&stories[i], true)
	}
	c.JSON(http.StatusOK, resp)
}

// Health is a basic readiness endpoint
func (h *BoardHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
