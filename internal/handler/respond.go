package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"scraty/internal/model"
	"scraty/internal/repository"
	"scraty/internal/service"
)

// UserResponse is the assignee part of a card payload
type UserResponse struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CardResponse is the wire shape of a single card. User is null when the
// card is unassigned.
type CardResponse struct {
	ID     string        `json:"id"`
	Text   string        `json:"text"`
	Status string        `json:"status"`
	User   *UserResponse `json:"user"`
}

// StoryResponse is the wire shape of a story, with its cards when listing
// the board
type StoryResponse struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Link  string         `json:"link"`
	Cards []CardResponse `json:"cards,omitempty"`
}

// BoardResponse is the active board: every non-done story with its
// non-done cards
type BoardResponse struct {
	Stories []StoryResponse `json:"stories"`
}

func newCardResponse(card *model.Card) CardResponse {
	resp := CardResponse{
		ID:     card.ID.String(),
		Text:   card.Text,
		Status: string(card.Status),
	}
	if card.User != nil {
		resp.User = &UserResponse{Name: card.User.Name, Color: card.User.Color}
	}
	return resp
}

func newStoryResponse(story *model.Story, withCards bool) StoryResponse {
	resp := StoryResponse{
		ID:    story.ID.String(),
		Title: story.Title,
		Link:  story.Link,
	}
	if withCards {
		resp.Cards = make([]CardResponse, len(story.Cards))
		for i := range story.Cards {
			resp.Cards[i] = newCardResponse(&story.Cards[i])
		}
	}
	return resp
}

// respondError maps service and repository errors onto the HTTP surface:
// validation failures become a 400 with a field-keyed error map, missing
// records a bare 404, anything else a 500.
func respondError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Fields})
	case errors.Is(err, repository.ErrStoryNotFound),
		errors.Is(err, repository.ErrCardNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		c.Status(http.StatusNotFound)
	default:
		log.Printf("❌ %s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
