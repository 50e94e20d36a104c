package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scraty/internal/service"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// UserEditRequest is one roster row: an upsert, or a delete when the
// flag is set
type UserEditRequest struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	Delete bool   `json:"delete"`
}

// Page renders the roster admin page with the current users
func (h *UserHandler) Page(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	roster := make([]UserResponse, len(users))
	for i, u := range users {
		roster[i] = UserResponse{Name: u.Name, Color: u.Color}
	}
	c.HTML(http.StatusOK, "users.html", gin.H{"Users": roster})
}

// BulkSave applies the roster form as one batch and sends the client back
// to the board on success
func (h *UserHandler) BulkSave(c *gin.Context) {
	var req []UserEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	edits := make([]service.UserEdit, len(req))
	for i, r := range req {
		edits[i] = service.UserEdit{Name: r.Name, Color: r.Color, Delete: r.Delete}
	}

	if err := h.users.BulkSave(c.Request.Context(), edits); err != nil {
		respondError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
