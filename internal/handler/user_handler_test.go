package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"scraty/internal/model"
)

func TestBulkSaveUsers_RedirectsToBoard(t *testing.T) {
	// Arrange
	router, mocks := setupRouter()

	mocks.users.On("Upsert", mock.Anything, &model.User{Name: "Jane", Color: "55d4f5"}).Return(nil)
	mocks.users.On("Delete", mock.Anything, "Joe").Return(nil)

	body, _ := json.Marshal([]map[string]any{
		{"name": "Jane", "color": "55d4f5"},
		{"name": "Joe", "delete": true},
	})
	req, _ := http.NewRequest("POST", "/users", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusSeeOther, resp.Code)
	assert.Equal(t, "/", resp.Header().Get("Location"))
	mocks.users.AssertExpectations(t)
}

func TestBulkSaveUsers_InvalidColor(t *testing.T) {
	// Arrange
	router, mocks := setupRouter()

	body, _ := json.Marshal([]map[string]any{
		{"name": "Jane", "color": "red"},
	})
	req, _ := http.NewRequest("POST", "/users", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var response map[string]map[string]string
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "enter six hex digits", response["errors"]["0.color"])
	mocks.users.AssertNotCalled(t, "Upsert")
}
