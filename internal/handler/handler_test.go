package handler_test

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"scraty/internal/handler"
	"scraty/internal/model"
	"scraty/internal/service"
)

// Мок репозитория историй
type MockStoryRepository struct {
	mock.Mock
}

func (m *MockStoryRepository) Create(ctx context.Context, story *model.Story) error {
	args := m.Called(ctx, story)
	return args.Error(0)
}

func (m *MockStoryRepository) Update(ctx context.Context, story *model.Story) error {
	args := m.Called(ctx, story)
	return args.Error(0)
}

func (m *MockStoryRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*model.Story, error) {
	args := m.Called(ctx, id)
	story := args.Get(0)
	if story == nil {
		return nil, args.Error(1)
	}
	return story.(*model.Story), args.Error(1)
}

func (m *MockStoryRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStoryRepository) ListActive(ctx context.Context) ([]model.Story, error) {
	args := m.Called(ctx)
	stories := args.Get(0)
	if stories == nil {
		return nil, args.Error(1)
	}
	return stories.([]model.Story), args.Error(1)
}

// Мок репозитория карточек
type MockCardRepository struct {
	mock.Mock
}

func (m *MockCardRepository) Create(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) Update(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	args := m.Called(ctx, id)
	card := args.Get(0)
	if card == nil {
		return nil, args.Error(1)
	}
	return card.(*model.Card), args.Error(1)
}

func (m *MockCardRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCardRepository) Move(ctx context.Context, cardID, storyID uuid.UUID, status model.Status) (*model.Card, error) {
	args := m.Called(ctx, cardID, storyID, status)
	card := args.Get(0)
	if card == nil {
		return nil, args.Error(1)
	}
	return card.(*model.Card), args.Error(1)
}

// Мок репозитория пользователей
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetOrCreate(ctx context.Context, name string) (*model.User, error) {
	args := m.Called(ctx, name)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users := args.Get(0)
	if users == nil {
		return nil, args.Error(1)
	}
	return users.([]model.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

type testMocks struct {
	stories *MockStoryRepository
	cards   *MockCardRepository
	users   *MockUserRepository
}

// setupRouter wires the handlers through real services onto a test engine,
// mirroring the routes the server registers.
func setupRouter() (*gin.Engine, *testMocks) {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	r.HandleMethodNotAllowed = true

	m := &testMocks{
		stories: new(MockStoryRepository),
		cards:   new(MockCardRepository),
		users:   new(MockUserRepository),
	}

	storyService := service.NewStoryService(m.stories)
	cardService := service.NewCardService(m.cards, m.stories, m.users)
	userService := service.NewUserService(m.users)

	boardHandler := handler.NewBoardHandler(storyService)
	storyHandler := handler.NewStoryHandler(storyService)
	cardHandler := handler.NewCardHandler(cardService)
	userHandler := handler.NewUserHandler(userService)

	r.GET("/stories", boardHandler.Board)
	r.POST("/stories", storyHandler.Save)
	r.PUT("/stories/:id", storyHandler.Update)
	r.DELETE("/stories/:id", storyHandler.Delete)
	r.POST("/cards", cardHandler.Save)
	r.PUT("/cards/:id", cardHandler.Update)
	r.DELETE("/cards/:id", cardHandler.Delete)
	r.POST("/cards/:id/move", cardHandler.Move)
	r.POST("/users", userHandler.BulkSave)

	return r, m
}
