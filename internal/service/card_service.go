package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"scraty/internal/model"
	"scraty/internal/repository"
)

// CardInput is the validated payload for creating or updating a card.
type CardInput struct {
	ID       string
	Text     string
	StoryID  string
	UserName string
	Status   string
}

type CardService struct {
	cards   repository.CardRepositoryInterface
	stories repository.StoryRepositoryInterface
	users   repository.UserRepositoryInterface
}

func NewCardService(
	cards repository.CardRepositoryInterface,
	stories repository.StoryRepositoryInterface,
	users repository.UserRepositoryInterface,
) *CardService {
	return &CardService{cards: cards, stories: stories, users: users}
}

type cardFields struct {
	text    string
	storyID uuid.UUID
	status  model.Status
}

func (s *CardService) validate(ctx context.Context, in CardInput) (cardFields, error) {
	errs := make(map[string]string)
	var fields cardFields

	fields.text = strings.TrimSpace(in.Text)
	if fields.text == "" {
		errs["text"] = "this field is required"
	}

	if in.StoryID == "" {
		errs["story"] = "this field is required"
	} else if id, err := uuid.Parse(in.StoryID); err != nil {
		errs["story"] = "unknown story"
	} else {
		story, err := s.stories.GetActiveByID(ctx, id)
		if errors.Is(err, repository.ErrStoryNotFound) {
			errs["story"] = "unknown story"
		} else if err != nil {
			return fields, err
		} else {
			fields.storyID = story.ID
		}
	}

	fields.status = model.StatusTodo
	if in.Status != "" {
		fields.status = model.Status(in.Status)
		if !fields.status.Valid() {
			errs["status"] = "unknown status"
		}
	}

	if len(errs) > 0 {
		return fields, &ValidationError{Fields: errs}
	}
	return fields, nil
}

// resolveUser turns a free-text name into a user reference, creating the
// user on first mention. An empty name clears the assignment.
func (s *CardService) resolveUser(ctx context.Context, card *model.Card, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		card.UserName = nil
		card.User = nil
		return nil
	}
	user, err := s.users.GetOrCreate(ctx, name)
	if err != nil {
		return err
	}
	card.UserName = &user.Name
	card.User = user
	return nil
}

// Save creates a card, or updates one in place when the input id resolves
// to an active card.
func (s *CardService) Save(ctx context.Context, in CardInput) (*model.Card, error) {
	fields, err := s.validate(ctx, in)
	if err != nil {
		return nil, err
	}

	if in.ID != "" {
		if id, perr := uuid.Parse(in.ID); perr == nil {
			card, gerr := s.cards.GetActiveByID(ctx, id)
			if gerr == nil {
				return s.apply(ctx, card, fields, in.UserName, false)
			}
			if !errors.Is(gerr, repository.ErrCardNotFound) {
				return nil, gerr
			}
		}
	}

	return s.apply(ctx, &model.Card{}, fields, in.UserName, true)
}

// Update modifies an existing active card and reports not found instead
// of falling back to create.
func (s *CardService) Update(ctx context.Context, id uuid.UUID, in CardInput) (*model.Card, error) {
	fields, err := s.validate(ctx, in)
	if err != nil {
		return nil, err
	}
	card, err := s.cards.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, card, fields, in.UserName, false)
}

func (s *CardService) apply(ctx context.Context, card *model.Card, fields cardFields, userName string, create bool) (*model.Card, error) {
	card.Text = fields.text
	card.StoryID = fields.storyID
	card.Status = fields.status
	if err := s.resolveUser(ctx, card, userName); err != nil {
		return nil, err
	}

	var err error
	if create {
		err = s.cards.Create(ctx, card)
	} else {
		err = s.cards.Update(ctx, card)
	}
	if err != nil {
		return nil, err
	}
	return card, nil
}

// Delete soft-deletes an active card.
func (s *CardService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.cards.SoftDelete(ctx, id)
}

// Move reassigns an active card's story and status atomically. Any status
// may move to any other status; there is no transition ordering.
func (s *CardService) Move(ctx context.Context, cardID uuid.UUID, storyID, status string) (*model.Card, error) {
	target := model.Status(status)
	if !target.Valid() {
		return nil, validationError("status", "unknown status")
	}
	sid, err := uuid.Parse(storyID)
	if err != nil {
		return nil, validationError("story", "unknown story")
	}
	return s.cards.Move(ctx, cardID, sid, target)
}
