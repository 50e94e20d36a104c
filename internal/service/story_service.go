package service

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"scraty/internal/model"
	"scraty/internal/repository"
)

// StoryInput is the validated payload for creating or updating a story.
type StoryInput struct {
	ID    string
	Title string
	Link  string
}

type StoryService struct {
	stories repository.StoryRepositoryInterface
}

func NewStoryService(stories repository.StoryRepositoryInterface) *StoryService {
	return &StoryService{stories: stories}
}

func (s *StoryService) validate(in StoryInput) (string, *ValidationError) {
	errs := make(map[string]string)

	title := strings.TrimSpace(in.Title)
	if title == "" {
		errs["title"] = "this field is required"
	}
	if in.Link != "" {
		u, err := url.ParseRequestURI(in.Link)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs["link"] = "enter a valid URL"
		}
	}
	if in.ID != "" {
		if _, err := uuid.Parse(in.ID); err != nil {
			errs["id"] = "enter a valid UUID"
		}
	}

	if len(errs) > 0 {
		return "", &ValidationError{Fields: errs}
	}
	return title, nil
}

// Save creates a story, or updates one in place when the input id resolves
// to an active story. An id that resolves to nothing falls back to create
// with a freshly generated identifier.
func (s *StoryService) Save(ctx context.Context, in StoryInput) (*model.Story, error) {
	title, verr := s.validate(in)
	if verr != nil {
		return nil, verr
	}

	if in.ID != "" {
		id, _ := uuid.Parse(in.ID)
		story, err := s.stories.GetActiveByID(ctx, id)
		if err == nil {
			story.Title = title
			story.Link = in.Link
			if err := s.stories.Update(ctx, story); err != nil {
				return nil, err
			}
			return story, nil
		}
		if !errors.Is(err, repository.ErrStoryNotFound) {
			return nil, err
		}
	}

	story := &model.Story{Title: title, Link: in.Link}
	if err := s.stories.Create(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

// Update modifies an existing active story and reports not found instead
// of falling back to create.
func (s *StoryService) Update(ctx context.Context, id uuid.UUID, in StoryInput) (*model.Story, error) {
	title, verr := s.validate(in)
	if verr != nil {
		return nil, verr
	}

	story, err := s.stories.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	story.Title = title
	story.Link = in.Link
	if err := s.stories.Update(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

// Delete soft-deletes an active story. The story's cards stay in storage
// and drop off the board together with it.
func (s *StoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.stories.SoftDelete(ctx, id)
}

// ActiveBoard returns every non-done story with its non-done cards and
// their assigned users resolved.
func (s *StoryService) ActiveBoard(ctx context.Context) ([]model.Story, error) {
	return s.stories.ListActive(ctx)
}
