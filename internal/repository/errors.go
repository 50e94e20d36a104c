package repository

import "errors"

// Common repository errors
var (
	// ErrStoryNotFound is returned when no active story matches the id
	ErrStoryNotFound = errors.New("story not found")

	// ErrCardNotFound is returned when no active card matches the id
	ErrCardNotFound = errors.New("card not found")

	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")
)
