package domain

import "errors"

// Domain errors
var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrNameRequired       = errors.New("name is required")
	ErrNameTooLong        = errors.New("name exceeds maximum length")
	ErrLocationTooLong    = errors.New("location exceeds maximum length")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
	ErrInvalidAmount      = errors.New("amount must not be negative")
	ErrInvalidLimit       = errors.New("limit must not be negative")
	ErrInvalidColor       = errors.New("invalid color value")
	ErrInvalidPeriod      = errors.New("unknown period")
)

// Validation constants
const (
	MaxCategoryNameLength = 100
	MaxLocationLength     = 255
	MaxDescriptionLength  = 255
)
