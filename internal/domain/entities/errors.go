package entities

import "errors"

// User errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailAlreadyUsed = errors.New("email already in use")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidName      = errors.New("invalid name")
)

// Interview errors
var (
	ErrInterviewNotFound     = errors.New("interview not found")
	ErrInvalidInterviewOwner = errors.New("interview owner is required")
	ErrInvalidInterviewRole  = errors.New("interview role is required")
	ErrInvalidInterviewType  = errors.New("invalid interview type")
)

// Feedback errors
var (
	ErrFeedbackNotFound = errors.New("feedback not found")
)

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)
