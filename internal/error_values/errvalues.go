package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidUserData  = errors.New("invalid user name or password format")

	ErrInvalidUsage    = errors.New("invalid usage record")
	ErrDateNotAllowed  = errors.New("usage date is in the future")
	ErrNoUsageRecords  = errors.New("no usage records")
	ErrInvalidDateSpan = errors.New("invalid date range")
	ErrInvalidScenario = errors.New("invalid what-if scenario")

	// Trend fitting failures. Never returned by analytics entry points,
	// they are absorbed by the prediction fallback chain.
	ErrInsufficientHistory = errors.New("insufficient history for trend fit")
	ErrDegenerateFit       = errors.New("trend fit is degenerate")

	ErrEmptyActivityText = errors.New("activity description is empty")
	ErrExtractionFailed  = errors.New("activity extraction failed")
)
