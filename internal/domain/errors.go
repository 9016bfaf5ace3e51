package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("resource conflict")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidEntry        = errors.New("sleep hours out of valid range")
	ErrInvalidPlanDuration = errors.New("plan duration must be positive")
	ErrInvalidWakeTime     = errors.New("wake time outside acceptable range")
	ErrEmptyHistory        = errors.New("no sleep history available")
)
