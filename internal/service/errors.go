package service

import "errors"

var (
	ErrInvalidOrExpiredCode = errors.New("verification code incorrect or expired")
	ErrStoreUnavailable     = errors.New("store unavailable")
	ErrUserPersistence      = errors.New("user persistence failed")
	ErrUserConflict         = errors.New("concurrent user creation, retry")
	ErrCodeDelivery         = errors.New("verification code delivery failed")
	ErrUserNotFound         = errors.New("user not found")

	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidGeoJSON  = errors.New("invalid geojson feature collection")

	ErrAssistantDisabled = errors.New("assistant disabled")
)
