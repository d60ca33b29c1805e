package usecase

import "errors"

var (
	// ErrEmptyReferenceData - API ответил успехом, но без данных; такое не кэшируем.
	ErrEmptyReferenceData = errors.New("empty reference data")
	// ErrUpstreamStatus - API ответил status=error.
	ErrUpstreamStatus = errors.New("upstream returned error status")
)
