package domain

import "errors"

var (
	// ErrProductNotFound is returned when an id is absent from every category
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrInvalidCategoryPair is returned by the startup self-check when the
	// predicate chain table is inconsistent; it never surfaces per request
	ErrInvalidCategoryPair = errors.New("invalid category pair configuration")

	// ErrUnknownCategory is returned when a request names a category outside
	// the fixed enumeration
	ErrUnknownCategory = errors.New("unknown product category")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)
