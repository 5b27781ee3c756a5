package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrInvalidImage is returned when the uploaded image is missing, not
	// decodable base64, or too small to be a usable photo
	ErrInvalidImage = errors.New("invalid or unusable image")

	// ErrOpenAIAPIFailure is returned when the OpenAI API request fails
	ErrOpenAIAPIFailure = errors.New("OpenAI API request failed")

	// ErrAnalysisParseFailure is returned when the model reply cannot be
	// parsed into a structured shoe description
	ErrAnalysisParseFailure = errors.New("could not parse model analysis")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
