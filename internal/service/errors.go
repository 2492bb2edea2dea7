package service

import "errors"

// Sentinel errors returned by the query pipeline. Handlers map these to
// HTTP status codes with errors.Is.
var (
	// ErrInterpretation marks a failed interpretation of the free-text
	// query: transport failures, non-2xx responses, empty completions
	// and unparsable payloads all wrap it.
	ErrInterpretation = errors.New("query interpretation failed")

	// ErrAggregation marks invalid catalog data reaching the grocery
	// aggregation step, such as a non-positive ingredient quantity.
	ErrAggregation = errors.New("grocery aggregation failed")

	ErrRecipeNotFound = errors.New("recipe not found")
	ErrPlanNotFound   = errors.New("plan not found")
)
