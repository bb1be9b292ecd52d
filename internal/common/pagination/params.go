package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params is a validated limit/offset window.
type Params struct {
	Limit  int
	Offset int
}

// ParseQueryParams reads ?limit= and ?offset=. Missing values take the defaults,
// a limit above the maximum is clamped, and malformed or negative values are rejected.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{Limit: config.DefaultLimit}
	q := r.URL.Query()

	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			return params, fmt.Errorf("invalid query parameter: limit must be a positive integer")
		}
		params.Limit = limit
	}
	if params.Limit > config.MaxLimit {
		params.Limit = config.MaxLimit
	}

	if offsetStr := q.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return params, fmt.Errorf("invalid query parameter: offset must be a non-negative integer")
		}
		params.Offset = offset
	}

	return params, nil
}
