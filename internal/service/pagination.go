// Package service contains input validation and orchestration between the
// HTTP handlers and the repositories.
package service

import (
	"strconv"

	"newsroom/internal/models"
)

const defaultPageLimit = 10

// parsePagination validates the raw limit and p query values. Both default
// when absent (limit 10, page 1) and must otherwise parse as integers >= 1.
// The returned offset is (page-1)*limit.
func parsePagination(limitRaw, pageRaw string) (limit, offset int, err error) {
	limit = defaultPageLimit
	if limitRaw != "" {
		v, convErr := strconv.Atoi(limitRaw)
		if convErr != nil || v < 1 {
			return 0, 0, models.NewValidationError("Bad request")
		}
		limit = v
	}

	page := 1
	if pageRaw != "" {
		v, convErr := strconv.Atoi(pageRaw)
		if convErr != nil || v < 1 {
			return 0, 0, models.NewValidationError("Bad request")
		}
		page = v
	}

	return limit, (page - 1) * limit, nil
}
