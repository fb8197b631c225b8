package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultSkip  = 0
	DefaultLimit = 100
	MaxLimit     = 1000
)

// ParseSkipLimit extracts and validates offset pagination parameters from the
// request query string. Malformed or negative values fall back to defaults.
func ParseSkipLimit(c *gin.Context) (skip, limit int) {
	skipStr := c.DefaultQuery("skip", "0")
	skip, err := strconv.Atoi(skipStr)
	if err != nil || skip < 0 {
		skip = DefaultSkip
	}

	limitStr := c.DefaultQuery("limit", "100")
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return skip, limit
}

// ClampSkipLimit normalizes skip/limit values coming from callers outside
// the HTTP layer to the same bounds ParseSkipLimit uses.
func ClampSkipLimit(skip, limit int) (int, int) {
	if skip < 0 {
		skip = DefaultSkip
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return skip, limit
}
