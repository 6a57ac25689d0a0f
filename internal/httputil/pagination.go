package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseLimit safely parses and validates the limit query parameter.
// When the parameter is absent the provided default is used.
// The limit cannot exceed 100.
func ParseLimit(c *gin.Context, defaultLimit int) (int, error) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > 100 {
		return 0, fmt.Errorf("invalid limit parameter: must be between 1 and 100")
	}

	return limit, nil
}
