package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseOptionalInt parses an optional non-negative integer query parameter.
// The second return value reports whether the parameter was supplied.
func ParseOptionalInt(c *gin.Context, name string) (int, bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return 0, false, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, false, fmt.Errorf("invalid %s parameter: must be a non-negative integer", name)
	}

	return value, true, nil
}

// OptionalQuery returns the query parameter value and whether it was supplied non-empty.
func OptionalQuery(c *gin.Context, name string) (string, bool) {
	value, ok := c.GetQuery(name)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}
