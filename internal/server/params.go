package server

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// candidateIDParam parses the optional candidate_id query parameter.
func candidateIDParam(c *gin.Context) (*uuid.UUID, error) {
	raw := c.Query("candidate_id")
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid candidate_id")
	}

	return &id, nil
}

// intParam parses an optional non-negative integer query parameter.
func intParam(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}

	return value, nil
}
