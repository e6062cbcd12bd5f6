package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CurrentUserID(c *gin.Context) uuid.UUID {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uuid.UUID:
		return id
	case string:
		if parsed, err := uuid.Parse(id); err == nil {
			return parsed
		}
	}
	return uuid.Nil
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
