package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads an unsigned integer path parameter.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
