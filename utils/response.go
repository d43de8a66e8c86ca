package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONValidationError renders the FastAPI-style 422 body the admin frontend
// already knows how to parse: {"detail":[{"msg": "..."}]}.
func JSONValidationError(c *gin.Context, messages ...string) {
	detail := make([]gin.H, 0, len(messages))
	for _, msg := range messages {
		detail = append(detail, gin.H{"msg": msg})
	}
	c.JSON(422, gin.H{"detail": detail})
}
