package stub

import "github.com/gin-gonic/gin"

// respond writes the uniform success envelope.
func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": "",
		"data":    data,
	})
}

// respondError writes the uniform error envelope.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
	})
}

func abortError(c *gin.Context, status int, message string) {
	respondError(c, status, message)
	c.Abort()
}
