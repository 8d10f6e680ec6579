package response

import "github.com/gin-gonic/gin"

// Error writes the uniform JSON error body. Every non-2xx response on the API
// carries this shape, never bare text.
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{"error": message})
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(200, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(201, data)
}
