package middleware

import "github.com/gin-gonic/gin"

// MsgInternalError is the body error of every 500 answer.
const MsgInternalError = "Internal server error"

// abortWithError stops the chain with the {success:false,error} envelope.
func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": message})
}
