package controllers

import (
	"log"

	"github.com/gin-gonic/gin"

	"devmeup/services"
)

// respondError maps a service failure to a status code and a safe JSON body.
// The underlying cause goes to the log, never to the client.
func respondError(c *gin.Context, err error) {
	svcErr := services.AsServiceError(err)
	if svcErr.Err != nil {
		log.Printf("%s %s failed: %v", c.Request.Method, c.FullPath(), svcErr)
	}
	c.JSON(svcErr.HTTPStatus(), gin.H{"error": svcErr.Message})
}
