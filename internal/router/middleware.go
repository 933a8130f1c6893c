package router

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MatheusVicenteSantosSilva/MoneyMind-2/internal/models"
)

// OwnerHeader is the header the authenticating front layer forwards
// the user ID in. Authentication itself happens outside of this
// backend.
const OwnerHeader = "X-Owner-Id"

type middlewareError struct {
	Error string `json:"error" example:"the X-Owner-Id header must be set to a valid UUID"`
}

// URLMiddleware makes the API base URL available to the controllers
// so that they can build resource links.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), url.String())
		c.Next()
	}
}

// OwnerMiddleware parses the owner header and makes the owner ID
// available to the controllers. Requests without a valid owner header
// never reach a handler.
//
// The owner is attached to the request context exactly once here.
// Every model operation takes the owner ID as an explicit argument,
// nothing below the controllers reads it from ambient state.
func OwnerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(OwnerHeader)
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, middlewareError{
				Error: "the X-Owner-Id header must be set",
			})
			return
		}

		owner, err := uuid.Parse(header)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, middlewareError{
				Error: "the X-Owner-Id header must be set to a valid UUID",
			})
			return
		}

		c.Set(string(models.DBContextOwnerID), owner)
		c.Next()
	}
}
