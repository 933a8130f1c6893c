package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MatheusVicenteSantosSilva/MoneyMind-2/internal/models"
	mm_uuid "github.com/MatheusVicenteSantosSilva/MoneyMind-2/internal/uuid"
)

type URIID struct {
	ID mm_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// ownerID returns the authenticated owner of the request. The owner
// middleware guarantees that it is set on every /v1 route.
func ownerID(c *gin.Context) uuid.UUID {
	v, _ := c.Get(string(models.DBContextOwnerID))
	id, _ := v.(uuid.UUID)
	return id
}
