package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// userIDFromContext pulls the authenticated account id set by the auth
// middleware. A miss means the route was wired without the middleware.
func userIDFromContext(c *gin.Context) (primitive.ObjectID, bool) {
	value, ok := c.Get("userId")
	if !ok {
		log.Println("[AUTH] [ERROR] userId missing in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return primitive.NilObjectID, false
	}

	userID, ok := value.(primitive.ObjectID)
	if !ok {
		log.Println("[AUTH] [ERROR] userId has unexpected type")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return primitive.NilObjectID, false
	}

	return userID, true
}
