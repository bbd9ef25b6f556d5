package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

type personalDetailsRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Age      int    `json:"age" binding:"gte=0"`
	Gender   string `json:"gender" binding:"required,oneof=male female other"`
}

// CreatePersonalDetails creates the caller's single profile record. A second
// create is rejected; updates go through PUT /personal/.
func CreatePersonalDetails(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		var req personalDetailsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		count, err := db.Collection("personal_details").CountDocuments(ctx, bson.M{"userId": userID})
		if err != nil {
			log.Println("[PERSONAL] [ERROR] create lookup failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Personal details already exist. Use PUT /personal/ to update."})
			return
		}

		details := models.PersonalDetails{
			UserID:    userID,
			FullName:  strings.TrimSpace(req.FullName),
			Age:       req.Age,
			Gender:    req.Gender,
			CreatedAt: time.Now(),
		}

		res, err := db.Collection("personal_details").InsertOne(ctx, details)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Personal details already exist. Use PUT /personal/ to update."})
				return
			}
			log.Println("[PERSONAL] [ERROR] create insert failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		details.ID = res.InsertedID.(primitive.ObjectID)
		c.JSON(http.StatusCreated, details)
	}
}

// GetPersonalDetails returns the caller's record, creating it with empty
// defaults on first access. The upsert plus the unique userId index keeps the
// one-record invariant under concurrent first reads.
func GetPersonalDetails(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		details, err := getOrCreatePersonalDetails(ctx, db, userID)
		if err != nil {
			log.Println("[PERSONAL] [ERROR] get-or-create failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, details)
	}
}

// UpdatePersonalDetails overwrites the caller's record, creating it first if
// it does not exist yet.
func UpdatePersonalDetails(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		var req personalDetailsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		after := options.After
		var details models.PersonalDetails
		err := db.Collection("personal_details").FindOneAndUpdate(ctx,
			bson.M{"userId": userID},
			bson.M{
				"$set": bson.M{
					"fullName": strings.TrimSpace(req.FullName),
					"age":      req.Age,
					"gender":   req.Gender,
				},
				"$setOnInsert": bson.M{"createdAt": time.Now()},
			},
			options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(after),
		).Decode(&details)
		if err != nil {
			log.Println("[PERSONAL] [ERROR] update failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, details)
	}
}

func getOrCreatePersonalDetails(ctx context.Context, db *mongo.Database, userID primitive.ObjectID) (models.PersonalDetails, error) {
	after := options.After
	var details models.PersonalDetails
	err := db.Collection("personal_details").FindOneAndUpdate(ctx,
		bson.M{"userId": userID},
		bson.M{"$setOnInsert": bson.M{
			"fullName":  "",
			"age":       0,
			"gender":    models.GenderMale,
			"createdAt": time.Now(),
		}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(after),
	).Decode(&details)
	return details, err
}
