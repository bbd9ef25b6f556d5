package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

type bodyDetailsRequest struct {
	HeightValue float64 `json:"height_value"`
	HeightUnit  string  `json:"height_unit" binding:"required,oneof=cm ft"`
	WeightValue float64 `json:"weight_value"`
	WeightUnit  string  `json:"weight_unit" binding:"required,oneof=kg lbs"`
}

// ListBodyDetails returns the caller's measurements, newest first. Optional
// page/limit query params window the result; without them the full list comes
// back.
func ListBodyDetails(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pagination params"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		if limit > 0 {
			findOpts = findOpts.SetSkip((page - 1) * limit).SetLimit(limit)
		}

		cursor, err := db.Collection("body_details").Find(ctx, bson.M{"userId": userID}, findOpts)
		if err != nil {
			log.Println("[BODY] [ERROR] list failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		defer cursor.Close(ctx)

		records := make([]models.BodyDetails, 0)
		if err := cursor.All(ctx, &records); err != nil {
			log.Println("[BODY] [ERROR] list decode failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, records)
	}
}

// CreateBodyDetails stores a measurement. The BMI is always derived here from
// the submitted height/weight, never taken from the request.
func CreateBodyDetails(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		var req bodyDetailsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		record := models.BodyDetails{
			UserID:      userID,
			HeightValue: req.HeightValue,
			HeightUnit:  req.HeightUnit,
			WeightValue: req.WeightValue,
			WeightUnit:  req.WeightUnit,
			BMI:         computeBMI(req.HeightValue, req.HeightUnit, req.WeightValue, req.WeightUnit),
			CreatedAt:   time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("body_details").InsertOne(ctx, record)
		if err != nil {
			log.Println("[BODY] [ERROR] create insert failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		record.ID = res.InsertedID.(primitive.ObjectID)
		log.Println("[BODY] [INFO] body details created:", record.ID.Hex())
		c.JSON(http.StatusCreated, record)
	}
}

// GetBodyDetail returns one measurement. The query is filtered by the caller's
// userId, so another account's record comes back as not found.
func GetBodyDetail(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		recordID, ok := recordIDFromParam(c)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var record models.BodyDetails
		if err := db.Collection("body_details").FindOne(ctx, bson.M{
			"_id":    recordID,
			"userId": userID,
		}).Decode(&record); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "body details not found"})
			return
		}

		c.JSON(http.StatusOK, record)
	}
}

// UpdateBodyDetail overwrites a measurement and recomputes its BMI. A stored
// BMI is never trusted across updates.
func UpdateBodyDetail(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		recordID, ok := recordIDFromParam(c)
		if !ok {
			return
		}

		var req bodyDetailsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		after := options.After
		var record models.BodyDetails
		err := db.Collection("body_details").FindOneAndUpdate(ctx,
			bson.M{"_id": recordID, "userId": userID},
			bson.M{"$set": bson.M{
				"heightValue": req.HeightValue,
				"heightUnit":  req.HeightUnit,
				"weightValue": req.WeightValue,
				"weightUnit":  req.WeightUnit,
				"bmi":         computeBMI(req.HeightValue, req.HeightUnit, req.WeightValue, req.WeightUnit),
			}},
			options.FindOneAndUpdate().SetReturnDocument(after),
		).Decode(&record)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, gin.H{"error": "body details not found"})
				return
			}
			log.Println("[BODY] [ERROR] update failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, record)
	}
}

// DeleteBodyDetail removes one of the caller's measurements.
func DeleteBodyDetail(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromContext(c)
		if !ok {
			return
		}

		recordID, ok := recordIDFromParam(c)
		if !ok {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("body_details").DeleteOne(ctx, bson.M{
			"_id":    recordID,
			"userId": userID,
		})
		if err != nil {
			log.Println("[BODY] [ERROR] delete failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "body details not found"})
			return
		}

		log.Println("[BODY] [INFO] body details deleted:", recordID.Hex())
		c.Status(http.StatusNoContent)
	}
}

func recordIDFromParam(c *gin.Context) (primitive.ObjectID, bool) {
	recordID, err := primitive.ObjectIDFromHex(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "body details not found"})
		return primitive.NilObjectID, false
	}
	return recordID, true
}

func parsePaginationParams(pageStr, limitStr string) (int64, int64, error) {
	page := int64(1)
	limit := int64(0)

	if pageStr != "" {
		p, err := strconv.ParseInt(pageStr, 10, 64)
		if err != nil || p < 1 {
			return 0, 0, errors.New("invalid page")
		}
		page = p
	}

	if limitStr != "" {
		l, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil || l < 1 {
			return 0, 0, errors.New("invalid limit")
		}
		limit = l
	}

	return page, limit, nil
}
