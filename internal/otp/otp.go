// Package otp holds the password-reset one-time-code primitives. The HTTP
// surface for forgot-password is not wired up yet; these are the issue and
// verify building blocks it will sit on.
package otp

import (
	"context"
	"crypto/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

// CodeLength is the number of digits in a reset code.
const CodeLength = 6

// Generate returns n random decimal digits.
func Generate(n int) (string, error) {
	const digits = "0123456789"
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = digits[int(b[i])%10]
	}
	return string(b), nil
}

// Issue creates and stores a reset code for the user. The code expires
// models.OTPDefaultTTL after creation.
func Issue(ctx context.Context, db *mongo.Database, userID primitive.ObjectID) (string, error) {
	code, err := Generate(CodeLength)
	if err != nil {
		return "", err
	}

	now := time.Now()
	record := models.PasswordResetOTP{
		UserID:    userID,
		OTP:       code,
		CreatedAt: now,
		ExpiresAt: now.Add(models.OTPDefaultTTL),
		IsUsed:    false,
	}

	if _, err := db.Collection("password_reset_otps").InsertOne(ctx, record); err != nil {
		return "", err
	}

	return code, nil
}

// Verify checks the most recent matching code for the user and consumes it
// when valid. A used or expired code verifies false without error.
func Verify(ctx context.Context, db *mongo.Database, userID primitive.ObjectID, code string) (bool, error) {
	var record models.PasswordResetOTP
	err := db.Collection("password_reset_otps").FindOne(ctx,
		bson.M{"userId": userID, "otp": code},
		options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, err
	}

	if !record.IsValid(time.Now()) {
		return false, nil
	}

	_, err = db.Collection("password_reset_otps").UpdateByID(ctx, record.ID,
		bson.M{"$set": bson.M{"isUsed": true}})
	if err != nil {
		return false, err
	}

	return true, nil
}
