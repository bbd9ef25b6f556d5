package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureUserIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("users").Indexes()

	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("email_unique").
			SetUnique(true),
	}

	log.Println("EnsureUserIndexes: creating email_unique index")
	_, err := indexes.CreateOne(ctx, emailIndex)
	if err != nil {
		log.Println("EnsureUserIndexes: email index error:", err)
		return err
	}
	return nil
}

// EnsurePersonalDetailsIndexes makes the one-record-per-user rule a storage
// constraint, so a concurrent first GET cannot leave two records behind.
func EnsurePersonalDetailsIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("personal_details").Indexes()

	userIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().
			SetName("userId_unique").
			SetUnique(true),
	}

	log.Println("EnsurePersonalDetailsIndexes: creating userId_unique index")
	_, err := indexes.CreateOne(ctx, userIndex)
	if err != nil {
		log.Println("EnsurePersonalDetailsIndexes: userId index error:", err)
		return err
	}
	return nil
}

func EnsureBodyDetailsIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("body_details").Indexes()

	listIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("userId_createdAt"),
	}

	log.Println("EnsureBodyDetailsIndexes: creating userId_createdAt index")
	_, err := indexes.CreateOne(ctx, listIndex)
	if err != nil {
		log.Println("EnsureBodyDetailsIndexes: userId index error:", err)
		return err
	}
	return nil
}

func EnsureOTPIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("password_reset_otps").Indexes()

	userIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("userId_createdAt"),
	}

	log.Println("EnsureOTPIndexes: creating userId_createdAt index")
	_, err := indexes.CreateOne(ctx, userIndex)
	if err != nil {
		log.Println("EnsureOTPIndexes: userId index error:", err)
		return err
	}
	return nil
}
