package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender values accepted for personal details.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// PersonalDetails holds the single profile record a user owns. The userId
// field carries a unique index so a second record can never be created, even
// by concurrent first reads.
type PersonalDetails struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"-"`
	FullName  string             `bson:"fullName" json:"full_name"`
	Age       int                `bson:"age" json:"age"`
	Gender    string             `bson:"gender" json:"gender"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
}
