package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OTPDefaultTTL is how long a password-reset code stays valid when no expiry
// is set explicitly.
const OTPDefaultTTL = 10 * time.Minute

// PasswordResetOTP is a one-time code issued for a forgot-password flow. A
// code is valid while it is unused and not past its expiry.
type PasswordResetOTP struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	OTP       string             `bson:"otp" json:"-"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	ExpiresAt time.Time          `bson:"expiresAt" json:"expiresAt"`
	IsUsed    bool               `bson:"isUsed" json:"isUsed"`
}

// IsValid reports whether the code can still be redeemed at the given time.
func (o PasswordResetOTP) IsValid(now time.Time) bool {
	return !o.IsUsed && !now.After(o.ExpiresAt)
}
