package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Height and weight units stored on body detail records.
const (
	HeightUnitCM = "cm"
	HeightUnitFT = "ft"

	WeightUnitKG  = "kg"
	WeightUnitLBS = "lbs"
)

// BodyDetails is one height/weight measurement. Raw values are stored in the
// units the client sent; only the derived BMI is computed from normalized
// units. BMI is recomputed server-side on every write and never accepted from
// the client.
type BodyDetails struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"-"`
	HeightValue float64            `bson:"heightValue" json:"height_value"`
	HeightUnit  string             `bson:"heightUnit" json:"height_unit"`
	WeightValue float64            `bson:"weightValue" json:"weight_value"`
	WeightUnit  string             `bson:"weightUnit" json:"weight_unit"`
	BMI         float64            `bson:"bmi" json:"bmi"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
}
