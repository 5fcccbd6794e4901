package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgressEntry is a single body-stats log recorded by a member.
type ProgressEntry struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID `bson:"userId" json:"userId"`
	Date     time.Time          `bson:"date" json:"date"`
	WeightKg float64            `bson:"weightKg" json:"weightKg"`
	HeightCm float64            `bson:"heightCm" json:"heightCm"`
	BMI      float64            `bson:"bmi" json:"bmi"`
	Notes    string             `bson:"notes,omitempty" json:"notes,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
