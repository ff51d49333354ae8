package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/genialityco/events-api/query"
)

type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirebaseUID   string             `bson:"firebaseUid" json:"firebaseUid" binding:"required"`
	ExpoPushToken string             `bson:"expoPushToken,omitempty" json:"expoPushToken,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

var UserRelations = query.Relations{}
