package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/genialityco/events-api/query"
)

// Notification is an in-app notification. UserID is the identity provider's
// opaque uid, not a reference into another collection.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId" binding:"required"`
	Title     string             `bson:"title" json:"title" binding:"required"`
	Body      string             `bson:"body" json:"body" binding:"required"`
	Data      bson.M             `bson:"data,omitempty" json:"data,omitempty"`
	IsRead    bool               `bson:"isRead" json:"isRead"`
	IconURL   string             `bson:"iconUrl,omitempty" json:"iconUrl,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

var NotificationRelations = query.Relations{}
