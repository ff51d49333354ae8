package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/genialityco/events-api/query"
)

type Document struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" binding:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	DocumentURL string             `bson:"documentUrl" json:"documentUrl" binding:"required"`
	EventID     primitive.ObjectID `bson:"eventId,omitempty" json:"eventId,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

var DocumentRelations = query.Relations{
	Refs: []query.Relation{
		{Path: "eventId"},
	},
}
