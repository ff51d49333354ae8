package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/genialityco/events-api/query"
)

type Speaker struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Names           string             `bson:"names" json:"names" binding:"required"`
	Description     string             `bson:"description" json:"description" binding:"required"`
	Location        string             `bson:"location,omitempty" json:"location,omitempty"`
	IsInternational bool               `bson:"isInternational" json:"isInternational"`
	ImageURL        string             `bson:"imageUrl" json:"imageUrl" binding:"required"`
	EventID         primitive.ObjectID `bson:"eventId,omitempty" json:"eventId,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

var SpeakerRelations = query.Relations{
	Refs: []query.Relation{
		{Path: "eventId"},
	},
}
