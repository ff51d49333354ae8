package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/genialityco/events-api/query"
)

// Module is a titled block of an event program that agenda sessions can
// point at.
type Module struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title" binding:"required"`
	EventID   primitive.ObjectID `bson:"eventId" json:"eventId" binding:"required"`
	StartTime time.Time          `bson:"startTime" json:"startTime" binding:"required"`
	EndTime   time.Time          `bson:"endTime" json:"endTime" binding:"required"`
	Moderator string             `bson:"moderator,omitempty" json:"moderator,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

var ModuleRelations = query.Relations{
	Refs: []query.Relation{
		{Path: "eventId"},
	},
}
