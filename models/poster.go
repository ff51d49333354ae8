package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/genialityco/events-api/query"
)

type Poster struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title" binding:"required"`
	Category    string               `bson:"category" json:"category" binding:"required"`
	Topic       string               `bson:"topic" json:"topic" binding:"required"`
	Institution string               `bson:"institution" json:"institution" binding:"required"`
	Authors     []string             `bson:"authors" json:"authors" binding:"required"`
	Votes       int                  `bson:"votes" json:"votes"`
	URLPdf      string               `bson:"urlPdf" json:"urlPdf" binding:"required"`
	EventID     primitive.ObjectID   `bson:"eventId,omitempty" json:"eventId,omitempty"`
	Voters      []primitive.ObjectID `bson:"voters" json:"voters"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

var PosterRelations = query.Relations{
	Refs: []query.Relation{
		{Path: "eventId"},
		{Path: "voters", Collection: "users", Many: true},
	},
}
