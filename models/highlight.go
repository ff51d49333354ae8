package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/genialityco/events-api/query"
)

type Highlight struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name" binding:"required"`
	OrganizationID primitive.ObjectID `bson:"organizationId" json:"organizationId" binding:"required"`
	EventID        primitive.ObjectID `bson:"eventId" json:"eventId" binding:"required"`
	Description    string             `bson:"description" json:"description" binding:"required"`
	ImageURL       string             `bson:"imageUrl" json:"imageUrl" binding:"required"`
	VimeoURL       string             `bson:"vimeoUrl" json:"vimeoUrl" binding:"required"`
	Transcription  string             `bson:"transcription" json:"transcription" binding:"required"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

var HighlightRelations = query.Relations{
	Refs: []query.Relation{
		{Path: "organizationId"},
		{Path: "eventId"},
	},
}
