package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/genialityco/events-api/query"
)

type Question struct {
	ID      string   `bson:"id" json:"id"`
	Type    string   `bson:"type" json:"type" binding:"required,oneof=radio text checkbox"`
	Title   string   `bson:"title" json:"title" binding:"required"`
	Options []string `bson:"options,omitempty" json:"options,omitempty"`
}

type Survey struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title" binding:"required"`
	Questions      []Question         `bson:"questions" json:"questions" binding:"required,dive"`
	IsPublished    bool               `bson:"isPublished" json:"isPublished"`
	IsOpen         bool               `bson:"isOpen" json:"isOpen"`
	OrganizationID primitive.ObjectID `bson:"organizationId" json:"organizationId" binding:"required"`
	EventID        primitive.ObjectID `bson:"eventId,omitempty" json:"eventId,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

var SurveyRelations = query.Relations{
	Refs: []query.Relation{
		{Path: "organizationId"},
		{Path: "eventId"},
	},
}
