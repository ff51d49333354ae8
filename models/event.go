package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/genialityco/events-api/query"
)

type Coordinates struct {
	Latitude  float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`
}

type EventLocation struct {
	Address     string       `bson:"address,omitempty" json:"address,omitempty"`
	Coordinates *Coordinates `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
}

type Event struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name" binding:"required"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	OrganizationID primitive.ObjectID `bson:"organizationId" json:"organizationId" binding:"required"`
	StartDate      time.Time          `bson:"startDate" json:"startDate" binding:"required"`
	EndDate        time.Time          `bson:"endDate" json:"endDate" binding:"required"`
	Location       *EventLocation     `bson:"location,omitempty" json:"location,omitempty"`
	Styles         bson.M             `bson:"styles,omitempty" json:"styles,omitempty"`
	EventSections  bson.M             `bson:"eventSections,omitempty" json:"eventSections,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DefaultEventSections is applied on create when the client sends none.
var DefaultEventSections = bson.M{
	"agenda":      true,
	"speakers":    true,
	"documents":   true,
	"ubication":   true,
	"certificate": true,
	"posters":     true,
}

var EventRelations = query.Relations{
	Refs: []query.Relation{
		{Path: "organizationId"},
	},
}
