package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/genialityco/events-api/query"
)

type CertificateSize struct {
	Width  float64 `bson:"width,omitempty" json:"width,omitempty"`
	Height float64 `bson:"height,omitempty" json:"height,omitempty"`
}

// Certificate is a free-form design: elements are whatever the editor
// produced.
type Certificate struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Elements  []bson.M           `bson:"elements" json:"elements" binding:"required"`
	Size      *CertificateSize   `bson:"size,omitempty" json:"size,omitempty"`
	EventID   primitive.ObjectID `bson:"eventId" json:"eventId" binding:"required"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

var CertificateRelations = query.Relations{
	Refs: []query.Relation{
		{Path: "eventId"},
	},
}
