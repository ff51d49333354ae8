package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/genialityco/events-api/query"
)

// Attachment is a document linked from a news item. The id is a client-side
// uuid, not an ObjectID: attachments never live in their own collection.
type Attachment struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name" binding:"required"`
	Type string `bson:"type" json:"type" binding:"required"`
	URL  string `bson:"url" json:"url" binding:"required"`
}

type News struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title" binding:"required"`
	Content        string             `bson:"content" json:"content" binding:"required"`
	OrganizationID primitive.ObjectID `bson:"organizationId" json:"organizationId" binding:"required"`
	EventID        primitive.ObjectID `bson:"eventId,omitempty" json:"eventId,omitempty"`
	FeaturedImage  string             `bson:"featuredImage,omitempty" json:"featuredImage,omitempty"`
	Documents      []Attachment       `bson:"documents,omitempty" json:"documents,omitempty"`
	IsPublic       *bool              `bson:"isPublic,omitempty" json:"isPublic,omitempty"`
	ScheduledAt    *time.Time         `bson:"scheduledAt,omitempty" json:"scheduledAt,omitempty"`
	PublishedAt    *time.Time         `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

var NewsRelations = query.Relations{
	Refs: []query.Relation{
		{Path: "organizationId"},
		{Path: "eventId"},
	},
}
