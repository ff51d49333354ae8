package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/genialityco/events-api/query"
)

type NotificationTemplate struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrganizationID primitive.ObjectID `bson:"organizationId" json:"organizationId" binding:"required"`
	Title          string             `bson:"title" json:"title" binding:"required"`
	Body           string             `bson:"body" json:"body" binding:"required"`
	Data           bson.M             `bson:"data,omitempty" json:"data,omitempty"`
	IsSent         bool               `bson:"isSent" json:"isSent"`
	TotalSent      int                `bson:"totalSent" json:"totalSent"`
	SentAt         *time.Time         `bson:"sentAt,omitempty" json:"sentAt,omitempty"`
	ScheduledAt    *time.Time         `bson:"scheduledAt,omitempty" json:"scheduledAt,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

var NotificationTemplateRelations = query.Relations{
	Refs: []query.Relation{
		{Path: "organizationId"},
	},
}
