package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/genialityco/events-api/query"
)

type Member struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	OrganizationID primitive.ObjectID `bson:"organizationId" json:"organizationId" binding:"required"`
	MemberActive   *bool              `bson:"memberActive,omitempty" json:"memberActive,omitempty"`
	Properties     bson.M             `bson:"properties,omitempty" json:"properties,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

var MemberRelations = query.Relations{
	Refs: []query.Relation{
		{Path: "userId"},
		{Path: "organizationId"},
	},
}
