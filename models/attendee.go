package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/genialityco/events-api/query"
)

type Attendee struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID               primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	EventID              primitive.ObjectID `bson:"eventId" json:"eventId" binding:"required"`
	MemberID             primitive.ObjectID `bson:"memberId" json:"memberId" binding:"required"`
	Attended             bool               `bson:"attended" json:"attended"`
	CertificationHours   string             `bson:"certificationHours,omitempty" json:"certificationHours,omitempty"`
	TypeAttendee         string             `bson:"typeAttendee,omitempty" json:"typeAttendee,omitempty"`
	CertificateDownloads int                `bson:"certificateDownloads,omitempty" json:"certificateDownloads,omitempty"`
	CreatedAt            time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedAt" json:"updatedAt"`
}

var AttendeeRelations = query.Relations{
	Refs: []query.Relation{
		{Path: "userId"},
		{Path: "eventId"},
		{Path: "memberId"},
	},
}
