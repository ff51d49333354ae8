package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/genialityco/events-api/query"
)

type SubSession struct {
	Title         string               `bson:"title" json:"title" binding:"required"`
	StartDateTime time.Time            `bson:"startDateTime" json:"startDateTime" binding:"required"`
	EndDateTime   time.Time            `bson:"endDateTime" json:"endDateTime" binding:"required"`
	Speakers      []primitive.ObjectID `bson:"speakers,omitempty" json:"speakers,omitempty"`
	ModuleID      primitive.ObjectID   `bson:"moduleId,omitempty" json:"moduleId,omitempty"`
	Room          string               `bson:"room,omitempty" json:"room,omitempty"`
}

type Session struct {
	Title         string               `bson:"title" json:"title" binding:"required"`
	StartDateTime time.Time            `bson:"startDateTime" json:"startDateTime" binding:"required"`
	EndDateTime   time.Time            `bson:"endDateTime" json:"endDateTime" binding:"required"`
	Speakers      []primitive.ObjectID `bson:"speakers,omitempty" json:"speakers,omitempty"`
	ModuleID      primitive.ObjectID   `bson:"moduleId,omitempty" json:"moduleId,omitempty"`
	Room          string               `bson:"room,omitempty" json:"room,omitempty"`
	TypeSession   string               `bson:"typeSession,omitempty" json:"typeSession,omitempty"`
	SubSessions   []SubSession         `bson:"subSessions,omitempty" json:"subSessions,omitempty"`
}

type Agenda struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID   primitive.ObjectID `bson:"eventId" json:"eventId" binding:"required"`
	Sessions  []Session          `bson:"sessions" json:"sessions"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ShiftTimes moves every session and sub-session by the signed minute
// offset, in place.
func (a *Agenda) ShiftTimes(minutes int) {
	delta := time.Duration(minutes) * time.Minute
	for i := range a.Sessions {
		a.Sessions[i].StartDateTime = a.Sessions[i].StartDateTime.Add(delta)
		a.Sessions[i].EndDateTime = a.Sessions[i].EndDateTime.Add(delta)
		for j := range a.Sessions[i].SubSessions {
			sub := &a.Sessions[i].SubSessions[j]
			sub.StartDateTime = sub.StartDateTime.Add(delta)
			sub.EndDateTime = sub.EndDateTime.Add(delta)
		}
	}
}

var AgendaRelations = query.Relations{
	Arrays: []string{"sessions", "sessions.subSessions"},
	Refs: []query.Relation{
		{Path: "eventId"},
		{Path: "sessions.speakers", Many: true},
		{Path: "sessions.moduleId"},
		{Path: "sessions.subSessions.speakers", Many: true},
		{Path: "sessions.subSessions.moduleId"},
	},
}
