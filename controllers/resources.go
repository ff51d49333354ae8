package controllers

import (
	"github.com/genialityco/events-api/models"
)

// Entities with no operations beyond the uniform CRUD set.

var Organizations = Resource[models.Organization]{
	Name:       "organization",
	Collection: models.OrganizationsCollection,
	Relations:  models.OrganizationRelations,
}

var Members = Resource[models.Member]{
	Name:       "member",
	Collection: models.MembersCollection,
	Relations:  models.MemberRelations,
	BeforeCreate: func(m *models.Member) {
		if m.MemberActive == nil {
			active := true
			m.MemberActive = &active
		}
	},
}

var Speakers = Resource[models.Speaker]{
	Name:       "speaker",
	Collection: models.SpeakersCollection,
	Relations:  models.SpeakerRelations,
}

var Modules = Resource[models.Module]{
	Name:       "module",
	Collection: models.ModulesCollection,
	Relations:  models.ModuleRelations,
}

var Certificates = Resource[models.Certificate]{
	Name:       "certificate",
	Collection: models.CertificatesCollection,
	Relations:  models.CertificateRelations,
}

var Rooms = Resource[models.Room]{
	Name:       "room",
	Collection: models.RoomsCollection,
	Relations:  models.RoomRelations,
}

var Highlights = Resource[models.Highlight]{
	Name:       "highlight",
	Collection: models.HighlightsCollection,
	Relations:  models.HighlightRelations,
}

var Users = Resource[models.User]{
	Name:       "user",
	Collection: models.UsersCollection,
	Relations:  models.UserRelations,
}
