package models

import (
	"github.com/pkg/errors"

	"github.com/genialityco/events-api/query"
)

// Collection names, one per entity, mongoose-style lowercase plurals so the
// convention-based relation inference lines up.
const (
	OrganizationsCollection          = "organizations"
	EventsCollection                 = "events"
	AgendasCollection                = "agendas"
	AttendeesCollection              = "attendees"
	MembersCollection                = "members"
	SpeakersCollection               = "speakers"
	ModulesCollection                = "modules"
	PostersCollection                = "posters"
	NewsCollection                   = "news"
	NotificationsCollection          = "notifications"
	NotificationTemplatesCollection  = "notificationtemplates"
	CertificatesCollection           = "certificates"
	DocumentsCollection              = "documents"
	RoomsCollection                  = "rooms"
	HighlightsCollection             = "highlights"
	SurveysCollection                = "surveys"
	UsersCollection                  = "users"
)

var allRelations = map[string]query.Relations{
	OrganizationsCollection:         OrganizationRelations,
	EventsCollection:                EventRelations,
	AgendasCollection:               AgendaRelations,
	AttendeesCollection:             AttendeeRelations,
	MembersCollection:               MemberRelations,
	SpeakersCollection:              SpeakerRelations,
	ModulesCollection:               ModuleRelations,
	PostersCollection:               PosterRelations,
	NewsCollection:                  NewsRelations,
	NotificationsCollection:         NotificationRelations,
	NotificationTemplatesCollection: NotificationTemplateRelations,
	CertificatesCollection:          CertificateRelations,
	DocumentsCollection:             DocumentRelations,
	RoomsCollection:                 RoomRelations,
	HighlightsCollection:            HighlightRelations,
	SurveysCollection:               SurveyRelations,
	UsersCollection:                 UserRelations,
}

// ValidateRelations checks every registered relation against the known
// collection set. Called once at startup so a registry typo cannot surface
// as a silently empty lookup later.
func ValidateRelations() error {
	known := map[string]bool{
		OrganizationsCollection: true, EventsCollection: true,
		AgendasCollection: true, AttendeesCollection: true,
		MembersCollection: true, SpeakersCollection: true,
		ModulesCollection: true, PostersCollection: true,
		NewsCollection: true, NotificationsCollection: true,
		NotificationTemplatesCollection: true, CertificatesCollection: true,
		DocumentsCollection: true, RoomsCollection: true,
		HighlightsCollection: true, SurveysCollection: true,
		UsersCollection: true,
	}
	for name, rels := range allRelations {
		if err := rels.Validate(known); err != nil {
			return errors.Wrapf(err, "collection %s", name)
		}
	}
	return nil
}
