package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mongodb/grip"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/genialityco/events-api/config"
	"github.com/genialityco/events-api/models"
	"github.com/genialityco/events-api/store"
	"github.com/genialityco/events-api/utils"
)

var Events = Resource[models.Event]{
	Name:       "event",
	Collection: models.EventsCollection,
	Relations:  models.EventRelations,
	BeforeCreate: func(e *models.Event) {
		if e.Styles == nil {
			e.Styles = bson.M{"eventImage": "", "miniatureImage": ""}
		}
		if e.EventSections == nil {
			e.EventSections = models.DefaultEventSections
		}
	},
}

// GetEvent overrides the generic single-document GET to serve ETags: event
// detail is the hottest read in the system and clients poll it.
func GetEvent(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid event id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), opTimeout)
		defer cancel()

		event, err := Events.Store(cfg).Get(ctx, id)
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "event not found")
			return
		}
		if err != nil {
			grip.Errorf("fetching event %s: %v", id.Hex(), err)
			respondError(c, http.StatusInternalServerError, "could not fetch event")
			return
		}

		etag := utils.GenerateETag(event.ID, event.UpdatedAt)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)
		c.Header("Last-Modified", event.UpdatedAt.UTC().Format(http.TimeFormat))

		respond(c, http.StatusOK, "event found", event)
	}
}
