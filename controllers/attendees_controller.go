package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mongodb/grip"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/genialityco/events-api/config"
	"github.com/genialityco/events-api/models"
)

var Attendees = Resource[models.Attendee]{
	Name:        "attendee",
	Collection:  models.AttendeesCollection,
	Relations:   models.AttendeeRelations,
	PopulateGet: true,
}

// ---------------- CERTIFICATE DOWNLOAD ----------------
// Counts one certificate download with a single $inc; unlike regular
// updates this is expected to change state on every call.
func RegisterCertificateDownload(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			AttendeeID string `json:"attendeeId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		id, err := primitive.ObjectIDFromHex(input.AttendeeID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid attendee id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), opTimeout)
		defer cancel()

		var attendee models.Attendee
		err = Attendees.Store(cfg).Collection().FindOneAndUpdate(ctx,
			bson.M{"_id": id},
			bson.M{
				"$inc": bson.M{"certificateDownloads": 1},
				"$set": bson.M{"updatedAt": time.Now().UTC()},
			},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&attendee)
		if err == mongo.ErrNoDocuments {
			respondError(c, http.StatusNotFound, "attendee not found")
			return
		}
		if err != nil {
			grip.Errorf("counting certificate download for %s: %v", id.Hex(), err)
			respondError(c, http.StatusInternalServerError, "could not register download")
			return
		}

		respond(c, http.StatusOK, "download registered", attendee)
	}
}
