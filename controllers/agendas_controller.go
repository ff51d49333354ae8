package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mongodb/grip"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/genialityco/events-api/config"
	"github.com/genialityco/events-api/models"
	"github.com/genialityco/events-api/store"
)

var Agendas = Resource[models.Agenda]{
	Name:        "agenda",
	Collection:  models.AgendasCollection,
	Relations:   models.AgendaRelations,
	PopulateGet: true,
}

// ---------------- ADJUST TIMES ----------------
// Shifts every session and sub-session of an agenda by a signed minute
// offset. The read and write are not atomic with respect to concurrent
// manual edits; last write wins, as everywhere else.
func AdjustAgendaTimes(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid agenda id")
			return
		}

		var input struct {
			Minutes *int `json:"minutes" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), opTimeout)
		defer cancel()

		agendas := Agendas.Store(cfg)
		agenda, err := agendas.Get(ctx, id)
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "agenda not found")
			return
		}
		if err != nil {
			grip.Errorf("fetching agenda %s: %v", id.Hex(), err)
			respondError(c, http.StatusInternalServerError, "could not fetch agenda")
			return
		}

		agenda.ShiftTimes(*input.Minutes)

		_, err = agendas.Collection().UpdateOne(ctx,
			bson.M{"_id": id},
			bson.M{"$set": bson.M{
				"sessions":  agenda.Sessions,
				"updatedAt": time.Now().UTC(),
			}},
		)
		if err != nil {
			grip.Errorf("shifting agenda %s: %v", id.Hex(), err)
			respondError(c, http.StatusInternalServerError, "could not adjust agenda times")
			return
		}

		respond(c, http.StatusOK, "agenda times adjusted", agenda)
	}
}
