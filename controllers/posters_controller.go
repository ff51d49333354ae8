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
)

var Posters = Resource[models.Poster]{
	Name:       "poster",
	Collection: models.PostersCollection,
	Relations:  models.PosterRelations,
	BeforeCreate: func(p *models.Poster) {
		if p.Voters == nil {
			p.Voters = []primitive.ObjectID{}
		}
	},
}

// ---------------- VOTE ----------------
// One conditional update carries both the already-voted guard and the
// increment, so two concurrent votes from the same user cannot both land:
// the second one matches zero documents.
func VotePoster(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid poster id")
			return
		}

		var input struct {
			UserID string `json:"userId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		voter, err := primitive.ObjectIDFromHex(input.UserID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid user id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), opTimeout)
		defer cancel()

		coll := Posters.Store(cfg).Collection()
		res, err := coll.UpdateOne(ctx,
			bson.M{"_id": id, "voters": bson.M{"$ne": voter}},
			bson.M{
				"$inc":      bson.M{"votes": 1},
				"$addToSet": bson.M{"voters": voter},
				"$set":      bson.M{"updatedAt": time.Now().UTC()},
			},
		)
		if err != nil {
			grip.Errorf("voting for poster %s: %v", id.Hex(), err)
			respondError(c, http.StatusInternalServerError, "could not register vote")
			return
		}
		if res.MatchedCount == 0 {
			// Either the poster does not exist or this user already voted.
			n, err := coll.CountDocuments(ctx, bson.M{"_id": id})
			if err == nil && n == 0 {
				respondError(c, http.StatusNotFound, "poster not found")
				return
			}
			respondError(c, http.StatusConflict, "you have already voted for this poster")
			return
		}

		var poster models.Poster
		if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&poster); err != nil {
			grip.Errorf("reading poster %s after vote: %v", id.Hex(), err)
			respondError(c, http.StatusInternalServerError, "could not fetch poster")
			return
		}

		respond(c, http.StatusOK, "vote registered", poster)
	}
}
