package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mongodb/grip"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/genialityco/events-api/config"
	"github.com/genialityco/events-api/models"
	"github.com/genialityco/events-api/store"
)

var News = Resource[models.News]{
	Name:       "news item",
	Collection: models.NewsCollection,
	Relations:  models.NewsRelations,
	BeforeCreate: func(n *models.News) {
		if n.IsPublic == nil {
			public := true
			n.IsPublic = &public
		}
		for i := range n.Documents {
			if n.Documents[i].ID == "" {
				n.Documents[i].ID = uuid.NewString()
			}
		}
	},
}

// ---------------- TOGGLE PUBLIC ----------------
func ToggleNewsPublic(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid news id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), opTimeout)
		defer cancel()

		news := News.Store(cfg)
		item, err := news.Get(ctx, id)
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "news item not found")
			return
		}
		if err != nil {
			grip.Errorf("fetching news %s: %v", id.Hex(), err)
			respondError(c, http.StatusInternalServerError, "could not fetch news item")
			return
		}

		visible := item.IsPublic != nil && *item.IsPublic
		updated, err := news.Update(ctx, id, bson.M{"isPublic": !visible})
		if err != nil {
			grip.Errorf("toggling news %s: %v", id.Hex(), err)
			respondError(c, http.StatusInternalServerError, "could not toggle news visibility")
			return
		}

		respond(c, http.StatusOK, "news visibility toggled", updated)
	}
}
