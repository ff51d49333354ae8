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

var NotificationTemplates = Resource[models.NotificationTemplate]{
	Name:       "notification template",
	Collection: models.NotificationTemplatesCollection,
	Relations:  models.NotificationTemplateRelations,
}

// ---------------- INCREMENT SENT ----------------
func IncrementTemplateSent(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid template id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), opTimeout)
		defer cancel()

		now := time.Now().UTC()
		var updated models.NotificationTemplate
		err = NotificationTemplates.Store(cfg).Collection().FindOneAndUpdate(ctx,
			bson.M{"_id": id},
			bson.M{
				"$inc": bson.M{"totalSent": 1},
				"$set": bson.M{"isSent": true, "sentAt": now, "updatedAt": now},
			},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
		if err == mongo.ErrNoDocuments {
			respondError(c, http.StatusNotFound, "template not found")
			return
		}
		if err != nil {
			grip.Errorf("incrementing template %s: %v", id.Hex(), err)
			respondError(c, http.StatusInternalServerError, "could not increment template")
			return
		}

		respond(c, http.StatusOK, "send counter incremented", updated)
	}
}

// DeliverTemplate pushes one template to every user holding a push token
// and marks it sent. Shared by the HTTP endpoint and the scheduled sweep.
func DeliverTemplate(ctx context.Context, cfg *config.Config, id primitive.ObjectID) (int, error) {
	templates := NotificationTemplates.Store(cfg)
	tpl, err := templates.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	users := cfg.DB().Collection(models.UsersCollection)
	cursor, err := users.Find(ctx, bson.M{"expoPushToken": bson.M{"$nin": bson.A{nil, ""}}})
	if err != nil {
		return 0, err
	}
	var recipients []models.User
	if err := cursor.All(ctx, &recipients); err != nil {
		return 0, err
	}

	messages := make([]config.PushMessage, 0, len(recipients))
	for _, u := range recipients {
		messages = append(messages, config.PushMessage{
			Token: u.ExpoPushToken,
			Title: tpl.Title,
			Body:  tpl.Body,
			Data:  tpl.Data,
		})
	}
	if len(messages) > 0 {
		if err := cfg.Push.Send(ctx, messages); err != nil {
			return 0, err
		}
	}

	now := time.Now().UTC()
	_, err = templates.Collection().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$set": bson.M{"isSent": true, "sentAt": now, "updatedAt": now},
			"$inc": bson.M{"totalSent": len(messages)},
		},
	)
	if err != nil {
		return 0, err
	}
	return len(messages), nil
}
