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
	"github.com/genialityco/events-api/query"
	"github.com/genialityco/events-api/store"
)

func notificationsStore(cfg *config.Config) *store.Store[models.Notification] {
	return store.New[models.Notification](cfg.DB(), models.NotificationsCollection, models.NotificationRelations)
}

// ---------------- CREATE ----------------
func CreateNotification(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Notification
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), opTimeout)
		defer cancel()

		created, err := notificationsStore(cfg).Create(ctx, input)
		if err != nil {
			grip.Errorf("creating notification: %v", err)
			respondError(c, http.StatusInternalServerError, "could not create notification")
			return
		}

		respond(c, http.StatusCreated, "notification created", created)
	}
}

// ---------------- LIST BY USER ----------------
func ListUserNotifications(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), listTimeout)
		defer cancel()

		cursor, err := notificationsStore(cfg).Collection().Find(ctx,
			bson.M{"userId": c.Param("id")},
			options.Find().SetSort(query.BuildSort(nil)),
		)
		if err != nil {
			grip.Errorf("listing notifications: %v", err)
			respondError(c, http.StatusInternalServerError, "could not list notifications")
			return
		}
		items := []models.Notification{}
		if err := cursor.All(ctx, &items); err != nil {
			grip.Errorf("decoding notifications: %v", err)
			respondError(c, http.StatusInternalServerError, "could not decode notifications")
			return
		}

		respond(c, http.StatusOK, "notifications found", items)
	}
}

// ---------------- MARK READ ----------------
func MarkNotificationRead(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid notification id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), opTimeout)
		defer cancel()

		var updated models.Notification
		err = notificationsStore(cfg).Collection().FindOneAndUpdate(ctx,
			bson.M{"_id": id},
			bson.M{"$set": bson.M{"isRead": true, "updatedAt": time.Now().UTC()}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
		if err == mongo.ErrNoDocuments {
			respondError(c, http.StatusNotFound, "notification not found")
			return
		}
		if err != nil {
			grip.Errorf("marking notification %s read: %v", id.Hex(), err)
			respondError(c, http.StatusInternalServerError, "could not mark notification read")
			return
		}

		respond(c, http.StatusOK, "notification marked read", updated)
	}
}

// ---------------- MARK ALL READ ----------------
func MarkAllNotificationsRead(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), opTimeout)
		defer cancel()

		res, err := notificationsStore(cfg).Collection().UpdateMany(ctx,
			bson.M{"userId": c.Param("id"), "isRead": false},
			bson.M{"$set": bson.M{"isRead": true, "updatedAt": time.Now().UTC()}},
		)
		if err != nil {
			grip.Errorf("marking notifications read for %s: %v", c.Param("id"), err)
			respondError(c, http.StatusInternalServerError, "could not mark notifications read")
			return
		}

		respond(c, http.StatusOK, "notifications marked read", gin.H{"modified": res.ModifiedCount})
	}
}

// ---------------- SEND ----------------
func SendNotification(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Token   string                 `json:"token" binding:"required"`
			Title   string                 `json:"title" binding:"required"`
			Body    string                 `json:"body" binding:"required"`
			Data    map[string]interface{} `json:"data"`
			IconURL string                 `json:"iconUrl"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), listTimeout)
		defer cancel()

		err := cfg.Push.Send(ctx, []config.PushMessage{{
			Token:   input.Token,
			Title:   input.Title,
			Body:    input.Body,
			Data:    input.Data,
			IconURL: input.IconURL,
		}})
		if err != nil {
			grip.Errorf("sending push: %v", err)
			respondError(c, http.StatusInternalServerError, "could not send notification")
			return
		}

		respond(c, http.StatusOK, "notification sent", nil)
	}
}

// ---------------- SEND MASSIVE ----------------
func SendMassiveNotification(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Tokens  []string               `json:"tokens" binding:"required,min=1"`
			Title   string                 `json:"title" binding:"required"`
			Body    string                 `json:"body" binding:"required"`
			Data    map[string]interface{} `json:"data"`
			IconURL string                 `json:"iconUrl"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
		defer cancel()

		messages := make([]config.PushMessage, 0, len(input.Tokens))
		for _, token := range input.Tokens {
			messages = append(messages, config.PushMessage{
				Token:   token,
				Title:   input.Title,
				Body:    input.Body,
				Data:    input.Data,
				IconURL: input.IconURL,
			})
		}
		if err := cfg.Push.Send(ctx, messages); err != nil {
			grip.Errorf("sending push batch: %v", err)
			respondError(c, http.StatusInternalServerError, "could not send notifications")
			return
		}

		respond(c, http.StatusOK, "notifications sent", gin.H{"count": len(messages)})
	}
}

// ---------------- SEND FROM TEMPLATE ----------------
// Delivers a stored template to every user with a push token, then marks
// the template sent with the delivered count.
func SendFromTemplate(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("templateId"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid template id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
		defer cancel()

		sent, err := DeliverTemplate(ctx, cfg, id)
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, "template not found")
			return
		}
		if err != nil {
			grip.Errorf("sending template %s: %v", id.Hex(), err)
			respondError(c, http.StatusInternalServerError, "could not send from template")
			return
		}

		respond(c, http.StatusOK, "template sent", gin.H{"totalSent": sent})
	}
}
