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
	"github.com/genialityco/events-api/query"
	"github.com/genialityco/events-api/store"
)

const (
	opTimeout   = 5 * time.Second
	listTimeout = 10 * time.Second
)

// Resource wires one entity's collection into the uniform CRUD handler set.
// Entities with domain-specific operations register those separately on top.
type Resource[T any] struct {
	// Name appears in response messages, e.g. "event".
	Name       string
	Collection string
	Relations  query.Relations
	// PopulateGet resolves references on single-document GETs.
	PopulateGet bool
	// BeforeCreate may fill defaults on the bound document before insert.
	BeforeCreate func(*T)
}

func (r Resource[T]) Store(cfg *config.Config) *store.Store[T] {
	return store.New[T](cfg.DB(), r.Collection, r.Relations)
}

// Register mounts the uniform routes on a group:
// GET /search, GET "", GET /:id, POST "", PUT|PATCH /:id, DELETE /:id.
func (r Resource[T]) Register(rg *gin.RouterGroup, cfg *config.Config) {
	rg.GET("/search", r.Search(cfg))
	rg.GET("", r.FindAll(cfg))
	rg.GET("/:id", r.FindOne(cfg))
	rg.POST("", r.Create(cfg))
	rg.PUT("/:id", r.Update(cfg))
	rg.PATCH("/:id", r.Update(cfg))
	rg.DELETE("/:id", r.Remove(cfg))
}

// ---------------- SEARCH ----------------
func (r Resource[T]) Search(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), listTimeout)
		defer cancel()

		params := query.Parse(c.Request.URL.Query())
		result, err := r.Store(cfg).Search(ctx, params)
		if err != nil {
			grip.Errorf("searching %s: %v", r.Collection, err)
			respondError(c, http.StatusInternalServerError, "could not search "+r.Collection)
			return
		}

		respond(c, http.StatusOK, r.Name+" search results", result)
	}
}

// ---------------- LIST ----------------
func (r Resource[T]) FindAll(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), listTimeout)
		defer cancel()

		// Same path as search: pagination applies, unknown keys filter.
		params := query.Parse(c.Request.URL.Query())
		result, err := r.Store(cfg).Search(ctx, params)
		if err != nil {
			grip.Errorf("listing %s: %v", r.Collection, err)
			respondError(c, http.StatusInternalServerError, "could not list "+r.Collection)
			return
		}

		respond(c, http.StatusOK, r.Name+" list", result)
	}
}

// ---------------- GET ----------------
func (r Resource[T]) FindOne(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid "+r.Name+" id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), opTimeout)
		defer cancel()

		var doc interface{}
		if r.PopulateGet {
			doc, err = r.Store(cfg).GetPopulated(ctx, id)
		} else {
			doc, err = r.Store(cfg).Get(ctx, id)
		}
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, r.Name+" not found")
			return
		}
		if err != nil {
			grip.Errorf("fetching %s %s: %v", r.Name, id.Hex(), err)
			respondError(c, http.StatusInternalServerError, "could not fetch "+r.Name)
			return
		}

		respond(c, http.StatusOK, r.Name+" found", doc)
	}
}

// ---------------- CREATE ----------------
func (r Resource[T]) Create(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input T
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		if r.BeforeCreate != nil {
			r.BeforeCreate(&input)
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), opTimeout)
		defer cancel()

		created, err := r.Store(cfg).Create(ctx, input)
		if err != nil {
			grip.Errorf("creating %s: %v", r.Name, err)
			respondError(c, http.StatusInternalServerError, "could not create "+r.Name)
			return
		}

		respond(c, http.StatusCreated, r.Name+" created", created)
	}
}

// ---------------- UPDATE ----------------
func (r Resource[T]) Update(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid "+r.Name+" id")
			return
		}

		var patch bson.M
		if err := c.ShouldBindJSON(&patch); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		if len(patch) == 0 {
			respondError(c, http.StatusBadRequest, "no fields to update")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), opTimeout)
		defer cancel()

		updated, err := r.Store(cfg).Update(ctx, id, patch)
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, r.Name+" not found")
			return
		}
		if err != nil {
			grip.Errorf("updating %s %s: %v", r.Name, id.Hex(), err)
			respondError(c, http.StatusInternalServerError, "could not update "+r.Name)
			return
		}

		respond(c, http.StatusOK, r.Name+" updated", updated)
	}
}

// ---------------- DELETE ----------------
func (r Resource[T]) Remove(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid "+r.Name+" id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), opTimeout)
		defer cancel()

		removed, err := r.Store(cfg).Remove(ctx, id)
		if err == store.ErrNotFound {
			respondError(c, http.StatusNotFound, r.Name+" not found")
			return
		}
		if err != nil {
			grip.Errorf("deleting %s %s: %v", r.Name, id.Hex(), err)
			respondError(c, http.StatusInternalServerError, "could not delete "+r.Name)
			return
		}

		respond(c, http.StatusOK, r.Name+" deleted", removed)
	}
}
