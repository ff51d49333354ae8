package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mongodb/grip"

	"github.com/genialityco/events-api/config"
	"github.com/genialityco/events-api/models"
)

var Documents = Resource[models.Document]{
	Name:       "document",
	Collection: models.DocumentsCollection,
	Relations:  models.DocumentRelations,
}

// ---------------- UPLOAD ----------------
// Pushes a multipart file through the blob-store capability and returns its
// public URL. Persisting the document record is a separate POST /documents.
func UploadDocument(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			respondError(c, http.StatusBadRequest, "missing file field")
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to open file")
			return
		}
		defer file.Close()

		ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
		defer cancel()

		url, err := cfg.Files.Upload(ctx, file, "documents")
		if err != nil {
			grip.Errorf("uploading %s: %v", fileHeader.Filename, err)
			respondError(c, http.StatusInternalServerError, "file upload failed")
			return
		}

		respond(c, http.StatusCreated, "file uploaded", gin.H{
			"name": fileHeader.Filename,
			"url":  url,
		})
	}
}
