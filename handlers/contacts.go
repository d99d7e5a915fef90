package handlers

import (
	"net/http"

	"pipelinepro-server/models"
	"pipelinepro-server/query"
	"pipelinepro-server/utils"

	"github.com/gin-gonic/gin"
)

// ListContacts returns all contacts, optionally narrowed by a
// free-text search and sorted by a table column.
func (h *Handler) ListContacts(c *gin.Context) {
	ctx := c.Request.Context()

	contacts, err := emptyOnUnavailable(h.Stores.Contacts.Search(ctx, c.Query("search")))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if field := c.Query("sort"); field != "" {
		contacts = query.SortByField(contacts, field, c.Query("dir") == "desc")
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}

	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

func (h *Handler) GetContact(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	contact, err := h.Stores.Contacts.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact": contact})
}

// CreateContact stores a raw form field set as a new contact. Field
// validation is the presentation layer's concern; the body only has to
// be well-formed.
func (h *Handler) CreateContact(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// contacts created without a photo get a generated avatar
	if v, ok := fields["avatar"].(string); !ok || v == "" {
		fields["avatar"] = utils.GenerateRandomAvatar()
	}

	contact, err := h.Stores.Contacts.Create(c.Request.Context(), fields)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"contact": contact})
}

func (h *Handler) UpdateContact(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.Stores.Contacts.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact": contact})
}

func (h *Handler) DeleteContact(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Stores.Contacts.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UploadContactAvatar replaces a contact's avatar with an uploaded
// photo. Returns 501 when no image host is configured.
func (h *Handler) UploadContactAvatar(c *gin.Context) {
	if h.Cloudinary == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Avatar uploads are not configured"})
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if _, err := h.Stores.Contacts.Get(ctx, id); err != nil {
		respondStoreError(c, err)
		return
	}

	file, _, err := c.Request.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing avatar file"})
		return
	}
	defer file.Close()

	url, err := h.Cloudinary.UploadAvatar(ctx, file, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload avatar"})
		return
	}

	contact, err := h.Stores.Contacts.Update(ctx, id, map[string]any{"avatar": url})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact": contact})
}
