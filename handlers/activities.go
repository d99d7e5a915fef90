package handlers

import (
	"net/http"
	"strconv"

	"pipelinepro-server/models"
	"pipelinepro-server/query"

	"github.com/gin-gonic/gin"
)

// ListActivities returns activities most recent first, narrowed by the
// free-text search and the type filter (AND when both are set). A
// limit parameter truncates the result, covering the recent-activity
// feed.
func (h *Handler) ListActivities(c *gin.Context) {
	ctx := c.Request.Context()

	activities, err := emptyOnUnavailable(h.Stores.Activities.List(ctx))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	activities = query.FilterActivityType(activities, c.Query("type"))
	activities = query.Search(activities, c.Query("search"), func(a models.Activity) []string {
		return []string{a.Subject, a.Description, a.Type}
	})

	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 && len(activities) > limit {
		activities = activities[:limit]
	}
	if activities == nil {
		activities = []models.Activity{}
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

func (h *Handler) GetActivity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	activity, err := h.Stores.Activities.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity": activity})
}

// CreateActivity logs an activity and touches the referenced contact's
// lastActivity timestamp when the reference resolves; a dangling
// reference is stored as-is.
func (h *Handler) CreateActivity(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	activity, err := h.Stores.Activities.Create(ctx, fields)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if activity.ContactID != nil {
		// best effort; the weak reference may dangle
		_, _ = h.Stores.Contacts.Update(ctx, *activity.ContactID, map[string]any{
			"lastActivity": activity.Date,
		})
	}

	c.JSON(http.StatusCreated, gin.H{"activity": activity})
}

func (h *Handler) UpdateActivity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := h.Stores.Activities.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity": activity})
}

func (h *Handler) DeleteActivity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Stores.Activities.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetContactActivities returns the activity history for one contact,
// most recent first.
func (h *Handler) GetContactActivities(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	activities, err := emptyOnUnavailable(h.Stores.Activities.ByContact(c.Request.Context(), id))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if activities == nil {
		activities = []models.Activity{}
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// GetDealActivities returns the activity history for one deal.
func (h *Handler) GetDealActivities(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	activities, err := emptyOnUnavailable(h.Stores.Activities.ByDeal(c.Request.Context(), id))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if activities == nil {
		activities = []models.Activity{}
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}
