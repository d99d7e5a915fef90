package handlers

import (
	"net/http"

	"pipelinepro-server/models"
	"pipelinepro-server/query"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListDeals(c *gin.Context) {
	ctx := c.Request.Context()

	deals, err := emptyOnUnavailable(h.Stores.Deals.List(ctx))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	deals = query.Search(deals, c.Query("search"), func(d models.Deal) []string {
		return []string{d.Name, d.Stage}
	})
	if field := c.Query("sort"); field != "" {
		deals = query.SortByField(deals, field, c.Query("dir") == "desc")
	}
	if deals == nil {
		deals = []models.Deal{}
	}

	c.JSON(http.StatusOK, gin.H{"deals": deals})
}

func (h *Handler) GetDeal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deal, err := h.Stores.Deals.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deal": deal})
}

func (h *Handler) CreateDeal(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deal, err := h.Stores.Deals.Create(c.Request.Context(), fields)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"deal": deal})
}

// UpdateDeal is the direct-edit path: it may set any probability
// independent of stage. Only the stage transition derives probability.
func (h *Handler) UpdateDeal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deal, err := h.Stores.Deals.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deal": deal})
}

func (h *Handler) DeleteDeal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Stores.Deals.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// TransitionDealStage moves a deal on the board and applies the
// stage probability table.
func (h *Handler) TransitionDealStage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Stage string `json:"stage" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deal, err := h.Engine.Transition(c.Request.Context(), id, req.Stage)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deal": deal})
}

// GetDealPipeline groups deals into board columns, one per stage in
// pipeline order.
func (h *Handler) GetDealPipeline(c *gin.Context) {
	deals, err := emptyOnUnavailable(h.Stores.Deals.List(c.Request.Context()))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	columns := make([]gin.H, 0, len(models.Stages))
	for _, stage := range models.Stages {
		stageDeals := query.Filter(deals, func(d models.Deal) bool {
			return d.Stage == stage
		})
		var value float64
		for _, d := range stageDeals {
			value += d.Value
		}
		columns = append(columns, gin.H{
			"stage": stage,
			"deals": stageDeals,
			"count": len(stageDeals),
			"value": value,
		})
	}

	c.JSON(http.StatusOK, gin.H{"pipeline": columns})
}
