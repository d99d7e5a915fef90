package handlers

import (
	"net/http"

	"pipelinepro-server/models"
	"pipelinepro-server/query"
	"pipelinepro-server/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListCompanies(c *gin.Context) {
	ctx := c.Request.Context()

	companies, err := emptyOnUnavailable(h.Stores.Companies.Search(ctx, c.Query("search")))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if field := c.Query("sort"); field != "" {
		companies = query.SortByField(companies, field, c.Query("dir") == "desc")
	}
	if companies == nil {
		companies = []models.Company{}
	}

	c.JSON(http.StatusOK, gin.H{"companies": companies})
}

func (h *Handler) GetCompany(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	company, err := h.Stores.Companies.Get(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

func (h *Handler) CreateCompany(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.Stores.Companies.Create(c.Request.Context(), fields)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"company": company})
}

func (h *Handler) UpdateCompany(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.Stores.Companies.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

// DeleteCompany removes the company only. Contacts and deals keep
// their references; dangling references are tolerated everywhere they
// are resolved.
func (h *Handler) DeleteCompany(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Stores.Companies.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetCompanyStats rolls up contact count, deal count and summed deal
// value for one company.
func (h *Handler) GetCompanyStats(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if _, err := h.Stores.Companies.Get(ctx, id); err != nil {
		respondStoreError(c, err)
		return
	}

	contacts, err := emptyOnUnavailable(h.Stores.Contacts.List(ctx))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	deals, err := emptyOnUnavailable(h.Stores.Deals.List(ctx))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": services.CompanyRollup(id, contacts, deals)})
}
