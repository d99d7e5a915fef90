package handlers

import (
	"net/http"
	"sync"

	"pipelinepro-server/models"
	"pipelinepro-server/services"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats loads all four collections concurrently, joins,
// and reduces them to the dashboard aggregates. Each list degrades to
// empty on backend unavailability so the dashboard renders its empty
// state instead of failing.
func (h *Handler) GetDashboardStats(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		wg        sync.WaitGroup
		contacts  []models.Contact
		companies []models.Company
		deals     []models.Deal
		recent    []models.Activity

		contactsErr, companiesErr, dealsErr, recentErr error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		contacts, contactsErr = h.Stores.Contacts.List(ctx)
	}()
	go func() {
		defer wg.Done()
		companies, companiesErr = h.Stores.Companies.List(ctx)
	}()
	go func() {
		defer wg.Done()
		deals, dealsErr = h.Stores.Deals.List(ctx)
	}()
	go func() {
		defer wg.Done()
		recent, recentErr = h.Stores.Activities.Recent(ctx, 8)
	}()
	wg.Wait()

	contacts, err := emptyOnUnavailable(contacts, contactsErr)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	companies, err = emptyOnUnavailable(companies, companiesErr)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	deals, err = emptyOnUnavailable(deals, dealsErr)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	recent, err = emptyOnUnavailable(recent, recentErr)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	feed := make([]gin.H, 0, len(recent))
	for _, a := range recent {
		feed = append(feed, gin.H{
			"activity":    a,
			"contactName": resolveContactName(contacts, a.ContactID),
			"dealName":    resolveDealName(deals, a.DealID),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"totalContacts":    len(contacts),
		"totalCompanies":   len(companies),
		"pipeline":         services.SummarizePipeline(deals),
		"stageBreakdown":   services.StageBreakdown(deals),
		"recentActivities": feed,
	})
}
