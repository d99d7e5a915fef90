package store

import (
	"context"
	"sort"
	"time"

	"pipelinepro-server/database"
	"pipelinepro-server/models"
	"pipelinepro-server/query"
)

// Stores bundles the four entity stores. One bundle is constructed at
// startup and handed to whatever needs it; there is no package-level
// instance.
type Stores struct {
	Contacts   ContactStore
	Companies  CompanyStore
	Deals      DealStore
	Activities ActivityStore
}

// NewMemoryStores builds the bundle on the in-memory backend.
func NewMemoryStores() *Stores {
	return &Stores{
		Contacts:   ContactStore{NewMemory(contactDescriptor())},
		Companies:  CompanyStore{NewMemory(companyDescriptor())},
		Deals:      DealStore{NewMemory(dealDescriptor())},
		Activities: ActivityStore{NewMemory(activityDescriptor())},
	}
}

// NewSQLStores builds the bundle on a SQL backend (postgres or sqlite).
func NewSQLStores(db *database.DB) *Stores {
	return &Stores{
		Contacts:   ContactStore{NewSQL(db, contactDescriptor())},
		Companies:  CompanyStore{NewSQL(db, companyDescriptor())},
		Deals:      DealStore{NewSQL(db, dealDescriptor())},
		Activities: ActivityStore{NewSQL(db, activityDescriptor())},
	}
}

func contactDescriptor() Descriptor[models.Contact] {
	return Descriptor[models.Contact]{
		Entity: "contact",
		Table:  models.Contact{}.TableName(),
		ID:     func(c models.Contact) int { return c.ID },
		SetID:  func(c *models.Contact, id int) { c.ID = id },
		Stamp: func(c *models.Contact, now time.Time) {
			c.CreatedAt = now
			c.LastActivity = now
		},
		SearchText: func(c models.Contact) []string {
			return []string{c.FirstName, c.LastName, c.Email, c.Title}
		},
	}
}

func companyDescriptor() Descriptor[models.Company] {
	return Descriptor[models.Company]{
		Entity: "company",
		Table:  models.Company{}.TableName(),
		ID:     func(c models.Company) int { return c.ID },
		SetID:  func(c *models.Company, id int) { c.ID = id },
		Stamp: func(c *models.Company, now time.Time) {
			c.CreatedAt = now
		},
		SearchText: func(c models.Company) []string {
			return []string{c.Name, c.Industry, c.Domain}
		},
	}
}

func dealDescriptor() Descriptor[models.Deal] {
	return Descriptor[models.Deal]{
		Entity: "deal",
		Table:  models.Deal{}.TableName(),
		ID:     func(d models.Deal) int { return d.ID },
		SetID:  func(d *models.Deal, id int) { d.ID = id },
		Stamp: func(d *models.Deal, now time.Time) {
			d.CreatedAt = now
		},
		SearchText: func(d models.Deal) []string {
			return []string{d.Name, d.Stage}
		},
	}
}

func activityDescriptor() Descriptor[models.Activity] {
	return Descriptor[models.Activity]{
		Entity: "activity",
		Table:  models.Activity{}.TableName(),
		ID:     func(a models.Activity) int { return a.ID },
		SetID:  func(a *models.Activity, id int) { a.ID = id },
		Stamp: func(a *models.Activity, now time.Time) {
			a.CreatedAt = now
		},
		SearchText: func(a models.Activity) []string {
			return []string{a.Subject, a.Description, a.Type}
		},
	}
}

// ContactStore adds the contact-specific search helper on top of the
// generic collection.
type ContactStore struct {
	Collection[models.Contact]
}

// Search matches first name, last name, email and title,
// case-insensitively. Blank text returns the unfiltered collection.
func (s ContactStore) Search(ctx context.Context, text string) ([]models.Contact, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Search(items, text, contactDescriptor().SearchText), nil
}

// CompanyStore adds the company-specific search helper.
type CompanyStore struct {
	Collection[models.Company]
}

// Search matches name, industry and domain, case-insensitively.
func (s CompanyStore) Search(ctx context.Context, text string) ([]models.Company, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Search(items, text, companyDescriptor().SearchText), nil
}

// DealStore is the plain collection; stage transitions live in the
// stage engine, not here.
type DealStore struct {
	Collection[models.Deal]
}

// ActivityStore layers the date-ordered read helpers over the generic
// collection; both backends get them for free.
type ActivityStore struct {
	Collection[models.Activity]
}

// List returns all activities, most recent first.
func (s ActivityStore) List(ctx context.Context) ([]models.Activity, error) {
	items, err := s.Collection.List(ctx)
	if err != nil {
		return nil, err
	}
	sortByDateDesc(items)
	return items, nil
}

// ByContact returns the activities referencing a contact, most recent
// first. A contact id with no activities yields an empty slice, never
// an error: weak references are not validated.
func (s ActivityStore) ByContact(ctx context.Context, contactID int) ([]models.Activity, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(items, func(a models.Activity) bool {
		return a.ContactID != nil && *a.ContactID == contactID
	}), nil
}

// ByDeal returns the activities referencing a deal, most recent first.
func (s ActivityStore) ByDeal(ctx context.Context, dealID int) ([]models.Activity, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(items, func(a models.Activity) bool {
		return a.DealID != nil && *a.DealID == dealID
	}), nil
}

// Recent returns the most recent activities, truncated to limit
// (default 10).
func (s ActivityStore) Recent(ctx context.Context, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = 10
	}
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func sortByDateDesc(items []models.Activity) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
}
