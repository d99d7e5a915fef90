package models

import "time"

type Contact struct {
	ID           int       `json:"Id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	CompanyID    *int      `json:"companyId"` // weak reference, may dangle
	Title        string    `json:"title"`
	Notes        string    `json:"notes"`
	Avatar       string    `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	LastActivity time.Time `json:"lastActivity"`
}

// FullName is the display name used by activity feeds.
func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

func (Contact) TableName() string {
	return "contacts"
}

func (Contact) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS contacts (
		id BIGINT PRIMARY KEY,
		data TEXT NOT NULL
	);
	`
}
