package models

import "time"

type Activity struct {
	ID          int       `json:"Id"`
	Type        string    `json:"type"` // call, email, meeting, note, task
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	ContactID   *int      `json:"contactId"` // weak reference, may dangle
	DealID      *int      `json:"dealId"`    // weak reference, may dangle
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ActivityTypes is the fixed set accepted by the presentation layer's
// type filter; "all" is a filter sentinel, not a type.
var ActivityTypes = []string{"call", "email", "meeting", "note", "task"}

func (Activity) TableName() string {
	return "activities"
}

func (Activity) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS activities (
		id BIGINT PRIMARY KEY,
		data TEXT NOT NULL
	);
	`
}
