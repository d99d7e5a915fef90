package models

import "time"

type Company struct {
	ID        int       `json:"Id"`
	Name      string    `json:"name"`
	Domain    string    `json:"domain"`
	Industry  string    `json:"industry"`
	Size      string    `json:"size"` // bucketed, e.g. "50-200 employees"
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Company) TableName() string {
	return "companies"
}

func (Company) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS companies (
		id BIGINT PRIMARY KEY,
		data TEXT NOT NULL
	);
	`
}
