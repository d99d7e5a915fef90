package models

import "time"

type Deal struct {
	ID          int       `json:"Id"`
	Name        string    `json:"name"`
	Value       float64   `json:"value"`
	Stage       string    `json:"stage"`
	Probability int       `json:"probability"` // 0-100
	ContactID   *int      `json:"contactId"`   // weak reference, may dangle
	CompanyID   *int      `json:"companyId"`   // weak reference, may dangle
	CloseDate   time.Time `json:"closeDate"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Pipeline stages. The board allows free reassignment between any two
// stages; there is no enforced forward-only order.
const (
	StageLead        = "lead"
	StageQualified   = "qualified"
	StageProposal    = "proposal"
	StageNegotiation = "negotiation"
	StageClosedWon   = "closed-won"
	StageClosedLost  = "closed-lost"
)

// Stages lists every stage in pipeline order, closed-lost last as the
// terminal branch.
var Stages = []string{
	StageLead,
	StageQualified,
	StageProposal,
	StageNegotiation,
	StageClosedWon,
	StageClosedLost,
}

// OpenStages is the subset shown in the dashboard pipeline breakdown.
var OpenStages = []string{
	StageLead,
	StageQualified,
	StageProposal,
	StageNegotiation,
}

// StageProbability maps a stage to the win probability applied by a
// stage transition. Direct field edits bypass this table.
var StageProbability = map[string]int{
	StageLead:        25,
	StageQualified:   50,
	StageProposal:    75,
	StageNegotiation: 85,
	StageClosedWon:   100,
	StageClosedLost:  0,
}

// IsClosed reports whether a stage is one of the two terminal stages.
func IsClosed(stage string) bool {
	return stage == StageClosedWon || stage == StageClosedLost
}

func (Deal) TableName() string {
	return "deals"
}

func (Deal) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS deals (
		id BIGINT PRIMARY KEY,
		data TEXT NOT NULL
	);
	`
}
