package services

import "pipelinepro-server/models"

// PipelineSummary is the dashboard headline block, computed by pure
// reduction over a loaded deal snapshot.
type PipelineSummary struct {
	TotalPipelineValue float64 `json:"totalPipelineValue"`
	RevenueWon         float64 `json:"revenueWon"`
	WonDeals           int     `json:"wonDeals"`
	ActiveDeals        int     `json:"activeDeals"`
	AverageDealSize    float64 `json:"averageDealSize"`
	WinRate            float64 `json:"winRate"` // percent
}

// SummarizePipeline computes the dashboard aggregates. An empty
// snapshot yields zeros rather than a division by zero.
func SummarizePipeline(deals []models.Deal) PipelineSummary {
	var s PipelineSummary
	for _, d := range deals {
		s.TotalPipelineValue += d.Value
		if d.Stage == models.StageClosedWon {
			s.WonDeals++
			s.RevenueWon += d.Value
		}
		if !models.IsClosed(d.Stage) {
			s.ActiveDeals++
		}
	}
	if len(deals) > 0 {
		s.AverageDealSize = s.TotalPipelineValue / float64(len(deals))
		s.WinRate = float64(s.WonDeals) / float64(len(deals)) * 100
	}
	return s
}

// StageBucket is one row of the pipeline breakdown.
type StageBucket struct {
	Stage string  `json:"stage"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// StageBreakdown counts and sums the deals sitting in each open stage,
// in pipeline order.
func StageBreakdown(deals []models.Deal) []StageBucket {
	buckets := make([]StageBucket, 0, len(models.OpenStages))
	for _, stage := range models.OpenStages {
		bucket := StageBucket{Stage: stage}
		for _, d := range deals {
			if d.Stage == stage {
				bucket.Count++
				bucket.Value += d.Value
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

// CompanyStats is the per-company rollup shown on company cards.
type CompanyStats struct {
	ContactCount int     `json:"contactCount"`
	DealCount    int     `json:"dealCount"`
	TotalValue   float64 `json:"totalValue"`
}

// CompanyRollup filters the full contact and deal snapshots by their
// weak company reference. Dangling references simply never match.
func CompanyRollup(companyID int, contacts []models.Contact, deals []models.Deal) CompanyStats {
	var stats CompanyStats
	for _, c := range contacts {
		if c.CompanyID != nil && *c.CompanyID == companyID {
			stats.ContactCount++
		}
	}
	for _, d := range deals {
		if d.CompanyID != nil && *d.CompanyID == companyID {
			stats.DealCount++
			stats.TotalValue += d.Value
		}
	}
	return stats
}
