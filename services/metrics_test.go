package services

import (
	"testing"

	"pipelinepro-server/models"
)

func intPtr(v int) *int { return &v }

func TestSummarizePipeline(t *testing.T) {
	deals := []models.Deal{
		{Value: 100, Stage: models.StageClosedWon},
		{Value: 200, Stage: models.StageLead},
	}

	s := SummarizePipeline(deals)
	if s.TotalPipelineValue != 300 {
		t.Errorf("TotalPipelineValue = %v, want 300", s.TotalPipelineValue)
	}
	if s.RevenueWon != 100 {
		t.Errorf("RevenueWon = %v, want 100", s.RevenueWon)
	}
	if s.WonDeals != 1 {
		t.Errorf("WonDeals = %d, want 1", s.WonDeals)
	}
	if s.ActiveDeals != 1 {
		t.Errorf("ActiveDeals = %d, want 1", s.ActiveDeals)
	}
	if s.AverageDealSize != 150 {
		t.Errorf("AverageDealSize = %v, want 150", s.AverageDealSize)
	}
	if s.WinRate != 50.0 {
		t.Errorf("WinRate = %v, want 50.0", s.WinRate)
	}
}

func TestSummarizePipelineClosedLostIsInactive(t *testing.T) {
	deals := []models.Deal{
		{Value: 100, Stage: models.StageClosedLost},
		{Value: 200, Stage: models.StageNegotiation},
	}

	s := SummarizePipeline(deals)
	if s.ActiveDeals != 1 {
		t.Errorf("ActiveDeals = %d, want 1", s.ActiveDeals)
	}
	if s.WonDeals != 0 || s.RevenueWon != 0 {
		t.Errorf("closed-lost counted as won: %+v", s)
	}
	// lost value still sits in the total
	if s.TotalPipelineValue != 300 {
		t.Errorf("TotalPipelineValue = %v, want 300", s.TotalPipelineValue)
	}
}

func TestSummarizePipelineEmpty(t *testing.T) {
	s := SummarizePipeline(nil)
	if s != (PipelineSummary{}) {
		t.Errorf("empty snapshot produced non-zero summary: %+v", s)
	}
}

func TestStageBreakdown(t *testing.T) {
	deals := []models.Deal{
		{Value: 100, Stage: models.StageLead},
		{Value: 250, Stage: models.StageLead},
		{Value: 400, Stage: models.StageProposal},
		{Value: 999, Stage: models.StageClosedWon}, // closed stages excluded
	}

	buckets := StageBreakdown(deals)
	if len(buckets) != len(models.OpenStages) {
		t.Fatalf("breakdown has %d buckets, want %d", len(buckets), len(models.OpenStages))
	}
	for i, stage := range models.OpenStages {
		if buckets[i].Stage != stage {
			t.Fatalf("bucket %d is %q, want %q (pipeline order)", i, buckets[i].Stage, stage)
		}
	}

	if buckets[0].Count != 2 || buckets[0].Value != 350 {
		t.Errorf("lead bucket = %+v, want count 2 value 350", buckets[0])
	}
	if buckets[1].Count != 0 || buckets[1].Value != 0 {
		t.Errorf("qualified bucket = %+v, want empty", buckets[1])
	}
	if buckets[2].Count != 1 || buckets[2].Value != 400 {
		t.Errorf("proposal bucket = %+v, want count 1 value 400", buckets[2])
	}
}

func TestStageBreakdownEmptySnapshot(t *testing.T) {
	buckets := StageBreakdown(nil)
	if len(buckets) != len(models.OpenStages) {
		t.Fatalf("breakdown has %d buckets, want one per open stage", len(buckets))
	}
	for _, b := range buckets {
		if b.Count != 0 || b.Value != 0 {
			t.Errorf("bucket %q not empty: %+v", b.Stage, b)
		}
	}
}

func TestCompanyRollup(t *testing.T) {
	contacts := []models.Contact{
		{ID: 1, CompanyID: intPtr(10)},
		{ID: 2, CompanyID: intPtr(10)},
		{ID: 3, CompanyID: intPtr(20)},
		{ID: 4, CompanyID: nil},
	}
	deals := []models.Deal{
		{ID: 1, CompanyID: intPtr(10), Value: 500},
		{ID: 2, CompanyID: intPtr(20), Value: 900},
		{ID: 3, CompanyID: nil, Value: 50},
	}

	stats := CompanyRollup(10, contacts, deals)
	if stats.ContactCount != 2 {
		t.Errorf("ContactCount = %d, want 2", stats.ContactCount)
	}
	if stats.DealCount != 1 {
		t.Errorf("DealCount = %d, want 1", stats.DealCount)
	}
	if stats.TotalValue != 500 {
		t.Errorf("TotalValue = %v, want 500", stats.TotalValue)
	}
}

func TestCompanyRollupNoMatches(t *testing.T) {
	stats := CompanyRollup(99, []models.Contact{{ID: 1, CompanyID: intPtr(1)}}, nil)
	if stats != (CompanyStats{}) {
		t.Errorf("rollup for an unreferenced company = %+v, want zeros", stats)
	}
}
