package store

import (
	"context"
	"fmt"
	"time"
)

// Seed loads a small sample dataset for development. It is a no-op when
// the contact collection already has records.
func Seed(ctx context.Context, s *Stores) error {
	existing, err := s.Contacts.List(ctx)
	if err != nil {
		return fmt.Errorf("seed precheck: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	companies := []map[string]any{
		{"name": "TechCorp Solutions", "domain": "techcorp.com", "industry": "Technology", "size": "200-500 employees", "notes": "Long-standing enterprise account."},
		{"name": "Greenfield Logistics", "domain": "greenfield.io", "industry": "Logistics", "size": "50-200 employees", "notes": ""},
		{"name": "Bluewater Media", "domain": "bluewater.media", "industry": "Media", "size": "10-50 employees", "notes": "Referred by TechCorp."},
	}
	companyIDs := make([]int, 0, len(companies))
	for _, fields := range companies {
		c, err := s.Companies.Create(ctx, fields)
		if err != nil {
			return fmt.Errorf("seed company: %w", err)
		}
		companyIDs = append(companyIDs, c.ID)
	}

	contacts := []map[string]any{
		{"firstName": "Sarah", "lastName": "Mitchell", "email": "sarah.mitchell@techcorp.com", "phone": "+1 555 0101", "companyId": companyIDs[0], "title": "VP Engineering", "notes": "Primary technical contact."},
		{"firstName": "James", "lastName": "Okafor", "email": "james.okafor@greenfield.io", "phone": "+1 555 0102", "companyId": companyIDs[1], "title": "Operations Director", "notes": ""},
		{"firstName": "Elena", "lastName": "Rodriguez", "email": "elena@bluewater.media", "phone": "+1 555 0103", "companyId": companyIDs[2], "title": "Managing Partner", "notes": "Prefers email."},
		{"firstName": "Tom", "lastName": "Becker", "email": "tom.becker@techcorp.com", "phone": "+1 555 0104", "companyId": companyIDs[0], "title": "Procurement Lead", "notes": ""},
	}
	contactIDs := make([]int, 0, len(contacts))
	for _, fields := range contacts {
		c, err := s.Contacts.Create(ctx, fields)
		if err != nil {
			return fmt.Errorf("seed contact: %w", err)
		}
		contactIDs = append(contactIDs, c.ID)
	}

	now := time.Now().UTC()
	deals := []map[string]any{
		{"name": "TechCorp platform renewal", "value": 85000.0, "stage": "negotiation", "probability": 85, "contactId": contactIDs[0], "companyId": companyIDs[0], "closeDate": now.AddDate(0, 1, 0), "notes": "Multi-year option on the table."},
		{"name": "Greenfield fleet tracking", "value": 42000.0, "stage": "proposal", "probability": 75, "contactId": contactIDs[1], "companyId": companyIDs[1], "closeDate": now.AddDate(0, 2, 0), "notes": ""},
		{"name": "Bluewater analytics pilot", "value": 12000.0, "stage": "qualified", "probability": 50, "contactId": contactIDs[2], "companyId": companyIDs[2], "closeDate": now.AddDate(0, 1, 15), "notes": ""},
		{"name": "TechCorp training package", "value": 9500.0, "stage": "closed-won", "probability": 100, "contactId": contactIDs[3], "companyId": companyIDs[0], "closeDate": now.AddDate(0, 0, -10), "notes": "Signed last week."},
		{"name": "Greenfield warehouse add-on", "value": 18000.0, "stage": "lead", "probability": 25, "contactId": contactIDs[1], "companyId": companyIDs[1], "closeDate": now.AddDate(0, 3, 0), "notes": ""},
	}
	dealIDs := make([]int, 0, len(deals))
	for _, fields := range deals {
		d, err := s.Deals.Create(ctx, fields)
		if err != nil {
			return fmt.Errorf("seed deal: %w", err)
		}
		dealIDs = append(dealIDs, d.ID)
	}

	activities := []map[string]any{
		{"type": "call", "subject": "Renewal pricing call", "description": "Walked through the multi-year discount tiers.", "contactId": contactIDs[0], "dealId": dealIDs[0], "date": now.AddDate(0, 0, -1)},
		{"type": "email", "subject": "Proposal sent", "description": "Fleet tracking proposal v2 with updated SLAs.", "contactId": contactIDs[1], "dealId": dealIDs[1], "date": now.AddDate(0, 0, -2)},
		{"type": "meeting", "subject": "Pilot kickoff", "description": "Scoped the analytics pilot deliverables.", "contactId": contactIDs[2], "dealId": dealIDs[2], "date": now.AddDate(0, 0, -3)},
		{"type": "note", "subject": "Procurement process", "description": "TechCorp requires PO before contract signature.", "contactId": contactIDs[3], "date": now.AddDate(0, 0, -5)},
		{"type": "task", "subject": "Follow up on warehouse add-on", "description": "Check interest after Q3 budget review.", "contactId": contactIDs[1], "dealId": dealIDs[4], "date": now.AddDate(0, 0, -7)},
		{"type": "email", "subject": "Training schedule confirmed", "description": "Sessions booked for the first two weeks.", "contactId": contactIDs[3], "dealId": dealIDs[3], "date": now.AddDate(0, 0, -8)},
	}
	for _, fields := range activities {
		if _, err := s.Activities.Create(ctx, fields); err != nil {
			return fmt.Errorf("seed activity: %w", err)
		}
	}

	return nil
}
