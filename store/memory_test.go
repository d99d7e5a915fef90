package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryCreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(companyDescriptor())

	for want := 1; want <= 3; want++ {
		c, err := m.Create(ctx, map[string]any{"name": "Acme"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if c.ID != want {
			t.Errorf("Create assigned id %d, want %d", c.ID, want)
		}
		if c.CreatedAt.IsZero() {
			t.Errorf("Create left CreatedAt unset")
		}
	}
}

func TestMemoryIDsNeverReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(companyDescriptor())

	for i := 0; i < 3; i++ {
		if _, err := m.Create(ctx, map[string]any{"name": "Acme"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := m.Delete(ctx, 3); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	c, err := m.Create(ctx, map[string]any{"name": "Acme"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID != 4 {
		t.Errorf("Create after deleting the highest record assigned id %d, want 4", c.ID)
	}
}

func TestMemoryCreateIgnoresClientID(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(companyDescriptor())

	c, err := m.Create(ctx, map[string]any{"Id": 99, "name": "Acme"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID != 1 {
		t.Errorf("Create kept client-supplied id, got %d, want 1", c.ID)
	}
}

func TestMemoryCreateRejectsMistypedFields(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(dealDescriptor())

	_, err := m.Create(ctx, map[string]any{"name": "Bad", "value": "not a number"})
	if !errors.Is(err, ErrInvalidFields) {
		t.Fatalf("Create with mistyped field returned %v, want ErrInvalidFields", err)
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(contactDescriptor())

	created, err := m.Create(ctx, map[string]any{
		"firstName": "Sarah",
		"companyId": 7,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// mutating a returned record, including through its weak-reference
	// pointer, must not reach stored state
	created.FirstName = "Changed"
	*created.CompanyID = 999

	got, err := m.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.FirstName != "Sarah" {
		t.Errorf("stored FirstName = %q after mutating a returned copy", got.FirstName)
	}
	if got.CompanyID == nil || *got.CompanyID != 7 {
		t.Errorf("stored CompanyID changed through a returned pointer: %v", got.CompanyID)
	}

	list, err := m.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	*list[0].CompanyID = 123
	got, _ = m.Get(ctx, created.ID)
	if *got.CompanyID != 7 {
		t.Errorf("stored CompanyID changed through a listed pointer: %d", *got.CompanyID)
	}
}

func TestMemoryUpdateMergesPartialFields(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(contactDescriptor())

	created, err := m.Create(ctx, map[string]any{
		"firstName": "Sarah",
		"lastName":  "Mitchell",
		"email":     "sarah@techcorp.com",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := m.Update(ctx, created.ID, map[string]any{"email": "s.mitchell@techcorp.com"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Email != "s.mitchell@techcorp.com" {
		t.Errorf("Update did not apply patch, email = %q", updated.Email)
	}
	if updated.FirstName != "Sarah" || updated.LastName != "Mitchell" {
		t.Errorf("Update dropped untouched fields: %+v", updated)
	}
	if updated.ID != created.ID {
		t.Errorf("Update changed id from %d to %d", created.ID, updated.ID)
	}
}

func TestMemoryUpdateIgnoresIDInPatch(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(contactDescriptor())

	created, _ := m.Create(ctx, map[string]any{"firstName": "Sarah"})

	updated, err := m.Update(ctx, created.ID, map[string]any{"Id": 42, "id": 43, "firstName": "Sara"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("patch id leaked through, got %d, want %d", updated.ID, created.ID)
	}
	if updated.FirstName != "Sara" {
		t.Errorf("Update skipped non-id keys, firstName = %q", updated.FirstName)
	}
	if _, err := m.Get(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("record reachable under patched id 42")
	}
}

func TestMemoryUpdateEmptyPatchIsNoop(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(contactDescriptor())

	created, _ := m.Create(ctx, map[string]any{"firstName": "Sarah", "email": "sarah@techcorp.com"})

	updated, err := m.Update(ctx, created.ID, map[string]any{})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.FirstName != created.FirstName || updated.Email != created.Email {
		t.Errorf("empty patch changed the record: %+v", updated)
	}
}

func TestMemoryNotFound(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(contactDescriptor())

	if _, err := m.Get(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on empty collection returned %v, want ErrNotFound", err)
	}
	if _, err := m.Update(ctx, 1, map[string]any{"firstName": "X"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update on missing id returned %v, want ErrNotFound", err)
	}
	if err := m.Delete(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete on missing id returned %v, want ErrNotFound", err)
	}
}

func TestMemoryDeleteRemovesRecord(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(contactDescriptor())

	created, _ := m.Create(ctx, map[string]any{"firstName": "Sarah"})
	if err := m.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := m.Get(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete returned %v, want ErrNotFound", err)
	}

	list, err := m.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("List after Delete has %d records, want 0", len(list))
	}
}

func TestMemoryListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(companyDescriptor())

	names := []string{"Acme", "Globex", "Initech"}
	for _, name := range names {
		if _, err := m.Create(ctx, map[string]any{"name": name}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	list, err := m.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var got []string
	for _, c := range list {
		got = append(got, c.Name)
	}
	for i, name := range names {
		if got[i] != name {
			t.Fatalf("List order = %v, want %v", got, names)
		}
	}
}

func TestMemoryContactStampSetsLastActivity(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(contactDescriptor())

	c, err := m.Create(ctx, map[string]any{"firstName": "Sarah"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.LastActivity.IsZero() {
		t.Errorf("contact created without a LastActivity stamp")
	}
	if !c.LastActivity.Equal(c.CreatedAt) {
		t.Errorf("new contact LastActivity %v differs from CreatedAt %v", c.LastActivity, c.CreatedAt)
	}
}
