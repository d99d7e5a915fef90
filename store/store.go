// Package store owns the four entity collections behind one CRUD
// contract with interchangeable backends: an in-memory collection and a
// SQL-backed collection holding one JSON document per record.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned by point reads and mutations when no
	// record carries the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrUnavailable wraps backend connectivity failures. List-style
	// reads are expected to degrade to an empty collection on it;
	// point reads propagate it.
	ErrUnavailable = errors.New("record store unavailable")

	// ErrInvalidFields is returned when a raw field set cannot be
	// decoded into the entity's record shape.
	ErrInvalidFields = errors.New("malformed record fields")
)

// Collection is the CRUD contract shared by every entity kind and by
// both backends. Create and Update take raw field sets, the way the
// presentation layer submits form data; ids are assigned by the
// collection and survive any conflicting value in the input. Returned
// records are copies: mutating them never reaches stored state.
type Collection[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int) (T, error)
	Create(ctx context.Context, fields map[string]any) (T, error)
	Update(ctx context.Context, id int, patch map[string]any) (T, error)
	Delete(ctx context.Context, id int) error
}

// Descriptor is the per-entity configuration a generic collection runs
// on; there is one instance per entity kind instead of four
// hand-duplicated stores.
type Descriptor[T any] struct {
	Entity string // singular, used in error messages
	Table  string

	ID    func(T) int
	SetID func(*T, int)

	// Stamp sets creation timestamps on a freshly assigned record.
	Stamp func(*T, time.Time)

	// SearchText returns the field values matched by free-text search.
	SearchText func(T) []string
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func notFound(entity string, id int) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
}

// decode builds a record from a raw field set via the entity's JSON
// shape. Unknown keys are dropped, mistyped values are rejected.
func decode[T any](fields map[string]any) (T, error) {
	var rec T
	raw, err := json.Marshal(fields)
	if err != nil {
		return rec, fmt.Errorf("%w: %v", ErrInvalidFields, err)
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return rec, fmt.Errorf("%w: %v", ErrInvalidFields, err)
	}
	return rec, nil
}

// clone deep-copies a record through its JSON form, so weak-reference
// pointers are never shared with stored state.
func clone[T any](rec T) (T, error) {
	var out T
	raw, err := json.Marshal(rec)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}

// merge spreads a partial field set over an existing record. Id keys in
// the patch are ignored; the record keeps its assigned id. An empty
// patch returns the record unchanged.
func merge[T any](desc Descriptor[T], rec T, patch map[string]any) (T, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return rec, err
	}
	base := map[string]any{}
	if err := json.Unmarshal(raw, &base); err != nil {
		return rec, err
	}
	for k, v := range patch {
		if strings.EqualFold(k, "id") {
			continue
		}
		base[k] = v
	}
	out, err := decode[T](base)
	if err != nil {
		return out, err
	}
	desc.SetID(&out, desc.ID(rec))
	return out, nil
}

// stripID removes any client-supplied id from a create field set; new
// record ids are always assigned by the collection.
func stripID(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if strings.EqualFold(k, "id") {
			continue
		}
		out[k] = v
	}
	return out
}
