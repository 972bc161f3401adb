// Package docstore defines the document database capability the modules depend on.
// Backends live in internal/platform/firestore, internal/platform/spanner and docstore/memory.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

// ErrNotFound is returned by Get when the document does not exist.
var ErrNotFound = errors.New("document not found")

// ErrInvalidQuery is returned when a query uses an unsupported operator or field path.
var ErrInvalidQuery = errors.New("invalid query")

// Document is a stored record addressed by collection and id.
// Data holds the raw fields as decoded by the backend.
type Document struct {
	ID   string
	Data map[string]any
}

// Op is a comparison operator for Filter.
type Op string

const (
	OpEqual        Op = "=="
	OpGreater      Op = ">"
	OpGreaterEqual Op = ">="
	OpLess         Op = "<"
	OpLessEqual    Op = "<="
)

// Filter restricts a query to documents whose field (dotted path) compares to Value.
type Filter struct {
	Field string
	Op    Op
	Value any
}

// Direction is the sort direction of Query.OrderBy.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Query describes a collection scan with optional filters, ordering and limit.
type Query struct {
	Collection string
	Filters    []Filter
	OrderBy    string
	Direction  Direction
	Limit      int
}

// Where appends a filter and returns the query for chaining.
func (q Query) Where(field string, op Op, value any) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Field: field, Op: op, Value: value})
	return q
}

// Store is the document store contract: get-by-id, filtered/ordered query, create.
type Store interface {
	// Get returns the document or ErrNotFound.
	Get(ctx context.Context, collection, id string) (Document, error)
	// Query returns the matching documents. A query without OrderBy returns
	// documents in ascending id order.
	Query(ctx context.Context, q Query) ([]Document, error)
	// Create stores data as a new document and returns its store-assigned id.
	Create(ctx context.Context, collection string, data map[string]any) (string, error)
}

var fieldPathPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// Validate checks operators and field paths. Backends call it before executing q.
func (q Query) Validate() error {
	if q.Collection == "" {
		return fmt.Errorf("%w: collection is required", ErrInvalidQuery)
	}
	if q.Limit < 0 {
		return fmt.Errorf("%w: negative limit", ErrInvalidQuery)
	}
	if q.OrderBy != "" && !fieldPathPattern.MatchString(q.OrderBy) {
		return fmt.Errorf("%w: order by %q", ErrInvalidQuery, q.OrderBy)
	}
	for _, f := range q.Filters {
		if !fieldPathPattern.MatchString(f.Field) {
			return fmt.Errorf("%w: field %q", ErrInvalidQuery, f.Field)
		}
		switch f.Op {
		case OpEqual, OpGreater, OpGreaterEqual, OpLess, OpLessEqual:
		default:
			return fmt.Errorf("%w: operator %q", ErrInvalidQuery, f.Op)
		}
	}
	return nil
}
