package spanner

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/pangolivas/gensemen-pro/internal/platform/docstore"
)

// Schema is the DDL of the table backing Store.
const Schema = `CREATE TABLE Documents (
  Collection STRING(MAX) NOT NULL,
  DocumentID STRING(MAX) NOT NULL,
  Data JSON NOT NULL,
  CreatedAt TIMESTAMP NOT NULL OPTIONS (allow_commit_timestamp=true),
) PRIMARY KEY (Collection, DocumentID)`

const documentsTable = "Documents"

// TimeLayout is the fixed-width encoding of time values inside Data.
// Fixed width keeps JSON string ordering equal to chronological ordering.
const TimeLayout = "2006-01-02T15:04:05.000000000Z"

// Store implements docstore.Store on a single Spanner table of JSON documents.
type Store struct {
	client *spanner.Client
}

func NewStore(client *spanner.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	row, err := s.client.Single().ReadRow(ctx, documentsTable,
		spanner.Key{collection, id},
		[]string{"DocumentID", "Data"},
	)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return docstore.Document{}, docstore.ErrNotFound
		}
		return docstore.Document{}, fmt.Errorf("failed to read %s/%s: %w", collection, id, err)
	}
	return scanDocument(row)
}

func (s *Store) Query(ctx context.Context, q docstore.Query) ([]docstore.Document, error) {
	stmt, err := BuildStatement(q)
	if err != nil {
		return nil, err
	}

	iter := s.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var docs []docstore.Document
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query %s: %w", q.Collection, err)
		}
		doc, err := scanDocument(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *Store) Create(ctx context.Context, collection string, data map[string]any) (string, error) {
	id := uuid.New().String()
	m := spanner.Insert(documentsTable,
		[]string{"Collection", "DocumentID", "Data", "CreatedAt"},
		[]interface{}{
			collection,
			id,
			spanner.NullJSON{Value: encodeValue(data), Valid: true},
			spanner.CommitTimestamp,
		},
	)
	if _, err := s.client.Apply(ctx, []*spanner.Mutation{m}); err != nil {
		return "", fmt.Errorf("failed to create document in %s: %w", collection, err)
	}
	return id, nil
}

// BuildStatement translates q into SQL over the Documents table.
func BuildStatement(q docstore.Query) (spanner.Statement, error) {
	if err := q.Validate(); err != nil {
		return spanner.Statement{}, err
	}

	var sb strings.Builder
	params := map[string]interface{}{"collection": q.Collection}

	sb.WriteString("SELECT DocumentID, Data FROM Documents WHERE Collection = @collection")
	for i, f := range q.Filters {
		name := "p" + strconv.Itoa(i)
		expr, value, err := filterExpr(f)
		if err != nil {
			return spanner.Statement{}, err
		}
		fmt.Fprintf(&sb, " AND %s %s @%s", expr, sqlOp(f.Op), name)
		params[name] = value
	}

	if q.OrderBy != "" {
		path := jsonValue(q.OrderBy)
		dir := "ASC"
		if q.Direction == docstore.Desc {
			dir = "DESC"
		}
		fmt.Fprintf(&sb, " AND %s IS NOT NULL ORDER BY %s %s, DocumentID", path, path, dir)
	} else {
		sb.WriteString(" ORDER BY DocumentID")
	}

	if q.Limit > 0 {
		sb.WriteString(" LIMIT @limit")
		params["limit"] = int64(q.Limit)
	}

	return spanner.Statement{SQL: sb.String(), Params: params}, nil
}

func filterExpr(f docstore.Filter) (string, interface{}, error) {
	path := jsonValue(f.Field)
	switch v := f.Value.(type) {
	case string:
		return path, v, nil
	case bool:
		return path, strconv.FormatBool(v), nil
	case time.Time:
		return path, v.UTC().Format(TimeLayout), nil
	case int:
		return "SAFE_CAST(" + path + " AS FLOAT64)", float64(v), nil
	case int64:
		return "SAFE_CAST(" + path + " AS FLOAT64)", float64(v), nil
	case float64:
		return "SAFE_CAST(" + path + " AS FLOAT64)", v, nil
	}
	return "", nil, fmt.Errorf("%w: unsupported value type %T for %q", docstore.ErrInvalidQuery, f.Value, f.Field)
}

// jsonValue renders a validated dotted field path as a JSON_VALUE expression.
func jsonValue(field string) string {
	return "JSON_VALUE(Data, '$." + field + "')"
}

func sqlOp(op docstore.Op) string {
	if op == docstore.OpEqual {
		return "="
	}
	return string(op)
}

func scanDocument(row *spanner.Row) (docstore.Document, error) {
	var id string
	var data spanner.NullJSON
	if err := row.Columns(&id, &data); err != nil {
		return docstore.Document{}, fmt.Errorf("failed to scan document: %w", err)
	}
	m, _ := data.Value.(map[string]interface{})
	if m == nil {
		m = map[string]interface{}{}
	}
	return docstore.Document{ID: id, Data: m}, nil
}

// encodeValue rewrites time values into TimeLayout strings.
func encodeValue(v any) any {
	switch x := v.(type) {
	case time.Time:
		return x.UTC().Format(TimeLayout)
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = encodeValue(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = encodeValue(e)
		}
		return out
	case []map[string]any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = encodeValue(e)
		}
		return out
	}
	return v
}

// Compile-time interface check.
var _ docstore.Store = (*Store)(nil)
