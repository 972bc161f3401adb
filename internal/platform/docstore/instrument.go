package docstore

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/pangolivas/gensemen-pro/internal/platform/docstore"

// OperationRecorder receives one observation per store call.
type OperationRecorder interface {
	ObserveStoreOperation(op, collection string, err error, d time.Duration)
}

// InstrumentedStore decorates a Store with tracing, metrics and debug logging
// at the store-call boundary.
type InstrumentedStore struct {
	next     Store
	tracer   trace.Tracer
	recorder OperationRecorder
	logger   *slog.Logger
}

// Instrument wraps next. recorder may be nil.
func Instrument(next Store, recorder OperationRecorder, logger *slog.Logger) *InstrumentedStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &InstrumentedStore{
		next:     next,
		tracer:   otel.Tracer(tracerName),
		recorder: recorder,
		logger:   logger,
	}
}

func (s *InstrumentedStore) Get(ctx context.Context, collection, id string) (Document, error) {
	ctx, done := s.start(ctx, "get", collection, attribute.String("docstore.id", id))
	doc, err := s.next.Get(ctx, collection, id)
	done(err)
	return doc, err
}

func (s *InstrumentedStore) Query(ctx context.Context, q Query) ([]Document, error) {
	ctx, done := s.start(ctx, "query", q.Collection,
		attribute.Int("docstore.filters", len(q.Filters)),
		attribute.String("docstore.order_by", q.OrderBy),
		attribute.Int("docstore.limit", q.Limit),
	)
	docs, err := s.next.Query(ctx, q)
	done(err)
	return docs, err
}

func (s *InstrumentedStore) Create(ctx context.Context, collection string, data map[string]any) (string, error) {
	ctx, done := s.start(ctx, "create", collection)
	id, err := s.next.Create(ctx, collection, data)
	done(err)
	return id, err
}

func (s *InstrumentedStore) start(ctx context.Context, op, collection string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	attrs = append(attrs, attribute.String("docstore.collection", collection))
	ctx, span := s.tracer.Start(ctx, "docstore."+op, trace.WithAttributes(attrs...))
	start := time.Now()

	return ctx, func(err error) {
		elapsed := time.Since(start)
		// A missing document is an expected answer, not a failed call.
		failed := err != nil && !errors.Is(err, ErrNotFound)
		if failed {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			s.logger.Error("document store call failed",
				slog.String("op", op),
				slog.String("collection", collection),
				slog.Duration("elapsed", elapsed),
				slog.Any("error", err),
			)
		} else {
			s.logger.Debug("document store call",
				slog.String("op", op),
				slog.String("collection", collection),
				slog.Duration("elapsed", elapsed),
			)
		}
		span.End()

		if s.recorder != nil {
			var recorded error
			if failed {
				recorded = err
			}
			s.recorder.ObserveStoreOperation(op, collection, recorded, elapsed)
		}
	}
}

// Compile-time interface check.
var _ Store = (*InstrumentedStore)(nil)
