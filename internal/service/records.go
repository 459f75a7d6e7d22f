// Package service wraps the record store so that every operation reaching
// the store leaves an entry in the operation log.
package service

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"crud_testbench/internal/models"
)

const instrumentationName = "crud_testbench/internal/service"

// RecordStore is the data access the service audits.
type RecordStore interface {
	List(ctx context.Context) ([]models.Record, error)
	GetByID(ctx context.Context, id int64) (*models.Record, error)
	Insert(ctx context.Context, in models.RecordInput) (*models.Record, error)
	Update(ctx context.Context, id int64, patch models.RecordPatch) (*models.Record, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// OperationLogStore receives one entry per audited call.
type OperationLogStore interface {
	Insert(ctx context.Context, entry models.OperationLogEntry) (*models.OperationLog, error)
	ListRecent(ctx context.Context, limit int) ([]models.OperationLog, error)
}

// AuditErrorFunc is told about log writes that failed. The failure never
// changes what the caller of the service gets back.
type AuditErrorFunc func(ctx context.Context, entry models.OperationLogEntry, err error)

func logAuditError(_ context.Context, entry models.OperationLogEntry, err error) {
	log.Printf("❌ failed to write %s/%s operation log (%q): %v", entry.Operation, entry.Status, entry.Message, err)
}

type Option func(*Records)

func WithAuditErrorFunc(fn AuditErrorFunc) Option {
	return func(r *Records) {
		if fn != nil {
			r.onAuditError = fn
		}
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(r *Records) {
		if tp != nil {
			r.tracer = tp.Tracer(instrumentationName)
		}
	}
}

// Records is the audited record service.
type Records struct {
	records      RecordStore
	logs         OperationLogStore
	onAuditError AuditErrorFunc
	tracer       trace.Tracer
}

func NewRecords(records RecordStore, logs OperationLogStore, opts ...Option) *Records {
	r := &Records{
		records:      records,
		logs:         logs,
		onAuditError: logAuditError,
		tracer:       noop.NewTracerProvider().Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// List returns all records and logs a READ entry either way.
func (r *Records) List(ctx context.Context) ([]models.Record, error) {
	ctx, span := r.tracer.Start(ctx, "records.list")
	defer span.End()

	records, err := r.records.List(ctx)
	if err != nil {
		r.fail(ctx, span, models.OpRead, "Failed to retrieve records", err)
		return nil, err
	}

	r.succeed(ctx, span, models.OpRead, "Retrieved records from database",
		fmt.Sprintf("Retrieved %d records from the database", len(records)))
	return records, nil
}

// Get returns nil, nil for an unknown id; that outcome is not logged.
func (r *Records) Get(ctx context.Context, id int64) (*models.Record, error) {
	ctx, span := r.tracer.Start(ctx, "records.get", trace.WithAttributes(attribute.Int64("record.id", id)))
	defer span.End()

	rec, err := r.records.GetByID(ctx, id)
	if err != nil {
		r.fail(ctx, span, models.OpRead, "Failed to retrieve record", err)
		return nil, err
	}
	if rec == nil {
		notFound(span)
		return nil, nil
	}

	r.succeed(ctx, span, models.OpRead, "Retrieved record from database",
		fmt.Sprintf("Retrieved record with ID: %d", id))
	return rec, nil
}

func (r *Records) Create(ctx context.Context, in models.RecordInput) (*models.Record, error) {
	ctx, span := r.tracer.Start(ctx, "records.create")
	defer span.End()

	rec, err := r.records.Insert(ctx, in)
	if err != nil {
		r.fail(ctx, span, models.OpCreate, "Failed to create record", err)
		return nil, err
	}

	span.SetAttributes(attribute.Int64("record.id", rec.ID))
	r.succeed(ctx, span, models.OpCreate, "Added new record to database",
		fmt.Sprintf("Added record with ID: %d, Name: %s", rec.ID, rec.Name))
	return rec, nil
}

// Update returns nil, nil when the record does not exist; that outcome is not logged.
func (r *Records) Update(ctx context.Context, id int64, patch models.RecordPatch) (*models.Record, error) {
	ctx, span := r.tracer.Start(ctx, "records.update", trace.WithAttributes(attribute.Int64("record.id", id)))
	defer span.End()

	rec, err := r.records.Update(ctx, id, patch)
	if err != nil {
		r.fail(ctx, span, models.OpUpdate, "Failed to update record", err)
		return nil, err
	}
	if rec == nil {
		notFound(span)
		return nil, nil
	}

	r.succeed(ctx, span, models.OpUpdate, "Updated record in database",
		fmt.Sprintf("Updated record with ID: %d, Name: %s", id, rec.Name))
	return rec, nil
}

// Delete reads the record first so the log entry can carry its name. A
// record that disappears between the read and the delete counts as not found.
func (r *Records) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, span := r.tracer.Start(ctx, "records.delete", trace.WithAttributes(attribute.Int64("record.id", id)))
	defer span.End()

	rec, err := r.records.GetByID(ctx, id)
	if err != nil {
		r.fail(ctx, span, models.OpDelete, "Failed to delete record", err)
		return false, err
	}
	if rec == nil {
		notFound(span)
		return false, nil
	}

	deleted, err := r.records.Delete(ctx, id)
	if err != nil {
		r.fail(ctx, span, models.OpDelete, "Failed to delete record", err)
		return false, err
	}
	if !deleted {
		notFound(span)
		return false, nil
	}

	r.succeed(ctx, span, models.OpDelete, "Deleted record from database",
		fmt.Sprintf("Deleted record with ID: %d, Name: %s", id, rec.Name))
	return true, nil
}

// RecentOperations reads the log. Reading the log is not itself logged.
func (r *Records) RecentOperations(ctx context.Context, limit int) ([]models.OperationLog, error) {
	ctx, span := r.tracer.Start(ctx, "operation_logs.list", trace.WithAttributes(attribute.Int("limit", limit)))
	defer span.End()

	logs, err := r.logs.ListRecent(ctx, limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return logs, nil
}

func (r *Records) succeed(ctx context.Context, span trace.Span, op models.Operation, message, details string) {
	span.SetAttributes(attribute.String("operation.status", string(models.OpSuccess)))
	r.audit(ctx, models.OperationLogEntry{
		Operation: op,
		Status:    models.OpSuccess,
		Message:   message,
		Details:   &details,
	})
}

func (r *Records) fail(ctx context.Context, span trace.Span, op models.Operation, message string, cause error) {
	span.RecordError(cause)
	span.SetStatus(codes.Error, message)
	span.SetAttributes(attribute.String("operation.status", string(models.OpError)))

	details := cause.Error()
	r.audit(ctx, models.OperationLogEntry{
		Operation: op,
		Status:    models.OpError,
		Message:   message,
		Details:   &details,
	})
}

func (r *Records) audit(ctx context.Context, entry models.OperationLogEntry) {
	entry.Metadata = metadataFrom(ctx)
	// the entry is written even if the caller has gone away
	if _, err := r.logs.Insert(context.WithoutCancel(ctx), entry); err != nil {
		r.onAuditError(ctx, entry, err)
	}
}

func notFound(span trace.Span) {
	span.SetAttributes(attribute.Bool("record.found", false))
}
