// Package ports defines the interfaces the catalog consumes. The wallet
// engine, text resources, audit sinks and marker persistence all live behind
// them.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks DocumentsController,TextProvider,AuditPublisher,MarkerStore

import (
	"context"
	"log/slog"
	"time"

	"eudiwallet/internal/catalog/models"
	kv "eudiwallet/pkg/attrs"
	"eudiwallet/pkg/platform/audit"
	"eudiwallet/pkg/requestcontext"
)

// DocumentsController is the wallet engine's document surface.
type DocumentsController interface {
	// GetAllDocuments lists every document the wallet holds, including
	// documents whose issuance is still pending.
	GetAllDocuments(ctx context.Context) ([]models.Document, error)

	// GetDocumentByID returns one document or an error wrapping sentinel.ErrNotFound.
	GetDocumentByID(ctx context.Context, id models.DocumentID) (models.Document, error)

	// RetryIssuance re-queries the issuer for a batch of deferred documents.
	RetryIssuance(ctx context.Context, refs map[models.DocumentID]models.FormatType) (models.RetryResult, error)

	// DeleteDocument removes a document and reports whether the wallet is now empty.
	DeleteDocument(ctx context.Context, id models.DocumentID) (models.DeleteResult, error)
}

// TextProvider resolves localized display strings. Output is display-only.
type TextProvider interface {
	GetString(key string, args ...any) string
}

// AuditPublisher emits audit events for catalog actions.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// MarkerStore persists deferred-issuance markers per wallet so they survive
// a restart.
type MarkerStore interface {
	Load(ctx context.Context, walletID string) (models.Markers, error)
	Save(ctx context.Context, walletID string, markers models.Markers) error
	Delete(ctx context.Context, walletID string) error
}

// LogAudit logs an audit-worthy action and forwards it to the publisher if
// one is configured. A "document_id" attribute becomes the event subject.
func LogAudit(ctx context.Context, logger *slog.Logger, publisher AuditPublisher, event audit.AuditEvent, attrs ...any) {
	requestID := requestcontext.RequestID(ctx)
	walletID := requestcontext.WalletID(ctx)
	if requestID != "" {
		attrs = append(attrs, "request_id", requestID)
	}
	if walletID != "" {
		attrs = append(attrs, "wallet_id", walletID)
	}

	args := append(attrs, "event", string(event), "log_type", "audit")
	if logger != nil {
		logger.InfoContext(ctx, string(event), args...)
	}

	if publisher == nil {
		return
	}
	err := publisher.Emit(ctx, audit.Event{
		Category:  event.Category(),
		Timestamp: time.Now(),
		WalletID:  walletID,
		Subject:   kv.ExtractString(attrs, "document_id"),
		Action:    string(event),
		Reason:    kv.ExtractString(attrs, "reason"),
		RequestID: requestID,
	})
	if err != nil && logger != nil {
		logger.WarnContext(ctx, "failed to emit audit event", "event", string(event), "error", err)
	}
}
