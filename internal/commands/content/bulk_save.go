// Package contentcmd exposes content mutations as validated command
// messages for async dispatch.
package contentcmd

import (
	"context"

	"github.com/alphire-robotics/team-cms/internal/commands"
	"github.com/alphire-robotics/team-cms/internal/content"
	"github.com/alphire-robotics/team-cms/internal/document"
	"github.com/alphire-robotics/team-cms/pkg/interfaces"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const bulkSaveMessageType = "teamcms.content.bulk_save"

// BulkSaveCommand replaces the whole content document in one write.
type BulkSaveCommand struct {
	Document     document.Document `json:"document"`
	BaseRevision int64             `json:"base_revision"`
}

// Type implements command.Message.
func (BulkSaveCommand) Type() string { return bulkSaveMessageType }

// Validate ensures the message carries a document before reaching handlers.
func (m BulkSaveCommand) Validate() error {
	errs := validation.Errors{}
	if len(m.Document) == 0 {
		errs["document"] = validation.NewError("teamcms.content.bulk_save.document_required", "document is required")
	}
	if m.BaseRevision < 0 {
		errs["base_revision"] = validation.NewError("teamcms.content.bulk_save.base_revision_invalid", "base_revision must not be negative")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkSaveHandler persists bulk document saves through the content service.
type BulkSaveHandler struct {
	inner *commands.Handler[BulkSaveCommand]
}

// NewBulkSaveHandler constructs a handler wired to the provided content
// service.
func NewBulkSaveHandler(service content.Service, logger interfaces.Logger, opts ...commands.HandlerOption[BulkSaveCommand]) *BulkSaveHandler {
	exec := func(ctx context.Context, msg BulkSaveCommand) error {
		_, err := service.BulkReplace(ctx, content.BulkReplaceRequest{
			Document:     msg.Document,
			BaseRevision: msg.BaseRevision,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[BulkSaveCommand]{
		commands.WithLogger[BulkSaveCommand](logger),
		commands.WithOperation[BulkSaveCommand]("content.bulk_save"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BulkSaveHandler{
		inner: commands.NewHandler[BulkSaveCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[BulkSaveCommand].Execute.
func (h *BulkSaveHandler) Execute(ctx context.Context, msg BulkSaveCommand) error {
	return h.inner.Execute(ctx, msg)
}
