package contentcmd

import (
	"context"

	"github.com/alphire-robotics/team-cms/internal/commands"
	"github.com/alphire-robotics/team-cms/internal/content"
	"github.com/alphire-robotics/team-cms/internal/document"
	"github.com/alphire-robotics/team-cms/pkg/interfaces"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const setFieldMessageType = "teamcms.content.set_field"

// SetFieldCommand writes one field of the content document, optionally
// scoped to a single language side.
type SetFieldCommand struct {
	Page     string `json:"page"`
	Section  string `json:"section"`
	Field    string `json:"field"`
	Value    any    `json:"value"`
	Language string `json:"language,omitempty"`
}

// Type implements command.Message.
func (SetFieldCommand) Type() string { return setFieldMessageType }

// Validate ensures the field address is complete and the language, when
// present, is one the portal serves.
func (m SetFieldCommand) Validate() error {
	errs := validation.Errors{}
	if m.Page == "" {
		errs["page"] = validation.NewError("teamcms.content.set_field.page_required", "page is required")
	}
	if m.Section == "" {
		errs["section"] = validation.NewError("teamcms.content.set_field.section_required", "section is required")
	}
	if m.Field == "" {
		errs["field"] = validation.NewError("teamcms.content.set_field.field_required", "field is required")
	}
	if m.Language != "" && !document.IsLanguage(m.Language) {
		errs["language"] = validation.NewError("teamcms.content.set_field.language_unknown", "language is not served")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetFieldHandler applies single-field writes through the content service.
type SetFieldHandler struct {
	inner *commands.Handler[SetFieldCommand]
}

// NewSetFieldHandler constructs a handler wired to the provided content
// service.
func NewSetFieldHandler(service content.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SetFieldCommand]) *SetFieldHandler {
	exec := func(ctx context.Context, msg SetFieldCommand) error {
		_, err := service.SetField(ctx, content.SetFieldRequest{
			Page:     msg.Page,
			Section:  msg.Section,
			Field:    msg.Field,
			Value:    msg.Value,
			Language: msg.Language,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[SetFieldCommand]{
		commands.WithLogger[SetFieldCommand](logger),
		commands.WithOperation[SetFieldCommand]("content.set_field"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SetFieldHandler{
		inner: commands.NewHandler[SetFieldCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SetFieldCommand].Execute.
func (h *SetFieldHandler) Execute(ctx context.Context, msg SetFieldCommand) error {
	return h.inner.Execute(ctx, msg)
}
