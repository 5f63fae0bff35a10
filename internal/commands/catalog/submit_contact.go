package catalogcmd

import (
	"context"

	"github.com/alphire-robotics/team-cms/internal/catalog"
	"github.com/alphire-robotics/team-cms/internal/commands"
	"github.com/alphire-robotics/team-cms/pkg/interfaces"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const submitContactMessageType = "teamcms.catalog.submit_contact"

// SubmitContactCommand records one contact form submission.
type SubmitContactCommand struct {
	Data map[string]any `json:"data"`
}

// Type implements command.Message.
func (SubmitContactCommand) Type() string { return submitContactMessageType }

// Validate ensures the submission has a payload.
func (m SubmitContactCommand) Validate() error {
	errs := validation.Errors{}
	if len(m.Data) == 0 {
		errs["data"] = validation.NewError("teamcms.catalog.submit_contact.data_required", "data is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SubmitContactHandler records submissions through the catalog service.
type SubmitContactHandler struct {
	inner *commands.Handler[SubmitContactCommand]
}

// NewSubmitContactHandler constructs a handler wired to the provided catalog
// service.
func NewSubmitContactHandler(service catalog.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SubmitContactCommand]) *SubmitContactHandler {
	exec := func(ctx context.Context, msg SubmitContactCommand) error {
		_, err := service.SubmitContact(ctx, catalog.SubmitContactRequest{Data: msg.Data})
		return err
	}

	handlerOpts := []commands.HandlerOption[SubmitContactCommand]{
		commands.WithLogger[SubmitContactCommand](logger),
		commands.WithOperation[SubmitContactCommand]("catalog.submit_contact"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SubmitContactHandler{
		inner: commands.NewHandler[SubmitContactCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SubmitContactCommand].Execute.
func (h *SubmitContactHandler) Execute(ctx context.Context, msg SubmitContactCommand) error {
	return h.inner.Execute(ctx, msg)
}
