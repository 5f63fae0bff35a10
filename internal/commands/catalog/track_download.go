// Package catalogcmd exposes catalog mutations as validated command
// messages for async dispatch.
package catalogcmd

import (
	"context"

	"github.com/alphire-robotics/team-cms/internal/catalog"
	"github.com/alphire-robotics/team-cms/internal/commands"
	"github.com/alphire-robotics/team-cms/pkg/interfaces"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const trackDownloadMessageType = "teamcms.catalog.track_download"

// TrackDownloadCommand bumps the download counter for one material.
type TrackDownloadCommand struct {
	Material string `json:"material"`
}

// Type implements command.Message.
func (TrackDownloadCommand) Type() string { return trackDownloadMessageType }

// Validate ensures the material key is present.
func (m TrackDownloadCommand) Validate() error {
	errs := validation.Errors{}
	if m.Material == "" {
		errs["material"] = validation.NewError("teamcms.catalog.track_download.material_required", "material is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TrackDownloadHandler records downloads through the catalog service.
type TrackDownloadHandler struct {
	inner *commands.Handler[TrackDownloadCommand]
}

// NewTrackDownloadHandler constructs a handler wired to the provided catalog
// service.
func NewTrackDownloadHandler(service catalog.Service, logger interfaces.Logger, opts ...commands.HandlerOption[TrackDownloadCommand]) *TrackDownloadHandler {
	exec := func(ctx context.Context, msg TrackDownloadCommand) error {
		_, err := service.TrackDownload(ctx, msg.Material)
		return err
	}

	handlerOpts := []commands.HandlerOption[TrackDownloadCommand]{
		commands.WithLogger[TrackDownloadCommand](logger),
		commands.WithOperation[TrackDownloadCommand]("catalog.track_download"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &TrackDownloadHandler{
		inner: commands.NewHandler[TrackDownloadCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[TrackDownloadCommand].Execute.
func (h *TrackDownloadHandler) Execute(ctx context.Context, msg TrackDownloadCommand) error {
	return h.inner.Execute(ctx, msg)
}
