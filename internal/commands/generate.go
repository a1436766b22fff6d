// Package commands implements the maketree command.
package commands

import (
	"io"

	"go.uber.org/zap"

	"github.com/NielsdaWheelz/maketree/internal/config"
	"github.com/NielsdaWheelz/maketree/internal/core"
	"github.com/NielsdaWheelz/maketree/internal/errors"
	"github.com/NielsdaWheelz/maketree/internal/render"
	"github.com/NielsdaWheelz/maketree/internal/tree"
)

// Generate builds a random tree and writes it to stdout as one JSON document.
//
// The rendered document is checked against render.TreeSchema before anything
// is written when opts are the defaults (the schema pins the default label and
// fan-out bounds). Nothing reaches stdout unless the whole document is ready.
func Generate(src core.Source, opts config.Options, logger *zap.Logger, stdout io.Writer) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := config.Validate(opts); err != nil {
		return err
	}

	root := tree.Build(src, opts)

	data, err := render.MarshalTree(root)
	if err != nil {
		return err
	}

	if opts == config.Defaults() {
		if err := render.CheckDocument(data); err != nil {
			logger.Error("rendered tree failed schema check", zap.Error(err))
			return err
		}
	}

	if _, err := stdout.Write(data); err != nil {
		return errors.Wrap(errors.EWriteFailed, "failed to write tree to stdout", err)
	}

	s := tree.Stats(root)
	logger.Debug("tree generated",
		zap.Int("nodes", s.Nodes),
		zap.Int("leaves", s.Leaves),
		zap.Int("depth", s.Depth),
		zap.Int("max_fanout", s.MaxFanout),
		zap.Int("bytes", len(data)),
	)
	return nil
}
