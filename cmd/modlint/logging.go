// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// initLogging installs a charm log handler as the slog default. Internal
// packages log through stdlib slog and never know about the handler.
// Warnings and errors always surface; verbose mode opens the tap to debug.
func initLogging(verboseMode bool) {
	level := charmlog.WarnLevel
	if verboseMode {
		level = charmlog.DebugLevel
	}

	handler := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Prefix: "modlint",
		Level:  level,
	})
	slog.SetDefault(slog.New(handler))
}
