// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package logtrace initialises zerolog for the command-line tools.
package logtrace

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger sets the global logger to write to stderr with Unix timestamps
// at the named level.
func InitLogger(level string) error {
	return InitLoggerTo(os.Stderr, level)
}

// InitLoggerTo is InitLogger writing to w.
func InitLoggerTo(w io.Writer, level string) error {
	lvl := zerolog.InfoLevel
	if level != "" {
		var err error
		if lvl, err = zerolog.ParseLevel(level); err != nil {
			return errors.Wrapf(err, "logtrace: level %q", level)
		}
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return nil
}

// Resources returns the child of the global logger handed to buffered
// resources. They trace raw transfers at trace level.
func Resources() zerolog.Logger {
	return log.Logger.With().Str("component", "xfer").Logger()
}
