// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"code.hybscloud.com/xfer"
	"code.hybscloud.com/xfer/internal/config"
	"code.hybscloud.com/xfer/internal/logtrace"
	"code.hybscloud.com/xfer/textio"
)

var errAlreadyHandled = errors.New("already handled")

var (
	okLabel    = color.New(color.FgGreen)
	errorLabel = color.New(color.FgRed)
	skipLabel  = color.New(color.FgYellow)
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	configFile string
	envFile    string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "utfx [command] [flags]",
		Short: "Validate, inspect and transcode Unicode text",
		Long: `utfx reads and writes UTF-8, UTF-16 and UTF-32 text in either byte order.

Examples:
  # Report the first malformed code unit of each file
  utfx validate notes.txt data/*.csv

  # Convert a UTF-8 file to UTF-16LE with a byte order mark
  utfx transcode --from utf-8 --to utf-16le --bom in.txt out.txt

  # Show which byte order mark a file starts with
  utfx bom report.txt`,
		PersistentPreRunE: a.load,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "Path to configuration file to override default")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "Environment file loaded before UTFX_* variables are read")

	root.AddCommand(
		newValidateCmd(a),
		newTranscodeCmd(a),
		newBOMCmd(a),
		newLinesCmd(a),
		newCatCmd(a),
	)
	return root
}

func (a *app) load(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configFile, a.envFile)
	if err != nil {
		return err
	}
	if err := logtrace.InitLogger(cfg.LogLevel); err != nil {
		return err
	}
	if !cfg.Color {
		color.NoColor = true
	}
	a.cfg = cfg
	log.Debug().Str("command", cmd.Name()).Int("buffer_size", cfg.BufferSize).Str("encoding", cfg.Encoding).Msg("configured")
	return nil
}

func (a *app) options(name string) []xfer.Option {
	return append(a.cfg.Options(), xfer.WithName(name), xfer.WithLogger(logtrace.Resources()))
}

// encoding resolves an --encoding style flag, falling back to the configured
// default when it is empty.
func (a *app) encoding(name string) (textio.Encoding, error) {
	if name == "" {
		return a.cfg.InputEncoding(), nil
	}
	enc, ok := textio.ParseEncoding(name)
	if !ok {
		return textio.Encoding{}, errors.New("unknown encoding " + name)
	}
	return enc, nil
}

// openInput opens name for reading; "-" is the command's standard input.
// The returned close function leaves standard input open.
func (a *app) openInput(cmd *cobra.Command, name string) (*xfer.Input, func() error, error) {
	if name == "-" {
		if in, ok := cmd.InOrStdin().(*xfer.Input); ok {
			return in, func() error { return nil }, nil
		}
		return xfer.NewInput(cmd.InOrStdin(), a.options("stdin")...), func() error { return nil }, nil
	}
	f, err := xfer.OpenFile(name, xfer.AccessRead)
	if err != nil {
		return nil, nil, err
	}
	in := xfer.NewInput(f, a.options(name)...)
	return in, in.Close, nil
}

// createOutput opens name for writing; "-" is the command's standard output.
// The returned close function flushes and, for files, closes.
func (a *app) createOutput(cmd *cobra.Command, name string) (*xfer.Output, func() error, error) {
	if name == "-" {
		out, ok := cmd.OutOrStdout().(*xfer.Output)
		if !ok {
			out = xfer.NewOutput(cmd.OutOrStdout(), a.options("stdout")...)
		}
		return out, out.Flush, nil
	}
	f, err := xfer.OpenFile(name, xfer.AccessWrite)
	if err != nil {
		return nil, nil, err
	}
	out := xfer.NewOutput(f, a.options(name)...)
	return out, out.Close, nil
}

// readHeader reads up to n bytes from the start of in and rewinds it when
// it can. ok is false when in could not be rewound.
func readHeader(in *xfer.Input, n int) (header []byte, ok bool, err error) {
	header = make([]byte, n)
	m, err := in.Read(header)
	if err != nil && err != io.EOF {
		return nil, false, err
	}
	header = header[:m]
	if _, err := in.SetPosition(0, xfer.Begin); err != nil {
		if errors.Is(err, xfer.ErrUnseekable) {
			return header, false, nil
		}
		return nil, false, err
	}
	return header, true, nil
}
