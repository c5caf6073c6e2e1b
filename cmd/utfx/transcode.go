// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"code.hybscloud.com/xfer/textio"
)

func newTranscodeCmd(a *app) *cobra.Command {
	var (
		from, to string
		bom      bool
	)
	cmd := &cobra.Command{
		Use:   "transcode --from ENC --to ENC [--bom] IN OUT",
		Short: "Convert text between encodings",
		Long: `Decode IN and re-encode it into OUT. A byte order mark at the start of IN is
dropped; a reversed one switches the input byte order. --bom writes a mark
at the start of OUT.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.encoding(from)
			if err != nil {
				return err
			}
			if to == "" {
				return errors.New("--to is required")
			}
			dst, err := a.encoding(to)
			if err != nil {
				return err
			}

			in, closeIn, err := a.openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer closeIn()
			out, closeOut, err := a.createOutput(cmd, args[1])
			if err != nil {
				return err
			}

			n, err := transcode(textio.NewReader(in, src), textio.NewWriter(out, dst), bom)
			if cerr := closeOut(); err == nil {
				err = cerr
			}
			log.Debug().Str("from", src.String()).Str("to", dst.String()).Int("code_points", n).Msg("transcoded")
			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Input encoding (default from configuration)")
	cmd.Flags().StringVar(&to, "to", "", "Output encoding")
	cmd.Flags().BoolVar(&bom, "bom", false, "Write a byte order mark")
	return cmd
}

// transcode copies every code point from r to w and returns how many it
// copied.
func transcode(r *textio.Reader, w *textio.Writer, bom bool) (int, error) {
	if bom {
		if err := w.WriteBOM(); err != nil {
			return 0, err
		}
	}
	if _, err := r.ReadBOM(); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, err
	}
	n := 0
	for {
		cp, err := r.ReadCodePoint()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if err := w.WriteCodePoint(cp); err != nil {
			return n, err
		}
		n++
	}
}
