// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/transform"

	"code.hybscloud.com/xfer"
	"code.hybscloud.com/xfer/textio"
)

func newCatCmd(a *app) *cobra.Command {
	var from, to, tee string
	cmd := &cobra.Command{
		Use:   "cat [--from ENC] [--to ENC] [--tee FILE] FILE...",
		Short: "Concatenate files to standard output",
		Long: `Copy each file to standard output. With --to the text is transcoded on the
way; a byte order mark at the start of each file is dropped then. --tee
writes the same output to FILE as well.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout, flushOut, err := a.createOutput(cmd, "-")
			if err != nil {
				return err
			}
			var out xfer.Writable = stdout
			flush := flushOut
			if tee != "" {
				copyOut, closeCopy, err := a.createOutput(cmd, tee)
				if err != nil {
					return err
				}
				out = xfer.NewTee(stdout, copyOut)
				flush = func() error {
					err := flushOut()
					if cerr := closeCopy(); err == nil {
						err = cerr
					}
					return err
				}
			}
			for _, name := range args {
				if err := a.catFile(cmd, out, name, from, to); err != nil {
					_ = flush()
					return err
				}
			}
			return flush()
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Input encoding for --to (default from configuration)")
	cmd.Flags().StringVar(&to, "to", "", "Transcode into this encoding")
	cmd.Flags().StringVar(&tee, "tee", "", "Also write the output to this file")
	return cmd
}

func (a *app) catFile(cmd *cobra.Command, out xfer.Writable, name, from, to string) error {
	in, closeIn, err := a.openInput(cmd, name)
	if err != nil {
		return err
	}
	defer closeIn()

	if to == "" {
		_, err = xfer.Copy(out, in)
		return err
	}
	src, err := a.encoding(from)
	if err != nil {
		return err
	}
	dst, err := a.encoding(to)
	if err != nil {
		return err
	}
	tw := transform.NewWriter(out, textio.NewTranscoder(src, dst, textio.SkipBOM()))
	if _, err := io.Copy(tw, in); err != nil {
		return err
	}
	return tw.Close()
}
