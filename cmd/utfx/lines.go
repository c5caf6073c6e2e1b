// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"code.hybscloud.com/xfer/textio"
)

func newLinesCmd(a *app) *cobra.Command {
	var encName string
	cmd := &cobra.Command{
		Use:   "lines [flags] FILE...",
		Short: "Count lines",
		Long: `Count the lines of each file. A last line without a line feed counts as a
line; an empty file has none.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := a.encoding(encName)
			if err != nil {
				return err
			}
			for _, name := range args {
				in, closeIn, err := a.openInput(cmd, name)
				if err != nil {
					return err
				}
				n, err := countLines(textio.NewReader(in, enc))
				_ = closeIn()
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%8d %s\n", n, name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&encName, "encoding", "e", "", "Input encoding, e.g. utf-8, utf-16le")
	return cmd
}

func countLines(r *textio.Reader) (int, error) {
	if _, err := r.ReadBOM(); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, err
	}
	n := 0
	for {
		end, err := r.AtEnd()
		if err != nil {
			return n, err
		}
		if end {
			return n, nil
		}
		if _, err := r.ReadLine(); err != nil {
			return n, err
		}
		n++
	}
}
