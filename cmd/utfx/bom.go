// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"code.hybscloud.com/xfer/textio"
)

func newBOMCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bom FILE...",
		Short: "Show the byte order mark each file starts with",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range args {
				in, closeIn, err := a.openInput(cmd, name)
				if err != nil {
					return err
				}
				header, _, err := readHeader(in, 4)
				_ = closeIn()
				if err != nil {
					return err
				}
				if enc, n := textio.DetectBOM(header); n > 0 {
					fmt.Fprintf(out, "%s: %s (%d bytes)\n", name, enc, n)
				} else {
					fmt.Fprintf(out, "%s: none\n", name)
				}
			}
			return nil
		},
	}
}
