// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/h2non/filetype"
	"github.com/spf13/cobra"

	"code.hybscloud.com/xfer/codepoint"
	"code.hybscloud.com/xfer/textio"
)

// headerSize covers the magic numbers filetype knows about.
const headerSize = 262

func newValidateCmd(a *app) *cobra.Command {
	var (
		encName string
		force   bool
	)
	cmd := &cobra.Command{
		Use:   "validate [flags] FILE...",
		Short: "Report the first malformed code unit of each file",
		Long: `Decode each file completely and report the code-unit offset of the first
malformed sequence. Without --encoding the file's byte order mark, or the
configured encoding, decides. Files recognised as binary formats are skipped
unless --force is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bad := 0
			for _, name := range args {
				if !a.validateFile(cmd, name, encName, force) {
					bad++
				}
			}
			if bad > 0 {
				return errAlreadyHandled
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&encName, "encoding", "e", "", "Input encoding, e.g. utf-8, utf-16le")
	cmd.Flags().BoolVar(&force, "force", false, "Validate files recognised as binary formats too")
	return cmd
}

// validateFile reports on one file and returns false when it is malformed or
// unreadable.
func (a *app) validateFile(cmd *cobra.Command, name, encName string, force bool) bool {
	out := cmd.OutOrStdout()
	fail := func(err error) bool {
		errorLabel.Fprintf(out, "%s: %v\n", name, err)
		return false
	}

	in, closeIn, err := a.openInput(cmd, name)
	if err != nil {
		return fail(err)
	}
	defer closeIn()

	header, rewound, err := readHeader(in, headerSize)
	if err != nil {
		return fail(err)
	}
	if !rewound {
		return fail(errors.New("input cannot be rewound after sniffing"))
	}
	if a.cfg.SkipBinary && !force {
		if kind, _ := filetype.Match(header); kind != filetype.Unknown {
			skipLabel.Fprintf(out, "%s: skipped (%s)\n", name, kind.MIME.Value)
			return true
		}
	}

	enc, err := a.encoding(encName)
	if err != nil {
		return fail(err)
	}
	if encName == "" {
		if bomEnc, n := textio.DetectBOM(header); n > 0 {
			enc = bomEnc
		}
	}

	r := textio.NewReader(in, enc)
	if _, err := r.ReadBOM(); err != nil && err != io.EOF {
		return report(out, name, enc, 0, err)
	}
	count := 0
	for {
		_, err := r.ReadCodePoint()
		if err == io.EOF {
			break
		}
		if err != nil {
			return report(out, name, r.Encoding(), count, err)
		}
		count++
	}
	okLabel.Fprintf(out, "%s: ok", name)
	fmt.Fprintf(out, " (%s, %d code points)\n", r.Encoding(), count)
	return true
}

func report(out io.Writer, name string, enc textio.Encoding, count int, err error) bool {
	var e *codepoint.Error
	if errors.As(err, &e) {
		errorLabel.Fprintf(out, "%s: invalid", name)
		fmt.Fprintf(out, " (%s) %s at unit %d after %d code points\n", enc, e.Kind, e.Offset, count)
		return false
	}
	errorLabel.Fprintf(out, "%s: %v\n", name, err)
	return false
}
