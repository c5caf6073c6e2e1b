// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command utfx validates, inspects and transcodes Unicode text files through
// xfer's buffered resources.
//
//	utfx validate [--encoding e] [--force] FILE...
//	utfx transcode --from e --to e [--bom] IN OUT
//	utfx bom FILE...
//	utfx lines [--encoding e] FILE...
//	utfx cat [--to e] FILE...
//
// IN, OUT and FILE may be "-" for the standard streams.
package main

import (
	"errors"
	"os"

	"code.hybscloud.com/xfer"
)

func main() {
	stdio := xfer.NewStdio()
	code := run(stdio, os.Args[1:])
	_ = stdio.Flush()
	os.Exit(code)
}

// run executes one command line and returns the exit status.
func run(stdio *xfer.Stdio, args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdio.In)
	root.SetOut(stdio.Out)
	root.SetErr(stdio.Err)
	root.SilenceErrors = true
	root.SilenceUsage = true

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errAlreadyHandled) {
			errorLabel.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
