// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package app

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wangtaoking1/verbtree/parser"
)

var progressMessage = color.GreenString("==>")

// FormatExecName is formatted as an executable file name under different
// operating systems according to the given name.
func FormatExecName(name string) string {
	// Make case-insensitive and strip executable suffix if present
	if runtime.GOOS == "windows" {
		name = strings.ToLower(name)
		name = strings.TrimSuffix(name, ".exe")
	}

	return name
}

// addCmdTemplate makes cobra's own help and usage output render the root help
// page of the parser.
func addCmdTemplate(cmd *cobra.Command, p *parser.Parser) {
	render := func(cmd *cobra.Command) error {
		p.SetOutput(cmd.OutOrStdout())
		return p.RenderHelp(p.Root())
	}
	cmd.SetUsageFunc(render)
	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if err := render(cmd); err != nil {
			printError(cmd.ErrOrStderr(), err)
		}
	})
}

func writeString(w io.Writer, s string) {
	_, _ = io.WriteString(w, s)
}

func printWorkingDir(w io.Writer) {
	wd, _ := os.Getwd()
	_, _ = fmt.Fprintf(w, "%v WorkingDir: %s\n", progressMessage, wd)
}
