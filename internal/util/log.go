// Package util holds the levelled, coloured logging used by the command
// binaries.
package util

import (
	"fmt"
	"io"
	"os"

	"github.com/mgutz/ansi"
)

var (
	funcErr   = ansi.ColorFunc("red+h")
	funcWarn  = ansi.ColorFunc("yellow")
	funcGood  = ansi.ColorFunc("green")
	funcDebug = ansi.ColorFunc("black+h")
)

// Output is where log lines go.
var Output io.Writer = os.Stderr

func LogIfError(err error) error {
	if err != nil {
		LogError(err)
	}
	return err
}

// LogError prints err with its stack trace when it carries one.
func LogError(err error) {
	fmt.Fprintln(Output, funcErr(fmt.Sprintf("[  ERR] %+v", err)))
}

func LogBadf(f string, v ...any) {
	fmt.Fprintln(Output, funcErr("[  ERR] "+fmt.Sprintf(f, v...)))
}

func LogWarn(msg ...any) {
	msg = append([]any{"[ WARN]"}, msg...)
	fmt.Fprint(Output, funcWarn(fmt.Sprintln(msg...)))
}

func LogWarnf(f string, v ...any) {
	fmt.Fprintln(Output, funcWarn("[ WARN] "+fmt.Sprintf(f, v...)))
}

func LogDebugf(f string, v ...any) {
	fmt.Fprintln(Output, funcDebug("[DEBUG] "+fmt.Sprintf(f, v...)))
}

func LogGood(msg ...any) {
	msg = append([]any{"[ INFO]"}, msg...)
	fmt.Fprint(Output, funcGood(fmt.Sprintln(msg...)))
}

func LogGoodf(f string, v ...any) {
	fmt.Fprintln(Output, funcGood("[ INFO] "+fmt.Sprintf(f, v...)))
}
