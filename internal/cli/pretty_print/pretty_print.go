package pretty_print

import (
	"fmt"
	"io"
	"os"
	"sync"

	humane "github.com/sierrasoftworks/humane-errors-go"
)

var (
	outputMu sync.RWMutex
	stdout   io.Writer = os.Stdout
	stderr   io.Writer = os.Stderr
)

// SetOutput redirects messages. Errors and warnings go to errOut, everything
// else to out. nil keeps the current writer.
func SetOutput(out, errOut io.Writer) {
	outputMu.Lock()
	defer outputMu.Unlock()
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

func writerFor(lvl PrintLevel) io.Writer {
	outputMu.RLock()
	defer outputMu.RUnlock()
	if lvl == ErrLvl || lvl == WarnLvl {
		return stderr
	}
	return stdout
}

// PrettyPrint prints a message with the global options.
func PrettyPrint(lvl PrintLevel, msg string, context ...string) (int, humane.Error) {
	return PrettyPrintWithOptions(lvl, msg, context)
}

// PrettyPrintWithOptions formats and prints a message with custom options.
func PrettyPrintWithOptions(lvl PrintLevel, msg string, context []string, opts ...Option) (int, humane.Error) {
	formatted := FormatWithOptions(lvl, msg, context, opts...)

	n, err := fmt.Fprint(writerFor(lvl), formatted)
	if err != nil {
		return n, humane.Wrap(err, "failed to write formatted output", "check that stdout/stderr is writable")
	}
	return n, nil
}

// PrintOk prints a message at the "Ok" level with optional context.
func PrintOk(msg string, context ...string) {
	_, _ = PrettyPrint(OkLvl, msg, context...)
}

// PrintInfoIcon prints an informational message with a custom icon.
func PrintInfoIcon(icon, msg string, context ...string) {
	_, _ = PrettyPrintWithOptions(InfoLvl, msg, context, WithIcon(InfoLvl, icon))
}

// PrintInfo prints an informational message with optional context.
func PrintInfo(msg string, context ...string) {
	_, _ = PrettyPrint(InfoLvl, msg, context...)
}

// PrintWarn prints a warning to stderr.
func PrintWarn(msg string, context ...string) {
	_, _ = PrettyPrint(WarnLvl, msg, context...)
}

// PrintErrorMessage prints an error message to stderr.
func PrintErrorMessage(msg string, context ...string) {
	_, _ = PrettyPrint(ErrLvl, msg, context...)
}

// PrintError prints err to stderr with humane-errors formatting.
func PrintError(err error, context ...string) {
	_, _ = PrettyPrintWithOptions(ErrLvl, "", context, WithError(err))
}
