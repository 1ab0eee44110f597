// Package report prints short user-facing outcome messages for CLI
// commands.
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/parkervanroy/sith/internal/osutil"
	"github.com/parkervanroy/sith/internal/ui"
)

func AppAllowed(app string) {
	pterm.Success.Printfln("%s added to the allowlist", ui.Highlight(app))
}

func AppAlreadyAllowed(app string) {
	pterm.Info.Printfln("%s is already on the allowlist", ui.Highlight(app))
}

func AppRemoved(app string) {
	pterm.Success.Printfln("%s removed from the allowlist", ui.Highlight(app))
}

// Imported reports a legacy file that was copied into the current layout.
func Imported(what, from string) {
	pterm.Info.Printfln("imported %s from %s", what, from)
}

func NotRunning() {
	pterm.Info.Println("sith is not running")
}

func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints err and exits with a non-zero status.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}
