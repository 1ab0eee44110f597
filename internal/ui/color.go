// Package ui holds the terminal styling shared by the sith commands.
package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

var DarkTheme = true

func paint(a any, light, dark pterm.Color) string {
	if !pterm.PrintColor {
		return fmt.Sprint(a)
	}

	if DarkTheme {
		return dark.Sprint(a)
	}

	return light.Sprint(a)
}

func Green(a any) string {
	return paint(a, pterm.FgGreen, pterm.FgLightGreen)
}

func Cyan(a any) string {
	return paint(a, pterm.FgCyan, pterm.FgLightCyan)
}

func Blue(a any) string {
	return paint(a, pterm.FgBlue, pterm.FgLightBlue)
}

func Red(a any) string {
	return paint(a, pterm.FgRed, pterm.FgLightRed)
}

func Yellow(a any) string {
	return paint(a, pterm.FgYellow, pterm.FgLightYellow)
}

func Highlight(a any) string {
	return paint(a, pterm.FgBlack, pterm.FgLightWhite)
}

// State renders ACTIVE in green and anything else in red.
func State(working bool) string {
	if working {
		return Green("ACTIVE")
	}

	return Red("IDLE")
}
