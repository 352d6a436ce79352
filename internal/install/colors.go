package install

import "github.com/gookit/color"

// colorPrinter is satisfied by *color.Theme, color.Style and color.RGBColor
type colorPrinter interface {
	Sprintf(format string, a ...any) string
}

// transcript colors
var (
	colInfo    = color.Info
	colWarn    = color.Warn
	colError   = color.Error
	colSuccess = color.Success
	colStep    = color.New(color.FgBlue)
	colHeader  = color.New(color.OpBold)
	colDone    = color.New(color.OpBold, color.FgGreen)
)
