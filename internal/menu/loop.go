package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"envinstall/internal/install"
	"envinstall/internal/ui/views"
)

// Installer runs a batch of installs
type Installer interface {
	InstallAll(ctx context.Context, indices []int) install.Report
}

// Loop is the plain read-eval-print menu used when there is no terminal to
// draw on, or when the user asks for it
type Loop struct {
	controller *Controller
	installer  Installer
	history    fmt.Stringer
	renderer   *views.Renderer
	in         *bufio.Reader
	out        io.Writer
}

// NewLoop creates a loop reading commands from in and writing to out
func NewLoop(controller *Controller, installer Installer, history fmt.Stringer, in io.Reader, out io.Writer) *Loop {
	return &Loop{
		controller: controller,
		installer:  installer,
		history:    history,
		renderer:   views.NewRenderer(),
		in:         bufio.NewReader(in),
		out:        out,
	}
}

// Run loops until the user quits or input ends. Both are a normal exit.
func (l *Loop) Run(ctx context.Context) error {
	var pending *string

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		var line string
		if pending != nil {
			line, pending = *pending, nil
		} else {
			fmt.Fprint(l.out, l.renderer.Render(l.controller.State()))
			fmt.Fprint(l.out, "\n"+l.renderer.Prompt())
			var eof bool
			line, eof = l.readLine()
			if eof && line == "" {
				fmt.Fprintln(l.out)
				return nil
			}
		}

		action := l.controller.Handle(line)
		log.WithFields(log.Fields{"input": line, "action": action.String()}).Debug("menu command")

		switch action {
		case ActionQuit:
			fmt.Fprintln(l.out, l.renderer.Styles().StatusInstalled.Render("Bye!"))
			return nil

		case ActionShowHistory:
			fmt.Fprintln(l.out)
			fmt.Fprint(l.out, l.history.String())
			fmt.Fprintln(l.out)

		case ActionInstall:
			report := l.installer.InstallAll(ctx, l.controller.Selected())
			if len(report.Items) == 0 {
				continue
			}
			// Anything typed instead of a bare enter is taken as the next command
			fmt.Fprint(l.out, "Press Enter to continue")
			ack, eof := l.readLine()
			fmt.Fprintln(l.out)
			if ack = strings.TrimSpace(ack); ack != "" {
				pending = &ack
			} else if eof {
				return nil
			}
		}
	}
}

// readLine returns the next line without its terminator, and whether input
// has ended
func (l *Loop) readLine() (string, bool) {
	line, err := l.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil {
		if !errors.Is(err, io.EOF) {
			log.WithError(err).Warn("reading menu input")
		}
		return line, true
	}
	return line, false
}
