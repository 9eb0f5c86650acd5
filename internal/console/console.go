// Package console provides the interactive terminal front-end for the timer.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"pomodoro/internal/core/session"
	"pomodoro/internal/core/timekeeper"
)

// Controller is the subset of the timekeeper the console drives.
type Controller interface {
	Toggle()
	Stop()
	AdjustFocus(direction session.Direction)
	AdjustBreak(direction session.Direction)
	View() session.View
}

// Console reads commands from a readline prompt.
type Console struct {
	controller Controller
	rl         *readline.Instance
	out        io.Writer
}

// New creates a console bound to the terminal.
func New(controller Controller) (*Console, error) {
	return newConsole(controller, promptConfig())
}

func newConsole(controller Controller, config *readline.Config) (*Console, error) {
	rl, err := readline.NewEx(config)
	if err != nil {
		return nil, fmt.Errorf("create readline: %w", err)
	}
	return &Console{controller: controller, rl: rl, out: rl.Stdout()}, nil
}

func promptConfig() *readline.Config {
	return &readline.Config{
		Prompt:          "pomodoro> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("play"),
			readline.PcItem("stop"),
			readline.PcItem("focus", readline.PcItem("+"), readline.PcItem("-")),
			readline.PcItem("break", readline.PcItem("+"), readline.PcItem("-")),
			readline.PcItem("status"),
			readline.PcItem("help"),
			readline.PcItem("quit"),
		),
	}
}

// Stdout returns a writer that coordinates with the prompt. Use it for log
// output so lines do not break the input row.
func (console *Console) Stdout() io.Writer {
	return console.out
}

// Run reads commands until quit, EOF or ctx is canceled. Canceling ctx
// interrupts a pending read.
func (console *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer console.rl.Close()
	stopClose := context.AfterFunc(ctx, func() {
		_ = console.rl.Close()
	})
	defer stopClose()

	console.printHelp()
	console.printStatus()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := console.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(console.out, "Exiting...")
			cancel()
			return
		}

		if quit := console.Execute(line); quit {
			cancel()
			return
		}
	}
}

// Execute runs one command line. It returns true when the user asked to quit.
func (console *Console) Execute(line string) bool {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		console.printHelp()
	case "play", "pause", "p":
		console.controller.Toggle()
		console.printStatus()
	case "stop", "s":
		view := console.controller.View()
		if !view.StopEnabled {
			fmt.Fprintln(console.out, "No active session.")
			return false
		}
		console.controller.Stop()
		console.printStatus()
	case "focus", "f":
		console.adjust(args, console.controller.AdjustFocus)
	case "break", "b":
		console.adjust(args, console.controller.AdjustBreak)
	case "status", "st":
		console.printStatus()
	case "quit", "exit", "q":
		fmt.Fprintln(console.out, "Exiting...")
		return true
	default:
		fmt.Fprintf(console.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

// HandleEvent prints timer updates as they arrive.
func (console *Console) HandleEvent(event timekeeper.Event) {
	switch event.Type {
	case timekeeper.EventExpired:
		fmt.Fprintf(console.out, "\a%s ended.\n", event.Alert.Ended.Label())
		console.printView(event.View)
	case timekeeper.EventProgress:
		if event.View.Session != nil && event.View.Session.Remaining%60 == 0 {
			fmt.Fprintf(console.out, "%s remaining\n", event.View.Session.RemainingLabel)
		}
	}
}

func (console *Console) adjust(args []string, apply func(session.Direction)) {
	if len(args) != 1 {
		fmt.Fprintln(console.out, "Usage: focus|break + or -")
		return
	}
	var direction session.Direction
	switch args[0] {
	case "+", "up", "inc":
		direction = session.Increase
	case "-", "down", "dec":
		direction = session.Decrease
	default:
		fmt.Fprintf(console.out, "Unknown direction: %s\n", args[0])
		return
	}
	if !console.controller.View().AdjustEnabled {
		fmt.Fprintln(console.out, "Durations cannot change during a session. Stop it first.")
		return
	}
	apply(direction)
	console.printStatus()
}

func (console *Console) printStatus() {
	console.printView(console.controller.View())
}

func (console *Console) printView(view session.View) {
	fmt.Fprintf(console.out, "Focus Duration: %s  Break Duration: %s\n", view.FocusLabel, view.BreakLabel)
	if view.Session == nil {
		fmt.Fprintln(console.out, "No active session.")
		return
	}
	fmt.Fprintln(console.out, view.Session.Title)
	fmt.Fprintf(console.out, "%s  [%s] %3.0f%%\n", view.Session.Subtitle(), progressBar(view.Session.Progress, 20), view.Session.Progress)
	if !view.Session.Running {
		fmt.Fprintln(console.out, "PAUSED")
	}
}

func (console *Console) printHelp() {
	fmt.Fprintln(console.out, `
Pomodoro Commands:
  play | p          - Start, pause or resume the timer
  stop | s          - Stop the session and restore default durations
  focus + | -       - Change the focus duration (5-60 min, idle only)
  break + | -       - Change the break duration (1-15 min, idle only)
  status            - Show the current session
  help              - Show this help
  quit              - Exit`)
}

func progressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("#", filled) + strings.Repeat(".", width-filled)
}
