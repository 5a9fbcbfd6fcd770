package interpreter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	reportPrefix   = "Output: "
	unknownCommand = "Unknown Command!"
)

// Run reads commands from in, one per line, until the input is exhausted.
// Lines may be any length. Malformed commands never stop the loop; only I/O
// failures are returned.
func Run(ctx *Context, in io.Reader) error {
	r := bufio.NewReader(in)
	line := 0
	for {
		text, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read input: %w", err)
		}
		// a final line without a newline still counts
		if text == "" && err != nil {
			break
		}
		line++
		cmd := ParseLine(strings.TrimSpace(text))
		if execErr := cmd.Exec(ctx); execErr != nil {
			return fmt.Errorf("line %d: %w", line, execErr)
		}
		if err != nil {
			break
		}
	}
	ctx.Log.Debug("end of input", "lines", line)
	return nil
}

func (c Command) Exec(ctx *Context) error {
	switch c.Name {
	case "PLACE":
		c.place(ctx)
	case "MOVE":
		if !ctx.Robot.Move() {
			ctx.Log.Debug("move blocked by table edge", "robot", ctx.Robot.String())
		}
	case "LEFT":
		ctx.Robot.Left()
	case "RIGHT":
		ctx.Robot.Right()
	case "REPORT":
		if _, err := fmt.Fprintln(ctx.Out, ctx.Robot.Report()); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	default:
		ctx.Log.Debug("unknown command", "command", c.Name)
		if _, err := fmt.Fprintln(ctx.Out, unknownCommand); err != nil {
			return fmt.Errorf("write diagnostic: %w", err)
		}
	}
	return nil
}

// place ignores malformed arguments without telling the user.
func (c Command) place(ctx *Context) {
	if len(c.Args) != 1 {
		ctx.Log.Debug("ignoring PLACE", "reason", "expected one argument", "args", len(c.Args))
		return
	}
	p, err := ParsePlacement(c.Args[0])
	if err != nil {
		ctx.Log.Debug("ignoring PLACE", "arg", c.Args[0], "error", err)
		return
	}
	if !ctx.Robot.Place(p.X, p.Y, p.Facing) {
		ctx.Log.Debug("placement off the table", "x", p.X, "y", p.Y)
	}
}
