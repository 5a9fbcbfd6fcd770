package interpreter

import (
	"io"
	"log/slog"

	"toyrobot/internal/logging"
)

// Context stores the robot and where its reports go.
type Context struct {
	Robot *Robot
	Out   io.Writer
	Log   *slog.Logger
}

// NewContext gives a fresh robot reporting to out. A nil log discards.
func NewContext(out io.Writer, log *slog.Logger) *Context {
	if log == nil {
		log = logging.NewNop()
	}
	return &Context{Robot: NewRobot(), Out: out, Log: log}
}
