package feedback

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/color-quest/internal/core"
)

// Bell plays tones with the terminal bell: one ring for a correct answer,
// two for a wrong one.
type Bell struct {
	out    io.Writer
	logger *log.Logger
}

// NewBell creates a Bell writing to out.
func NewBell(out io.Writer, logger *log.Logger) *Bell {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Bell{out: out, logger: logger}
}

func (b *Bell) ring(seq string) {
	if b.out == nil {
		return
	}
	if _, err := io.WriteString(b.out, seq); err != nil {
		b.logger.Debug("terminal bell unavailable", "error", err)
	}
}

func (b *Bell) SayColor(core.Color) {}
func (b *Bell) Success()            { b.ring("\a") }
func (b *Bell) Failure()            { b.ring("\a\a") }
func (b *Bell) Bravo()              {}
