package feedback

import (
	"io"
	"os/exec"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/color-quest/internal/core"
)

// BravoPhrase is spoken after a correct answer.
const BravoPhrase = "Bravo!"

// Speaker reads text aloud through an external text-to-speech program
// such as espeak or say. The text is appended to the configured arguments.
type Speaker struct {
	command string
	args    []string
	logger  *log.Logger

	// start launches the program without waiting for it to finish.
	start func(name string, args ...string) error

	once      sync.Once
	available bool
}

// NewSpeaker creates a Speaker for command. An empty command disables speech.
func NewSpeaker(command string, args []string, logger *log.Logger) *Speaker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Speaker{
		command: command,
		args:    args,
		logger:  logger,
		start:   startDetached,
	}
}

// Available reports whether the speech program can be found.
func (s *Speaker) Available() bool {
	s.once.Do(func() {
		if s.command == "" {
			return
		}
		if _, err := exec.LookPath(s.command); err != nil {
			s.logger.Debug("speech disabled", "command", s.command, "error", err)
			return
		}
		s.available = true
	})
	return s.available
}

// Say speaks text. Failures are logged and dropped.
func (s *Speaker) Say(text string) {
	if text == "" || !s.Available() {
		return
	}
	args := append(append([]string(nil), s.args...), text)
	if err := s.start(s.command, args...); err != nil {
		s.logger.Debug("speech failed", "command", s.command, "error", err)
	}
}

func (s *Speaker) SayColor(c core.Color) { s.Say(c.Spoken()) }
func (s *Speaker) Success()              {}
func (s *Speaker) Failure()              {}
func (s *Speaker) Bravo()                { s.Say(BravoPhrase) }

// startDetached runs the program in the background and reaps it.
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		//nolint:errcheck // Exit status of a speech cue is irrelevant
		cmd.Wait()
	}()
	return nil
}
