package world

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// State is the payload carried by the ECS world for the bundled systems.
// Accessed only from the goroutine driving the world, so no locks are needed.
type State struct {
	Round   int
	Out     io.Writer
	Printer *message.Printer // locale-aware number formatting for reports
}

func NewState(out io.Writer, lang language.Tag) *State {
	return &State{
		Out:     out,
		Printer: message.NewPrinter(lang),
	}
}

// Advance moves to the next round.
func (s *State) Advance() { s.Round++ }

func (s *State) String() string {
	return s.Printer.Sprintf("State{round=%d}", s.Round)
}
