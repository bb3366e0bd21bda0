package riesenrad

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"

	"github.com/xZise/Riesenrad/strip"
)

// Terminal renders the ring as a single line of 24 bit colour blocks, every
// show overwrites the previous line
type Terminal struct {
	out        *bufio.Writer
	brightness BrightnessSource
}

func NewTerminal(out io.Writer, brightness BrightnessSource) (term *Terminal) {
	return &Terminal{
		out:        bufio.NewWriter(out),
		brightness: brightness,
	}
}

func (term *Terminal) Show(s *strip.Strip) (err errors.Error) {
	term.out.WriteString("\r")
	for _, c := range s.Pixels() {
		if term.brightness != nil {
			c = c.Scale(term.brightness.Brightness())
		}
		fmt.Fprintf(term.out, "\x1b[48;2;%d;%d;%dm \x1b[0m", c.R, c.G, c.B)
	}
	if errGo := term.out.Flush(); errGo != nil {
		return errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}
	return nil
}
