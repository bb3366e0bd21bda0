package riesenrad

// This file contains a display sink that pushes the strip to a fadecandy
// board, or any other Open Pixel Control server, every time the controller
// shows a new step

import (
	"bytes"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"

	"github.com/cnf/structhash"

	"github.com/kellydunn/go-opc"

	"github.com/xZise/Riesenrad/strip"
)

type opcSender interface {
	Send(m *opc.Message) error
}

// opcFrame is what is sent to the server, it is hashed to skip sending
// frames that did not change
type opcFrame struct {
	Channel uint8
	Pixels  []strip.Color
}

type FadeCandy struct {
	server     string
	channel    uint8
	brightness BrightnessSource
	client     opcSender

	last []byte
}

// NewFadeCandy connects to the OPC server, brightness may be nil to send
// the pixels unscaled
func NewFadeCandy(server string, channel uint8, brightness BrightnessSource) (fc *FadeCandy, err errors.Error) {
	oc := opc.NewClient()
	if errGo := oc.Connect("tcp", server); errGo != nil {
		return nil, errors.Wrap(errGo).With("url", server).With("stack", stack.Trace().TrimRuntime())
	}
	return &FadeCandy{
		server:     server,
		channel:    channel,
		brightness: brightness,
		client:     oc,
	}, nil
}

func (fc *FadeCandy) frame(s *strip.Strip) (frame *opcFrame) {
	frame = &opcFrame{
		Channel: fc.channel,
		Pixels:  s.Snapshot(),
	}
	if fc.brightness != nil {
		scale := fc.brightness.Brightness()
		for i, c := range frame.Pixels {
			frame.Pixels[i] = c.Scale(scale)
		}
	}
	return frame
}

// Show sends the strip unless the server already shows the same frame
func (fc *FadeCandy) Show(s *strip.Strip) (err errors.Error) {
	frame := fc.frame(s)

	hash := structhash.Md5(frame, 1)
	if bytes.Equal(fc.last, hash) {
		return nil
	}

	m := opc.NewMessage(fc.channel)
	m.SetLength(uint16(len(frame.Pixels) * 3))
	for i, c := range frame.Pixels {
		m.SetPixelColor(i, c.R, c.G, c.B)
	}

	if errGo := fc.client.Send(m); errGo != nil {
		// resend the frame on the next show
		fc.last = nil
		return errors.Wrap(errGo).With("url", fc.server).With("stack", stack.Trace().TrimRuntime())
	}
	fc.last = hash
	return nil
}
