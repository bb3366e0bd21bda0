package main

// The simulator renders the ring to the terminal, optionally faster than real
// time and restricted to a few animations, so that animations can be looked
// at without any hardware

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/karlmutch/errors"
	"github.com/mgutz/logxi"

	"github.com/xZise/Riesenrad"
	"github.com/xZise/Riesenrad/animation"
	"github.com/xZise/Riesenrad/model"
	"github.com/xZise/Riesenrad/strip"
)

var (
	leds       = flag.Int("leds", strip.DefaultLen, "Number of LEDs on the simulated ring")
	scale      = flag.Int("scale", 1, "factor by which to accelerate the relative rate of the clock")
	animations = flag.String("animations", "", "Comma separated names of the animations to play, all of them when empty")
	static     = flag.String("static", "", "Hex colour of the static light shown instead of any animation")
	brightness = flag.Uint("brightness", 255, "Brightness of the simulated ring")
	duration   = flag.Duration("duration", 0, "Stop the simulation after this long, 0 runs until interrupted")
	seed       = flag.Int64("seed", 0, "Seed for the animation selection, 0 uses the current time")
	verbose    = flag.Bool("v", false, "When enabled will print internal logging for this tool")
)

var (
	// create Logger interface
	logW = logxi.NewLogger(logxi.NewConcurrentWriter(os.Stderr), "riesenrad-simulator")
)

func kinds(names string) (kinds animation.KindSet, err errors.Error) {
	if len(names) == 0 {
		return animation.AllKinds, nil
	}
	for _, name := range strings.Split(names, ",") {
		kind, isPresent := animation.ParseKind(strings.TrimSpace(name))
		if !isPresent {
			return 0, errors.New("unknown animation").With("animation", name)
		}
		kinds = kinds.With(kind)
	}
	return kinds, nil
}

func main() {

	flag.Parse()

	if *verbose {
		logW.SetLevel(logxi.LevelDebug)
	}

	settings := riesenrad.NewSettings()
	settings.SetBrightness(uint8(*brightness))

	enabled, err := kinds(*animations)
	if err != nil {
		logxi.Fatal(err.Error())
		os.Exit(-1)
	}
	settings.SetEnabledKinds(enabled)

	if len(*static) != 0 {
		color, errGo := strip.ParseHex(*static)
		if errGo != nil {
			logxi.Fatal(errGo.Error())
			os.Exit(-1)
		}
		settings.SetStaticLight(color, true)
		settings.SetAnimationsEnabled(false)
	}

	if *scale < 1 {
		*scale = 1
	}

	quitC := make(chan struct{})
	errorC := make(chan errors.Error, 1)

	engine := riesenrad.NewEngine(settings)
	subscribeC, err := engine.Start(riesenrad.EngineConfig{
		LEDs: *leds,
		Tick: animation.BaseTick / time.Duration(*scale),
		Seed: *seed,
	}, []riesenrad.DisplaySink{riesenrad.NewTerminal(os.Stdout, settings)}, errorC, quitC)
	if err != nil {
		logxi.Fatal(err.Error())
		os.Exit(-1)
	}

	nowPlayingC := make(chan *model.NowPlaying, 1)
	subscribeC <- nowPlayingC

	var stopC <-chan time.Time
	if *duration > 0 {
		stopC = time.After(*duration)
	}

	for {
		select {
		case msg := <-nowPlayingC:
			if msg.Playing {
				logW.Debug(fmt.Sprintf("playing %s", msg.Name))
			}
		case err := <-errorC:
			logW.Warn(err.Error())
		case <-stopC:
			close(quitC)
			logW.Info("simulation finished", engine.Metrics.Log()...)
			fmt.Println()
			return
		}
	}
}
