package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/karlmutch/errors"
	"github.com/mgutz/logxi" // Using a forked copy of this package results in build issues

	"github.com/xZise/Riesenrad"
	"github.com/xZise/Riesenrad/strip"
	"github.com/xZise/Riesenrad/version"

	"github.com/karlmutch/envflag" // Forked copy of https://github.com/GoBike/envflag
)

var (
	logger = logxi.New("riesenrad")

	verbose      = flag.Bool("v", false, "When enabled will print internal logging for this tool")
	leds         = flag.Int("leds", strip.DefaultLen, "Number of LEDs on the ring")
	tick         = flag.Duration("tick", 10*time.Millisecond, "Period of the frame clock")
	opcServer    = flag.String("opc-server", "", "host:port of the fadecandy OPC server, the ring is shown on the terminal when empty")
	opcChannel   = flag.Uint("opc-channel", 0, "OPC channel the ring is connected to")
	settingsFile = flag.String("settings", "riesenrad.yaml", "YAML file with the runtime settings, polled for changes")
	settingsPoll = flag.Duration("settings-poll", time.Second, "Interval at which the settings file is checked for changes")
	metricsLog   = flag.Duration("metrics-log", time.Minute, "Interval at which the counters are logged at debug level")
	seed         = flag.Int64("seed", 0, "Seed for the animation selection, 0 uses the current time")
)

func usage() {
	fmt.Fprintln(os.Stderr, path.Base(os.Args[0]))
	fmt.Fprintln(os.Stderr, "usage: ", os.Args[0], "[options]       animations → OPC (riesenrad)      ", version.GitHash, "    ", version.BuildTime)
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "riesenrad plays random animations on a ring of LEDs driven by a fadecandy board")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Environment Variables:")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "options can also be extracted from environment variables by changing dashes '-' to underscores and using upper case.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Signals:")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "SIGUSR1 skips the current animation, SIGUSR2 toggles between animations and the static light.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "log levels are handled by the LOGXI env variables, these are documented at https://github.com/mgutz/logxi")
}

func init() {
	flag.Usage = usage
}

func main() {

	// Parse the CLI flags
	if !flag.Parsed() {
		envflag.Parse()
	}

	if *verbose {
		logger.SetLevel(logxi.LevelDebug)
	}

	logger.Debug(fmt.Sprintf("%s built at %s, against commit id %s", os.Args[0], version.BuildTime, version.GitHash))

	quitC := make(chan struct{})
	errorC := make(chan errors.Error, 1)

	go runErrors(errorC, quitC)

	settings := riesenrad.NewSettings()

	sinks := []riesenrad.DisplaySink{}
	if len(*opcServer) != 0 {
		fc, err := riesenrad.NewFadeCandy(*opcServer, uint8(*opcChannel), settings)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(-1)
		}
		sinks = append(sinks, fc)
	} else {
		sinks = append(sinks, riesenrad.NewTerminal(os.Stdout, settings))
	}

	watcher := riesenrad.NewSettingsWatcher(*settingsFile, settings, errorC)
	go watcher.Run(*settingsPoll, quitC)

	engine := riesenrad.NewEngine(settings)
	subscribeC, err := engine.Start(riesenrad.EngineConfig{
		LEDs: *leds,
		Tick: *tick,
		Seed: *seed,
	}, sinks, errorC, quitC)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(-1)
	}

	go runMonitoring(subscribeC, quitC)
	go logMetrics(engine.Metrics, *metricsLog, quitC)

	stopC := make(chan os.Signal, 1)
	signal.Notify(stopC, os.Interrupt, syscall.SIGTERM)
	controlC := make(chan os.Signal, 1)
	signal.Notify(controlC, syscall.SIGUSR1, syscall.SIGUSR2)

	for {
		select {
		case sig := <-controlC:
			switch sig {
			case syscall.SIGUSR1:
				logger.Info("skipping animation")
				settings.RequestNext()
			case syscall.SIGUSR2:
				enabled := !settings.AnimationsEnabled()
				logger.Info("animations toggled", "enabled", enabled)
				settings.SetAnimationsEnabled(enabled)
			}
		case <-stopC:
			close(quitC)
			// Give the controller a moment to switch off the animation
			time.Sleep(100 * time.Millisecond)
			return
		}
	}
}

func logMetrics(metrics *riesenrad.Metrics, interval time.Duration, quitC <-chan struct{}) {
	tick := time.NewTicker(interval)
	defer tick.Stop()

	for {
		select {
		case <-tick.C:
			logger.Debug("metrics", metrics.Log()...)
		case <-quitC:
			return
		}
	}
}
