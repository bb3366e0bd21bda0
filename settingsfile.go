package riesenrad

// This module implements the settings file. The file is polled on a regular
// basis and any change to its contents is applied to the live settings so
// that animations can be switched on and off while the ring is running

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
	"github.com/mgutz/logxi"

	"github.com/cnf/structhash"

	"gopkg.in/yaml.v2"

	"github.com/xZise/Riesenrad/model"
)

// LoadSettings decodes the settings file on top of base so that keys missing
// from the file keep the values from base
func LoadSettings(path string, base *model.Settings) (settings *model.Settings, err errors.Error) {
	body, errGo := os.ReadFile(path)
	if errGo != nil {
		return nil, errors.Wrap(errGo).With("path", path).With("stack", stack.Trace().TrimRuntime())
	}

	settings = base.DeepCopy()
	if settings.Animations == nil {
		settings.Animations = map[string]bool{}
	}
	if errGo = yaml.Unmarshal(body, settings); errGo != nil {
		return nil, errors.Wrap(errGo).With("path", path).With("body", string(body)).With("stack", stack.Trace().TrimRuntime())
	}
	return settings, nil
}

// SaveSettings writes the settings in the same format LoadSettings reads
func SaveSettings(path string, settings *model.Settings) (err errors.Error) {
	body, errGo := yaml.Marshal(settings)
	if errGo != nil {
		return errors.Wrap(errGo).With("path", path).With("stack", stack.Trace().TrimRuntime())
	}
	if errGo = os.WriteFile(path, body, 0644); errGo != nil {
		return errors.Wrap(errGo).With("path", path).With("stack", stack.Trace().TrimRuntime())
	}
	return nil
}

type SettingsWatcher struct {
	path     string
	settings *Settings
	errorC   chan<- errors.Error
	logger   logxi.Logger

	// hash of the file contents last applied
	last []byte
}

func NewSettingsWatcher(path string, settings *Settings, errorC chan<- errors.Error) (watcher *SettingsWatcher) {
	return &SettingsWatcher{
		path:     path,
		settings: settings,
		errorC:   errorC,
		logger:   logxi.New("settings"),
	}
}

// check loads the settings file and applies it when its contents changed
// since the last time it was applied. A missing file is not an error, the
// settings then simply stay as they are
func (watcher *SettingsWatcher) check() (changed bool, err errors.Error) {
	if _, errGo := os.Stat(watcher.path); os.IsNotExist(errGo) {
		watcher.last = nil
		return false, nil
	}

	fromFile, err := LoadSettings(watcher.path, &model.Settings{})
	if err != nil {
		return false, err
	}
	hash := structhash.Md5(fromFile, 1)
	if bytes.Equal(watcher.last, hash) {
		return false, nil
	}

	// invalid contents are reported once, not on every poll
	watcher.last = hash

	merged, err := LoadSettings(watcher.path, watcher.settings.Snapshot())
	if err != nil {
		return false, err
	}
	if err = watcher.settings.Apply(merged); err != nil {
		return false, err.With("path", watcher.path)
	}

	watcher.logger.Info("settings applied", "path", watcher.path,
		"enabled", merged.AnimationsEnabled, "animations", watcher.settings.EnabledKinds().String())
	return true, nil
}

func (watcher *SettingsWatcher) sendError(err errors.Error) {
	select {
	case watcher.errorC <- err:
	case <-time.After(500 * time.Millisecond):
		fmt.Fprintf(os.Stderr, "could not send error for settings update %s\n", err.Error())
	}
}

// Run applies the settings file immediately and then polls it for changes
// until quitC is closed
func (watcher *SettingsWatcher) Run(poll time.Duration, quitC <-chan struct{}) {

	if _, err := watcher.check(); err != nil {
		watcher.sendError(err)
	}

	tick := time.NewTicker(poll)
	defer tick.Stop()

	for {
		select {
		case <-tick.C:
			if _, err := watcher.check(); err != nil {
				watcher.sendError(err)
			}
		case <-quitC:
			return
		}
	}
}
