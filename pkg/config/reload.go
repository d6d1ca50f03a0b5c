package config

import (
	"fmt"

	"github.com/vanderheijden86/walkthrough/pkg/watcher"
)

// Reloader re-reads the config file whenever it changes and publishes the
// result on Updates. Parse failures go to the error callback and the last
// good config stays in effect.
type Reloader struct {
	path    string
	w       *watcher.Watcher
	updates chan Config
}

// NewReloader prepares a reloader for path. Call Start to begin watching.
func NewReloader(path string, onError func(error), opts ...watcher.WatcherOption) (*Reloader, error) {
	if onError == nil {
		onError = func(error) {}
	}
	r := &Reloader{
		path:    path,
		updates: make(chan Config, 1),
	}

	opts = append(opts,
		watcher.WithOnChange(r.reload(onError)),
		watcher.WithOnError(onError),
	)
	w, err := watcher.NewWatcher(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("watching config: %w", err)
	}
	r.w = w
	return r, nil
}

func (r *Reloader) reload(onError func(error)) func() {
	return func() {
		cfg, err := LoadFrom(r.path)
		if err != nil {
			onError(err)
			return
		}
		cfg.ApplyEnv()
		// Keep only the newest config if the consumer is behind.
		select {
		case <-r.updates:
		default:
		}
		select {
		case r.updates <- cfg:
		default:
		}
	}
}

// Start begins watching.
func (r *Reloader) Start() error {
	return r.w.Start()
}

// Stop ends watching.
func (r *Reloader) Stop() {
	r.w.Stop()
}

// Updates delivers freshly loaded configs.
func (r *Reloader) Updates() <-chan Config {
	return r.updates
}
