// FILE: hydrogen-config/watch.go
package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadFunc receives each reloaded configuration, or the error that
// prevented it. A failed reload never replaces a configuration already handed out.
type ReloadFunc func(cfg *AppConfig, err error)

// Watch reloads the configuration whenever its file changes and passes each
// result to onChange. It blocks until ctx is done.
func (b *Builder) Watch(ctx context.Context, onChange ReloadFunc) error {
	if onChange == nil {
		return fmt.Errorf("watch requires a reload callback")
	}
	path, err := b.watchTarget()
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory so editors that replace the file are still seen
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	log := b.logger.With().Str("subsystem", "Config-Watch").Logger()
	log.Info().Str("file", path).Msg("watching configuration file " + path)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("file", path).Msg("stopped watching configuration file")
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// Coalesce bursts of writes into one reload
			if timer == nil {
				timer = time.NewTimer(b.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(b.debounce)
			}
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("file watcher error")

		case <-fire:
			fire = nil
			cfg, err := b.reload(path)
			if err != nil {
				log.Error().Err(err).Msg("configuration reload failed")
			} else {
				log.Info().Str("file", path).Msg("configuration reloaded")
			}
			onChange(cfg, err)
		}
	}
}

// reload re-reads an in-memory document from its file before building.
// Discovered files are read again by Build itself.
func (b *Builder) reload(path string) (*AppConfig, error) {
	if b.doc != nil {
		doc, err := ReadDocument(path)
		if err != nil {
			return nil, err
		}
		b.doc = doc
	}
	return b.Build()
}

// watchTarget resolves the absolute path of the file to watch.
func (b *Builder) watchTarget() (string, error) {
	if b.doc != nil {
		if src := b.doc.Source(); src != "" {
			return absPath(src), nil
		}
		return "", fmt.Errorf("%w: in-memory document has no file to watch", ErrConfigNotFound)
	}
	found, err := discover(b.discovery, b.file, b.bootstrapEnvironment(), b.logger)
	if err != nil {
		return "", err
	}
	if found.path == "" {
		return "", fmt.Errorf("%w: nothing to watch in %v", ErrConfigNotFound, found.checked)
	}
	return found.path, nil
}
