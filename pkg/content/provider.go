package content

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/petspa/salonsite/pkg/errors"
)

// Provider serves the current content document. It is safe for concurrent
// use; readers always see a complete document.
type Provider struct {
	mu       sync.RWMutex
	doc      *Document
	path     string
	logger   *log.Logger
	debounce time.Duration
	onChange []func(*Document)
}

// Option configures a Provider.
type Option func(*Provider)

// WithLogger sets the logger used for reload diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(p *Provider) { p.logger = l }
}

// WithDebounce sets how long Watch waits for writes to settle before
// reloading. The default is 200ms.
func WithDebounce(d time.Duration) Option {
	return func(p *Provider) { p.debounce = d }
}

// NewProvider loads content from path, or the embedded default when path is
// empty.
func NewProvider(path string, opts ...Option) (*Provider, error) {
	p := &Provider{
		path:     path,
		logger:   log.Default(),
		debounce: 200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(p)
	}

	if path == "" {
		p.doc = Default()
		return p, nil
	}
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	p.path = filepath.Clean(path)
	p.doc = doc
	return p, nil
}

// Current returns the active document.
func (p *Provider) Current() *Document {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.doc
}

// OnChange registers fn to run after every successful reload.
func (p *Provider) OnChange(fn func(*Document)) {
	p.mu.Lock()
	p.onChange = append(p.onChange, fn)
	p.mu.Unlock()
}

// Reload re-reads the content file. On failure the previous document stays
// active and the error is returned.
func (p *Provider) Reload() error {
	if p.path == "" {
		return nil
	}
	doc, err := Load(p.path)
	if err != nil {
		return err
	}

	p.mu.Lock()
	prev := p.doc
	p.doc = doc
	hooks := append([]func(*Document){}, p.onChange...)
	p.mu.Unlock()

	if prev != nil && prev.Version == doc.Version {
		return nil
	}
	p.logger.Info("content reloaded", "source", doc.Source, "version", doc.Version)
	for _, fn := range hooks {
		fn(doc)
	}
	return nil
}

// Watch reloads the content file whenever it changes, until ctx is done.
// The parent directory is watched so editors that replace the file on save
// are handled. Watch returns immediately when the provider serves embedded
// content.
func (p *Provider) Watch(ctx context.Context) error {
	if p.path == "" {
		<-ctx.Done()
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create content watcher")
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(p.path)); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidContent, err, "watch %s", p.path)
	}
	p.logger.Debug("watching content", "path", p.path)

	timer := time.NewTimer(p.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != p.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(p.debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			p.logger.Warn("content watcher error", "err", err)

		case <-timer.C:
			if err := p.Reload(); err != nil {
				p.logger.Error("content reload failed, keeping previous version", "err", err)
			}
			// Renames detach the watch on some platforms.
			_ = w.Add(filepath.Dir(p.path))
		}
	}
}
