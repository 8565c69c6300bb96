package bbcode

import (
	"io"
	"log/slog"
)

// Default processing limits.
const (
	DefaultMaxDepth = 256
	DefaultMaxTags  = 100000
)

// Option configures an Engine built by New.
type Option func(*options)

type options struct {
	registry *Registry
	edits    []func(*Registry) error
	logger   *slog.Logger
	maxDepth int
	maxTags  int
}

func defaultOptions() *options {
	return &options{
		registry: DefaultRegistry(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxDepth: DefaultMaxDepth,
		maxTags:  DefaultMaxTags,
	}
}

// WithRegistry replaces the default tag set with r.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithTags registers additional tags. A tag named like an existing one
// overrides it.
func WithTags(tags ...*Tag) Option {
	return func(o *options) {
		o.edits = append(o.edits, func(r *Registry) error {
			for _, t := range tags {
				r.Register(t)
			}
			return nil
		})
	}
}

// WithAlias makes alias render exactly like target.
func WithAlias(alias, target string) Option {
	return func(o *options) {
		o.edits = append(o.edits, func(r *Registry) error {
			return r.Alias(alias, target)
		})
	}
}

// WithLogger sets the logger used for debug output about stray tags and
// constraint violations.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxDepth bounds how deeply tags may nest. Values below 1 keep the default.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// WithMaxTags bounds how many open tags a document may contain. Values below
// 1 keep the default.
func WithMaxTags(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxTags = n
		}
	}
}
