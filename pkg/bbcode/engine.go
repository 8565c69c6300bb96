// Package bbcode renders BBCode markup into HTML that is safe to embed in a page.
//
// Raw HTML in the input is always escaped. Tags are taken from a registry of
// definitions; anything that is not a registered tag stays literal text.
// Structural problems (unmatched tags, disallowed nesting) are reported as
// diagnostics and never stop rendering.
//
// Basic usage:
//
//	engine, err := bbcode.New()
//	res, err := engine.Process(bbcode.Config{Text: "[b]hello[/b]"})
//	// res.HTML == `<span class="xbbcode-b">hello</span>`
package bbcode

import (
	"log/slog"
	"strings"
)

// MisalignedMessage is the diagnostic added when tag tokens without a partner
// remain in the output.
const MisalignedMessage = "Some tags appear to be misaligned."

// Config is the input of a single Process call.
type Config struct {
	// Text is the raw BBCode document.
	Text string
	// RemoveMisalignedTags drops unmatched tag tokens instead of leaving them
	// visible in the output.
	RemoveMisalignedTags bool
	// KeepNewlines disables the conversion of line breaks into <br/>.
	KeepNewlines bool
}

// Result is the output of a Process call.
type Result struct {
	HTML        string   `json:"html"`
	HasError    bool     `json:"has_error"`
	Diagnostics []string `json:"diagnostics"`
}

// Engine renders BBCode with a fixed set of tags. It is immutable once built
// and safe for concurrent use.
type Engine struct {
	registry *Registry
	table    *tagTable
	logger   *slog.Logger
	maxDepth int
	maxTags  int
}

// New builds an Engine from the default tags, modified by opts.
func New(opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	reg := o.registry.Clone()
	for _, edit := range o.edits {
		if err := edit(reg); err != nil {
			return nil, registryError(err)
		}
	}

	table, err := compile(reg)
	if err != nil {
		return nil, registryError(err)
	}

	return &Engine{
		registry: reg,
		table:    table,
		logger:   o.logger,
		maxDepth: o.maxDepth,
		maxTags:  o.maxTags,
	}, nil
}

// Process renders cfg.Text. Structural and constraint problems are reported
// in the result; the only error is ErrLimitExceeded.
func (e *Engine) Process(cfg Config) (*Result, error) {
	tokens, err := e.table.tokenize(cfg.Text, e.maxTags)
	if err != nil {
		return nil, err
	}

	root, strays, err := e.parseTree(tokens)
	if err != nil {
		return nil, err
	}

	diags := e.checkConstraints(root, []string{})

	var sb strings.Builder
	sb.Grow(len(cfg.Text))
	e.renderNodes(&sb, root.children, cfg.RemoveMisalignedTags)

	if strays > 0 {
		diags = append(diags, MisalignedMessage)
	}

	html := restoreBrackets(sb.String())
	if !cfg.KeepNewlines {
		html = newlinesToBreaks(html)
	}

	return &Result{
		HTML:        html,
		HasError:    len(diags) > 0,
		Diagnostics: diags,
	}, nil
}

// Render is Process with default settings, returning only the HTML.
func (e *Engine) Render(text string) (string, error) {
	res, err := e.Process(Config{Text: text})
	if err != nil {
		return "", err
	}
	return res.HTML, nil
}

// Registry returns a copy of the registry the engine was built from.
func (e *Engine) Registry() *Registry {
	return e.registry.Clone()
}
