// Package engineconfig loads and builds the VC builder's parameters. A
// Parameters value is ordinary data; Builder gives callers a fluent With*
// chaining style, and Load reads it from YAML the way
// core/program.go reads YAMLCoreProgram.
//
// Grounded on config/config.go's DeviceBuilder (value-receiver With*
// methods returning a new builder) and core/program.go's use of
// gopkg.in/yaml.v3 to parse device/program YAML.
package engineconfig

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Parameters are the recognised build_* options.
type Parameters struct {
	// AndOverEdge allows the AND rule to pick an edge atom as the middle
	// group z.
	AndOverEdge bool `yaml:"and_over_edge"`
	// UsePatterns enables loading of pattern-sourced base VCs.
	UsePatterns bool `yaml:"use_patterns"`
	// UseNonEdgePatterns enables patterns whose endpoints are not edges.
	UseNonEdgePatterns bool `yaml:"use_non_edge_patterns"`
	// IncrementalBuilds enables merge-shrink-upgrade; when false,
	// BuildIncremental rebuilds from scratch instead.
	IncrementalBuilds bool `yaml:"incremental_builds"`
	// Threats enables the key-indexed threats extension (see DESIGN.md
	// for the resolved semantics).
	Threats bool `yaml:"threats"`
	// MaxOrs bounds the subset size the OR rule enumerates.
	MaxOrs int `yaml:"max_ors"`
	// AbortOnWinningConnection stops the fixed point as soon as a FULL
	// exists between the two friendly edges.
	AbortOnWinningConnection bool `yaml:"abort_on_winning_connection"`
	// SoftLimit bounds the number of carriers retained per list (0 =
	// unlimited).
	SoftLimit int `yaml:"soft_limit"`
}

// Default returns the recommended defaults:
// max_ors = 4, everything else off except the settings needed for a
// correct from-scratch build (and_over_edge, both pattern switches and
// incremental builds enabled).
func Default() Parameters {
	return Parameters{
		AndOverEdge:              true,
		UsePatterns:              true,
		UseNonEdgePatterns:       true,
		IncrementalBuilds:        true,
		Threats:                  false,
		MaxOrs:                   4,
		AbortOnWinningConnection: false,
		SoftLimit:                0,
	}
}

// Builder mirrors config.DeviceBuilder's fluent chaining style: each With*
// method takes and returns a value, so a zero Builder{} or NewBuilder can
// be chained without aliasing a shared pointer.
type Builder struct {
	p Parameters
}

// NewBuilder starts a Builder from Default.
func NewBuilder() Builder {
	return Builder{p: Default()}
}

// WithAndOverEdge sets AndOverEdge.
func (b Builder) WithAndOverEdge(v bool) Builder { b.p.AndOverEdge = v; return b }

// WithUsePatterns sets UsePatterns.
func (b Builder) WithUsePatterns(v bool) Builder { b.p.UsePatterns = v; return b }

// WithUseNonEdgePatterns sets UseNonEdgePatterns.
func (b Builder) WithUseNonEdgePatterns(v bool) Builder { b.p.UseNonEdgePatterns = v; return b }

// WithIncrementalBuilds sets IncrementalBuilds.
func (b Builder) WithIncrementalBuilds(v bool) Builder { b.p.IncrementalBuilds = v; return b }

// WithThreats sets Threats.
func (b Builder) WithThreats(v bool) Builder { b.p.Threats = v; return b }

// WithMaxOrs sets MaxOrs.
func (b Builder) WithMaxOrs(n int) Builder { b.p.MaxOrs = n; return b }

// WithAbortOnWinningConnection sets AbortOnWinningConnection.
func (b Builder) WithAbortOnWinningConnection(v bool) Builder {
	b.p.AbortOnWinningConnection = v
	return b
}

// WithSoftLimit sets SoftLimit.
func (b Builder) WithSoftLimit(n int) Builder { b.p.SoftLimit = n; return b }

// Build returns the assembled Parameters.
func (b Builder) Build() Parameters { return b.p }

// Load decodes Parameters from YAML, starting from Default so a document
// that omits a field keeps its default rather than zeroing it out.
func Load(r io.Reader) (Parameters, error) {
	p := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&p); err != nil && err != io.EOF {
		return Parameters{}, err
	}
	return p, nil
}
