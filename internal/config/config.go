// Package config loads problem sets for the rootbench CLI from TOML or YAML
// files and turns them into rootbench.Problem values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/alexshd/rootbench"
)

// Format is a problem-set file format.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Fallbacks when neither the problem nor the defaults table sets a value.
const (
	DefaultTolerance = 1e-6
	DefaultMaxIter   = 100
)

// ProblemSet is the decoded file.
//
// TOML:
//
//	[defaults]
//	tolerance = 1e-8
//
//	[[problem]]
//	name = "trig-newton"
//	function = "trig"
//	method = "fixed-point"
//	functional = "newton"
//	x0 = -2.0
//
// YAML uses the same keys with a "problems" list.
type ProblemSet struct {
	Defaults Defaults     `toml:"defaults" yaml:"defaults"`
	Problems []ProblemDef `toml:"problem" yaml:"problems"`
}

// Defaults apply to every problem that leaves the field unset.
type Defaults struct {
	Tolerance float64 `toml:"tolerance" yaml:"tolerance"`
	MaxIter   int     `toml:"max_iter" yaml:"max_iter"`
	Workers   int     `toml:"workers" yaml:"workers"`
}

// ProblemDef is one problem as written in the file. Functions are named and
// resolved against a registry.
type ProblemDef struct {
	Name       string  `toml:"name" yaml:"name"`
	Function   string  `toml:"function" yaml:"function"`
	Method     string  `toml:"method" yaml:"method"`
	Functional string  `toml:"functional" yaml:"functional"`
	K          float64 `toml:"k" yaml:"k"`
	A          float64 `toml:"a" yaml:"a"`
	B          float64 `toml:"b" yaml:"b"`
	X0         float64 `toml:"x0" yaml:"x0"`
	Tolerance  float64 `toml:"tolerance" yaml:"tolerance"`
	MaxIter    int     `toml:"max_iter" yaml:"max_iter"`
}

// Registry resolves function names.
type Registry interface {
	Lookup(name string) (rootbench.Entry, error)
}

// Load reads a problem set, choosing the format from the file extension.
func Load(path string) (*ProblemSet, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read problem set: %w", err)
	}

	set, err := Parse(content, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// DetectFormat maps .yaml and .yml to YAML and everything else to TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse decodes content in the given format.
func Parse(content []byte, format Format) (*ProblemSet, error) {
	var set ProblemSet

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(content), &set)
		if err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown keys: %v", undecoded)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &set); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	if len(set.Problems) == 0 {
		return nil, fmt.Errorf("%w: no problems defined", rootbench.ErrInvalidProblem)
	}
	return &set, nil
}

// Resolve converts every definition into a rootbench.Problem, filling unset fields
// from the defaults. The first invalid problem aborts with its index and name.
func (s *ProblemSet) Resolve(reg Registry) ([]rootbench.Problem, error) {
	problems := make([]rootbench.Problem, 0, len(s.Problems))
	seen := make(map[string]bool, len(s.Problems))

	for i, def := range s.Problems {
		p, err := s.resolve(def, reg)
		if err != nil {
			return nil, fmt.Errorf("problem %d (%s): %w", i+1, def.Name, err)
		}
		if p.Name == "" {
			p.Name = fmt.Sprintf("%s-%d", def.Function, i+1)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("problem %d: %w: duplicate name %q", i+1, rootbench.ErrInvalidProblem, p.Name)
		}
		seen[p.Name] = true
		problems = append(problems, p)
	}

	return problems, nil
}

func (s *ProblemSet) resolve(def ProblemDef, reg Registry) (rootbench.Problem, error) {
	entry, err := reg.Lookup(def.Function)
	if err != nil {
		return rootbench.Problem{}, err
	}

	p := rootbench.Problem{
		Name:       def.Name,
		Method:     rootbench.Method(def.Method),
		F:          entry.F,
		DF:         entry.DF,
		Functional: rootbench.FunctionalKind(def.Functional),
		K:          def.K,
		A:          def.A,
		B:          def.B,
		X0:         def.X0,
		Tolerance:  firstPositive(def.Tolerance, s.Defaults.Tolerance, DefaultTolerance),
		MaxIter:    int(firstPositive(float64(def.MaxIter), float64(s.Defaults.MaxIter), DefaultMaxIter)),
	}
	if p.Method == rootbench.MethodFixedPoint && p.Functional == "" {
		p.Functional = rootbench.FunctionalIdentity
	}

	if err := p.Validate(); err != nil {
		return rootbench.Problem{}, err
	}
	return p, nil
}

func firstPositive(values ...float64) float64 {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
