package preset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrInvalidPreset indicates a YAML definition that fails validation or
// cannot be built into a grid.
var ErrInvalidPreset = errors.New("preset: invalid definition")

var validate = validator.New()

// File is the YAML document shape read by LoadYAML.
type File struct {
	Presets []Definition `yaml:"presets" validate:"required,min=1,dive"`
}

// Definition describes one preset. Start defaults to (0,0) and Goal to the
// bottom-right corner.
type Definition struct {
	Name      string         `yaml:"name" validate:"required"`
	Rows      int            `yaml:"rows" validate:"required,min=1,max=1024"`
	Cols      int            `yaml:"cols" validate:"required,min=1,max=1024"`
	Start     []int          `yaml:"start" validate:"omitempty,len=2,dive,min=0"`
	Goal      []int          `yaml:"goal" validate:"omitempty,len=2,dive,min=0"`
	Obstacles [][]int        `yaml:"obstacles" validate:"dive,len=2,dive,min=0"`
	Weights   []WeightedCell `yaml:"weights" validate:"dive"`
}

// WeightedCell assigns a traversal weight to one cell. Weights below
// grid.MinWeight are rejected so presets stay admissible.
type WeightedCell struct {
	At     []int   `yaml:"at" validate:"required,len=2,dive,min=0"`
	Weight float64 `yaml:"weight" validate:"gte=1"`
}

func pos(rc []int) grid.Position { return grid.Pos(rc[0], rc[1]) }

// Grid builds the described grid. Cells outside the grid are rejected.
func (d Definition) Grid() (*grid.Grid, error) {
	if err := validate.Struct(d); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPreset, d.Name, err)
	}

	inside := func(rc []int) bool { return rc[0] < d.Rows && rc[1] < d.Cols }
	var opts []grid.Option
	if d.Start != nil {
		if !inside(d.Start) {
			return nil, fmt.Errorf("%w: %q: start %v outside %d×%d", ErrInvalidPreset, d.Name, d.Start, d.Rows, d.Cols)
		}
		opts = append(opts, grid.WithStart(pos(d.Start)))
	}
	if d.Goal != nil {
		if !inside(d.Goal) {
			return nil, fmt.Errorf("%w: %q: goal %v outside %d×%d", ErrInvalidPreset, d.Name, d.Goal, d.Rows, d.Cols)
		}
		opts = append(opts, grid.WithGoal(pos(d.Goal)))
	}

	obstacles := make([]grid.Position, 0, len(d.Obstacles))
	for _, rc := range d.Obstacles {
		if !inside(rc) {
			return nil, fmt.Errorf("%w: %q: obstacle %v outside %d×%d", ErrInvalidPreset, d.Name, rc, d.Rows, d.Cols)
		}
		obstacles = append(obstacles, pos(rc))
	}
	weights := make(map[grid.Position]float64, len(d.Weights))
	for _, w := range d.Weights {
		if !inside(w.At) {
			return nil, fmt.Errorf("%w: %q: weight %v outside %d×%d", ErrInvalidPreset, d.Name, w.At, d.Rows, d.Cols)
		}
		weights[pos(w.At)] = w.Weight
	}
	opts = append(opts, grid.WithObstacles(obstacles...), grid.WithWeights(weights))

	g, err := grid.New(d.Rows, d.Cols, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPreset, d.Name, err)
	}
	if !g.Admissible() {
		return nil, fmt.Errorf("%w: %q: walkable weight %v below %v", ErrInvalidPreset, d.Name, g.MinWalkableWeight(), grid.MinWeight)
	}
	return g, nil
}

// LoadYAML decodes a preset file from rd and registers every definition.
// The whole file is validated and built before anything is registered.
func (r *Registry) LoadYAML(rd io.Reader) error {
	var f File
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrInvalidPreset, err)
	}
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPreset, err)
	}

	grids := make([]*grid.Grid, len(f.Presets))
	seen := make(map[string]bool, len(f.Presets))
	for i, d := range f.Presets {
		if seen[d.Name] || r.Has(d.Name) {
			return fmt.Errorf("%w: %q", ErrDuplicatePreset, d.Name)
		}
		seen[d.Name] = true
		g, err := d.Grid()
		if err != nil {
			return err
		}
		grids[i] = g
	}
	for i, d := range f.Presets {
		if err := r.Register(d.Name, grids[i]); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile reads presets from a YAML file at path.
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("preset: open %s: %w", path, err)
	}
	defer f.Close()
	return r.LoadYAML(f)
}
