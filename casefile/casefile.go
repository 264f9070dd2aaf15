// Package casefile reads and writes benchmark cases as YAML.
//
// A file holds two lists:
//
//	knapsack:
//	  - name: small
//	    capacity: 10
//	    items:
//	      - {id: 1, weight: 6, value: 50}
//	tsp:
//	  - name: square
//	    symmetric: true
//	    matrix:
//	      - [0, 1, .inf]
//	      - ...
//
// A missing edge is written as .inf. Omitting capacity or items makes the
// case fail to build with knapsack.ErrNoCapacity or knapsack.ErrNoItems.
package casefile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/boundsearch/knapsack"
	"github.com/katalvlaran/boundsearch/matrix"
	"github.com/katalvlaran/boundsearch/tsp"
)

// Items is a knapsack item list. A nil list means the key was omitted and is
// left out on write; an empty non-nil list is written as "items: []".
type Items []knapsack.Item

// IsZero lets yaml omit only a nil list.
func (it Items) IsZero() bool { return it == nil }

// KnapsackCase is one named knapsack instance.
type KnapsackCase struct {
	Name     string   `yaml:"name"`
	Capacity *float64 `yaml:"capacity,omitempty"`
	Items    Items    `yaml:"items,omitempty"`
}

// TSPCase is one named distance matrix.
type TSPCase struct {
	Name      string      `yaml:"name"`
	Start     int         `yaml:"start,omitempty"`
	Symmetric bool        `yaml:"symmetric,omitempty"`
	Matrix    [][]float64 `yaml:"matrix"`
}

// File is the top-level document.
type File struct {
	Knapsack []KnapsackCase `yaml:"knapsack,omitempty"`
	TSP      []TSPCase      `yaml:"tsp,omitempty"`
}

// Len is the total number of cases.
func (f File) Len() int { return len(f.Knapsack) + len(f.TSP) }

// Load decodes one YAML document from r. Unknown keys are rejected; an
// empty input yields an empty File.
func Load(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("casefile: decode: %w", err)
	}

	return f, nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("casefile: %w", err)
	}
	defer fh.Close()

	f, err := Load(fh)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Write encodes f to w as YAML with two-space indentation.
func Write(w io.Writer, f File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("casefile: encode: %w", err)
	}

	return enc.Close()
}

// Instance builds the knapsack instance, naming the case in any error.
func (c KnapsackCase) Instance() (*knapsack.Instance, error) {
	var opts []knapsack.InstanceOption
	if c.Items != nil {
		opts = append(opts, knapsack.WithItems(c.Items))
	}
	if c.Capacity != nil {
		opts = append(opts, knapsack.WithCapacity(*c.Capacity))
	}
	inst, err := knapsack.NewInstance(opts...)
	if err != nil {
		return nil, fmt.Errorf("case %q: %w", c.Name, err)
	}

	return inst, nil
}

// Instance builds the TSP instance, naming the case in any error.
func (c TSPCase) Instance() (*tsp.Instance, error) {
	dist, err := matrix.NewDenseFromRows(c.Matrix)
	if err != nil {
		return nil, fmt.Errorf("case %q: %w", c.Name, err)
	}
	inst, err := tsp.NewInstance(dist, tsp.Options{StartVertex: c.Start, Symmetric: c.Symmetric})
	if err != nil {
		return nil, fmt.Errorf("case %q: %w", c.Name, err)
	}

	return inst, nil
}
