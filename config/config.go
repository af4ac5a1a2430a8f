// YAML run configuration for the billiards command.
//
// A file describes a table, an orbit to run on it and a preimage computation.
// Every section is optional; missing fields keep their defaults.
//
//	table:
//	  geometry: hyperbolic
//	  n: 4
//	  tiling: 5
//	orbit:
//	  generator: area
//	  iterations: 500
//	  start:
//	    point: {x: 0.6, y: 0.1}
//	preimages:
//	  iterations: 20
//	  tuning:
//	    far_radius: 50
package config

import (
	"io"
	"os"

	"github.com/osuushi/billiards"
	"github.com/osuushi/billiards/geom"
	"github.com/osuushi/billiards/orbit"
	"github.com/osuushi/billiards/preimage"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Table     billiards.Params `yaml:"table"`
	Orbit     Orbit            `yaml:"orbit"`
	Preimages Preimages        `yaml:"preimages"`
}

type Orbit struct {
	Generator  string          `yaml:"generator"`
	Duality    string          `yaml:"duality"`
	Iterations int             `yaml:"iterations"`
	Start      billiards.Start `yaml:"start"`
}

type Preimages struct {
	Generator  string          `yaml:"generator"`
	Iterations int             `yaml:"iterations"`
	Interval   int             `yaml:"interval"`
	Tuning     preimage.Config `yaml:"tuning"`
}

func Default() Config {
	return Config{
		Table: billiards.Params{
			Geometry: billiards.Euclidean,
			Kind:     billiards.PolygonKind,
			N:        5,
			Radius:   1,
			P:        2,
			XScale:   1,
		},
		Orbit: Orbit{
			Generator:  "area",
			Duality:    "outer",
			Iterations: 100,
			Start: billiards.Start{
				Point: geom.Point{X: 1.5, Y: 0.2},
				Time:  0.05,
				Angle: 1,
			},
		},
		Preimages: Preimages{
			Generator:  "area",
			Iterations: 10,
			Interval:   1,
			Tuning:     preimage.DefaultConfig(),
		},
	}
}

// Load reads a configuration on top of the defaults. Unknown keys are errors.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "failed to parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to open config %s", path)
	}
	defer f.Close()
	cfg, err := Load(f)
	return cfg, errors.Wrapf(err, "in %s", path)
}

func (c Config) Validate() error {
	if _, err := billiards.ParseGeometry(string(c.Table.Geometry)); err != nil {
		return err
	}
	if _, _, err := c.OrbitMaps(); err != nil {
		return err
	}
	if _, err := orbit.ParseGenerator(c.Preimages.Generator); err != nil {
		return errors.Wrap(err, "preimages")
	}
	if c.Orbit.Iterations < 0 || c.Preimages.Iterations < 0 {
		return errors.New("iterations must not be negative")
	}
	return c.Preimages.Tuning.WithDefaults().Validate()
}

// The generator and duality of the orbit section.
func (c Config) OrbitMaps() (orbit.Generator, orbit.Duality, error) {
	gen, err := orbit.ParseGenerator(c.Orbit.Generator)
	if err != nil {
		return 0, 0, errors.Wrap(err, "orbit")
	}
	duality, err := orbit.ParseDuality(c.Orbit.Duality)
	if err != nil {
		return 0, 0, errors.Wrap(err, "orbit")
	}
	return gen, duality, nil
}

func (c Config) PreimageRequest() (billiards.PreimageRequest, error) {
	gen, err := orbit.ParseGenerator(c.Preimages.Generator)
	if err != nil {
		return billiards.PreimageRequest{}, errors.Wrap(err, "preimages")
	}
	return billiards.PreimageRequest{
		Generator:  gen,
		Iterations: c.Preimages.Iterations,
		Interval:   c.Preimages.Interval,
		Config:     c.Preimages.Tuning,
	}, nil
}
