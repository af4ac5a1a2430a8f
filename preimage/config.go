package preimage

import "github.com/pkg/errors"

// Thresholds for preimage propagation. Zero fields take their defaults.
type Config struct {
	// Number of pieces each seed ray is cut into by the pointwise stepper.
	Pieces int `yaml:"pieces"`
	// Length of the discretized seed rays, and the radius beyond which
	// pointwise pieces are dropped.
	Length float64 `yaml:"length"`
	// Pieces of polygon preimages farther than this from the origin are dropped.
	FarRadius float64 `yaml:"far_radius"`
	// Finite polygon pieces shorter than this are dropped.
	TinyLength float64 `yaml:"tiny_length"`
	// Slices closer together than this are merged.
	SliceGap float64 `yaml:"slice_gap"`
	// Pointwise pieces are pulled back this far from each slicing ray.
	Buffer float64 `yaml:"buffer"`

	// Pointwise pieces are dropped below MinFactor·dl and above MaxFactor·dl,
	// and split into pieces of about dl above SplitFactor·dl, where dl is
	// Length/Pieces.
	MinFactor   float64 `yaml:"min_factor"`
	SplitFactor float64 `yaml:"split_factor"`
	MaxFactor   float64 `yaml:"max_factor"`
}

func DefaultConfig() Config {
	return Config{
		Pieces:      2000,
		Length:      20,
		FarRadius:   100,
		TinyLength:  1e-4,
		SliceGap:    1e-7,
		Buffer:      1e-9,
		MinFactor:   0.2,
		SplitFactor: 5,
		MaxFactor:   10,
	}
}

func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.Pieces == 0 {
		c.Pieces = d.Pieces
	}
	if c.Length == 0 {
		c.Length = d.Length
	}
	if c.FarRadius == 0 {
		c.FarRadius = d.FarRadius
	}
	if c.TinyLength == 0 {
		c.TinyLength = d.TinyLength
	}
	if c.SliceGap == 0 {
		c.SliceGap = d.SliceGap
	}
	if c.Buffer == 0 {
		c.Buffer = d.Buffer
	}
	if c.MinFactor == 0 {
		c.MinFactor = d.MinFactor
	}
	if c.SplitFactor == 0 {
		c.SplitFactor = d.SplitFactor
	}
	if c.MaxFactor == 0 {
		c.MaxFactor = d.MaxFactor
	}
	return c
}

func (c Config) Validate() error {
	switch {
	case c.Pieces < 2:
		return errors.Errorf("pieces must be at least 2, got %d", c.Pieces)
	case !(c.Length > 0):
		return errors.Errorf("length must be positive, got %v", c.Length)
	case !(c.FarRadius > 0):
		return errors.Errorf("far radius must be positive, got %v", c.FarRadius)
	case c.TinyLength < 0 || c.SliceGap < 0 || c.Buffer < 0:
		return errors.New("tiny length, slice gap and buffer must not be negative")
	case !(c.MinFactor < c.SplitFactor && c.SplitFactor < c.MaxFactor):
		return errors.Errorf("need min factor < split factor < max factor, got %v, %v, %v",
			c.MinFactor, c.SplitFactor, c.MaxFactor)
	}
	return nil
}

// Length of one discretized seed piece.
func (c Config) dl() float64 {
	return c.Length / float64(c.Pieces)
}
