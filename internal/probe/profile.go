package probe

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bft-labs/sizeconv/internal/domain"
	"github.com/bft-labs/sizeconv/pkg/resolution"
)

// ProfileFile is the TOML layout of a display profile:
//
//	pixels_per_inch = 109
//	device_scale = 2.0
type ProfileFile struct {
	PixelsPerInch float64 `toml:"pixels_per_inch"`
	DeviceScale   float64 `toml:"device_scale"`
}

// Profile reads the display measurement from a TOML file on every Measure.
type Profile struct {
	Path string
}

// Measure loads the profile. A missing device_scale means 1.
func (p Profile) Measure() (resolution.Measurement, error) {
	if p.Path == "" {
		return resolution.Measurement{}, fmt.Errorf("%w: no display profile path", domain.ErrDetectionFailed)
	}
	b, err := os.ReadFile(p.Path)
	if err != nil {
		return resolution.Measurement{}, fmt.Errorf("read display profile: %w", err)
	}

	var pf ProfileFile
	if err := toml.Unmarshal(b, &pf); err != nil {
		return resolution.Measurement{}, fmt.Errorf("parse display profile %s: %w", p.Path, err)
	}
	return resolution.Measurement{PixelsPerInch: pf.PixelsPerInch, DeviceScale: scaleOrOne(pf.DeviceScale)}, nil
}

// WriteProfile stores pf at path, replacing any existing file.
func WriteProfile(path string, pf ProfileFile) error {
	b, err := toml.Marshal(pf)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
