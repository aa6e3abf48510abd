package probe

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/bft-labs/sizeconv/internal/domain"
	"github.com/bft-labs/sizeconv/pkg/resolution"
)

// DefaultDRMDir is where Linux exposes connected display connectors.
const DefaultDRMDir = "/sys/class/drm"

var edidHeader = []byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x00}

// EDID measures the first connected display by reading its EDID block from
// sysfs. Pixels per inch come from the preferred timing's horizontal
// resolution and the reported physical image width.
type EDID struct {
	Fs          afero.Fs
	Dir         string
	DeviceScale float64
}

// NewEDID returns an EDID probe over the host file system.
func NewEDID(dir string, deviceScale float64) *EDID {
	if dir == "" {
		dir = DefaultDRMDir
	}
	return &EDID{Fs: afero.NewOsFs(), Dir: dir, DeviceScale: deviceScale}
}

// Measure scans connectors in name order and uses the first connected one
// with a parseable EDID.
func (e *EDID) Measure() (resolution.Measurement, error) {
	matches, err := afero.Glob(e.Fs, filepath.Join(e.Dir, "*", "edid"))
	if err != nil {
		return resolution.Measurement{}, fmt.Errorf("scan %s: %w", e.Dir, err)
	}
	sort.Strings(matches)

	var lastErr error
	for _, edidPath := range matches {
		connector := filepath.Dir(edidPath)
		status, err := afero.ReadFile(e.Fs, filepath.Join(connector, "status"))
		if err != nil || strings.TrimSpace(string(status)) != "connected" {
			continue
		}
		raw, err := afero.ReadFile(e.Fs, edidPath)
		if err != nil {
			lastErr = err
			continue
		}
		ppi, err := ParsePixelsPerInch(raw)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", filepath.Base(connector), err)
			continue
		}
		return resolution.Measurement{PixelsPerInch: ppi, DeviceScale: scaleOrOne(e.DeviceScale)}, nil
	}

	if lastErr != nil {
		return resolution.Measurement{}, lastErr
	}
	return resolution.Measurement{}, fmt.Errorf("%w: no connected display under %s", domain.ErrDetectionFailed, e.Dir)
}

// ParsePixelsPerInch extracts the horizontal pixel density from a base EDID
// block. The first detailed timing descriptor supplies both the active
// pixel count and the image width in millimeters; if it carries no width the
// coarse centimeter width from the basic display parameters is used.
func ParsePixelsPerInch(raw []byte) (float64, error) {
	if len(raw) < 128 {
		return 0, fmt.Errorf("%w: edid block is %d bytes", domain.ErrDetectionFailed, len(raw))
	}
	if !bytes.Equal(raw[:8], edidHeader) {
		return 0, fmt.Errorf("%w: bad edid header", domain.ErrDetectionFailed)
	}

	dtd := raw[54:72]
	if dtd[0] == 0 && dtd[1] == 0 {
		return 0, fmt.Errorf("%w: no detailed timing descriptor", domain.ErrDetectionFailed)
	}
	hActive := int(dtd[2]) | int(dtd[4]>>4)<<8
	widthMM := float64(int(dtd[12]) | int(dtd[14]>>4)<<8)
	if widthMM == 0 {
		widthMM = float64(raw[21]) * 10
	}
	if hActive == 0 || widthMM == 0 {
		return 0, fmt.Errorf("%w: edid reports no physical size", domain.ErrDetectionFailed)
	}
	return float64(hActive) / (widthMM / domain.MillimetersPerInch), nil
}
