package probe

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/sizeconv/internal/domain"
	"github.com/bft-labs/sizeconv/pkg/resolution"
)

// makeEDID builds a minimal base block with one detailed timing descriptor.
func makeEDID(hActive, widthMM, widthCM int) []byte {
	raw := make([]byte, 128)
	copy(raw, edidHeader)
	raw[21] = byte(widthCM)
	dtd := raw[54:72]
	dtd[0], dtd[1] = 0x02, 0x3a // pixel clock, any non-zero value
	dtd[2] = byte(hActive & 0xff)
	dtd[4] = byte((hActive >> 8) << 4)
	dtd[12] = byte(widthMM & 0xff)
	dtd[14] = byte((widthMM >> 8) << 4)
	return raw
}

func TestStatic(t *testing.T) {
	m, err := Static{PixelsPerInch: 110}.Measure()
	require.NoError(t, err)
	assert.Equal(t, resolution.Measurement{PixelsPerInch: 110, DeviceScale: 1}, m)

	m, err = Static{PixelsPerInch: 96, DeviceScale: 2}.Measure()
	require.NoError(t, err)
	assert.Equal(t, 192.0, m.DPI())

	_, err = Static{}.Measure()
	assert.ErrorIs(t, err, domain.ErrDetectionFailed)
}

func TestProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "display.toml")
	require.NoError(t, WriteProfile(path, ProfileFile{PixelsPerInch: 109, DeviceScale: 2}))

	m, err := Profile{Path: path}.Measure()
	require.NoError(t, err)
	assert.Equal(t, 218.0, m.DPI())
}

func TestProfile_DefaultScale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "display.toml")
	require.NoError(t, os.WriteFile(path, []byte("pixels_per_inch = 120\n"), 0o644))

	m, err := Profile{Path: path}.Measure()
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.DeviceScale)
}

func TestProfile_Errors(t *testing.T) {
	_, err := Profile{}.Measure()
	assert.ErrorIs(t, err, domain.ErrDetectionFailed)

	_, err = Profile{Path: filepath.Join(t.TempDir(), "missing.toml")}.Measure()
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("pixels_per_inch = [\n"), 0o644))
	_, err = Profile{Path: bad}.Measure()
	assert.Error(t, err)
}

func TestParsePixelsPerInch(t *testing.T) {
	tests := []struct {
		name    string
		raw     []byte
		want    float64
		wantErr bool
	}{
		{name: "1920 over 508mm", raw: makeEDID(1920, 508, 51), want: 96},
		{name: "3840 over 600mm", raw: makeEDID(3840, 600, 60), want: 3840 / (600 / 25.4)},
		{name: "falls back to cm width", raw: makeEDID(1280, 0, 34), want: 1280 / (340 / 25.4)},
		{name: "projector without size", raw: makeEDID(1920, 0, 0), wantErr: true},
		{name: "short block", raw: make([]byte, 64), wantErr: true},
		{name: "bad header", raw: make([]byte, 128), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePixelsPerInch(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrDetectionFailed)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParsePixelsPerInch_NoTiming(t *testing.T) {
	raw := makeEDID(1920, 508, 51)
	raw[54], raw[55] = 0, 0
	_, err := ParsePixelsPerInch(raw)
	assert.ErrorIs(t, err, domain.ErrDetectionFailed)
}

func TestEDID_Measure(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := "/sys/class/drm"
	write := func(connector, status string, edid []byte) {
		require.NoError(t, fs.MkdirAll(filepath.Join(dir, connector), 0o755))
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, connector, "status"), []byte(status+"\n"), 0o644))
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, connector, "edid"), edid, 0o644))
	}
	write("card0-DP-1", "disconnected", nil)
	write("card0-HDMI-A-1", "connected", makeEDID(1920, 508, 51))

	e := &EDID{Fs: fs, Dir: dir, DeviceScale: 1.5}
	m, err := e.Measure()
	require.NoError(t, err)
	assert.InDelta(t, 96, m.PixelsPerInch, 1e-9)
	assert.Equal(t, 1.5, m.DeviceScale)
}

func TestEDID_NoDisplay(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/sys/class/drm", 0o755))

	_, err := (&EDID{Fs: fs, Dir: "/sys/class/drm"}).Measure()
	assert.ErrorIs(t, err, domain.ErrDetectionFailed)
}

func TestEDID_CorruptBlock(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/drm/card0-eDP-1", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/drm/card0-eDP-1/status", []byte("connected"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/drm/card0-eDP-1/edid", []byte{1, 2, 3}, 0o644))

	_, err := (&EDID{Fs: fs, Dir: "/drm"}).Measure()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card0-eDP-1")
}

func TestChain(t *testing.T) {
	failing := resolution.ProbeFunc(func() (resolution.Measurement, error) {
		return resolution.Measurement{}, errors.New("unavailable")
	})
	zero := Static{PixelsPerInch: 96, DeviceScale: -1}
	good := Static{PixelsPerInch: 120}

	m, err := Chain{failing, zero, good}.Measure()
	require.NoError(t, err)
	assert.Equal(t, 120.0, m.DPI())

	_, err = Chain{failing, zero}.Measure()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unavailable")
	assert.Contains(t, err.Error(), "non-positive dpi")

	_, err = Chain{}.Measure()
	assert.ErrorIs(t, err, domain.ErrDetectionFailed)
}

func TestChain_WithDetector(t *testing.T) {
	d := resolution.New(resolution.WithProbe(Chain{Profile{}, Static{PixelsPerInch: 144}}))
	assert.Equal(t, 144.0, d.Detect())
}
