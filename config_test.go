package carousel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    func(Options) Options
		wantErr error
	}{
		{
			name:  "empty file is the defaults",
			input: "",
			want:  func(o Options) Options { return o },
		},
		{
			name: "every key",
			input: `
element_id = "gallery"
speed = 1000
controls = true
pager = true
animation = "slide-translate"
infinite = true
start_slide = 3
autoplay = true
autoplay_speed = 2500
`,
			want: func(o Options) Options {
				o.ElementID = "gallery"
				o.Speed = 1000
				o.Controls = true
				o.Pager = true
				o.Animation = AnimationSlide
				o.Infinite = true
				o.StartSlide = 3
				o.Autoplay = true
				o.AutoplaySpeed = 2500
				return o
			},
		},
		{
			name:  "legacy animation name is accepted",
			input: `animation = "slick"`,
			want: func(o Options) Options {
				o.Animation = animationSlick
				return o
			},
		},
		{
			name:    "unknown animation",
			input:   `animation = "zoom"`,
			wantErr: ErrInvalidOption,
		},
		{
			name:    "negative speed",
			input:   `speed = -5`,
			wantErr: ErrInvalidOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOptions([]byte(tt.input))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want(DefaultOptions()), got)
		})
	}
}

func TestParseOptionsRejectsUnknownKeys(t *testing.T) {
	_, err := ParseOptions([]byte(`sped = 100`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse carousel config")
}

func TestParseOptionsRejectsMalformedTOML(t *testing.T) {
	_, err := ParseOptions([]byte(`speed = `))
	require.Error(t, err)
}

func TestLoadOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "carousel.toml")
	require.NoError(t, os.WriteFile(path, []byte("pager = true\nspeed = 250\n"), 0o644))

	opts, err := LoadOptions(path)
	require.NoError(t, err)
	assert.True(t, opts.Pager)
	assert.Equal(t, 250, opts.Speed)
	assert.Equal(t, DefaultElementID, opts.ElementID)

	_, err = LoadOptions(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestLoadOptionsWrapsValidationErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`start_slide = -1`), 0o644))

	_, err := LoadOptions(path)
	require.ErrorIs(t, err, ErrInvalidOption)
	assert.Contains(t, err.Error(), path)
}

func TestMarshalOptionsResolvesDefaults(t *testing.T) {
	data, err := MarshalOptions(Options{Animation: "slick", Pager: true})
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "slide-translate")
	assert.Contains(t, text, "element_id")
	assert.Contains(t, text, "speed = 500")
	assert.NotContains(t, text, "Logger")

	back, err := ParseOptions(data)
	require.NoError(t, err)
	assert.Equal(t, Options{Animation: "slick", Pager: true}.Resolved().ElementID, back.ElementID)
	assert.Equal(t, AnimationSlide, back.Animation)
	assert.True(t, back.Pager)
}
