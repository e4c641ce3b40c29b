package carousel

import (
	"bytes"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// LoadOptions reads TOML options from path over DefaultOptions.
//
//	element_id = "gallery"
//	speed = 1000
//	controls = true
//	pager = true
//	animation = "slide-translate"
//	infinite = true
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, errors.Wrap(err, "read carousel config")
	}
	opts, err := ParseOptions(data)
	if err != nil {
		return Options{}, errors.Wrapf(err, "load %s", path)
	}
	return opts, nil
}

// ParseOptions decodes TOML options over DefaultOptions and validates them.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		return Options{}, errors.Wrap(err, "parse carousel config")
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// MarshalOptions encodes the resolved options as TOML.
func MarshalOptions(opts Options) ([]byte, error) {
	data, err := toml.Marshal(opts.withDefaults())
	if err != nil {
		return nil, errors.Wrap(err, "encode carousel config")
	}
	return data, nil
}
