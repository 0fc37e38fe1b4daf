package state

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/hoisting/pkg/errors"
)

// Entry kinds.
const (
	KindCounter    = "counter"
	KindFlag       = "flag"
	KindCollection = "collection"
)

// Entry is the saved form of one value.
type Entry struct {
	Kind  string `yaml:"kind"`
	Int   int    `yaml:"int,omitempty"`
	Bool  bool   `yaml:"bool,omitempty"`
	Items []Item `yaml:"items,omitempty"`
}

// data returns the payload the entry's kind carries.
func (e Entry) data() any {
	switch e.Kind {
	case KindCounter:
		return e.Int
	case KindFlag:
		return e.Bool
	case KindCollection:
		return e.Items
	default:
		return e.Kind
	}
}

// mismatch describes an entry restored into a value of another kind.
func (e Entry) mismatch(want string) error {
	return &errors.ParseError{Source: "restoration bundle", DataType: want, Got: e.data()}
}

// Bundle maps value keys to their saved form.
type Bundle map[string]Entry

// EncodeBundles serializes bundles keyed by store scope.
func EncodeBundles(bundles map[string]Bundle) ([]byte, error) {
	data, err := yaml.Marshal(bundles)
	if err != nil {
		return nil, fmt.Errorf("encode restoration bundles: %w", err)
	}
	return data, nil
}

// DecodeBundles parses data written by EncodeBundles.
func DecodeBundles(data []byte) (map[string]Bundle, error) {
	bundles := make(map[string]Bundle)
	if err := yaml.Unmarshal(data, &bundles); err != nil {
		return nil, fmt.Errorf("decode restoration bundles: %w", err)
	}
	return bundles, nil
}
