package randomart

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

type registry map[string]Mode

var presets = make(registry)

// RegisterMode makes the mode available by name to LookupMode and configs.
// It panics if the name is taken or the mode is invalid.
func RegisterMode(name string, m Mode) {
	key := strings.ToLower(name)
	if _, ok := presets[key]; ok {
		panic(fmt.Sprintf("name is already in use: %s", name))
	}
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}
	presets[key] = m
}

func LookupMode(name string) (Mode, bool) {
	m, ok := presets[strings.ToLower(name)]
	return m, ok
}

// Modes returns registered modes sorted by name
func Modes() iter.Seq2[string, Mode] {
	return func(yield func(string, Mode) bool) {
		for _, name := range slices.Sorted(maps.Keys(presets)) {
			if !yield(name, presets[name]) {
				return
			}
		}
	}
}

const DefaultPreset = "openssl"

func init() {
	RegisterMode(DefaultPreset, OpenSSL)
	RegisterMode("openssh", OpenSSL)
}
