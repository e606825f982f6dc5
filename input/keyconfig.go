package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidBinding reports a key name that does not resolve to a single rune
var ErrInvalidBinding = errors.New("invalid key binding")

// Rune aliases for keys that are awkward to write in a config file
var runeAliases = map[string]rune{
	"space": ' ',
	"tab":   '\t',
}

// Bindings are the configurable game keys
type Bindings struct {
	Up    rune
	Down  rune
	Left  rune
	Right rune
	Wall  rune
}

// DefaultBindings returns w/s/a/d movement and space for walls
func DefaultBindings() Bindings {
	return Bindings{
		Up:    'w',
		Down:  's',
		Left:  'a',
		Right: 'd',
		Wall:  ' ',
	}
}

// ParseKey resolves a config key name: a single character or an alias such as "space"
func ParseKey(name string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(name) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidBinding, name)
	}
	r, _ := utf8.DecodeRuneInString(name)
	return r, nil
}

// ParseBindings builds Bindings from key names in up, down, left, right, wall order
func ParseBindings(up, down, left, right, wall string) (Bindings, error) {
	var b Bindings
	fields := []struct {
		name string
		dst  *rune
	}{
		{up, &b.Up},
		{down, &b.Down},
		{left, &b.Left},
		{right, &b.Right},
		{wall, &b.Wall},
	}
	for _, f := range fields {
		r, err := ParseKey(f.name)
		if err != nil {
			return Bindings{}, err
		}
		*f.dst = r
	}
	return b, nil
}
