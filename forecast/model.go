package forecast

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownKind = errors.New("unknown model kind")

// Kind selects one of the projection models
type Kind uint8

const (
	KindLinear Kind = iota
	KindExponential
	KindEntropy
	KindComposite
)

var kindNames = [...]string{
	KindLinear:      "linear",
	KindExponential: "exponential",
	KindEntropy:     "entropy",
	KindComposite:   "composite",
}

// Kinds returns every model kind in display order
func Kinds() []Kind {
	return []Kind{KindLinear, KindExponential, KindEntropy, KindComposite}
}

// Valid reports whether k is one of the known kinds
func (k Kind) Valid() bool {
	return int(k) < len(kindNames)
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// ParseKind maps a model name such as "composite" to its Kind
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%q, %w", name, ErrUnknownKind)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%d, %w", uint8(k), ErrUnknownKind)
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
