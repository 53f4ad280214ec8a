package params

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when a configuration key names no parameter.
var ErrUnknownKind = errors.New("params: unknown parameter")

// Type tags the storage type of a parameter value.
type Type uint8

const (
	// TypeByte denotes values in 0..255.
	TypeByte Type = iota
	// TypeWord denotes positive machine-sized integers.
	TypeWord
)

func (t Type) String() string {
	if t == TypeWord {
		return "word"
	}
	return "byte"
}

// Kind enumerates the configurable slots.
type Kind uint8

const (
	FieldWidth Kind = iota
	FieldHeight
	WinReward
	LossReward
	DrawReward
	CooperationReward
	HardeningRate
	SofteningRate

	// KindCount is the number of parameter kinds.
	KindCount int = iota
)

type kindInfo struct {
	key         string
	name        string
	description string
	typ         Type
	def         Value
}

var kinds = [KindCount]kindInfo{
	FieldWidth: {
		key: "field_width", name: "Field Width", typ: TypeWord, def: Word(1000),
		description: "Total width of the field/image, in pixels.",
	},
	FieldHeight: {
		key: "field_height", name: "Field Height", typ: TypeWord, def: Word(1000),
		description: "Total height of the field/image, in pixels.",
	},
	WinReward: {
		key: "win_reward", name: "Win Reward", typ: TypeByte, def: Byte(3),
		description: "Score reward for winning, ie being 120° ahead of the opponent.",
	},
	LossReward: {
		key: "loss_reward", name: "Loss Reward", typ: TypeByte, def: Byte(0),
		description: "Score reward for losing, ie being 120° behind the opponent.",
	},
	DrawReward: {
		key: "draw_reward", name: "Draw Reward", typ: TypeByte, def: Byte(0),
		description: "Score reward for drawing, ie being 180° away from the opponent.",
	},
	CooperationReward: {
		key: "cooperation_reward", name: "Cooperation Reward", typ: TypeByte, def: Byte(3),
		description: "Score reward for cooperating, ie being 0° away from the opponent.",
	},
	HardeningRate: {
		key: "hardening_rate", name: "Hardening Rate", typ: TypeByte, def: Byte(1),
		description: "Saturation gained per generation under heavy competition.",
	},
	SofteningRate: {
		key: "softening_rate", name: "Softening Rate", typ: TypeByte, def: Byte(1),
		description: "Saturation lost per generation under little competition.",
	},
}

// Kinds returns every parameter kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, KindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) info() kindInfo {
	if int(k) >= KindCount {
		panic(fmt.Sprintf("params: kind %d out of range", uint8(k)))
	}
	return kinds[k]
}

// Key is the snake_case configuration key.
func (k Kind) Key() string { return k.info().key }

// String returns the human readable name.
func (k Kind) String() string {
	if int(k) >= KindCount {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kinds[k].name
}

// Description explains what the parameter controls.
func (k Kind) Description() string { return k.info().description }

// Type reports the value type stored under the kind.
func (k Kind) Type() Type { return k.info().typ }

// Default returns the built-in default value.
func (k Kind) Default() Value { return k.info().def }

// ParseKind resolves a configuration key.
func ParseKind(key string) (Kind, error) {
	for i, info := range kinds {
		if info.key == key {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, key)
}

// Value is a parameter value tagged with its type.
type Value struct {
	typ Type
	v   int
}

// Byte wraps a byte-typed value.
func Byte(b uint8) Value { return Value{typ: TypeByte, v: int(b)} }

// Word wraps a word-typed value.
func Word(w int) Value { return Value{typ: TypeWord, v: w} }

// Type reports the tag.
func (v Value) Type() Type { return v.typ }

// Byte unwraps a byte value. Reading any other type is a programming error.
func (v Value) Byte() uint8 {
	if v.typ != TypeByte {
		panic(fmt.Sprintf("params: read %s value as byte", v.typ))
	}
	return uint8(v.v)
}

// Word unwraps a word value. Reading any other type is a programming error.
func (v Value) Word() int {
	if v.typ != TypeWord {
		panic(fmt.Sprintf("params: read %s value as word", v.typ))
	}
	return v.v
}

func (v Value) String() string {
	return fmt.Sprintf("%s(%d)", v.typ, v.v)
}
