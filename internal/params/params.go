// Package params holds the simulation configuration: the grid geometry, the
// rewards paid for each bout outcome and the hardening/softening rates.
package params

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrOutOfRange is returned when a textual value does not fit its kind.
var ErrOutOfRange = errors.New("params: value out of range")

// Parameters is the typed configuration record shared by every generation of
// a run.
type Parameters struct {
	Width  int `yaml:"field_width"`
	Height int `yaml:"field_height"`

	WinReward         uint8 `yaml:"win_reward"`
	LossReward        uint8 `yaml:"loss_reward"`
	DrawReward        uint8 `yaml:"draw_reward"`
	CooperationReward uint8 `yaml:"cooperation_reward"`

	HardeningRate uint8 `yaml:"hardening_rate"`
	SofteningRate uint8 `yaml:"softening_rate"`

	// Seed drives genesis so a run is reproducible from its parameters.
	Seed int64 `yaml:"seed"`
}

// Default returns the built-in configuration.
func Default() Parameters {
	p := Parameters{Seed: 1}
	for _, k := range Kinds() {
		p.Set(k, k.Default())
	}
	return p
}

// Get returns the value stored for k.
func (p *Parameters) Get(k Kind) Value {
	switch k {
	case FieldWidth:
		return Word(p.Width)
	case FieldHeight:
		return Word(p.Height)
	case WinReward:
		return Byte(p.WinReward)
	case LossReward:
		return Byte(p.LossReward)
	case DrawReward:
		return Byte(p.DrawReward)
	case CooperationReward:
		return Byte(p.CooperationReward)
	case HardeningRate:
		return Byte(p.HardeningRate)
	case SofteningRate:
		return Byte(p.SofteningRate)
	}
	panic(fmt.Sprintf("params: kind %d out of range", uint8(k)))
}

// Set stores v under k. The value must carry the kind's declared type.
func (p *Parameters) Set(k Kind, v Value) {
	switch k.Type() {
	case TypeWord:
		w := v.Word()
		switch k {
		case FieldWidth:
			p.Width = w
		case FieldHeight:
			p.Height = w
		}
	case TypeByte:
		b := v.Byte()
		switch k {
		case WinReward:
			p.WinReward = b
		case LossReward:
			p.LossReward = b
		case DrawReward:
			p.DrawReward = b
		case CooperationReward:
			p.CooperationReward = b
		case HardeningRate:
			p.HardeningRate = b
		case SofteningRate:
			p.SofteningRate = b
		}
	}
}

// SetString parses s according to k's type and stores it.
func (p *Parameters) SetString(k Kind, s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("params: %s: %w", k.Key(), err)
	}
	switch k.Type() {
	case TypeWord:
		if n <= 0 {
			return fmt.Errorf("%w: %s=%d must be positive", ErrOutOfRange, k.Key(), n)
		}
		p.Set(k, Word(n))
	case TypeByte:
		if n < 0 || n > 255 {
			return fmt.Errorf("%w: %s=%d must be within 0..255", ErrOutOfRange, k.Key(), n)
		}
		p.Set(k, Byte(uint8(n)))
	}
	return nil
}

// Validate reports configurations that cannot produce a field.
func (p *Parameters) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: field %dx%d must have positive dimensions", ErrOutOfRange, p.Width, p.Height)
	}
	return nil
}

// Clone returns an independent copy.
func (p *Parameters) Clone() *Parameters {
	c := *p
	return &c
}

// Reward returns the configured reward for an outcome kind.
func (p *Parameters) Reward(k Kind) uint8 {
	return p.Get(k).Byte()
}

// Load reads the embedded defaults and overlays the YAML file at path, if any.
func Load(path string) (Parameters, error) {
	var p Parameters
	if err := yaml.Unmarshal(defaultsYAML, &p); err != nil {
		return Parameters{}, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Parameters{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &p); err != nil {
			return Parameters{}, fmt.Errorf("parsing config file: %w", err)
		}
	}
	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

// WriteYAML records the parameters at path.
func (p *Parameters) WriteYAML(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling parameters: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing parameters: %w", err)
	}
	return nil
}
