package prefabs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/padrunner/ecs/component"
)

// PlayerFile is the spec holding the character's movement tuning.
const PlayerFile = "player.yaml"

// LoadSpec decodes filename over seed, so keys missing from the file keep
// the seed's values.
func LoadSpec[T any](filename string, seed T) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec := seed
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PlayerSpec is the YAML shape of component.Tuning.
type PlayerSpec struct {
	Name              string  `yaml:"name"`
	TickRate          int     `yaml:"tick_rate"`
	Gravity           float64 `yaml:"gravity"`
	JumpStrength      float64 `yaml:"jump_strength"`
	Acceleration      float64 `yaml:"acceleration"`
	Friction          float64 `yaml:"friction"`
	BaseMaxVelocity   float64 `yaml:"base_max_velocity"`
	SprintMaxVelocity float64 `yaml:"sprint_max_velocity"`
	GroundMargin      float64 `yaml:"ground_margin"`
	DeadZone          float64 `yaml:"dead_zone"`
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
}

func PlayerSpecFromTuning(name string, t component.Tuning) PlayerSpec {
	return PlayerSpec{
		Name:              name,
		TickRate:          t.TickRate,
		Gravity:           t.Gravity,
		JumpStrength:      t.JumpStrength,
		Acceleration:      t.Acceleration,
		Friction:          t.Friction,
		BaseMaxVelocity:   t.BaseMaxVelocity,
		SprintMaxVelocity: t.SprintMaxVelocity,
		GroundMargin:      t.GroundMargin,
		DeadZone:          t.DeadZone,
		Width:             t.Width,
		Height:            t.Height,
	}
}

func (s PlayerSpec) Tuning() component.Tuning {
	return component.Tuning{
		TickRate:          s.TickRate,
		Gravity:           s.Gravity,
		JumpStrength:      s.JumpStrength,
		Acceleration:      s.Acceleration,
		Friction:          s.Friction,
		BaseMaxVelocity:   s.BaseMaxVelocity,
		SprintMaxVelocity: s.SprintMaxVelocity,
		GroundMargin:      s.GroundMargin,
		DeadZone:          s.DeadZone,
		Width:             s.Width,
		Height:            s.Height,
	}
}

// ParseTuning decodes a player spec. Keys missing from data keep their
// default values.
func ParseTuning(data []byte) (component.Tuning, error) {
	spec := PlayerSpecFromTuning("player", component.DefaultTuning())
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return component.Tuning{}, err
	}
	t := spec.Tuning()
	if err := t.Validate(); err != nil {
		return component.Tuning{}, err
	}
	return t, nil
}

// LoadTuning reads a spec through Load, so a copy under DiskDir wins over
// the embedded one.
func LoadTuning(name string) (component.Tuning, error) {
	spec, err := LoadSpec(name, PlayerSpecFromTuning("player", component.DefaultTuning()))
	if err != nil {
		return component.Tuning{}, err
	}
	t := spec.Tuning()
	if err := t.Validate(); err != nil {
		return component.Tuning{}, fmt.Errorf("prefabs: parse %s: %w", name, err)
	}
	return t, nil
}

// LoadTuningFile reads a spec from an arbitrary path.
func LoadTuningFile(path string) (component.Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return component.Tuning{}, fmt.Errorf("prefabs: load %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return component.Tuning{}, fmt.Errorf("prefabs: parse %s: %w", path, err)
	}
	return t, nil
}

// MarshalTuning encodes t in the same layout as player.yaml.
func MarshalTuning(t component.Tuning) ([]byte, error) {
	data, err := yaml.Marshal(PlayerSpecFromTuning("player", t))
	if err != nil {
		return nil, fmt.Errorf("prefabs: marshal tuning: %w", err)
	}
	return data, nil
}
