// internal/config/scenario.go
package config

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"go-bloon-defense/internal/defs"
	"go-bloon-defense/internal/wavescript"
	"go-bloon-defense/pkg/track"
)

// Point — узел трека в YAML.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// EmitterSpec — неподвижный стрелок. Угол в градусах, интервал в секундах.
type EmitterSpec struct {
	Preset   string  `yaml:"preset"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Angle    float64 `yaml:"angle"`
	Interval float64 `yaml:"interval"`
}

// Radians переводит угол эмиттера в радианы.
func (e EmitterSpec) Radians() float64 {
	return e.Angle * math.Pi / 180
}

// Position — позиция эмиттера на плоскости трека.
func (e EmitterSpec) Position() track.Vec2 {
	return track.Vec2{X: e.X, Y: e.Y}
}

// WaveSource указывает, откуда брать волны. Заполняется не больше одного поля;
// пустой источник означает встроенные волны.
type WaveSource struct {
	Script string `yaml:"script"` // путь к файлу сценария волн
	File   string `yaml:"file"`   // путь к JSON с определениями
	Inline string `yaml:"inline"` // текст сценария волн прямо в YAML
}

// Scenario — все, что нужно для запуска уровня.
type Scenario struct {
	Name     string        `yaml:"name"`
	Seed     int64         `yaml:"seed"`
	Tick     float64       `yaml:"tick"`
	Workers  int           `yaml:"workers"`
	Lives    int           `yaml:"lives"`
	Stagger  float64       `yaml:"stagger"`
	Track    []Point       `yaml:"track"`
	Emitters []EmitterSpec `yaml:"emitters"`
	Waves    WaveSource    `yaml:"waves"`

	// каталог файла сценария, от него считаются относительные пути
	dir string
}

// DefaultScenario — встроенный первый уровень.
func DefaultScenario() *Scenario {
	s := &Scenario{
		Name:    "level 1",
		Seed:    DefaultSeed,
		Tick:    TickStep,
		Workers: CollisionWorkers,
		Lives:   StartingLives,
		Stagger: StaggerOffset,
		Emitters: []EmitterSpec{
			{Preset: "DART", X: 0, Y: 40, Angle: 90, Interval: 0.35},
			{Preset: "BOMB", X: -100, Y: 100, Angle: -116.565, Interval: 1.2},
			{Preset: "ICE", X: 250, Y: 150, Angle: 153.435, Interval: 0.8},
			{Preset: "GLUE", X: 0, Y: 0, Angle: 90, Interval: 3},
		},
	}
	for _, n := range track.Level1().Nodes() {
		s.Track = append(s.Track, Point{X: n.X, Y: n.Y})
	}
	return s
}

// DecodeScenario разбирает YAML поверх значений по умолчанию.
func DecodeScenario(data []byte) (*Scenario, error) {
	s := DefaultScenario()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadScenario читает сценарий из файла.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	s, err := DecodeScenario(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	log.Printf("Loaded scenario %q: %d track nodes, %d emitters", s.Name, len(s.Track), len(s.Emitters))
	return s, nil
}

// Validate проверяет то, что нельзя исправить значениями по умолчанию.
func (s *Scenario) Validate() error {
	if s.Tick <= 0 || s.Tick > MaxDeltaTime {
		return fmt.Errorf("tick must be in (0, %v], got %v", MaxDeltaTime, s.Tick)
	}
	if s.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", s.Workers)
	}
	if _, err := s.BuildTrack(); err != nil {
		return err
	}
	for i, e := range s.Emitters {
		if _, err := defs.Projectile(e.Preset); err != nil {
			return fmt.Errorf("emitter %d: %w", i, err)
		}
		if e.Interval <= 0 {
			return fmt.Errorf("emitter %d: interval must be positive, got %v", i, e.Interval)
		}
	}
	set := 0
	for _, v := range []string{s.Waves.Script, s.Waves.File, s.Waves.Inline} {
		if v != "" {
			set++
		}
	}
	if set > 1 {
		return fmt.Errorf("waves: only one of script, file or inline may be set")
	}
	return nil
}

// BuildTrack строит трек из узлов сценария.
func (s *Scenario) BuildTrack() (*track.Track, error) {
	nodes := make([]track.Vec2, len(s.Track))
	for i, p := range s.Track {
		nodes[i] = track.Vec2{X: p.X, Y: p.Y}
	}
	tr, err := track.New(nodes)
	if err != nil {
		return nil, fmt.Errorf("track: %w", err)
	}
	return tr, nil
}

// LoadWaves возвращает волны сценария. nil означает встроенные волны.
func (s *Scenario) LoadWaves() (map[int]defs.WaveDefinition, error) {
	switch {
	case s.Waves.Inline != "":
		return wavescript.ParseWaves(s.Name, s.Waves.Inline)
	case s.Waves.Script != "":
		return wavescript.LoadFile(s.resolve(s.Waves.Script))
	case s.Waves.File != "":
		return defs.LoadWaveDefinitions(s.resolve(s.Waves.File))
	}
	return nil, nil
}

func (s *Scenario) resolve(path string) string {
	if filepath.IsAbs(path) || s.dir == "" {
		return path
	}
	return filepath.Join(s.dir, path)
}
