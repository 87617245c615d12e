// internal/wavescript/wavescript.go

// Package wavescript разбирает текстовый формат расписания волн:
//
//	# comment
//	wave 1 {
//	  spawn 10 red every 0.5
//	  spawn 2 ceramic fortified camo every 1.0 after 3
//	}
//
// Каждая строка spawn становится одной defs.SpawnGroup. Интервал и задержка
// в секундах; spawn без "every" выпускает всю группу сразу.
package wavescript

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"go-bloon-defense/internal/defs"
)

// Script — корневой узел AST.
type Script struct {
	Waves []*Wave `@@*`
}

// Wave: wave N { spawn* }
type Wave struct {
	Pos lexer.Position

	Number int      `"wave" @Number "{"`
	Spawns []*Spawn `@@* "}"`
}

// Spawn: spawn COUNT TIER MODIFIER* [every SECONDS] [after SECONDS]
type Spawn struct {
	Pos lexer.Position

	Count     int      `"spawn" @Number`
	Tier      string   `@Ident`
	Modifiers []string `@Ident*`
	Every     *float64 `("every" @Number)?`
	After     *float64 `("after" @Number)?`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s]+`},
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Ключевые слова идут раньше Ident, иначе "every" прочтется как модификатор.
	{Name: "Keyword", Pattern: `\b(wave|spawn|every|after)\b`},

	{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[{}]`},
})

// Parser — парсер сценария волн.
var Parser = participle.MustBuild[Script](
	participle.Lexer(scriptLexer),
	participle.Elide("Whitespace", "Comment"),
)

// Parse разбирает source в Script без проверки имен тиров.
func Parse(filename, source string) (*Script, error) {
	script, err := Parser.ParseString(filename, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse wave script: %w", err)
	}
	return script, nil
}

// Compile превращает разобранный сценарий в волны по номеру.
func Compile(script *Script) (map[int]defs.WaveDefinition, error) {
	waves := make(map[int]defs.WaveDefinition, len(script.Waves))
	for _, w := range script.Waves {
		if w.Number <= 0 {
			return nil, fmt.Errorf("%s: wave number must be positive, got %d", w.Pos, w.Number)
		}
		if _, dup := waves[w.Number]; dup {
			return nil, fmt.Errorf("%s: wave %d defined twice", w.Pos, w.Number)
		}
		def := defs.WaveDefinition{Number: w.Number}
		for _, s := range w.Spawns {
			group, err := s.group()
			if err != nil {
				return nil, fmt.Errorf("%s: wave %d: %w", s.Pos, w.Number, err)
			}
			def.Groups = append(def.Groups, group)
		}
		waves[w.Number] = def
	}
	return waves, nil
}

func (s *Spawn) group() (defs.SpawnGroup, error) {
	if s.Count <= 0 {
		return defs.SpawnGroup{}, fmt.Errorf("spawn count must be positive, got %d", s.Count)
	}
	tier, err := defs.ParseTier(s.Tier)
	if err != nil {
		return defs.SpawnGroup{}, err
	}
	mods, err := defs.ParseModifiers(s.Modifiers)
	if err != nil {
		return defs.SpawnGroup{}, err
	}
	g := defs.SpawnGroup{Tier: tier, Count: s.Count, Modifiers: mods}
	if s.Every != nil {
		g.Interval = seconds(*s.Every)
	}
	if s.After != nil {
		g.Delay = seconds(*s.After)
	}
	return g, nil
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

// ParseWaves разбирает и компилирует за один шаг.
func ParseWaves(filename, source string) (map[int]defs.WaveDefinition, error) {
	script, err := Parse(filename, source)
	if err != nil {
		return nil, err
	}
	return Compile(script)
}

// LoadFile читает сценарий волн с диска.
func LoadFile(path string) (map[int]defs.WaveDefinition, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave script: %w", err)
	}
	waves, err := ParseWaves(path, string(src))
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded waves %v from %s", defs.WaveNumbers(waves), path)
	return waves, nil
}
