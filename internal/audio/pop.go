// internal/audio/pop.go

// Package audio синтезирует звук лопания для терминального просмотрщика.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"

	"go-bloon-defense/internal/defs"
)

const (
	SampleRate = beep.SampleRate(44100)
	popLength  = 70 * time.Millisecond
	maxVoices  = 8
)

// PopGenerator — короткий нисходящий свист с экспоненциальным затуханием.
type PopGenerator struct {
	freq    float64
	phase   float64
	pos     int
	samples int
	sr      beep.SampleRate
}

// PopFrequency — начальная частота для тира: тяжелые тиры звучат ниже.
func PopFrequency(t defs.Tier) float64 {
	return 900 / (1 + 0.15*float64(t))
}

// NewPopGenerator создает звук для тира t.
func NewPopGenerator(sr beep.SampleRate, t defs.Tier) *PopGenerator {
	return &PopGenerator{
		freq:    PopFrequency(t),
		samples: sr.N(popLength),
		sr:      sr,
	}
}

func (g *PopGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.freq * (1 - 0.5*progress)
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		val := 0.3 * math.Exp(-5*progress) * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = val
		samples[i][1] = val
		g.pos++
	}
	return len(samples), true
}

func (g *PopGenerator) Err() error { return nil }

// Player микширует хлопки. Сам является стримером, поэтому его играет
// speaker; Pop можно вызывать из другой горутины.
type Player struct {
	mu    sync.Mutex
	mixer beep.Mixer
	sr    beep.SampleRate
}

func NewPlayer(sr beep.SampleRate) *Player {
	return &Player{sr: sr}
}

// Pop ставит хлопок тира t. Сверх maxVoices хлопки отбрасываются.
func (p *Player) Pop(t defs.Tier) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mixer.Len() >= maxVoices {
		return false
	}
	p.mixer.Add(NewPopGenerator(p.sr, t))
	return true
}

// Voices — сколько хлопков еще звучит.
func (p *Player) Voices() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Len()
}

func (p *Player) Stream(samples [][2]float64) (n int, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Stream(samples)
}

func (p *Player) Err() error { return nil }
