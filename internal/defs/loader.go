// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"
)

// waveFile is the on-disk shape of a wave definition.
type waveFile struct {
	Number int `json:"number"`
	Groups []struct {
		Tier      Tier     `json:"tier"`
		Count     int      `json:"count"`
		Interval  float64  `json:"interval"` // seconds
		Delay     float64  `json:"delay"`    // seconds
		Modifiers []string `json:"modifiers"`
	} `json:"groups"`
}

// ParseModifiers folds a list of flag names into a mask.
func ParseModifiers(names []string) (Modifier, error) {
	var mods Modifier
	for _, n := range names {
		m, ok := ParseModifier(n)
		if !ok {
			return ModNone, fmt.Errorf("unknown modifier %q", n)
		}
		mods |= m
	}
	return mods, nil
}

// DecodeWaveDefinitions parses a JSON array of waves keyed by their number.
func DecodeWaveDefinitions(data []byte) (map[int]WaveDefinition, error) {
	var files []waveFile
	if err := json.Unmarshal(data, &files); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wave definitions: %w", err)
	}

	waves := make(map[int]WaveDefinition, len(files))
	for _, wf := range files {
		if wf.Number <= 0 {
			return nil, fmt.Errorf("wave number must be positive, got %d", wf.Number)
		}
		if _, dup := waves[wf.Number]; dup {
			return nil, fmt.Errorf("wave %d defined twice", wf.Number)
		}
		def := WaveDefinition{Number: wf.Number}
		for i, g := range wf.Groups {
			if g.Count <= 0 {
				return nil, fmt.Errorf("wave %d group %d: count must be positive", wf.Number, i)
			}
			mods, err := ParseModifiers(g.Modifiers)
			if err != nil {
				return nil, fmt.Errorf("wave %d group %d: %w", wf.Number, i, err)
			}
			def.Groups = append(def.Groups, SpawnGroup{
				Tier:      g.Tier,
				Count:     g.Count,
				Interval:  time.Duration(g.Interval * float64(time.Second)),
				Delay:     time.Duration(g.Delay * float64(time.Second)),
				Modifiers: mods,
			})
		}
		waves[wf.Number] = def
	}
	return waves, nil
}

// LoadWaveDefinitions reads a wave file and returns its waves keyed by number.
func LoadWaveDefinitions(path string) (map[int]WaveDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave definitions file: %w", err)
	}
	waves, err := DecodeWaveDefinitions(file)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Loaded %d wave definitions: %v\n", len(waves), WaveNumbers(waves))
	return waves, nil
}

// WaveNumbers lists the keys of waves in ascending order.
func WaveNumbers(waves map[int]WaveDefinition) []int {
	nums := make([]int, 0, len(waves))
	for n := range waves {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}
