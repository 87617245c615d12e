// internal/defs/waves.go
package defs

import "time"

// SpawnGroup is a run of identical root bloons released at a fixed interval.
type SpawnGroup struct {
	Tier      Tier          // tier of every bloon in the group
	Count     int           // how many to release
	Interval  time.Duration // gap between two releases
	Delay     time.Duration // wait after the wave starts before the first release
	Modifiers Modifier      // requested flags (camo, fortified, ...)
}

// WaveDefinition describes one wave: its groups run concurrently.
type WaveDefinition struct {
	Number int
	Groups []SpawnGroup
}

// WavePatterns holds the built-in waves keyed by wave number.
var WavePatterns = map[int]WaveDefinition{
	1: {Number: 1, Groups: []SpawnGroup{{Tier: Red, Count: 10, Interval: 800 * time.Millisecond}}},
	2: {Number: 2, Groups: []SpawnGroup{
		{Tier: Red, Count: 10, Interval: 600 * time.Millisecond},
		{Tier: Blue, Count: 5, Interval: time.Second, Delay: 2 * time.Second},
	}},
	3: {Number: 3, Groups: []SpawnGroup{{Tier: Green, Count: 8, Interval: 700 * time.Millisecond}}},
	4: {Number: 4, Groups: []SpawnGroup{
		{Tier: Yellow, Count: 6, Interval: 700 * time.Millisecond},
		{Tier: Pink, Count: 4, Interval: 900 * time.Millisecond, Delay: 3 * time.Second},
	}},
	5: {Number: 5, Groups: []SpawnGroup{{Tier: Purple, Count: 6, Interval: 800 * time.Millisecond}}},
	6: {Number: 6, Groups: []SpawnGroup{
		{Tier: Black, Count: 5, Interval: 800 * time.Millisecond},
		{Tier: White, Count: 5, Interval: 800 * time.Millisecond, Delay: 400 * time.Millisecond},
	}},
	7: {Number: 7, Groups: []SpawnGroup{{Tier: Zebra, Count: 6, Interval: 900 * time.Millisecond}}},
	8: {Number: 8, Groups: []SpawnGroup{{Tier: Lead, Count: 4, Interval: time.Second, Modifiers: ModCamo}}},
	9: {Number: 9, Groups: []SpawnGroup{{Tier: Rainbow, Count: 6, Interval: 800 * time.Millisecond}}},
	10: {Number: 10, Groups: []SpawnGroup{
		{Tier: Ceramic, Count: 4, Interval: time.Second},
		{Tier: Ceramic, Count: 2, Interval: time.Second, Delay: 5 * time.Second, Modifiers: ModFortified},
	}},
	11: {Number: 11, Groups: []SpawnGroup{{Tier: MOAB, Count: 1, Interval: time.Second}}},
}

// TotalRoots is the number of root spawns the wave releases.
func (w WaveDefinition) TotalRoots() int {
	total := 0
	for _, g := range w.Groups {
		total += g.Count
	}
	return total
}
