// internal/defs/spawn_pools.go
package defs

// PoolEntry is one weighted candidate tier in a spawn pool.
// Weight is the relative chance of the tier being drawn.
type PoolEntry struct {
	Tier   Tier `json:"tier" yaml:"tier"`
	Weight int  `json:"weight" yaml:"weight"`
}

// SpawnPool lists the candidate tiers for generated waves from MinWave on.
type SpawnPool struct {
	MinWave int         `json:"min_wave" yaml:"min_wave"`
	Entries []PoolEntry `json:"entries" yaml:"entries"`
}

// SpawnPools drive waves past the end of WavePatterns. Ordered by MinWave.
var SpawnPools = []SpawnPool{
	{MinWave: 1, Entries: []PoolEntry{{Red, 6}, {Blue, 4}, {Green, 2}}},
	{MinWave: 5, Entries: []PoolEntry{{Yellow, 4}, {Pink, 4}, {Purple, 2}, {Black, 2}, {White, 2}}},
	{MinWave: 9, Entries: []PoolEntry{{Zebra, 4}, {Lead, 3}, {Rainbow, 4}, {Ceramic, 2}}},
	{MinWave: 12, Entries: []PoolEntry{{Rainbow, 3}, {Ceramic, 5}, {MOAB, 1}}},
	{MinWave: 20, Entries: []PoolEntry{{Ceramic, 6}, {MOAB, 3}, {DDT, 1}, {BFB, 1}}},
}

// PoolFor returns the entries of the last pool whose MinWave is reached.
func PoolFor(wave int) []PoolEntry {
	var entries []PoolEntry
	for _, p := range SpawnPools {
		if wave >= p.MinWave {
			entries = p.Entries
		}
	}
	return entries
}
