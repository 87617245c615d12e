// internal/utils/prng.go
package utils

import (
	"go-bloon-defense/internal/defs"
	"math/rand"
	"time"
)

// PRNGService — обертка над стандартным генератором случайных чисел Go,
// которая дает воспроизводимый (seeded) рандом всей симуляции.
// Не потокобезопасен: используется только из фаз тика, которые идут последовательно.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng:  rand.New(source),
		seed: seed,
	}
}

// Seed возвращает фактически использованный сид.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Uint32 возвращает равномерно распределенное 32-битное число.
// Используется для выбора семейства (family) у корневых шаров.
func (s *PRNGService) Uint32() uint32 {
	return s.rng.Uint32()
}

// ChooseWeighted выполняет взвешенный случайный выбор тира из пула волны.
// Он суммирует все веса, выбирает случайное число в этом диапазоне,
// а затем находит элемент, которому соответствует это число.
func (s *PRNGService) ChooseWeighted(entries []defs.PoolEntry) (defs.Tier, bool) {
	if len(entries) == 0 {
		return 0, false
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}

	if totalWeight <= 0 {
		// Если сумма весов некорректна, возвращаем первый элемент по умолчанию
		return entries[0].Tier, true
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.Tier, true
		}
		upto += entry.Weight
	}

	return entries[len(entries)-1].Tier, true
}
