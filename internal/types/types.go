// internal/types/types.go
package types

// EntityID — идентификатор сущности в ECS. Ноль никогда не выдается.
type EntityID uint64
