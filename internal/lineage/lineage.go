// internal/lineage/lineage.go

// Package lineage выдает шарам идентичность по происхождению от расщеплений.
//
// ID — тройка (семейство, путь, глубина). Корневой шар получает случайное
// семейство и пустой путь. Каждое расщепление дописывает индекс брата в путь
// со сдвигом depth. Два ID из одной линии, если семейства совпадают и младшие
// min(depth) бит путей равны: так совпадают предок с потомком и братья под
// общим предком. Граф родитель/потомок нигде не хранится.
package lineage

import (
	"fmt"
	"math/bits"
)

// PathBits — ширина пути в битах и жесткий предел глубины.
const PathBits = 32

// Source выдает случайные семейства.
type Source interface {
	Uint32() uint32
}

// ID — идентичность шара по линии расщеплений.
type ID struct {
	Family uint32
	Path   uint32
	Depth  uint8
}

// NewRoot выдает идентичность шару, появившемуся с нуля.
func NewRoot(src Source) ID {
	return ID{Family: src.Uint32()}
}

// BitsFor — сколько бит пути нужно, чтобы различить count братьев:
// ceil(log2(count)), для единственного потомка ноль.
func BitsFor(count int) uint8 {
	if count <= 1 {
		return 0
	}
	return uint8(bits.Len(uint(count - 1)))
}

// DeriveChild — единственный способ увеличить глубину. Единственный потомок
// (count <= 1) сохраняет путь и глубину родителя.
func DeriveChild(parent ID, index, count int) ID {
	if index < 0 || (count > 0 && index >= count) {
		panic(fmt.Sprintf("lineage: sibling index %d out of range for %d siblings", index, count))
	}
	add := BitsFor(count)
	if int(parent.Depth)+int(add) > PathBits {
		panic(fmt.Sprintf("lineage: depth %d+%d exceeds %d path bits; tier catalog must cap branching", parent.Depth, add, PathBits))
	}
	child := parent
	if add > 0 {
		child.Path |= uint32(index) << parent.Depth
		child.Depth += add
	}
	return child
}

// SameLineage сообщает, лежат ли a и b в одном поддереве. Симметрична и
// рефлексивна.
func SameLineage(a, b ID) bool {
	if a.Family != b.Family {
		return false
	}
	m := mask(min(a.Depth, b.Depth))
	return a.Path&m == b.Path&m
}

// SameLineageAt сравнивает только младшие depth бит, не больше собственных
// глубин a и b. Братья одного расщепления совпадают на глубине родителя.
func SameLineageAt(a, b ID, depth uint8) bool {
	if a.Family != b.Family {
		return false
	}
	m := mask(min(depth, a.Depth, b.Depth))
	return a.Path&m == b.Path&m
}

// SameLineage — то же, что функция пакета, в виде метода.
func (id ID) SameLineage(other ID) bool {
	return SameLineage(id, other)
}

// Equal сравнивает с точностью до глубины: братья здесь различаются, хотя линия общая.
func (id ID) Equal(other ID) bool {
	return id.Family == other.Family && id.Depth == other.Depth && id.Path&mask(id.Depth) == other.Path&mask(other.Depth)
}

func (id ID) String() string {
	if id.Depth == 0 {
		return fmt.Sprintf("%08x/-", id.Family)
	}
	return fmt.Sprintf("%08x/%0*b", id.Family, int(id.Depth), id.Path&mask(id.Depth))
}

func mask(n uint8) uint32 {
	return uint32((uint64(1) << n) - 1)
}
