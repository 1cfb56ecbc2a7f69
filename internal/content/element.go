package content

import "strings"

// Elements in canonical order. The projection file must declare its first
// ElemMax records with exactly these codes, in this order, because the index
// doubles as the element id everywhere else (IGNORE_/HATES_/RES_ tokens,
// per-element info arrays).
const (
	ElemAcid = iota
	ElemElec
	ElemFire
	ElemCold
	ElemPois
	ElemLight
	ElemDark
	ElemSound
	ElemShard
	ElemNexus
	ElemNether
	ElemChaos
	ElemDisen
	ElemWater
	ElemIce
	ElemGravity
	ElemInertia
	ElemForce
	ElemTime
	ElemPlasma
	ElemMeteor
	ElemMissile
	ElemMana

	ElemMax
)

// Element class bounds used by power-calculation iteration.
const (
	ElemBaseMin  = ElemAcid
	ElemBaseMax  = ElemCold
	ElemHighMin  = ElemPois
	ElemXHighMax = ElemDisen
)

var elementNames = [ElemMax]string{
	"ACID", "ELEC", "FIRE", "COLD", "POIS",
	"LIGHT", "DARK", "SOUND", "SHARD", "NEXUS",
	"NETHER", "CHAOS", "DISEN", "WATER", "ICE",
	"GRAVITY", "INERTIA", "FORCE", "TIME", "PLASMA",
	"METEOR", "MISSILE", "MANA",
}

// ElementByName resolves an element code to its index, -1 if unknown.
func ElementByName(name string) int {
	for i, n := range elementNames {
		if n == name {
			return i
		}
	}
	return -1
}

// ElementName returns the canonical code of an element.
func ElementName(elem int) string {
	if elem < 0 || elem >= ElemMax {
		return ""
	}
	return elementNames[elem]
}

// Per-element flag bits.
const (
	ElIgnore = 1 << iota
	ElHates
	ElRandom
)

// ElementInfo — реакция предмета на один элемент: уровень сопротивления
// и флаги ignore/hates.
type ElementInfo struct {
	ResLevel int
	Flags    uint8
}

// grabElementFlag recognises IGNORE_<elem> / HATES_<elem> tokens and sets the
// matching bit. The split is on the first underscore only.
func grabElementFlag(info []ElementInfo, token string) bool {
	prefix, suffix, ok := strings.Cut(token, "_")
	if !ok {
		return false
	}
	elem := ElementByName(suffix)
	if elem < 0 {
		return false
	}
	switch prefix {
	case "IGNORE":
		info[elem].Flags |= ElIgnore
	case "HATES":
		info[elem].Flags |= ElHates
	default:
		return false
	}
	return true
}
