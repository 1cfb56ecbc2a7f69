package content

import "strings"

// splitFlagTokens splits a pipe- or space-delimited token list without
// modifying the source string.
func splitFlagTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == '|' })
}

// Flag namespaces. Lookups return 1-based flag numbers so that zero means
// "no flag", mirroring the unset state of single-flag fields (slay race
// flags, brand resist flags). Bit sets store flag n at bit n-1.

// Object flags.
const (
	OfSustStr = iota + 1
	OfSustInt
	OfSustWis
	OfSustDex
	OfSustCon
	OfProtFear
	OfProtBlind
	OfProtConf
	OfProtStun
	OfSlowDigest
	OfFeather
	OfRegen
	OfTelepathy
	OfSeeInvis
	OfFreeAct
	OfHoldLife
	OfImpact
	OfBlessed
	OfBurnsOut
	OfTakesFuel
	OfNoFuel
	OfImpairHP
	OfImpairMana
	OfAfraid
	OfNoTeleport
	OfAggravate
	OfDrainExp
	OfStickyCurse
	OfFragile
	OfLight2
	OfLight3
	OfDigOne
	OfDigTwo
	OfDigThree
	OfExplode
	OfTrapImmune
	OfThrowing
	OfEspAnimal
	OfEspEvil
	OfEspUndead
	OfEspDemon
	OfEspOrc
	OfEspTroll
	OfEspGiant
	OfEspDragon
	OfEspAll
	OfEspRadius

	OfMax
)

var objFlagNames = []string{
	"SUST_STR", "SUST_INT", "SUST_WIS", "SUST_DEX", "SUST_CON",
	"PROT_FEAR", "PROT_BLIND", "PROT_CONF", "PROT_STUN",
	"SLOW_DIGEST", "FEATHER", "REGEN", "TELEPATHY", "SEE_INVIS",
	"FREE_ACT", "HOLD_LIFE", "IMPACT", "BLESSED",
	"BURNS_OUT", "TAKES_FUEL", "NO_FUEL",
	"IMPAIR_HP", "IMPAIR_MANA", "AFRAID", "NO_TELEPORT", "AGGRAVATE",
	"DRAIN_EXP", "STICKY", "FRAGILE",
	"LIGHT_2", "LIGHT_3", "DIG_1", "DIG_2", "DIG_3",
	"EXPLODE", "TRAP_IMMUNE", "THROWING",
	"ESP_ANIMAL", "ESP_EVIL", "ESP_UNDEAD", "ESP_DEMON", "ESP_ORC",
	"ESP_TROLL", "ESP_GIANT", "ESP_DRAGON", "ESP_ALL", "ESP_RADIUS",
}

// Kind flags.
const (
	KfRandHiRes = iota + 1
	KfRandSustain
	KfRandPower
	KfRandEsp
	KfInstaArt
	KfQuestArt
	KfEasyKnow
	KfGood
	KfShowDice
	KfShowMult
	KfShootsShots
	KfShootsArrows
	KfShootsBolts
	KfAmmoNormal
	KfAmmoMagic
	KfTwoHanded

	KfMax
)

var kindFlagNames = []string{
	"RAND_HI_RES", "RAND_SUSTAIN", "RAND_POWER", "RAND_ESP",
	"INSTA_ART", "QUEST_ART", "EASY_KNOW", "GOOD",
	"SHOW_DICE", "SHOW_MULT",
	"SHOOTS_SHOTS", "SHOOTS_ARROWS", "SHOOTS_BOLTS",
	"AMMO_NORMAL", "AMMO_MAGIC", "TWO_HANDED",
}

// Monster race flags a slay or brand may key on.
const (
	RfAnimal = iota + 1
	RfEvil
	RfUndead
	RfDemon
	RfOrc
	RfTroll
	RfGiant
	RfDragon
	RfImAcid
	RfImElec
	RfImFire
	RfImCold
	RfImPois
	RfHurtLight
	RfHurtRock
	RfHurtFire
	RfHurtCold

	RfMax
)

var raceFlagNames = []string{
	"ANIMAL", "EVIL", "UNDEAD", "DEMON", "ORC", "TROLL", "GIANT", "DRAGON",
	"IM_ACID", "IM_ELEC", "IM_FIRE", "IM_COLD", "IM_POIS",
	"HURT_LIGHT", "HURT_ROCK", "HURT_FIRE", "HURT_COLD",
}

// Monster base types a slay may target instead of a race flag. The monster
// catalog itself belongs to another subsystem; slays are validated against
// the canonical base-name table only.
var monsterBaseNames = []string{
	"ancient dragon", "ant", "bat", "bird", "canine", "centipede", "dragon",
	"dragon fly", "eye", "feline", "ghost", "giant", "hound", "humanoid",
	"hydra", "jelly", "killer beetle", "kobold", "lich", "louse", "lurker",
	"mold", "mushroom", "naga", "ogre", "person", "quadruped", "rodent",
	"skeleton", "snake", "spider", "townsfolk", "troll", "vampire", "vortex",
	"worm", "wraith", "yeek", "zombie",
}

func validMonsterBase(name string) bool {
	for _, n := range monsterBaseNames {
		if n == name {
			return true
		}
	}
	return false
}

// lookupFlag resolves token in a namespace, returning the 1-based flag
// number, or 0 when the namespace does not know the token.
func lookupFlag(names []string, token string) int {
	for i, n := range names {
		if n == token {
			return i + 1
		}
	}
	return 0
}

// Bitset is a flag bit set over one namespace.
type Bitset uint64

// On sets 1-based flag f. Zero is ignored.
func (b *Bitset) On(f int) {
	if f > 0 {
		*b |= 1 << (f - 1)
	}
}

// Has reports 1-based flag f.
func (b Bitset) Has(f int) bool {
	return f > 0 && b&(1<<(f-1)) != 0
}

// Union ORs another set in.
func (b *Bitset) Union(o Bitset) {
	*b |= o
}

// grabFlag tries token against one namespace, setting the bit on success.
func grabFlag(b *Bitset, names []string, token string) bool {
	f := lookupFlag(names, token)
	if f == 0 {
		return false
	}
	b.On(f)
	return true
}
