// Package content compiles the declarative gamedata text files into
// immutable, index-stable in-memory catalogs. Tables load in a fixed
// dependency order so that later tables resolve names and codes against
// earlier ones by frozen index.
package content

import (
	"github.com/udisondev/mangod/internal/dice"
	"github.com/udisondev/mangod/internal/parse"
)

// Projection — описание одного типа урона/воздействия. Первые ElemMax
// записей обязаны совпадать с каноническим порядком элементов.
type Projection struct {
	Index       int
	Code        string
	Name        string
	Type        string
	Desc        string
	BlindDesc   string
	LashDesc    string
	Numerator   int
	Denominator parse.Random
	Divisor     int
	DamageCap   int
	MsgType     string
	Obvious     bool
	Color       int
	PvPFlags    Bitset
	Threat      string
	ThreatFlag  int
}

// Attack flags for projections in player-versus-player combat.
const (
	AttSave = iota + 1
	AttDamage
	AttNonPhys
	AttRaw
)

var attackFlagNames = []string{"SAVE", "DAMAGE", "NON_PHYS", "RAW"}

// ObjectBase holds the per-category defaults. The table is indexed directly
// by tval, not by declaration order.
type ObjectBase struct {
	Tval      int
	Name      string
	Attr      int
	BreakPerc int
	MaxStack  int
	NumSvals  int
	Flags     Bitset
	KindFlags Bitset
	El        [ElemMax]ElementInfo
}

// Effect is one node of a record's linked effect list.
type Effect struct {
	Index    int
	Subtype  int
	Radius   int
	Other    int
	Y, X     int
	Dice     *dice.Dice
	SelfMsg  string
	OtherMsg string
	Next     *Effect
}

// ObjectKind is the template for every item of one (tval, sval) pair.
type ObjectKind struct {
	Name string
	Text string
	Kidx int

	Tval int
	Sval int
	Base *ObjectBase

	Glyph rune
	Attr  int

	Level  int
	Weight int
	Cost   int

	AllocProb int
	AllocMin  int
	AllocMax  int

	DD, DS int
	ToH    parse.Random
	ToD    parse.Random
	AC     int
	ToA    parse.Random

	Charge      parse.Random
	GenMultProb int
	StackSize   parse.Random
	Pval        parse.Random
	Time        parse.Random

	Flags     Bitset
	KindFlags Bitset
	El        [ElemMax]ElementInfo
	Modifiers [ModMax]parse.Random

	// Sized by the slay/brand/curse tables, allocated on first reference.
	Slays  []bool
	Brands []bool
	Curses []int

	Effect     *Effect
	Activation *Activation
}

// PossItem is one kind cross-reference in an ego or power-calc list.
type PossItem struct {
	Kidx int
	Next *PossItem
}

// EgoItem is a named overlay on top of compatible kinds.
type EgoItem struct {
	Name string
	Text string
	Eidx int

	Cost   int
	Rating int

	AllocProb int
	AllocMin  int
	AllocMax  int

	ToH parse.Random
	ToD parse.Random
	ToA parse.Random

	MinToH int
	MinToD int
	MinToA int

	Modifiers    [ModMax]parse.Random
	MinModifiers [ModMax]int

	Flags     Bitset
	KindFlags Bitset
	El        [ElemMax]ElementInfo

	Slays  []bool
	Brands []bool
	Curses []int

	PossItems  *PossItem
	Activation *Activation
	Time       parse.Random
}

// Artifact is a unique named item bound to one base kind.
type Artifact struct {
	Name   string
	Text   string
	AltMsg string
	Aidx   int

	Tval int
	Sval int

	Level  int
	Weight int

	AllocProb int
	AllocMin  int
	AllocMax  int

	DD, DS int
	ToH    int
	ToD    int
	AC     int
	ToA    int

	Flags     Bitset
	El        [ElemMax]ElementInfo
	Modifiers [ModMax]int

	Slays  []bool
	Brands []bool
	Curses []int

	Activation *Activation
	Time       parse.Random
}

// Object is the synthetic item payload owned by a curse: it carries the
// combat modifiers, flags and effects the curse applies to its host.
type Object struct {
	ToH, ToD, ToA int
	Flags         Bitset
	El            [ElemMax]ElementInfo
	Modifiers     [ModMax]int
	Effect        *Effect
	Time          parse.Random
	Kind          *ObjectKind
	Sval          int
}

// Curse is a named penalty bundle attachable to items.
type Curse struct {
	Name          string
	Desc          string
	Conflict      string
	ConflictFlags Bitset
	Poss          []bool
	Obj           *Object
}

// Activation is a triggerable effect bundle.
type Activation struct {
	Index   int
	Name    string
	Desc    string
	Message string
	Aim     bool
	Power   int
	Effect  *Effect

	// After materialization Next points into the activation array itself:
	// entry i links to entry i+1, the last entry to nil.
	Next *Activation
}

// Slay is a named combat bonus against one class of monsters, keyed by a
// stable code. It targets either a race flag or a monster base, never both.
type Slay struct {
	Code       string
	Name       string
	RaceFlag   int
	Base       string
	Multiplier int
	Power      int
	MeleeVerb  string
	RangeVerb  string
	EspChance  int
	EspFlag    int
}

// Brand is a named elemental combat bonus keyed by a stable code.
type Brand struct {
	Code             string
	Name             string
	Verb             string
	Multiplier       int
	Power            int
	ResistFlag       int
	ActiveVerb       string
	ActiveVerbPlural string
	DescAdjective    string
}

// Object property classification.
const (
	PropNone = iota
	PropStat
	PropMod
	PropFlag
	PropIgnore
	PropResist
	PropVuln
	PropImm
)

// Object property subtypes.
const (
	SubNone = iota
	SubSustain
	SubProtection
	SubMisc
	SubLight
	SubMelee
	SubBad
	SubDig
	SubThrow
	SubOther
	SubEsp
)

// How a property becomes known to the player.
const (
	IDNormal = iota
	IDTimed
	IDWield
)

// ObjProperty classifies one object property for description and pricing.
type ObjProperty struct {
	Name      string
	Type      int
	Subtype   int
	IDType    int
	Index     int
	Power     int
	Mult      int
	TypeMult  [TvMax]int
	Adjective string
	NegAdj    string
	Msg       string
	Desc      string
	ShortDesc string
}

// Power calculation combination operators.
const (
	PowerCalcNone = iota
	PowerCalcAdd
	PowerCalcAddIfPositive
	PowerCalcSquareAddIfPositive
	PowerCalcMultiply
	PowerCalcDivide
)

// PowerIterate names a property class a calculation runs over.
type PowerIterate struct {
	PropertyType int
	Max          int
}

// PowerCalc is one named term of the derived object-power formula.
type PowerCalc struct {
	Name      string
	ApplyTo   string
	Operation int
	Iterate   PowerIterate
	Dice      *dice.Dice
	PossItems *PossItem
}
