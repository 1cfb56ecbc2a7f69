package content

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/udisondev/mangod/internal/parse"
)

// Catalog — собранные таблицы игрового контента. После Load таблицы
// считаются неизменяемыми: остальной сервер читает их как есть.
type Catalog struct {
	Bases        []ObjectBase
	Projections  []Projection
	Slays        []Slay
	Brands       []Brand
	Curses       []Curse
	Activations  []Activation
	Properties   []ObjProperty
	Calculations []PowerCalc
	Kinds        []ObjectKind
	Egos         []EgoItem
	Artifacts    []Artifact

	// Generic kinds resolved at the end of the artifact stage.
	UnknownItemKind *ObjectKind
	UnknownGoldKind *ObjectKind
	PileKind        *ObjectKind
	CurseObjectKind *ObjectKind
}

// Load compiles every content file under dir into a fresh catalog. Stages
// run in dependency order: later tables resolve codes and names against
// tables already frozen by earlier stages. Any directive error aborts the
// whole load.
func Load(dir string) (*Catalog, error) {
	c := &Catalog{}

	kb := &objBaseBuilder{}
	if err := newObjBaseParser(kb).ParseFile(filepath.Join(dir, "object_base.txt")); err != nil {
		return nil, fmt.Errorf("object_base: %w", err)
	}
	c.Bases = kb.finish()
	slog.Info("loaded object bases", "count", len(c.Bases))

	pb := &projectionBuilder{}
	if err := newProjectionParser(pb).ParseFile(filepath.Join(dir, "projection.txt")); err != nil {
		return nil, fmt.Errorf("projection: %w", err)
	}
	c.Projections = pb.finish()
	slog.Info("loaded projections", "count", len(c.Projections))

	sb := &slayBuilder{}
	if err := newSlayParser(sb).ParseFile(filepath.Join(dir, "slay.txt")); err != nil {
		return nil, fmt.Errorf("slay: %w", err)
	}
	c.Slays = sb.finish()
	slog.Info("loaded slays", "count", len(c.Slays))

	bb := &brandBuilder{}
	if err := newBrandParser(bb).ParseFile(filepath.Join(dir, "brand.txt")); err != nil {
		return nil, fmt.Errorf("brand: %w", err)
	}
	c.Brands = bb.finish()
	slog.Info("loaded brands", "count", len(c.Brands))

	cb := &curseBuilder{cat: c}
	if err := newCurseParser(cb).ParseFile(filepath.Join(dir, "curse.txt")); err != nil {
		return nil, fmt.Errorf("curse: %w", err)
	}
	c.Curses = cb.finish()
	slog.Info("loaded curses", "count", len(c.Curses))

	ab := &activationBuilder{cat: c}
	if err := newActivationParser(ab).ParseFile(filepath.Join(dir, "activation.txt")); err != nil {
		return nil, fmt.Errorf("activation: %w", err)
	}
	c.Activations = ab.finish()
	slog.Info("loaded activations", "count", len(c.Activations))

	prb := &propertyBuilder{}
	if err := newPropertyParser(prb).ParseFile(filepath.Join(dir, "object_property.txt")); err != nil {
		return nil, fmt.Errorf("object_property: %w", err)
	}
	c.Properties = prb.finish()
	slog.Info("loaded object properties", "count", len(c.Properties))

	pwb := &powerBuilder{cat: c}
	if err := newPowerParser(pwb).ParseFile(filepath.Join(dir, "object_power.txt")); err != nil {
		return nil, fmt.Errorf("object_power: %w", err)
	}
	c.Calculations = pwb.finish()
	slog.Info("loaded power calculations", "count", len(c.Calculations))

	ob := &objectBuilder{cat: c}
	if err := newObjectParser(ob).ParseFile(filepath.Join(dir, "object.txt")); err != nil {
		return nil, fmt.Errorf("object: %w", err)
	}
	c.Kinds = ob.finish()
	slog.Info("loaded object kinds", "count", len(c.Kinds))

	eb := &egoBuilder{cat: c}
	if err := newEgoParser(eb).ParseFile(filepath.Join(dir, "ego_item.txt")); err != nil {
		return nil, fmt.Errorf("ego_item: %w", err)
	}
	c.Egos = eb.finish()
	slog.Info("loaded ego items", "count", len(c.Egos))

	arb := &artifactBuilder{cat: c}
	if err := newArtifactParser(arb).ParseFile(filepath.Join(dir, "artifact.txt")); err != nil {
		return nil, fmt.Errorf("artifact: %w", err)
	}
	c.Artifacts = arb.finish()
	slog.Info("loaded artifacts", "count", len(c.Artifacts)-artifactReserved)

	// The kind table is final now. Resolve the object-like generic kinds and
	// hand every curse payload its backing kind.
	c.UnknownItemKind = c.LookupKind(TvNone, c.LookupSval(TvNone, "<unknown item>"))
	c.UnknownGoldKind = c.LookupKind(TvNone, c.LookupSval(TvNone, "<unknown treasure>"))
	c.PileKind = c.LookupKind(TvNone, c.LookupSval(TvNone, "<pile>"))
	c.CurseObjectKind = c.LookupKind(TvNone, c.LookupSval(TvNone, "<curse object>"))
	c.writeCurseKinds()

	return c, nil
}

// writeCurseKinds back-fills each curse payload's kind once the kind table
// is frozen.
func (c *Catalog) writeCurseKinds() {
	sval := c.LookupSval(TvNone, "<curse object>")
	for i := range c.Curses {
		if c.Curses[i].Obj == nil {
			continue
		}
		c.Curses[i].Obj.Kind = c.CurseObjectKind
		c.Curses[i].Obj.Sval = sval
	}
}

// Close tears the catalog down in reverse load order. Безопасно звать
// повторно: пустой каталог — no-op.
func (c *Catalog) Close() {
	if c == nil {
		return
	}
	c.UnknownItemKind = nil
	c.UnknownGoldKind = nil
	c.PileKind = nil
	c.CurseObjectKind = nil
	c.Artifacts = nil
	c.Egos = nil
	c.Kinds = nil
	c.Calculations = nil
	c.Properties = nil
	c.Activations = nil
	c.Curses = nil
	c.Brands = nil
	c.Slays = nil
	c.Projections = nil
	c.Bases = nil
}

// ProjectionByCode resolves a projection code to its index, -1 if unknown.
func (c *Catalog) ProjectionByCode(code string) int {
	for i := range c.Projections {
		if c.Projections[i].Code == code {
			return i
		}
	}
	return -1
}

func (c *Catalog) slayByCode(code string) int {
	for i := range c.Slays {
		if c.Slays[i].Code == code {
			return i
		}
	}
	return -1
}

func (c *Catalog) brandByCode(code string) int {
	for i := range c.Brands {
		if c.Brands[i].Code == code {
			return i
		}
	}
	return -1
}

// lookupCurse returns the index of a curse, or the table length when the
// name is unknown. Callers test against len(c.Curses), never a negative
// sentinel.
func (c *Catalog) lookupCurse(name string) int {
	for i := range c.Curses {
		if c.Curses[i].Name == name {
			return i
		}
	}
	return len(c.Curses)
}

// FindActivation resolves an activation by name. A miss is nil, not an
// error: callers treat it as "no activation".
func (c *Catalog) FindActivation(name string) *Activation {
	for i := range c.Activations {
		if c.Activations[i].Name == name {
			return &c.Activations[i]
		}
	}
	return nil
}

// normalizeKindName strips the article and plural markers kind names carry
// for in-game description ("& Wooden Torch~" matches "Wooden Torch").
func normalizeKindName(s string) string {
	s = strings.ReplaceAll(s, "~", "")
	s = strings.TrimPrefix(s, "& ")
	return s
}

// LookupSval resolves a subtype name within a category, -1 if unknown.
func (c *Catalog) LookupSval(tval int, name string) int {
	for i := range c.Kinds {
		k := &c.Kinds[i]
		if k.Tval == tval && normalizeKindName(k.Name) == name {
			return k.Sval
		}
	}
	return -1
}

// LookupKind returns the kind of a (category, subtype) pair, nil if absent.
func (c *Catalog) LookupKind(tval, sval int) *ObjectKind {
	for i := range c.Kinds {
		if c.Kinds[i].Tval == tval && c.Kinds[i].Sval == sval {
			return &c.Kinds[i]
		}
	}
	return nil
}

func (c *Catalog) lookupKidx(tval, sval int) int {
	if k := c.LookupKind(tval, sval); k != nil {
		return k.Kidx
	}
	return -1
}

// writeDummyObjectRecord grows the kind table by one synthesized entry for
// an artifact whose base (category, subtype) has no ordinary item. The new
// kind claims the category's next sequential subtype id; already issued
// kind indices stay valid across the growth.
func (c *Catalog) writeDummyObjectRecord(a *Artifact, name string) error {
	if a.Tval < 0 || a.Tval >= len(c.Bases) {
		return parse.NewError(parse.Internal)
	}
	base := &c.Bases[a.Tval]
	base.NumSvals++

	dummy := ObjectKind{
		Name:   "& " + name + "~",
		Kidx:   len(c.Kinds),
		Tval:   a.Tval,
		Sval:   base.NumSvals,
		Base:   base,
		Glyph:  '*',
		Attr:   ColorRed,
		Level:  -1,
		Weight: -1,
	}
	dummy.KindFlags.On(KfInstaArt)

	c.Kinds = append(c.Kinds, dummy)
	a.Sval = dummy.Sval
	return nil
}
