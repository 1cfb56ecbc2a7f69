package content

// Item categories (tval). The numeric values are array indices into the
// object-base table and must stay dense.
const (
	TvNone = iota
	TvChest
	TvShot
	TvArrow
	TvBolt
	TvBow
	TvDigging
	TvHafted
	TvPolearm
	TvSword
	TvBoots
	TvGloves
	TvHelm
	TvCrown
	TvShield
	TvCloak
	TvSoftArmor
	TvHardArmor
	TvDragonArmor
	TvLight
	TvAmulet
	TvRing
	TvStaff
	TvWand
	TvRod
	TvScroll
	TvPotion
	TvFlask
	TvFood
	TvMushroom
	TvMagicBook
	TvPrayerBook
	TvNatureBook
	TvShadowBook
	TvOtherBook
	TvGold

	TvMax
)

var tvalNames = [TvMax]string{
	TvNone:        "none",
	TvChest:       "chest",
	TvShot:        "shot",
	TvArrow:       "arrow",
	TvBolt:        "bolt",
	TvBow:         "bow",
	TvDigging:     "digger",
	TvHafted:      "hafted",
	TvPolearm:     "polearm",
	TvSword:       "sword",
	TvBoots:       "boots",
	TvGloves:      "gloves",
	TvHelm:        "helm",
	TvCrown:       "crown",
	TvShield:      "shield",
	TvCloak:       "cloak",
	TvSoftArmor:   "soft armor",
	TvHardArmor:   "hard armor",
	TvDragonArmor: "dragon armor",
	TvLight:       "light",
	TvAmulet:      "amulet",
	TvRing:        "ring",
	TvStaff:       "staff",
	TvWand:        "wand",
	TvRod:         "rod",
	TvScroll:      "scroll",
	TvPotion:      "potion",
	TvFlask:       "flask",
	TvFood:        "food",
	TvMushroom:    "mushroom",
	TvMagicBook:   "magic book",
	TvPrayerBook:  "prayer book",
	TvNatureBook:  "nature book",
	TvShadowBook:  "shadow book",
	TvOtherBook:   "other book",
	TvGold:        "gold",
}

// TvalFromName resolves a category symbol to its index, -1 if unknown.
func TvalFromName(name string) int {
	for i, n := range tvalNames {
		if n == name {
			return i
		}
	}
	return -1
}

// TvalName returns the symbolic name of a category.
func TvalName(tval int) string {
	if tval < 0 || tval >= TvMax {
		return ""
	}
	return tvalNames[tval]
}
