package entity

// Element is the elemental affinity of players, walls, items and projectiles.
type Element uint8

const (
	ElementNone Element = iota
	ElementFire
	ElementWater
)

// Opposite returns the element that cancels e.
func (e Element) Opposite() Element {
	switch e {
	case ElementFire:
		return ElementWater
	case ElementWater:
		return ElementFire
	}
	return ElementNone
}

func (e Element) String() string {
	switch e {
	case ElementFire:
		return "fire"
	case ElementWater:
		return "water"
	}
	return "none"
}

// DamageKind classifies a hit so targets can be immune to some of them.
type DamageKind uint8

const (
	DamagePhysical DamageKind = iota
	DamageFire
	DamageWater
	DamageExplosion
)

// DamageOf returns the kind of damage dealt by an element.
func DamageOf(e Element) DamageKind {
	switch e {
	case ElementFire:
		return DamageFire
	case ElementWater:
		return DamageWater
	}
	return DamagePhysical
}
