package entity

import (
	"testing"

	"icoop/internal/gamemap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerTurnsBeforeStepping(t *testing.T) {
	w := newWorld(t, 8, 6)
	p, k := w.player(2, 2, ElementFire, gamemap.Down)
	k.hold(p.Bindings.Right)

	w.step(1)
	assert.Equal(t, gamemap.Right, p.Orientation())
	assert.Equal(t, pt(2, 2), p.Position())

	w.step(1)
	assert.True(t, p.IsMoving())
	w.step(1)
	assert.Equal(t, pt(3, 2), p.Position())
	assert.True(t, p.Arrived())

	k.release()
	w.step(2)
	assert.Equal(t, pt(4, 2), p.Position())
	assert.False(t, p.IsMoving())
}

func TestPlayersBlockEachOther(t *testing.T) {
	w := newWorld(t, 8, 6)
	a, k := w.player(2, 2, ElementFire, gamemap.Right)
	w.player(3, 2, ElementWater, gamemap.Up)
	k.hold(a.Bindings.Right)

	w.step(3)
	assert.Equal(t, pt(2, 2), a.Position())
}

func TestPlayerDropsBomb(t *testing.T) {
	w := newWorld(t, 8, 6)
	p, k := w.player(2, 2, ElementFire, gamemap.Right)
	p.Inventory.Add(ItemBomb, 1)
	p.Inventory.Cycle()

	k.tap(p.Bindings.UseItem)
	w.step(2)
	bombs := bombsIn(w)
	require.Len(t, bombs, 1)
	assert.Equal(t, pt(3, 2), bombs[0].Position())
	assert.Equal(t, ExplosiveArmed, bombs[0].State())
	assert.Zero(t, p.Inventory.Count(ItemBomb))
	assert.Equal(t, ItemSword, p.Inventory.Current())
}

func TestPlayerCannotDropBombIntoWall(t *testing.T) {
	w := newWorld(t, 5, 5)
	p, k := w.player(1, 1, ElementFire, gamemap.Up)
	p.Inventory.Add(ItemBomb, 1)
	p.Inventory.Cycle()

	k.tap(p.Bindings.UseItem)
	w.step(2)
	assert.Empty(t, bombsIn(w))
	assert.Equal(t, 1, p.Inventory.Count(ItemBomb))
}

func TestSwitchItem(t *testing.T) {
	w := newWorld(t, 5, 5)
	p, k := w.player(1, 1, ElementFire, gamemap.Up)
	p.Inventory.Add(ItemBomb, 2)

	k.tap(p.Bindings.SwitchItem)
	w.step(1)
	assert.Equal(t, ItemBomb, p.Inventory.Current())
}

func TestElementalWall(t *testing.T) {
	w := newWorld(t, 9, 7)
	var sig Switch
	sig.Set(true)
	wall := NewElementalWall(w.env, pt(4, 2), ElementFire, &sig)
	fire, _ := w.player(3, 3, ElementFire, gamemap.Up)
	water, k := w.player(3, 2, ElementWater, gamemap.Right)
	w.add(wall)
	w.step(1)

	cell := []gamemap.Point{pt(4, 2)}
	assert.True(t, w.area.CanEnter(fire, cell))
	assert.False(t, w.area.CanEnter(water, cell))
	assert.False(t, w.area.CanEnter(NewFlame(w.env, pt(3, 2), gamemap.Right), cell))

	k.hold(water.Bindings.Right)
	w.step(1)
	hp, _ := water.Health()
	assert.Equal(t, PlayerMaxHealth-1, hp, "pushing into the wall hurts")
	assert.Equal(t, pt(3, 2), water.Position())
	k.release()

	sig.Set(false)
	assert.True(t, w.area.CanEnter(water, cell))
	_, visible := wall.Sprite()
	assert.False(t, visible)
}

func TestOrbCollection(t *testing.T) {
	w := newWorld(t, 9, 7)
	orb := NewOrb(w.env, pt(3, 2), ElementWater)
	fire, _ := w.player(1, 1, ElementFire, gamemap.Up)
	water, _ := w.player(1, 3, ElementWater, gamemap.Up)
	w.add(orb)
	w.step(1)

	assert.False(t, orb.Collect(fire))
	assert.False(t, orb.Collect(fire))
	assert.Equal(t, 1, w.env.Bus.Len(), "the wrong-element dialog is shown once")

	water.SetPosition(pt(2, 2))
	water.SetOrientation(gamemap.Right)
	water.Controls.(*keys).hold(water.Bindings.Right)
	w.step(2)
	assert.True(t, orb.IsOn())
	assert.False(t, w.area.Registered(orb))
	ev, ok := w.last(EventPickup)
	require.True(t, ok)
	assert.Equal(t, ItemOrb, ev.Item)
}

func TestStaffPickup(t *testing.T) {
	w := newWorld(t, 9, 7)
	staff := NewStaff(w.env, pt(3, 2), ElementFire)
	p, k := w.player(2, 2, ElementFire, gamemap.Right)
	w.add(staff)

	k.hold(p.Bindings.Right)
	w.step(2)
	assert.Equal(t, pt(2, 2), p.Position(), "staffs are picked up, not walked over")
	k.release()

	k.tap(p.Bindings.Interact)
	w.step(1)
	assert.True(t, staff.IsOn())
	assert.True(t, p.Inventory.Has(ItemFireStaff))
}

func TestHeart(t *testing.T) {
	env := NewEnv(1)
	h := NewHeart(env, pt(1, 1))
	p := NewPlayer(env, "p", ElementFire, nil, fireKeys())

	assert.False(t, h.Consume(p), "full health leaves the heart")
	p.Hurt(DamagePhysical, 5)
	assert.True(t, h.Consume(p))
	hp, _ := p.Health()
	assert.Equal(t, PlayerMaxHealth-5+HeartHealing, hp)
}

func TestPlayerDeathAndRevive(t *testing.T) {
	env := NewEnv(1)
	p := NewPlayer(env, "p", ElementWater, nil, fireKeys())

	assert.True(t, p.Hurt(DamageFire, PlayerMaxHealth))
	assert.True(t, p.Dead())
	assert.False(t, p.TakeCellSpace())
	kinds := []EventKind{}
	for _, e := range env.Bus.Drain() {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []EventKind{EventHurt, EventPlayerDied}, kinds)

	p.Revive()
	hp, maxHP := p.Health()
	assert.False(t, p.Dead())
	assert.Equal(t, maxHP, hp)
}

func TestFirePlayerIgnoresFire(t *testing.T) {
	p := NewPlayer(NewEnv(1), "p", ElementFire, nil, fireKeys())
	assert.False(t, p.Hurt(DamageFire, 3))
	assert.True(t, p.Hurt(DamageWater, 3))
	assert.True(t, p.Immune())
	assert.False(t, p.Hurt(DamageWater, 3))
}

func TestCenterOfMass(t *testing.T) {
	env := NewEnv(1)
	a := NewPlayer(env, "a", ElementFire, nil, fireKeys())
	b := NewPlayer(env, "b", ElementWater, nil, fireKeys())
	a.SetPosition(pt(2, 2))
	b.SetPosition(pt(5, 4))

	c := NewCenterOfMass([]*Player{a, b})
	assert.Equal(t, pt(4, 3), c.Position())

	b.Hurt(DamagePhysical, PlayerMaxHealth)
	c.Update(0)
	assert.Equal(t, pt(2, 2), c.Position(), "dead players do not pull the camera")

	assert.Equal(t, gamemap.Point{}, MeanPosition(nil))
}
