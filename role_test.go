package jetlag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollisionRules_Exempt(t *testing.T) {
	ghost := &Role{
		Kind:  RoleEnemy,
		Rules: NewCollisionRules([]Property{"wall"}, []Property{"ghost"}),
	}

	wall := &Role{
		Kind:  RoleObstacle,
		Rules: NewCollisionRules(nil, []Property{"wall"}),
	}

	hero := &Role{
		Kind:  RoleHero,
		Rules: NewCollisionRules(nil, []Property{"hero"}),
	}

	// symmetric, no matter which role comes first
	require.True(t, Exempt(ghost, wall))
	require.True(t, Exempt(wall, ghost))

	require.False(t, Exempt(hero, wall))
	require.False(t, Exempt(wall, hero))

	// roles without rules never ignore anything
	require.False(t, Exempt(ghost, &Role{Kind: RoleObstacle}))
	require.False(t, Exempt(nil, ghost))
}

func TestCollide_HeroTakesDamage(t *testing.T) {
	var defeatedBy *Actor

	hero := NewActor("hero", nil, &Role{
		Kind:     RoleHero,
		Strength: 3,
		OnDefeated: func(self, by *Actor) {
			defeatedBy = by
		},
	})

	enemy := NewActor("enemy", nil, &Role{Kind: RoleEnemy, Damage: 2})

	require.True(t, Collide(hero, enemy, Contact{}))
	require.Equal(t, 1, hero.Role.Strength)
	require.True(t, hero.Enabled())

	require.True(t, Collide(hero, enemy, Contact{}))
	require.False(t, hero.Enabled())
	require.Same(t, enemy, defeatedBy)

	// a removed hero does not react anymore
	require.False(t, Collide(hero, enemy, Contact{}))
}

func TestCollide_InvincibleHero(t *testing.T) {
	hero := NewActor("hero", nil, &Role{Kind: RoleHero, Strength: 1, Invincible: true})
	enemy := NewActor("enemy", nil, &Role{Kind: RoleEnemy, Damage: 5})

	require.True(t, Collide(hero, enemy, Contact{}))
	require.False(t, enemy.Enabled())
	require.True(t, hero.Enabled())
	require.Equal(t, 1, hero.Role.Strength)
}

func TestCollide_GoodieAndDestination(t *testing.T) {
	var triggered []string
	record := func(self, other *Actor, contact Contact) {
		triggered = append(triggered, self.Name+"<-"+other.Name)
	}

	hero := NewActor("hero", nil, &Role{Kind: RoleHero, Strength: 1})
	goodie := NewActor("coin", nil, &Role{Kind: RoleGoodie, Trigger: record})
	destination := NewActor("door", nil, &Role{Kind: RoleDestination, Capacity: 1, Trigger: record})

	require.True(t, Collide(hero, goodie, Contact{}))
	require.Equal(t, 1, hero.Role.Collected)
	require.False(t, goodie.Enabled())

	require.True(t, Collide(hero, destination, Contact{}))
	require.Equal(t, 1, destination.Role.Holding())
	require.False(t, hero.Enabled())

	// destination is full now
	other := NewActor("other", nil, &Role{Kind: RoleHero, Strength: 1})
	require.False(t, Collide(other, destination, Contact{}))
	require.True(t, other.Enabled())

	require.Equal(t, []string{"coin<-hero", "door<-hero"}, triggered)
}

func TestCollide_PassiveRolesDecline(t *testing.T) {
	obstacle := NewActor("wall", nil, &Role{Kind: RoleObstacle})
	sensor := NewActor("sensor", nil, &Role{Kind: RoleSensor})
	plain := NewActor("plain", nil, nil)
	hero := NewActor("hero", nil, &Role{Kind: RoleHero, Strength: 1})

	require.False(t, Collide(obstacle, hero, Contact{}))
	require.False(t, Collide(sensor, hero, Contact{}))
	require.False(t, Collide(plain, hero, Contact{}))
	require.False(t, Collide(hero, plain, Contact{}))
}

func TestCollide_ProjectileHitsEnemy(t *testing.T) {
	projectile := NewActor("bullet", nil, &Role{Kind: RoleProjectile, Damage: 1})
	enemy := NewActor("enemy", nil, &Role{Kind: RoleEnemy, Strength: 2})

	require.True(t, Collide(enemy, projectile, Contact{}))
	require.Equal(t, 1, enemy.Role.Strength)
	require.True(t, enemy.Enabled())
	require.False(t, projectile.Enabled())

	second := NewActor("bullet", nil, &Role{Kind: RoleProjectile, Damage: 1})
	require.True(t, Collide(second, enemy, Contact{}))
	require.False(t, enemy.Enabled())
}

func TestRoleKind_String(t *testing.T) {
	require.Equal(t, "Hero", RoleHero.String())
	require.Equal(t, "Projectile", RoleProjectile.String())
	require.Equal(t, "Unknown", RoleKind(200).String())
}
