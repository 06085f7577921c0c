package jetlag

import (
	"github.com/oliverbestmann/jetlag/gm"
	"github.com/oliverbestmann/jetlag/internal/set"
)

// RoleKind is the closed set of roles an actor can play.
type RoleKind uint8

const (
	RoleNone RoleKind = iota
	RoleHero
	RoleEnemy
	RoleObstacle
	RoleDestination
	RoleGoodie
	RoleSensor
	RoleProjectile

	roleKindCount
)

var roleKindNames = [roleKindCount]string{
	RoleNone:        "None",
	RoleHero:        "Hero",
	RoleEnemy:       "Enemy",
	RoleObstacle:    "Obstacle",
	RoleDestination: "Destination",
	RoleGoodie:      "Goodie",
	RoleSensor:      "Sensor",
	RoleProjectile:  "Projectile",
}

func (k RoleKind) String() string {
	if k >= roleKindCount {
		return "Unknown"
	}

	return roleKindNames[k]
}

// Contact holds the geometry of a contact. It is captured while the physics
// world is stepping, so it stays valid when the handlers run later on.
type Contact struct {
	Normal gm.Vec
	Points []gm.Vec
}

// Role describes how an actor reacts to collisions. Not every field is
// meaningful for every kind.
type Role struct {
	Kind  RoleKind
	Rules *CollisionRules

	// Strength of a hero or an enemy.
	Strength int

	// Damage dealt by an enemy or a projectile.
	Damage int

	// An invincible hero defeats every enemy it touches.
	Invincible bool

	// Number of heroes a destination accepts.
	Capacity int
	holding  int

	// Number of goodies a hero has collected.
	Collected int

	// Trigger is called on obstacles, sensors, goodies and destinations when
	// another actor interacts with them.
	Trigger func(self, other *Actor, contact Contact)

	// OnDefeated is called after the actor was defeated and removed.
	OnDefeated func(self, by *Actor)
}

// Holding returns the number of heroes that arrived at a destination.
func (r *Role) Holding() int {
	return r.holding
}

// Property is a tag used in CollisionRules.
type Property string

// CollisionRules describe which other actors an actor passes through.
type CollisionRules struct {
	ignores    set.Set[Property]
	properties set.Set[Property]
}

// NewCollisionRules creates a new rule set. An actor ignores every actor that
// advertises one of the ignored properties.
func NewCollisionRules(ignores, properties []Property) *CollisionRules {
	return &CollisionRules{
		ignores:    set.Of(ignores...),
		properties: set.Of(properties...),
	}
}

// Ignores returns true if r ignores any of the properties of other.
func (r *CollisionRules) Ignores(other *CollisionRules) bool {
	return r.ignores.Intersects(&other.properties)
}

// Exempt returns true if either role ignores the other one.
func Exempt(a, b *Role) bool {
	if a == nil || b == nil || a.Rules == nil || b.Rules == nil {
		return false
	}

	return a.Rules.Ignores(b.Rules) || b.Rules.Ignores(a.Rules)
}

// CollideFunc reacts to self touching other. It returns true if it handled
// the collision.
type CollideFunc func(self, other *Actor, contact Contact) bool

var collideTable = [roleKindCount]CollideFunc{
	RoleHero:       heroCollide,
	RoleEnemy:      enemyCollide,
	RoleProjectile: projectileCollide,
}

// Collide runs the collision handler of the role of self.
// Passive roles, actors without a role and disabled actors never handle a collision.
func Collide(self, other *Actor, contact Contact) bool {
	if self.Role == nil || other.Role == nil || !self.Enabled() || !other.Enabled() {
		return false
	}

	kind := self.Role.Kind
	if kind >= roleKindCount || collideTable[kind] == nil {
		return false
	}

	return collideTable[kind](self, other, contact)
}

func heroCollide(hero, other *Actor, contact Contact) bool {
	switch other.Role.Kind {
	case RoleEnemy:
		if hero.Role.Invincible {
			defeat(other, hero)
			return true
		}

		hero.Role.Strength -= other.Role.Damage
		if hero.Role.Strength <= 0 {
			defeat(hero, other)
		}

		return true

	case RoleGoodie:
		hero.Role.Collected += 1
		trigger(other, hero, contact)
		other.Remove()
		return true

	case RoleDestination:
		destination := other.Role
		if destination.holding >= destination.Capacity {
			return false
		}

		destination.holding += 1
		trigger(other, hero, contact)
		hero.Remove()
		return true

	case RoleObstacle, RoleSensor:
		trigger(other, hero, contact)
		return true
	}

	return false
}

func enemyCollide(enemy, other *Actor, contact Contact) bool {
	switch other.Role.Kind {
	case RoleObstacle:
		trigger(other, enemy, contact)
		return true

	case RoleProjectile:
		projectileHit(other, enemy)
		return true
	}

	return false
}

func projectileCollide(projectile, other *Actor, contact Contact) bool {
	switch other.Role.Kind {
	case RoleEnemy:
		projectileHit(projectile, other)
		return true

	case RoleObstacle:
		trigger(other, projectile, contact)
		projectile.Remove()
		return true
	}

	return false
}

func projectileHit(projectile, enemy *Actor) {
	enemy.Role.Strength -= projectile.Role.Damage
	if enemy.Role.Strength <= 0 {
		defeat(enemy, projectile)
	}

	projectile.Remove()
}

func trigger(self, other *Actor, contact Contact) {
	if self.Role.Trigger != nil {
		self.Role.Trigger(self, other, contact)
	}
}

func defeat(actor, by *Actor) {
	actor.Remove()

	if actor.Role.OnDefeated != nil {
		actor.Role.OnDefeated(actor, by)
	}
}
