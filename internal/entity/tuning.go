package entity

// Frame counts assume the default 24 updates per second.
const (
	PlayerMaxHealth        = 10
	PlayerMoveFrames       = 4
	PlayerImmuneFrames     = 24
	SwordDamage            = 1
	StaffDamage            = 2
	ExplosionDamage        = 3
	FlameDamage            = 1
	BombFuseFrames         = 48
	PlateHoldFrames        = 1
	TeleporterCooldown     = 12
	ProjectileStep         = 2
	ProjectileRange        = 8
	FlameStep              = 4
	FlameLifetime          = 40
	EnemyImmuneFrames      = 12
	EnemyDyingFrames       = 12
	GrenadierHealth        = 5
	GrenadierMoveFrames    = 8
	GrenadierSight         = 5
	GrenadierThrowRange    = 3
	GrenadierLoseRange     = 10
	GrenadierIdleTurn      = 24
	GrenadierProtectFrames = BombFuseFrames + EnemyImmuneFrames
	HellSkullHealth        = 3
	HellSkullCooldown      = 72
	HeartHealing           = 3
)
