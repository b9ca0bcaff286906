package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the YAML view of the gameplay tables. Any subset of keys may be
// present; absent keys keep their current value.
type Tuning struct {
	Ship     ShipConfig    `yaml:"ship"`
	Bat      BatConfig     `yaml:"bat"`
	Ghost    GhostConfig   `yaml:"ghost"`
	Dragon   DragonConfig  `yaml:"dragon"`
	Boss     BossConfig    `yaml:"boss"`
	PowerUps PowerUpConfig `yaml:"power_ups"`
	Spawn    SpawnConfig   `yaml:"spawn"`
	Pools    PoolConfig    `yaml:"pools"`
	Level    LevelConfig   `yaml:"level"`
	Effects  EffectsConfig `yaml:"effects"`
}

// CurrentTuning snapshots the live tables.
func CurrentTuning() Tuning {
	return Tuning{
		Ship:     Ship,
		Bat:      Bat,
		Ghost:    Ghost,
		Dragon:   Dragon,
		Boss:     Boss,
		PowerUps: PowerUps,
		Spawn:    Spawn,
		Pools:    Pools,
		Level:    Level,
		Effects:  Effects,
	}
}

// Apply replaces the live tables with t.
func (t Tuning) Apply() {
	Ship = t.Ship
	Bat = t.Bat
	Ghost = t.Ghost
	Dragon = t.Dragon
	Boss = t.Boss
	PowerUps = t.PowerUps
	Spawn = t.Spawn
	Pools = t.Pools
	Level = t.Level
	Effects = t.Effects
}

// ParseTuning overlays a YAML document on the live tables and validates the
// result without applying it.
func ParseTuning(data []byte) (Tuning, error) {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}
	if err := validateTuning(&t); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// LoadTuning reads a tuning file and applies it. On error nothing changes.
func LoadTuning(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read tuning file: %w", err)
	}

	t, err := ParseTuning(data)
	if err != nil {
		return err
	}
	t.Apply()
	return nil
}

func validateTuning(t *Tuning) error {
	if t.Ship.MaxHealth < 1 {
		return fmt.Errorf("ship.max_health must be >= 1, got %d", t.Ship.MaxHealth)
	}
	if t.Ship.MaxStamina < 1 {
		return fmt.Errorf("ship.max_stamina must be >= 1, got %v", t.Ship.MaxStamina)
	}
	if t.Ship.FireRate <= 0 || t.Ship.BoostFireRate <= 0 {
		return fmt.Errorf("ship fire rates must be > 0, got %v and %v", t.Ship.FireRate, t.Ship.BoostFireRate)
	}
	if t.Ship.ShotCost < 0 {
		return fmt.Errorf("ship.shot_cost must be >= 0, got %v", t.Ship.ShotCost)
	}

	for name, e := range map[string]EnemyConfig{"bat": t.Bat.EnemyConfig, "ghost": t.Ghost.EnemyConfig, "dragon": t.Dragon.EnemyConfig} {
		if e.Health < 1 {
			return fmt.Errorf("%s.health must be >= 1, got %d", name, e.Health)
		}
		if e.MinSpeedY > e.MaxSpeedY {
			return fmt.Errorf("%s.min_speed_y (%v) exceeds max_speed_y (%v)", name, e.MinSpeedY, e.MaxSpeedY)
		}
	}
	if len(t.Ghost.SwaySpeeds) == 0 {
		return fmt.Errorf("ghost.sway_speeds cannot be empty")
	}
	if t.Dragon.BurstShots < 1 {
		return fmt.Errorf("dragon.burst_shots must be >= 1, got %d", t.Dragon.BurstShots)
	}

	if t.Boss.MaxHealth < 1 {
		return fmt.Errorf("boss.max_health must be >= 1, got %d", t.Boss.MaxHealth)
	}
	if t.Boss.DamagePerHit < 1 {
		return fmt.Errorf("boss.damage_per_hit must be >= 1, got %d", t.Boss.DamagePerHit)
	}
	if t.Boss.HitRateLimit < 0 || t.Boss.AttackSuppression < 0 {
		return fmt.Errorf("boss.hit_rate_limit and boss.attack_suppression must be >= 0")
	}
	if t.Boss.EnrageRatio <= 0 || t.Boss.EnrageRatio > 1 {
		return fmt.Errorf("boss.enrage_ratio must be in (0, 1], got %v", t.Boss.EnrageRatio)
	}
	if len(t.Boss.LaserAngles) == 0 {
		return fmt.Errorf("boss.laser_angles cannot be empty")
	}

	if t.PowerUps.MaxAttempts < 1 {
		return fmt.Errorf("power_ups.max_attempts must be >= 1, got %d", t.PowerUps.MaxAttempts)
	}
	for name, v := range map[string]float64{
		"boost_interval":             t.PowerUps.BoostInterval,
		"boost_fight_interval":       t.PowerUps.BoostFightInterval,
		"triple_shot_interval":       t.PowerUps.TripleShotInterval,
		"triple_shot_fight_interval": t.PowerUps.TripleShotFightInterval,
		"heal_interval":              t.PowerUps.HealInterval,
		"heal_fight_interval":        t.PowerUps.HealFightInterval,
		"shield_interval":            t.PowerUps.ShieldInterval,
	} {
		if v <= 0 {
			return fmt.Errorf("power_ups.%s must be > 0, got %v", name, v)
		}
	}

	if t.Spawn.BatWaveMinCount < 1 || t.Spawn.BatWaveMinCount > t.Spawn.BatWaveMaxCount {
		return fmt.Errorf("spawn bat wave count range [%d, %d] is invalid", t.Spawn.BatWaveMinCount, t.Spawn.BatWaveMaxCount)
	}
	if t.Spawn.BatWaveMinDelay <= 0 || t.Spawn.BatWaveMinDelay > t.Spawn.BatWaveMaxDelay {
		return fmt.Errorf("spawn bat wave delay range [%v, %v] is invalid", t.Spawn.BatWaveMinDelay, t.Spawn.BatWaveMaxDelay)
	}
	if t.Spawn.GhostMinDelay <= 0 || t.Spawn.GhostMinDelay > t.Spawn.GhostMaxDelay {
		return fmt.Errorf("spawn ghost delay range [%v, %v] is invalid", t.Spawn.GhostMinDelay, t.Spawn.GhostMaxDelay)
	}
	if t.Spawn.DragonPollInterval <= 0 {
		return fmt.Errorf("spawn.dragon_poll_interval must be > 0, got %v", t.Spawn.DragonPollInterval)
	}

	if t.Pools.PlayerProjectiles < 1 || t.Pools.HostileProjectiles < 1 || t.Pools.Dragons < 1 {
		return fmt.Errorf("pool capacities must be >= 1")
	}
	if t.Level.TransitionDuration < 0 {
		return fmt.Errorf("level.transition_duration must be >= 0, got %v", t.Level.TransitionDuration)
	}

	return nil
}
