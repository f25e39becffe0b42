package config

// The maps below are keyed by script property names and are pushed into
// running scripts on hot reload. Numbers are float64, as the script
// appliers expect from decoded data.

func (p PlayerConfig) ControllerProps() map[string]any {
	return map[string]any{
		"speed":         float64(p.Speed),
		"rotationSpeed": float64(p.RotationSpeed),
	}
}

func (p PlayerConfig) HealthProps() map[string]any {
	return map[string]any{
		"maxHealth":               float64(p.MaxHealth),
		"fadeDuration":            float64(p.FadeDuration),
		"invulnerabilityDuration": float64(p.InvulnerabilityDuration),
		"gameOverDelay":           float64(p.GameOverDelay),
	}
}

func (e EnemyConfig) Props() map[string]any {
	return map[string]any{
		"chaseRange":       float64(e.ChaseRange),
		"patrolSpeed":      float64(e.PatrolSpeed),
		"chaseSpeed":       float64(e.ChaseSpeed),
		"waitAtPoint":      float64(e.WaitAtPoint),
		"suspiciousTime":   float64(e.SuspiciousTime),
		"arrivalThreshold": float64(e.ArrivalThreshold),
		"contactCooldown":  float64(e.ContactCooldown),
	}
}

func (m MinigameConfig) Props() map[string]any {
	return map[string]any{
		"maxCollectibles": float64(m.MaxCollectibles),
	}
}
