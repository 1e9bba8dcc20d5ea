package constants

// HUD Layout
const (
	// HealthLabel prefixes the health bar
	HealthLabel = "HEALTH = "

	// HealthBarWidth is the number of cells of the health bar at full health
	HealthBarWidth = 20

	// HealthBarChar fills one unit of the health bar
	HealthBarChar = 'X'

	// ScoreLabel prefixes the score
	ScoreLabel = "SCORE "

	// ScoreOffset is the gap between the health bar and the score
	ScoreOffset = 3
)
