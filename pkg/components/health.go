package components

// HealthComponent stores hit points for anything projectiles can destroy
// (destructible blocks, power-ups, enemies).
type HealthComponent struct {
	CurrentHealth int
	MaxHealth     int
}

// TakeDamage subtracts amount, floors at zero and reports whether the
// entity just died.
func (h *HealthComponent) TakeDamage(amount int) bool {
	h.CurrentHealth -= amount
	if h.CurrentHealth <= 0 {
		h.CurrentHealth = 0
		return true
	}
	return false
}

// Ratio returns current/max health in [0, 1].
func (h *HealthComponent) Ratio() float64 {
	if h.MaxHealth <= 0 {
		return 0
	}
	return float64(h.CurrentHealth) / float64(h.MaxHealth)
}
