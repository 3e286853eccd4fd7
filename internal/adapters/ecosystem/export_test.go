package ecosystem

// SetRoll replaces the maintenance dice of h.
func SetRoll(h *Homebrew, roll func(n int) int) {
	h.roll = roll
}
