package units

// Resources represents an amount of metal, crystal and deuterium.
type Resources struct {
	Metal     int64 `json:"metal"`
	Crystal   int64 `json:"crystal"`
	Deuterium int64 `json:"deuterium"`
}

// Add returns the sum of two resource amounts.
func (r Resources) Add(other Resources) Resources {
	return Resources{
		Metal:     r.Metal + other.Metal,
		Crystal:   r.Crystal + other.Crystal,
		Deuterium: r.Deuterium + other.Deuterium,
	}
}

// Multiply scales every resource by factor.
func (r Resources) Multiply(factor int64) Resources {
	return Resources{
		Metal:     r.Metal * factor,
		Crystal:   r.Crystal * factor,
		Deuterium: r.Deuterium * factor,
	}
}

// Sum returns metal + crystal + deuterium.
func (r Resources) Sum() int64 {
	return r.Metal + r.Crystal + r.Deuterium
}

// IsNegative reports whether any resource is below zero.
func (r Resources) IsNegative() bool {
	return r.Metal < 0 || r.Crystal < 0 || r.Deuterium < 0
}
