package barneshut

// NaiveForce sums the force of every particle on target, the O(N) reference
// for a single CalculateForce.
func NaiveForce(particles []Particle, target Particle, g float64) float64 {
	force := 0.0
	for _, other := range particles {
		force += target.Force(other, g)
	}
	return force
}

// NaiveForces computes NaiveForce for each particle against all others.
func NaiveForces(particles []Particle, g float64) []float64 {
	forces := make([]float64, len(particles))
	for i, particle := range particles {
		forces[i] = NaiveForce(particles, particle, g)
	}
	return forces
}
