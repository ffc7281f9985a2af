package kernel

// Distribution is the slice of gonum/stat/distuv behavior the built-in
// kernels need: a CDF and a density. Every continuous distuv distribution
// (Gamma, Exponential, Weibull, …) satisfies it.
type Distribution interface {
	CDF(x float64) float64
	Prob(x float64) float64
}

// Constant returns the kernel that ignores both arguments and yields c.
func Constant(c float64) Func {
	return func(_, _ float64) float64 { return c }
}

// Survival returns the forcing kernel of the branching-process prevalence
// model: h(t, τ) = 1 − F(t), the probability that a lifetime drawn from
// dist is still running after t. The lag argument is unused: the solvers
// hand every forcing evaluation calendar time t and lag τ separately, and
// in the prevalence model the forcing depends on calendar time alone. To
// realize an age-dependent forcing g — the classic renewal form
// f(t) = g(t) + ∫₀ᵗ f(t−u)λ(u) du — supply the lag-adjusted kernel
// func(t, tau float64) float64 { return g(t - tau) } instead.
func Survival(dist Distribution) Func {
	return func(t, _ float64) float64 { return 1 - dist.CDF(t) }
}

// Intensity returns the hazard kernel of the prevalence model:
// λ(u, τ) = R(τ)·f(u), a time-varying reproduction rate R modulating the
// offspring-time density f of dist.
func Intensity(reproduction func(tau float64) float64, dist Distribution) Func {
	return func(u, tau float64) float64 { return reproduction(tau) * dist.Prob(u) }
}
