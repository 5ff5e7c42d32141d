package generator

// Registry is the ordered list of generators for one run. Order is part of
// the contract: Gem renders the library entry file that CLI edits, and Rake
// must exist before its tasks are appended.
type Registry []Generator

// DefaultRegistry returns every generator in execution order.
func DefaultRegistry() Registry {
	return Registry{
		Gem{},
		Documentation{},
		Rake{},
		CLI{},
		Ruby{},
		Engine{},
		Rspec{},
		GitLint{},
		Reek{},
		Rubocop{},
		BundlerAudit{},
		Guard{},
		CircleCI{},
		GitHub{},
		Git{},
	}
}

// Names returns the generator names in registry order.
func (r Registry) Names() []string {
	names := make([]string, len(r))
	for i, g := range r {
		names[i] = g.Name()
	}
	return names
}
