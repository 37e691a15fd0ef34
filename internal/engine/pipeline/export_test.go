package pipeline

// LeaseCount returns the number of live lease entries.
func (p *Pipeline) LeaseCount() int {
	return p.leases.size()
}
