package analytics

// SurvivalAnalyzer answers survival queries over agent aggregates.
type SurvivalAnalyzer struct{}

// NewSurvivalAnalyzer creates a SurvivalAnalyzer.
func NewSurvivalAnalyzer() *SurvivalAnalyzer { return &SurvivalAnalyzer{} }

// SurvivalRate returns the fraction of agents with no recorded death step.
// An empty mapping yields 0 by convention.
func (a *SurvivalAnalyzer) SurvivalRate(agentStats map[string]*AgentStatistics) float64 {
	if len(agentStats) == 0 {
		return 0
	}

	alive := 0
	for _, stats := range agentStats {
		if stats.Alive() {
			alive++
		}
	}
	return float64(alive) / float64(len(agentStats))
}

// DeadAgents returns the IDs of agents with a recorded death step.
func (a *SurvivalAnalyzer) DeadAgents(agentStats map[string]*AgentStatistics) []string {
	var dead []string
	for id, stats := range agentStats {
		if !stats.Alive() {
			dead = append(dead, id)
		}
	}
	return dead
}
