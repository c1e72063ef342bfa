package analytics

import "time"

// StepStatistics aggregates one completed step.
type StepStatistics struct {
	StepNumber int           `json:"step_number"`
	AgentCount int           `json:"agent_count"`
	ActedCount int           `json:"acted_count"`
	Failures   int           `json:"failures"`
	AliveCount int           `json:"alive_count"`
	Timestamp  time.Time     `json:"timestamp"`
	Duration   time.Duration `json:"duration"`
}

// AgentStatistics is the running aggregate for a single agent across the
// whole run.
type AgentStatistics struct {
	AgentID    string  `json:"agent_id"`
	StepsSeen  int     `json:"steps_seen"`
	Actions    int     `json:"actions"`
	Failures   int     `json:"failures"`
	LastHealth float64 `json:"last_health"`
	LastEnergy float64 `json:"last_energy"`
	Wealth     float64 `json:"wealth"`
	Kills      int     `json:"kills"`

	// FirstStep is the step at which this agent was first observed.
	FirstStep int `json:"first_step"`

	// DeathStep is set when the agent leaves the live set; nil while alive.
	DeathStep *int `json:"death_step,omitempty"`
}

// Alive reports whether the agent has no recorded death step.
func (s *AgentStatistics) Alive() bool { return s.DeathStep == nil }

// FactionStatistics aggregates agent statistics by faction membership. All
// fields are derivable purely from agent-level data plus a membership lookup.
type FactionStatistics struct {
	FactionID   string  `json:"faction_id"`
	MemberCount int     `json:"member_count"`
	AliveCount  int     `json:"alive_count"`
	TotalWealth float64 `json:"total_wealth"`
	MeanWealth  float64 `json:"mean_wealth"`
	TotalKills  int     `json:"total_kills"`
}

// Summary is the pull-based answer of the collector's Summary query.
type Summary struct {
	TotalSteps    int `json:"total_steps"`
	AgentsSeen    int `json:"agents_seen"`
	AgentsAlive   int `json:"agents_alive"`
	TotalActions  int `json:"total_actions"`
	TotalFailures int `json:"total_failures"`
}
