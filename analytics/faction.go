package analytics

// MembershipFunc resolves an agent ID to its faction ID. Agents resolving to
// the empty string are treated as factionless and skipped.
type MembershipFunc func(agentID string) string

// FactionAnalyzer aggregates agent-level statistics by faction membership.
// The aggregation is derived purely from agent-level data plus the
// membership lookup; the analyzer holds no state of its own.
type FactionAnalyzer struct {
	membership MembershipFunc
}

// NewFactionAnalyzer creates a FactionAnalyzer with the given membership
// lookup.
func NewFactionAnalyzer(membership MembershipFunc) *FactionAnalyzer {
	return &FactionAnalyzer{membership: membership}
}

// Aggregate folds the agent aggregates into per-faction statistics keyed by
// faction ID.
func (a *FactionAnalyzer) Aggregate(agentStats map[string]*AgentStatistics) map[string]*FactionStatistics {
	out := make(map[string]*FactionStatistics)
	for id, stats := range agentStats {
		faction := a.membership(id)
		if faction == "" {
			continue
		}

		fs := out[faction]
		if fs == nil {
			fs = &FactionStatistics{FactionID: faction}
			out[faction] = fs
		}

		fs.MemberCount++
		if stats.Alive() {
			fs.AliveCount++
		}
		fs.TotalWealth += stats.Wealth
		fs.TotalKills += stats.Kills
	}

	for _, fs := range out {
		fs.MeanWealth = fs.TotalWealth / float64(fs.MemberCount)
	}
	return out
}
