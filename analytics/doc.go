// Package analytics provides the per-step statistics pipeline of AgentSim.
//
// The Collector incrementally folds step results and agent snapshots into
// running aggregates (per-step, per-agent) without retaining full history
// beyond a configurable step window, and answers pull-based summary queries.
//
// Analyzers operate on the aggregate data pulled from the collector:
//
//   - WealthDistributionAnalyzer: Gini coefficient and distribution summaries
//   - SurvivalAnalyzer: survival rate over agent statistics
//   - FactionAnalyzer: faction-level aggregates via a membership lookup
package analytics
