// Package scheduler provides the update-ordering strategies used by the
// simulation engine. A Strategy decides, once per step, the order in which
// live agents are driven through their sense/decide/act cycle.
//
// Every strategy upholds the permutation contract: the returned ordering
// contains exactly the agents it was given, no duplicates, none dropped.
// Strategies are configuration-holding value types behind a single small
// interface; injected behavior (custom priority classifiers) is modeled as
// typed function values, not subclassing.
//
// Included strategies:
//
//   - Sequential: input order, optionally reversed
//   - Random: shuffled order, optionally seeded for reproducible sequences
//   - Priority: triage by PriorityLevel (critical agents first)
//   - RoundRobin: input order with optional per-agent update counting
//   - Adaptive: picks one of the above per step based on the population
package scheduler
