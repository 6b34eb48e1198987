package scu

import "github.com/coregx/neurodb/metrics"

// AgentSet selects which of the seven evidential agents run during a
// tournament (spec §9: "model as an explicit SCUConfig value... selectable
// at runtime" rather than the original's module-level boolean globals).
type AgentSet struct {
	SpaceB  bool
	Anomaly bool
	Rec     bool
	MinPR   bool
	Bound   bool
	UnCount bool
	MisLead bool
}

// AllAgents returns an AgentSet with every agent enabled, the tournament's
// default configuration.
func AllAgents() AgentSet {
	return AgentSet{true, true, true, true, true, true, true}
}

// agentFunc adjusts two competing Competitors' scores in place; spec §8
// requires that disabling every agent reduces the tournament to comparing
// pure Stand-Alone Scores, which holds trivially when no agentFunc runs.
type agentFunc func(a, z *Competitor)

// agents returns the enabled agent functions, in spec §4.5's fixed order.
func (s AgentSet) agents() []agentFunc {
	var fs []agentFunc
	if s.SpaceB {
		fs = append(fs, spaceBAgent)
	}
	if s.Anomaly {
		fs = append(fs, anomalyAgent)
	}
	if s.Rec {
		fs = append(fs, recAgent)
	}
	if s.MinPR {
		fs = append(fs, minPRAgent)
	}
	if s.Bound {
		fs = append(fs, boundAgent)
	}
	if s.UnCount {
		fs = append(fs, unCountAgent)
	}
	if s.MisLead {
		fs = append(fs, misLeadAgent)
	}
	return fs
}

// spikeN applies n spikes of one kind to score and returns the result.
func spikeN(score int, excitatory bool, n int) int {
	for i := 0; i < n; i++ {
		if excitatory {
			score = metrics.ExcitatorySpike(score)
		} else {
			score = metrics.InhibitorySpike(score)
		}
	}
	return score
}

// spaceBAgent: higher spaceB wins; the loser takes 3 inhibitory spikes.
func spaceBAgent(a, z *Competitor) {
	if a.SpaceB == z.SpaceB {
		return
	}
	loser := z
	if a.SpaceB < z.SpaceB {
		loser = a
	}
	loser.Score = spikeN(loser.Score, false, 3)
}

// anomalyAgent: higher anomaly loses; loser takes 4 inhibitory, winner takes
// 2 excitatory.
func anomalyAgent(a, z *Competitor) {
	if a.Anomaly == z.Anomaly {
		return
	}
	winner, loser := a, z
	if a.Anomaly > z.Anomaly {
		winner, loser = z, a
	}
	loser.Score = spikeN(loser.Score, false, 4)
	winner.Score = spikeN(winner.Score, true, 2)
}

// recAgent: higher rec wins; winner takes 2 excitatory, loser 2 inhibitory.
func recAgent(a, z *Competitor) {
	if a.Rec == z.Rec {
		return
	}
	winner, loser := a, z
	if a.Rec < z.Rec {
		winner, loser = z, a
	}
	winner.Score = spikeN(winner.Score, true, 2)
	loser.Score = spikeN(loser.Score, false, 2)
}

// minPRAgent: higher minpr wins; loser takes 6 inhibitory.
func minPRAgent(a, z *Competitor) {
	if a.MinPR == z.MinPR {
		return
	}
	loser := z
	if a.MinPR < z.MinPR {
		loser = a
	}
	loser.Score = spikeN(loser.Score, false, 6)
}

// boundAgent: higher bound loses, unless its anomaly is strictly lower (the
// exception that exempts a branch that merely has more, but cleaner,
// internal boundaries). Both sides take |Δbound|+1 spikes.
func boundAgent(a, z *Competitor) {
	if a.Bound == z.Bound {
		return
	}
	winner, loser := a, z
	if a.Bound > z.Bound {
		winner, loser = z, a
	}
	if loser.Anomaly < winner.Anomaly {
		return
	}
	delta := loser.Bound - winner.Bound
	if delta < 0 {
		delta = -delta
	}
	n := delta + 1
	winner.Score = spikeN(winner.Score, true, n)
	loser.Score = spikeN(loser.Score, false, n)
}

// unCountAgent: higher uncount loses; per unit of delta, the loser takes 2
// inhibitory spikes and the winner 3 excitatory.
func unCountAgent(a, z *Competitor) {
	if a.UnCount == z.UnCount {
		return
	}
	winner, loser := a, z
	if a.UnCount < z.UnCount {
		winner, loser = z, a
	}
	delta := loser.UnCount - winner.UnCount
	loser.Score = spikeN(loser.Score, false, 2*delta)
	winner.Score = spikeN(winner.Score, true, 3*delta)
}

// misLeadAgent: higher mislead loses; per unit of delta the loser takes 2
// inhibitory spikes, and if delta > 1 the winner also takes 2 excitatory.
func misLeadAgent(a, z *Competitor) {
	if a.MisLead == z.MisLead {
		return
	}
	winner, loser := a, z
	if a.MisLead < z.MisLead {
		winner, loser = z, a
	}
	delta := loser.MisLead - winner.MisLead
	loser.Score = spikeN(loser.Score, false, 2*delta)
	if delta > 1 {
		winner.Score = spikeN(winner.Score, true, 2)
	}
}
