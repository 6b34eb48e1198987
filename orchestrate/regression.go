package orchestrate

// Case is one regression fixture: raw input paired with the pattern name
// expected to win (spec §6's "regress" CLI verb).
type Case struct {
	Input string
	Want  string
}

// CaseResult is one case's outcome against a live Orchestrator.
type CaseResult struct {
	Case
	Got       string
	Ambiguous bool
	Passed    bool
}

// RegressionReport summarizes a full regression run.
type RegressionReport struct {
	Results []CaseResult
	Passed  int
	Failed  int
}

// RunRegression replays every case through o and reports pass/fail against
// each case's expected winning pattern name. A case passes only when
// exactly the expected pattern wins and the result is unambiguous.
func RunRegression(o *Orchestrator, cases []Case) RegressionReport {
	report := RegressionReport{Results: make([]CaseResult, len(cases))}
	for i, c := range cases {
		res := o.Recognize(c.Input)
		cr := CaseResult{Case: c, Ambiguous: res.Ambiguous}
		if len(res.Matches) > 0 && len(res.Matches[0].Segments) > 0 {
			cr.Got = winningName(res.Matches[0])
		}
		cr.Passed = !res.Ambiguous && cr.Got == c.Want
		if cr.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Results[i] = cr
	}
	return report
}

// winningName renders a Match as a single display name: its segments'
// pattern names joined in order, matching how the CLI renders a chained
// recognition (spec §8 scenario 2, "FRI" + "DAY").
func winningName(m Match) string {
	name := ""
	for _, seg := range m.Segments {
		name += seg.Name
	}
	return name
}
