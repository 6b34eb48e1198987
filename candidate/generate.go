package candidate

import (
	"runtime"
	"sort"
	"sync"

	"github.com/coregx/neurodb/input"
	"github.com/coregx/neurodb/vocab"
)

// hitRecord is one (symbol, position, pattern) Connection's evidence for a
// hypothetical occurrence at a particular qpos (spec §4.2 stage 1).
type hitRecord struct {
	Pattern vocab.PatternCode
	B, E    int // hypothetical window, not yet clamped to [1,L]
	Qpos    int
	Dpos    int
}

// Generate runs the full Candidate Generator pipeline: hit enumeration,
// per-pattern merge, trim, and deterministic dedupe (spec §4.2).
//
// Per §5, the per-pattern combination step (stage 2) may be split across
// worker goroutines; each worker owns a distinct partition of patterns and
// writes into its own buffer, and the buffers are deterministically sorted
// and merged before being handed to the Filter Cascade.
func Generate(store *vocab.Store, stream *input.Stream) []*Candidate {
	records := collectHitRecords(store, stream)

	byPattern := make(map[vocab.PatternCode][]hitRecord)
	for _, r := range records {
		byPattern[r.Pattern] = append(byPattern[r.Pattern], r)
	}

	patterns := make([]vocab.PatternCode, 0, len(byPattern))
	for p := range byPattern {
		patterns = append(patterns, p)
	}
	sort.Slice(patterns, func(i, j int) bool { return patterns[i] < patterns[j] })

	results := parallelMergePatterns(patterns, byPattern)

	dedup := dedupeCandidates(results)
	sortCandidates(dedup)
	return dedup
}

// collectHitRecords implements spec §4.2 stage 1: for every qpos in the
// stream and every Connection whose symbol matches IS[qpos], compute the
// hypothetical window and append a hit record.
func collectHitRecords(store *vocab.Store, stream *input.Stream) []hitRecord {
	var records []hitRecord
	for qpos := 1; qpos <= stream.Length; qpos++ {
		sym := stream.AtQpos(qpos)
		if sym == 0 {
			continue
		}
		for _, conn := range store.Connections(sym) {
			p := store.Pattern(conn.Pattern)
			b := qpos - conn.Position + 1
			e := b + p.Len() - 1
			records = append(records, hitRecord{
				Pattern: conn.Pattern,
				B:       b,
				E:       e,
				Qpos:    qpos,
				Dpos:    conn.Position,
			})
		}
	}
	return records
}

// parallelMergePatterns fans the per-pattern merge step out across workers,
// one partition of patterns per worker, and deterministically concatenates
// the sorted results (spec §5).
func parallelMergePatterns(patterns []vocab.PatternCode, byPattern map[vocab.PatternCode][]hitRecord) []*Candidate {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(patterns) {
		workers = len(patterns)
	}
	if workers < 1 {
		workers = 1
	}

	buffers := make([][]*Candidate, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			var buf []*Candidate
			for i := w; i < len(patterns); i += workers {
				buf = append(buf, mergePattern(byPattern[patterns[i]])...)
			}
			buffers[w] = buf
		}()
	}
	wg.Wait()

	var out []*Candidate
	for _, buf := range buffers {
		out = append(out, buf...)
	}
	return out
}

// mergePattern implements spec §4.2 stage 2 for a single pattern's hit
// records.
//
// Grouping is by the hypothetical begin B rather than by pairwise
// compatibility testing: for a fixed B, a hit record at dpos d can only
// have arisen from qpos = B + d - 1 (since B is defined as qpos-d+1), so
// every hit record that computed the same B is, by construction, evidence
// for the exact same physical alignment. Records whose B differs are never
// combined: a missing, extra, or transposed symbol that shifts the alignment
// (e.g. "frdy" against FRIDAY gives B=1 for F,R, B=0 for D and B=-1 for Y)
// yields one separate candidate per B.
func mergePattern(records []hitRecord) []*Candidate {
	byB := make(map[int][]hitRecord)
	for _, r := range records {
		byB[r.B] = append(byB[r.B], r)
	}

	bs := make([]int, 0, len(byB))
	for b := range byB {
		bs = append(bs, b)
	}
	sort.Ints(bs)

	out := make([]*Candidate, 0, len(bs))
	for _, b := range bs {
		group := byB[b]
		hits := make(map[int]int, len(group))
		minQ, maxQ := group[0].Qpos, group[0].Qpos
		for _, r := range group {
			if _, exists := hits[r.Qpos]; !exists {
				hits[r.Qpos] = r.Dpos
			}
			if r.Qpos < minQ {
				minQ = r.Qpos
			}
			if r.Qpos > maxQ {
				maxQ = r.Qpos
			}
		}
		out = append(out, &Candidate{
			Pattern: group[0].Pattern,
			BB:      minQ,
			EB:      maxQ,
			Hits:    hits,
		})
	}
	return out
}

// dedupeCandidates implements spec §4.2 stage 4: keep one candidate per
// (Pattern,BB,EB), preferring the largest RNhits, then the smallest cntA,
// then the shortest pattern length (moot once Pattern is part of the key,
// kept for parity with the tie-break rule as specified).
func dedupeCandidates(cands []*Candidate) []*Candidate {
	type key struct {
		p      vocab.PatternCode
		bb, eb int
	}
	best := make(map[key]*Candidate)
	for _, c := range cands {
		k := key{c.Pattern, c.BB, c.EB}
		cur, ok := best[k]
		if !ok {
			best[k] = c
			continue
		}
		if better(c, cur) {
			best[k] = c
		}
	}
	out := make([]*Candidate, 0, len(best))
	for _, c := range best {
		out = append(out, c)
	}
	return out
}

func better(a, b *Candidate) bool {
	if a.RNhits() != b.RNhits() {
		return a.RNhits() > b.RNhits()
	}
	if aa, ba := a.AnomalyCount(), b.AnomalyCount(); aa != ba {
		return aa < ba
	}
	return a.Len() < b.Len()
}

// sortCandidates establishes the deterministic order required by spec §8
// ("sortD output is stable with respect to (BB, EB, ONcode) after duplicate
// removal").
func sortCandidates(cands []*Candidate) {
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].BB != cands[j].BB {
			return cands[i].BB < cands[j].BB
		}
		if cands[i].EB != cands[j].EB {
			return cands[i].EB < cands[j].EB
		}
		return cands[i].Pattern < cands[j].Pattern
	})
}
