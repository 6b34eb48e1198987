// Package image implements the Image Feature Adapter (IFA): the external
// collaborator spec §6 summarizes at interface depth only ("the MNIST
// image feature-extraction pipeline... feeds the core a pre-derived symbol
// stream"). This package owns the boundary between that collaborator and
// the recognition core: it holds one IMAGE Vocabulary Store per feature
// view, dispatches a pre-derived feature-code stream to each view's own
// Orchestrator, and plurality-votes across the 399 views' surrogates to
// pick a final digit (spec §6, §8 scenario 6, §9 OQ4).
package image

import (
	"strings"

	"github.com/coregx/neurodb/orchestrate"
	"github.com/coregx/neurodb/vocab"
)

// NumViews is the number of independent feature views the adapter
// dispatches to, one per VS (spec §6: "399 feature views"), built from ROW /
// COLUMN / diagonal projections at 7 contrast thresholds, each split into
// overlapping panels.
const NumViews = 399

// CodesPerView is the number of categorical codes each view's extractor
// produces per image (spec §6: curviness, interior-cavity count, slant
// direction, width/height girth, longest-row location, top/bottom weight,
// left/right weight, cavity location, pedestal vs central-bulge, and
// longest-line direction).
const CodesPerView = 10

// Pixels is a 28x28 grayscale MNIST-style digit image.
type Pixels [28][28]uint8

// FeatureExtractor turns one image into NumViews feature-code streams, one
// per view, each CodesPerView long and already offset by 100*view_index so
// that codes from different views never collide (spec §6). The concrete
// extraction pipeline (curviness, cavity counting, slant estimation, ...)
// is the OUT-OF-SCOPE collaborator spec §1 names; this interface is its
// contract, not its implementation.
type FeatureExtractor interface {
	ExtractViews(pixels Pixels) [NumViews][]int
}

// Sample is one labeled training image, the unit BuildViewStores consumes.
type Sample struct {
	Pixels Pixels
	Label  string
}

// BuildViewStores extracts every sample's per-view feature codes and
// builds one IMAGE vocab.Store per view, each store's patterns keyed by
// the view's feature code and surrogate-labeled with the training digit
// (spec §6 scenario-6 duplicate-body accumulation: two samples sharing a
// view's feature vector accumulate surrogates "3,5").
func BuildViewStores(samples []Sample, extractor FeatureExtractor) ([NumViews]*vocab.Store, error) {
	var stores [NumViews]*vocab.Store

	specs := make([][]vocab.PatternSpec, NumViews)
	for _, s := range samples {
		views := extractor.ExtractViews(s.Pixels)
		for v := 0; v < NumViews; v++ {
			specs[v] = append(specs[v], vocab.PatternSpec{
				FeatureRL: views[v],
				Surrogate: s.Label,
			})
		}
	}

	for v := 0; v < NumViews; v++ {
		store, err := vocab.Build(vocab.IMAGE, specs[v])
		if err != nil {
			return stores, err
		}
		stores[v] = store
	}
	return stores, nil
}

// Adapter recognizes digits by dispatching one recognition per view to its
// own VS, then plurality-voting across the views' surrogates.
type Adapter struct {
	orchestrators [NumViews]*orchestrate.Orchestrator
	extractor     FeatureExtractor
}

// NewAdapter builds an Adapter from one already-built store per view (see
// BuildViewStores) and the extractor used to derive query feature streams.
func NewAdapter(stores [NumViews]*vocab.Store, extractor FeatureExtractor) *Adapter {
	var a Adapter
	a.extractor = extractor
	for v, store := range stores {
		a.orchestrators[v] = orchestrate.New(store, orchestrate.DefaultConfig())
	}
	return &a
}

// Recognize extracts pixels' per-view feature streams, recognizes each
// view independently, and returns the plurality winner among the views
// that produced an unambiguous match. A matched pattern's Surrogate may be
// a comma-joined label set accumulated from distinct training images that
// shared a feature vector (spec §8 scenario 6, e.g. "3,5" from
// `vocab.Store.insertPattern`'s duplicate-body accumulation); each label in
// that set casts its own vote rather than the compound string voting as one
// opaque label, so a genuine plurality between the accumulated digits can
// actually be resolved. Ties are broken by first-seen iteration order
// (spec §9 OQ4): among digits tied for the most votes, the one that received
// its first vote earliest wins.
func (a *Adapter) Recognize(pixels Pixels) (string, bool) {
	views := a.extractor.ExtractViews(pixels)

	votes := make(map[string]int)
	var order []string

	for v := 0; v < NumViews; v++ {
		res := a.orchestrators[v].RecognizeImage(views[v])
		if res.Malformed || res.Ambiguous || len(res.Matches) == 0 {
			continue
		}
		segs := res.Matches[0].Segments
		if len(segs) == 0 {
			continue
		}
		label := segs[0].Surrogate
		if label == "" {
			label = segs[0].Name
		}
		for _, digit := range strings.Split(label, ",") {
			if _, seen := votes[digit]; !seen {
				order = append(order, digit)
			}
			votes[digit]++
		}
	}

	if len(order) == 0 {
		return "", false
	}
	winner := order[0]
	best := votes[winner]
	for _, label := range order[1:] {
		if votes[label] > best {
			winner, best = label, votes[label]
		}
	}
	return winner, true
}
