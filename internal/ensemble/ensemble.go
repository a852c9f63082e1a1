// Package ensemble scores competing candidates for a field and votes between them.
//
// A candidate's score blends its strategy confidence with evidence from the text
// around it: present-tense markers, employment wording, education terms and its
// offset in the document. Candidates are then grouped by a normalized key and the
// group with the best aggregate wins, provided it clears Threshold.
package ensemble

import (
	"regexp"
	"strings"
)

// Threshold is the minimum aggregate a winning group needs
const Threshold = 0.40

// Score weights
const (
	WeightBase     = 0.40
	WeightTemporal = 0.30
	WeightContext  = 0.20
	WeightPosition = 0.10
)

// Candidate is one proposed value and where it came from
type Candidate struct {
	Value      string
	Confidence float64
	Origin     string
	Position   int
	Context    string
	// Bonus is added to the weighted score unchanged
	Bonus float64
	Score float64
}

var (
	temporalRe    = regexp.MustCompile(`\b(?:present|current|ongoing|till\s+date)\b`)
	employmentRe  = regexp.MustCompile(`\b(?:working|employed|residing)\b`)
	negativeTerms = []string{"education", "university", "college", "born", "birth"}
)

// Score computes the weighted score of c within a text of textLen bytes
func Score(c Candidate, textLen int) float64 {
	ctx := strings.ToLower(c.Context)

	temporal := 0.0
	if temporalRe.MatchString(ctx) {
		temporal = 1.0
	}

	return WeightBase*c.Confidence +
		WeightTemporal*temporal +
		WeightContext*ContextBoost(ctx) +
		WeightPosition*PositionScore(c.Position, textLen) +
		c.Bonus
}

// ContextBoost rewards present-tense and employment wording and penalizes
// education or birth terms, floored at zero
func ContextBoost(context string) float64 {
	ctx := strings.ToLower(context)
	boost := 0.0
	if strings.Contains(ctx, "currently") || strings.Contains(ctx, "presently") {
		boost += 0.20
	}
	if employmentRe.MatchString(ctx) {
		boost += 0.15
	}
	for _, neg := range negativeTerms {
		if strings.Contains(ctx, neg) {
			boost -= 0.30
			break
		}
	}
	if boost < 0 {
		return 0
	}
	return boost
}

// PositionScore favors candidates near the top of the document
func PositionScore(position, textLen int) float64 {
	if textLen < 1 {
		textLen = 1
	}
	rel := float64(position) / float64(textLen)
	switch {
	case rel < 0.1:
		return 1.0
	case rel < 0.4:
		return 0.8
	default:
		return 0.5
	}
}

// Pool accumulates scored candidates in insertion order
type Pool struct {
	textLen    int
	candidates []Candidate
}

// NewPool creates an empty pool for a text of textLen bytes
func NewPool(textLen int) *Pool {
	return &Pool{textLen: textLen}
}

// Add scores c and appends it, returning the scored copy
func (p *Pool) Add(c Candidate) Candidate {
	c.Score = Score(c, p.textLen)
	p.candidates = append(p.candidates, c)
	return c
}

// Candidates returns the scored candidates in insertion order
func (p *Pool) Candidates() []Candidate {
	return p.candidates
}

// Len returns the number of candidates
func (p *Pool) Len() int {
	return len(p.candidates)
}

// Best returns the highest scoring candidate from origin; ties keep the earliest
func (p *Pool) Best(origin string) (Candidate, bool) {
	var best Candidate
	found := false
	for _, c := range p.candidates {
		if c.Origin != origin {
			continue
		}
		if !found || c.Score > best.Score {
			best, found = c, true
		}
	}
	return best, found
}

// Group is the set of scores sharing one normalized key
type Group struct {
	Key       string
	Scores    []float64
	Aggregate float64
}

// Aggregate combines group scores: 0.6*mean + 0.3*max + 0.1*min(n/4, 1)
func Aggregate(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum, maxScore := 0.0, scores[0]
	for _, s := range scores {
		sum += s
		if s > maxScore {
			maxScore = s
		}
	}
	n := float64(len(scores))
	support := n / 4.0
	if support > 1 {
		support = 1
	}
	return 0.60*(sum/n) + 0.30*maxScore + 0.10*support
}

// Vote groups candidates by normalize(Value) and returns the best group. The
// boolean is false when there are no candidates or the winner is below Threshold.
// Ties keep the group whose first candidate came first.
func Vote(candidates []Candidate, normalize func(string) string) (Group, bool) {
	if normalize == nil {
		normalize = strings.ToLower
	}

	index := make(map[string]int)
	var groups []Group
	for _, c := range candidates {
		key := normalize(c.Value)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Scores = append(groups[i].Scores, c.Score)
	}
	if len(groups) == 0 {
		return Group{}, false
	}

	best := -1
	for i := range groups {
		groups[i].Aggregate = Aggregate(groups[i].Scores)
		if best < 0 || groups[i].Aggregate > groups[best].Aggregate {
			best = i
		}
	}
	return groups[best], groups[best].Aggregate >= Threshold
}
