package assessment

import (
	"fmt"
	"math"

	"github.com/ravyz/matcher/internal/profile"
)

// inconsistencyThreshold is the largest tolerated gap between the direct average
// and the adjusted contrasting answer of a pillar.
const inconsistencyThreshold = 2.0

// ValidateConsistency cross-checks each pillar's direct items against its contrasting
// item and returns advisory warnings. It never fails: pillars whose probe answers are
// missing or out of range are skipped.
func ValidateConsistency(r Responses) []string {
	var warnings []string

	for _, pillar := range profile.Pillars {
		p, ok := consistencyProbes[pillar]
		if !ok {
			continue
		}

		contrasting, ok := answer(r, p.contrasting)
		if !ok {
			continue
		}

		sum := 0
		complete := true
		for _, id := range p.direct {
			v, ok := answer(r, id)
			if !ok {
				complete = false
				break
			}
			sum += v
		}
		if !complete || len(p.direct) == 0 {
			continue
		}

		directAvg := float64(sum) / float64(len(p.direct))
		contrastingAdjusted := float64(MaxAnswer + MinAnswer - contrasting)

		if math.Abs(directAvg-contrastingAdjusted) > inconsistencyThreshold {
			warnings = append(warnings, fmt.Sprintf("Inconsistency detected in pillar %s", pillar))
		}
	}

	return warnings
}

func answer(r Responses, id string) (int, bool) {
	v, ok := r[id]
	if !ok || v < MinAnswer || v > MaxAnswer {
		return 0, false
	}
	return v, true
}
