package matching

import (
	"github.com/ravyz/matcher/internal/archetype"
	"github.com/ravyz/matcher/internal/profile"
)

const (
	archetypeAdjustment = 5
	locationAdjustment  = 3
	languageAdjustment  = 2
	maxAdjustments      = 10
)

var remoteModels = map[string]bool{"remoto": true, "remote": true}

// Adjustments are small additive bonuses layered on top of the weighted score.
type Adjustments struct {
	Archetype int `json:"archetype"`
	Location  int `json:"location"`
	Language  int `json:"language"`
	Total     int `json:"total"`
}

// IsRemote reports whether a job work model means fully remote work.
func IsRemote(workModel string) bool {
	return remoteModels[normalize(workModel)]
}

// LocationMatches reports whether the job is remote or placed where the candidate lives.
func LocationMatches(candidate *profile.Candidate, job *profile.Job) bool {
	return IsRemote(job.WorkModel) || sameText(candidate.Location, job.Location)
}

// LanguagesMatch reports whether the job requires languages and the candidate speaks all of them.
func LanguagesMatch(candidate *profile.Candidate, job *profile.Job) bool {
	if len(job.LanguagesRequired) == 0 {
		return false
	}
	spoken := make(map[string]bool, len(candidate.Languages))
	for _, l := range candidate.Languages {
		spoken[normalize(l)] = true
	}
	for _, l := range job.LanguagesRequired {
		if !spoken[normalize(l)] {
			return false
		}
	}
	return true
}

// ScoreAdjustments computes the archetype, location and language bonuses, capped at +10.
func ScoreAdjustments(candidate *profile.Candidate, job *profile.Job) Adjustments {
	var a Adjustments
	if archetype.Relate(candidate.Archetype, job.Archetype) != archetype.RelationNone {
		a.Archetype = archetypeAdjustment
	}
	if LocationMatches(candidate, job) {
		a.Location = locationAdjustment
	}
	if LanguagesMatch(candidate, job) {
		a.Language = languageAdjustment
	}
	a.Total = min(maxAdjustments, a.Archetype+a.Location+a.Language)
	return a
}
