package matching

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/playershyan/iSafe-sub001/internal/config"
	"github.com/playershyan/iSafe-sub001/internal/domain/missing"
	"github.com/playershyan/iSafe-sub001/internal/domain/person"
	"github.com/playershyan/iSafe-sub001/pkg/logger"
)

// Finder ranks open missing reports against a newly registered person. It is
// read-only and best-effort: a datastore failure yields an empty suggestion
// list so registration itself never fails on account of matching.
type Finder struct {
	reports ReportSource
	cfg     config.MatchingConfig
	log     logger.Logger
}

func NewFinder(reports ReportSource, cfg config.MatchingConfig, log logger.Logger) *Finder {
	return &Finder{reports: reports, cfg: cfg, log: log}
}

func (f *Finder) FindMatches(ctx context.Context, candidate Candidate) ([]PotentialMatch, error) {
	candidate.FullName = strings.TrimSpace(candidate.FullName)
	if candidate.FullName == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if candidate.Age < person.MinAge || candidate.Age > person.MaxAge {
		return nil, fmt.Errorf("%w: age must be between %d and %d", ErrInvalidInput, person.MinAge, person.MaxAge)
	}
	if !person.ValidGender(candidate.Gender) {
		return nil, fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, candidate.Gender)
	}
	candidateNIC := person.NormalizeNIC(candidate.NIC)
	if candidateNIC != "" && !person.ValidNIC(candidateNIC) {
		return nil, fmt.Errorf("%w: NIC %q is not in canonical form", ErrInvalidInput, candidate.NIC)
	}

	reports, err := f.reports.ListMissingReports(ctx)
	if err != nil {
		f.log.InternalError("matching: listing open reports failed, returning no candidates", err)
		return []PotentialMatch{}, nil
	}

	matches := make([]PotentialMatch, 0, len(reports))
	for _, report := range reports {
		if report.Status != missing.StatusMissing {
			continue
		}

		if candidateNIC != "" && report.NIC != nil && person.NormalizeNIC(*report.NIC) == candidateNIC {
			matches = append(matches, PotentialMatch{Report: report, Score: 1.0, NICMatch: true})
			continue
		}

		score := f.compositeScore(candidate, report)
		if score < f.cfg.MinScore {
			continue
		}
		matches = append(matches, PotentialMatch{Report: report, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].NICMatch != matches[j].NICMatch {
			return matches[i].NICMatch
		}
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Report.CreatedAt.After(matches[j].Report.CreatedAt)
	})

	if limit := f.cfg.MaxCandidates; limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}

func (f *Finder) compositeScore(candidate Candidate, report missing.MissingReport) float64 {
	nameScore := Score(candidate.FullName, report.FullName)
	ageScore := f.ageCloseness(candidate.Age, report.Age)

	genderScore := 0.0
	if candidate.Gender == report.Gender {
		genderScore = 1.0
	}

	totalWeight := f.cfg.NameWeight + f.cfg.AgeWeight + f.cfg.GenderWeight
	if totalWeight <= 0 {
		return nameScore
	}

	weighted := f.cfg.NameWeight*nameScore + f.cfg.AgeWeight*ageScore + f.cfg.GenderWeight*genderScore
	return weighted / totalWeight
}

// ageCloseness gives full credit inside the tolerance band and decays
// linearly to zero at the decay bound.
func (f *Finder) ageCloseness(a, b int) float64 {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}

	tolerance := f.cfg.AgeToleranceYrs
	decay := f.cfg.AgeDecayYrs
	if decay <= tolerance {
		decay = tolerance + 1
	}

	if diff <= tolerance {
		return 1.0
	}
	if diff >= decay {
		return 0.0
	}
	return 1.0 - float64(diff-tolerance)/float64(decay-tolerance)
}
