package search

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/playershyan/iSafe-sub001/internal/config"
	"github.com/playershyan/iSafe-sub001/internal/domain/missing"
	"github.com/playershyan/iSafe-sub001/internal/domain/person"
)

// Service merges the sheltered-persons and missing-reports collections into
// one status-tagged, recency-ordered result list.
type Service struct {
	repo Repository
	cfg  config.SearchConfig
}

func NewService(repo Repository, cfg config.SearchConfig) *Service {
	return &Service{repo: repo, cfg: cfg}
}

// SearchByName runs a case-insensitive substring match over both collections.
func (s *Service) SearchByName(ctx context.Context, query string) ([]UnifiedResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidQuery)
	}

	limit := s.cfg.NameResultLimit
	persons, err := s.repo.SearchPersonsByName(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: persons by name: %v", ErrSearchUnavailable, err)
	}
	reports, err := s.repo.SearchReportsByName(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: reports by name: %v", ErrSearchUnavailable, err)
	}

	matched, err := s.matchedPersonSet(ctx, persons)
	if err != nil {
		return nil, err
	}

	results := make([]UnifiedResult, 0, len(persons)+len(reports))
	personPresent := make(map[string]struct{}, len(persons))
	for i := range persons {
		p := persons[i]
		personPresent[p.ID] = struct{}{}
		results = append(results, UnifiedResult{
			Kind:      KindPerson,
			Status:    personStatus(p.ID, matched),
			CreatedAt: p.CreatedAt,
			Person:    &p,
		})
	}

	// A confirmed match is the one reliable cross-reference between the two
	// collections; a report whose matched person is already in the list is a
	// pure duplicate and is dropped, the person row wins. Unmatched overlap
	// stays visible under both tags.
	reportIDs := make([]string, 0, len(reports))
	for _, r := range reports {
		reportIDs = append(reportIDs, r.ID)
	}
	linked, err := s.repo.PersonIDsByReport(ctx, reportIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: match links: %v", ErrSearchUnavailable, err)
	}

	for i := range reports {
		r := reports[i]
		if personID, ok := linked[r.ID]; ok {
			if _, dup := personPresent[personID]; dup {
				continue
			}
		}
		results = append(results, UnifiedResult{
			Kind:      KindMissingReport,
			Status:    reportStatus(r.Status),
			CreatedAt: r.CreatedAt,
			Report:    &r,
		})
	}

	sortByRecency(results)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

// SearchByNIC looks up sheltered persons by exact NIC. Reports are not
// covered by NIC search; only the sheltered-persons collection is indexed on
// it for public lookup.
func (s *Service) SearchByNIC(ctx context.Context, nic string) ([]UnifiedResult, error) {
	normalized := person.NormalizeNIC(nic)
	if normalized == "" {
		return nil, fmt.Errorf("%w: nic is required", ErrInvalidQuery)
	}
	if !person.ValidNIC(normalized) {
		return nil, fmt.Errorf("%w: NIC %q is not in canonical form", ErrInvalidQuery, nic)
	}

	limit := s.cfg.NICResultLimit
	persons, err := s.repo.FindPersonsByNIC(ctx, normalized, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: persons by nic: %v", ErrSearchUnavailable, err)
	}

	matched, err := s.matchedPersonSet(ctx, persons)
	if err != nil {
		return nil, err
	}

	results := make([]UnifiedResult, 0, len(persons))
	for i := range persons {
		p := persons[i]
		results = append(results, UnifiedResult{
			Kind:      KindPerson,
			Status:    personStatus(p.ID, matched),
			CreatedAt: p.CreatedAt,
			Person:    &p,
		})
	}

	sortByRecency(results)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

func (s *Service) matchedPersonSet(ctx context.Context, persons []person.Person) (map[string]struct{}, error) {
	if len(persons) == 0 {
		return map[string]struct{}{}, nil
	}
	ids := make([]string, 0, len(persons))
	for _, p := range persons {
		ids = append(ids, p.ID)
	}
	matched, err := s.repo.MatchedPersonIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: match lookup: %v", ErrSearchUnavailable, err)
	}
	return matched, nil
}

func personStatus(id string, matched map[string]struct{}) Status {
	if _, ok := matched[id]; ok {
		return StatusFoundAndSheltered
	}
	return StatusSheltered
}

func reportStatus(status missing.Status) Status {
	if status == missing.StatusFound {
		return StatusFound
	}
	return StatusMissing
}

func sortByRecency(results []UnifiedResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
}
