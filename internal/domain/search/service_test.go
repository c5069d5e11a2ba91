package search

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/playershyan/iSafe-sub001/internal/config"
	"github.com/playershyan/iSafe-sub001/internal/domain/missing"
	"github.com/playershyan/iSafe-sub001/internal/domain/person"
)

type fakeSearchRepo struct {
	persons []person.Person
	reports []missing.MissingReport
	// reportID -> personID for confirmed matches
	links map[string]string

	personsErr error
	reportsErr error
	nicErr     error
	matchErr   error
}

func newFakeSearchRepo() *fakeSearchRepo {
	return &fakeSearchRepo{links: make(map[string]string)}
}

func (r *fakeSearchRepo) SearchPersonsByName(ctx context.Context, query string, limit int) ([]person.Person, error) {
	if r.personsErr != nil {
		return nil, r.personsErr
	}
	q := strings.ToLower(query)
	var result []person.Person
	for _, p := range r.persons {
		if strings.Contains(strings.ToLower(p.FullName), q) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakeSearchRepo) SearchReportsByName(ctx context.Context, query string, limit int) ([]missing.MissingReport, error) {
	if r.reportsErr != nil {
		return nil, r.reportsErr
	}
	q := strings.ToLower(query)
	var result []missing.MissingReport
	for _, report := range r.reports {
		if strings.Contains(strings.ToLower(report.FullName), q) {
			result = append(result, report)
		}
	}
	return result, nil
}

func (r *fakeSearchRepo) FindPersonsByNIC(ctx context.Context, nic string, limit int) ([]person.Person, error) {
	if r.nicErr != nil {
		return nil, r.nicErr
	}
	var result []person.Person
	for _, p := range r.persons {
		if p.NIC != nil && strings.EqualFold(*p.NIC, nic) {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakeSearchRepo) MatchedPersonIDs(ctx context.Context, personIDs []string) (map[string]struct{}, error) {
	if r.matchErr != nil {
		return nil, r.matchErr
	}
	matched := make(map[string]struct{})
	for _, personID := range r.links {
		for _, id := range personIDs {
			if id == personID {
				matched[id] = struct{}{}
			}
		}
	}
	return matched, nil
}

func (r *fakeSearchRepo) PersonIDsByReport(ctx context.Context, reportIDs []string) (map[string]string, error) {
	if r.matchErr != nil {
		return nil, r.matchErr
	}
	result := make(map[string]string)
	for _, id := range reportIDs {
		if personID, ok := r.links[id]; ok {
			result[id] = personID
		}
	}
	return result, nil
}

func testSearchConfig() config.SearchConfig {
	return config.SearchConfig{NameResultLimit: 20, NICResultLimit: 10}
}

func strptr(s string) *string { return &s }

func shelteredPerson(id, name string, createdAt time.Time) person.Person {
	return person.Person{
		ID:           id,
		FullName:     name,
		Age:          30,
		Gender:       person.GenderFemale,
		HealthStatus: person.HealthHealthy,
		ShelterID:    "shelter-1",
		CreatedAt:    createdAt,
	}
}

func openReport(id, name string, createdAt time.Time) missing.MissingReport {
	return missing.MissingReport{
		ID:        id,
		FullName:  name,
		Age:       30,
		Gender:    person.GenderFemale,
		Status:    missing.StatusMissing,
		CreatedAt: createdAt,
	}
}

func TestSearchByNameMergesBothCollections(t *testing.T) {
	now := time.Now()
	repo := newFakeSearchRepo()
	repo.persons = []person.Person{shelteredPerson("p1", "Kamala Silva", now.Add(-2*time.Hour))}
	repo.reports = []missing.MissingReport{openReport("r1", "Kamala Wijesinghe", now.Add(-time.Hour))}
	svc := NewService(repo, testSearchConfig())

	results, err := svc.SearchByName(context.Background(), "kamala")
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Recency descending: the report is newer.
	require.Equal(t, KindMissingReport, results[0].Kind)
	require.Equal(t, StatusMissing, results[0].Status)
	require.NotNil(t, results[0].Report)
	require.Nil(t, results[0].Person)

	require.Equal(t, KindPerson, results[1].Kind)
	require.Equal(t, StatusSheltered, results[1].Status)
	require.NotNil(t, results[1].Person)
	require.Nil(t, results[1].Report)
}

func TestSearchByNameStatusTags(t *testing.T) {
	now := time.Now()
	repo := newFakeSearchRepo()
	repo.persons = []person.Person{
		shelteredPerson("p1", "Kamala One", now),
		shelteredPerson("p2", "Kamala Two", now),
	}
	foundReport := openReport("r1", "Kamala Three", now)
	foundReport.Status = missing.StatusFound
	repo.reports = []missing.MissingReport{
		foundReport,
		openReport("r2", "Kamala Four", now),
	}
	// p2 has a confirmed match to some report outside the result set.
	repo.links["r-outside"] = "p2"
	svc := NewService(repo, testSearchConfig())

	results, err := svc.SearchByName(context.Background(), "kamala")
	require.NoError(t, err)
	require.Len(t, results, 4)

	statuses := make(map[string]Status)
	for _, res := range results {
		switch res.Kind {
		case KindPerson:
			statuses[res.Person.ID] = res.Status
		case KindMissingReport:
			statuses[res.Report.ID] = res.Status
		}
	}
	require.Equal(t, StatusSheltered, statuses["p1"])
	require.Equal(t, StatusFoundAndSheltered, statuses["p2"])
	require.Equal(t, StatusFound, statuses["r1"])
	require.Equal(t, StatusMissing, statuses["r2"])
}

func TestSearchByNameDropsReportMatchedToListedPerson(t *testing.T) {
	now := time.Now()
	repo := newFakeSearchRepo()
	repo.persons = []person.Person{shelteredPerson("p1", "Kamala Silva", now)}
	matchedReport := openReport("r1", "Kamala Silva", now.Add(-time.Hour))
	matchedReport.Status = missing.StatusFound
	repo.reports = []missing.MissingReport{matchedReport}
	repo.links["r1"] = "p1"
	svc := NewService(repo, testSearchConfig())

	results, err := svc.SearchByName(context.Background(), "kamala")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, KindPerson, results[0].Kind)
	require.Equal(t, StatusFoundAndSheltered, results[0].Status)
}

func TestSearchByNameOrderedByRecency(t *testing.T) {
	base := time.Now()
	repo := newFakeSearchRepo()
	repo.persons = []person.Person{
		shelteredPerson("p-old", "Kamala A", base.Add(-3*time.Hour)),
		shelteredPerson("p-new", "Kamala B", base),
	}
	repo.reports = []missing.MissingReport{
		openReport("r-mid", "Kamala C", base.Add(-time.Hour)),
	}
	svc := NewService(repo, testSearchConfig())

	results, err := svc.SearchByName(context.Background(), "kamala")
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i := 1; i < len(results); i++ {
		require.False(t, results[i].CreatedAt.After(results[i-1].CreatedAt),
			"results must be ordered newest first")
	}
	require.Equal(t, "p-new", results[0].Person.ID)
}

func TestSearchByNameCapsResults(t *testing.T) {
	now := time.Now()
	repo := newFakeSearchRepo()
	for i := 0; i < 5; i++ {
		repo.persons = append(repo.persons,
			shelteredPerson("p"+string(rune('0'+i)), "Kamala Silva", now.Add(-time.Duration(i)*time.Minute)))
	}
	svc := NewService(repo, config.SearchConfig{NameResultLimit: 3, NICResultLimit: 10})

	results, err := svc.SearchByName(context.Background(), "kamala")
	require.NoError(t, err)
	require.Len(t, results, 3)
}

func TestSearchByNameEmptyQuery(t *testing.T) {
	svc := NewService(newFakeSearchRepo(), testSearchConfig())

	_, err := svc.SearchByName(context.Background(), "   ")
	require.ErrorIs(t, err, ErrInvalidQuery)
}

func TestSearchByNameDatastoreFailureIsDistinct(t *testing.T) {
	repo := newFakeSearchRepo()
	repo.personsErr = errors.New("connection reset")
	svc := NewService(repo, testSearchConfig())

	results, err := svc.SearchByName(context.Background(), "kamala")
	require.ErrorIs(t, err, ErrSearchUnavailable)
	require.Nil(t, results)
}

func TestSearchByNICIsCaseInsensitive(t *testing.T) {
	p := shelteredPerson("p1", "Kamala Silva", time.Now())
	p.NIC = strptr("123456789V")
	repo := newFakeSearchRepo()
	repo.persons = []person.Person{p}
	svc := NewService(repo, testSearchConfig())

	upper, err := svc.SearchByNIC(context.Background(), "123456789V")
	require.NoError(t, err)
	lower, err := svc.SearchByNIC(context.Background(), "123456789v")
	require.NoError(t, err)

	require.Len(t, upper, 1)
	require.Len(t, lower, 1)
	require.Equal(t, upper[0].Person.ID, lower[0].Person.ID)
	require.Equal(t, StatusSheltered, upper[0].Status)
}

func TestSearchByNICValidation(t *testing.T) {
	svc := NewService(newFakeSearchRepo(), testSearchConfig())

	_, err := svc.SearchByNIC(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidQuery)

	_, err = svc.SearchByNIC(context.Background(), "not-a-nic")
	require.ErrorIs(t, err, ErrInvalidQuery)

	// 12-digit new-style NIC is accepted.
	_, err = svc.SearchByNIC(context.Background(), "200012345678")
	require.NoError(t, err)
}

func TestSearchByNICDatastoreFailureIsDistinct(t *testing.T) {
	repo := newFakeSearchRepo()
	repo.nicErr = errors.New("connection reset")
	svc := NewService(repo, testSearchConfig())

	_, err := svc.SearchByNIC(context.Background(), "123456789V")
	require.ErrorIs(t, err, ErrSearchUnavailable)
}
