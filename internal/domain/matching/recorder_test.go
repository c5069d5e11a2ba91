package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/playershyan/iSafe-sub001/internal/domain/missing"
	"github.com/playershyan/iSafe-sub001/internal/domain/person"
)

type fakeMatchRepo struct {
	persons      map[string]bool
	reportStatus map[string]missing.Status
	matches      []Match
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{
		persons:      make(map[string]bool),
		reportStatus: make(map[string]missing.Status),
	}
}

func (r *fakeMatchRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeMatchRepo) PersonExists(ctx context.Context, personID string) (bool, error) {
	return r.persons[personID], nil
}

func (r *fakeMatchRepo) ReportExists(ctx context.Context, reportID string) (bool, error) {
	_, ok := r.reportStatus[reportID]
	return ok, nil
}

func (r *fakeMatchRepo) MatchExists(ctx context.Context, personID, reportID string) (bool, error) {
	for _, m := range r.matches {
		if m.PersonID == personID && m.MissingReportID == reportID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMatchRepo) CreateMatch(ctx context.Context, match *Match) error {
	r.matches = append(r.matches, *match)
	return nil
}

func (r *fakeMatchRepo) MarkReportFound(ctx context.Context, reportID string) error {
	r.reportStatus[reportID] = missing.StatusFound
	return nil
}

const (
	testPersonID = "7b8a2f9e-0000-0000-0000-000000000001"
	testReportID = "7b8a2f9e-0000-0000-0000-000000000002"
)

func TestConfirmCreatesMatchAndClosesReport(t *testing.T) {
	repo := newFakeMatchRepo()
	repo.persons[testPersonID] = true
	repo.reportStatus[testReportID] = missing.StatusMissing
	recorder := NewRecorder(repo)

	match, err := recorder.Confirm(context.Background(), testPersonID, testReportID, 92)
	require.NoError(t, err)
	require.NotEmpty(t, match.ID)
	require.Equal(t, testPersonID, match.PersonID)
	require.Equal(t, testReportID, match.MissingReportID)
	require.Equal(t, 92, match.Confidence)

	require.Len(t, repo.matches, 1)
	require.Equal(t, missing.StatusFound, repo.reportStatus[testReportID])
}

func TestConfirmIsIdempotentPerPair(t *testing.T) {
	repo := newFakeMatchRepo()
	repo.persons[testPersonID] = true
	repo.reportStatus[testReportID] = missing.StatusMissing
	recorder := NewRecorder(repo)

	_, err := recorder.Confirm(context.Background(), testPersonID, testReportID, 92)
	require.NoError(t, err)

	_, err = recorder.Confirm(context.Background(), testPersonID, testReportID, 80)
	require.ErrorIs(t, err, ErrMatchAlreadyConfirmed)

	require.Len(t, repo.matches, 1)
}

func TestConfirmUnknownRecords(t *testing.T) {
	repo := newFakeMatchRepo()
	repo.persons[testPersonID] = true
	repo.reportStatus[testReportID] = missing.StatusMissing
	recorder := NewRecorder(repo)

	_, err := recorder.Confirm(context.Background(), "7b8a2f9e-0000-0000-0000-00000000dead", testReportID, 50)
	require.ErrorIs(t, err, person.ErrPersonNotFound)

	_, err = recorder.Confirm(context.Background(), testPersonID, "7b8a2f9e-0000-0000-0000-00000000dead", 50)
	require.ErrorIs(t, err, missing.ErrReportNotFound)

	require.Empty(t, repo.matches)
}

func TestConfirmValidatesInput(t *testing.T) {
	recorder := NewRecorder(newFakeMatchRepo())

	_, err := recorder.Confirm(context.Background(), "", testReportID, 50)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = recorder.Confirm(context.Background(), testPersonID, "", 50)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = recorder.Confirm(context.Background(), testPersonID, testReportID, 101)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = recorder.Confirm(context.Background(), testPersonID, testReportID, -1)
	require.ErrorIs(t, err, ErrInvalidInput)
}
