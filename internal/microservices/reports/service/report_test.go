package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"coffeeos/internal/domain"
)

type fakeReportRepo struct {
	gotFrom, gotTo string
	out            []domain.ShiftReport
}

func (f *fakeReportRepo) DailySummaries(_ context.Context, _, from, to string) ([]domain.ShiftReport, error) {
	f.gotFrom, f.gotTo = from, to
	return f.out, nil
}

func TestDailySummariesPassesRangeThrough(t *testing.T) {
	t.Parallel()

	repo := &fakeReportRepo{out: []domain.ShiftReport{{Date: "2025-08-30", OrderCount: 12, Net: 340.50}}}
	svc := NewReportService(repo)

	got, err := svc.DailySummaries(context.Background(), "branch-1", "2025-08-24", "2025-08-30")
	require.NoError(t, err)
	require.Equal(t, repo.out, got)
	require.Equal(t, "2025-08-24", repo.gotFrom)
	require.Equal(t, "2025-08-30", repo.gotTo)
}

func TestDailySummariesDefaultsToLastWeek(t *testing.T) {
	t.Parallel()

	repo := &fakeReportRepo{}
	svc := NewReportService(repo)

	_, err := svc.DailySummaries(context.Background(), "branch-1", "", "")
	require.NoError(t, err)
	require.NotEmpty(t, repo.gotFrom)
	require.NotEmpty(t, repo.gotTo)
	require.LessOrEqual(t, repo.gotFrom, repo.gotTo)
}

func TestDailySummariesValidation(t *testing.T) {
	t.Parallel()

	svc := NewReportService(&fakeReportRepo{})

	_, err := svc.DailySummaries(context.Background(), "", "2025-08-24", "2025-08-30")
	require.ErrorIs(t, err, domain.ErrMissingContext)

	_, err = svc.DailySummaries(context.Background(), "branch-1", "yesterday", "")
	require.ErrorIs(t, err, domain.ErrInvalidState)
}
