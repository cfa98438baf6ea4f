package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"coffeeos/internal/common/logger"
	"coffeeos/internal/domain"
)

type fakeTableRepo struct {
	tables map[string]*domain.CafeTable
}

func (f *fakeTableRepo) CreateTable(_ context.Context, t *domain.CafeTable) error {
	f.tables[t.ID] = t
	return nil
}

func (f *fakeTableRepo) GetTable(_ context.Context, _, tableID string) (domain.CafeTable, error) {
	t, ok := f.tables[tableID]
	if !ok {
		return domain.CafeTable{}, domain.ErrNotFound
	}
	return *t, nil
}

func (f *fakeTableRepo) ListTables(_ context.Context, _ string) ([]domain.CafeTable, error) {
	var out []domain.CafeTable
	for _, t := range f.tables {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTableRepo) FinishCleaning(_ context.Context, _, tableID string) (domain.CafeTable, error) {
	t, ok := f.tables[tableID]
	if !ok || t.Status != domain.TableCleaning {
		return domain.CafeTable{}, domain.ErrInvalidState
	}
	t.Status = domain.TableAvailable
	t.UpdatedAt = time.Now().UTC()
	return *t, nil
}

func TestFinishCleaning(t *testing.T) {
	t.Parallel()

	repo := &fakeTableRepo{tables: map[string]*domain.CafeTable{
		"t3": {ID: "t3", BranchID: "branch-1", Label: "T3", Status: domain.TableCleaning},
	}}
	pub := &fakePublisher{}
	svc := NewTableService(repo, pub, logger.NewWithWriter("pos-test", &bytes.Buffer{}))

	got, err := svc.FinishCleaning(context.Background(), "branch-1", "t3")
	require.NoError(t, err)
	require.Equal(t, domain.TableAvailable, got.Status)
	require.Contains(t, pub.kinds, domain.EventTableFreed)

	_, err = svc.FinishCleaning(context.Background(), "branch-1", "t3")
	require.ErrorIs(t, err, domain.ErrInvalidState, "only cleaning tables can be released")
}

func TestFinishCleaningLogsPublishFailure(t *testing.T) {
	t.Parallel()

	repo := &fakeTableRepo{tables: map[string]*domain.CafeTable{
		"t3": {ID: "t3", BranchID: "branch-1", Label: "T3", Status: domain.TableCleaning},
	}}
	var buf bytes.Buffer
	svc := NewTableService(repo, &fakePublisher{fail: true}, logger.NewWithWriter("pos-test", &buf))

	got, err := svc.FinishCleaning(context.Background(), "branch-1", "t3")
	require.NoError(t, err, "a broker hiccup must not undo the release")
	require.Equal(t, domain.TableAvailable, got.Status)
	require.Contains(t, buf.String(), "event_publish_failed")
}
