package session

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/txdesk-dev/txdesk/internal/filter"
	"github.com/txdesk-dev/txdesk/internal/model"
	"github.com/txdesk-dev/txdesk/internal/store"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "tx.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	sess := New(st, opts...)
	require.NoError(t, sess.Load(context.Background()))
	return sess
}

// csvOf builds import text with sequential ids and the given statuses.
func csvOf(statuses ...model.Status) string {
	var b strings.Builder
	b.WriteString("id,status,type,clientName,amount,date")
	for i, status := range statuses {
		fmt.Fprintf(&b, "\n%d,%s,Refill,Client %d,%d.50,2024-01-%02d",
			i+1, status, i+1, (i+1)*10, i%27+1)
	}
	return b.String()
}

func manyStatuses(n int) []model.Status {
	statuses := make([]model.Status, n)
	for i := range statuses {
		statuses[i] = model.StatusPending
	}
	return statuses
}

func TestLoadSeedsFreshStore(t *testing.T) {
	sess := newTestSession(t)
	assert.Equal(t, StateReady, sess.State())
	assert.Equal(t, len(store.BootstrapRecords()), sess.TotalCount())
	assert.Equal(t, sess.TotalCount(), sess.FilteredCount())
	assert.Equal(t, 1, sess.CurrentPage())
}

func TestOperationsRequireReady(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "tx.db"))
	require.NoError(t, err)
	defer st.Close()

	sess := New(st)
	assert.Equal(t, StateUninitialized, sess.State())

	_, err = sess.Import("header\n")
	assert.ErrorIs(t, err, ErrNotReady)
	_, err = sess.Export()
	assert.ErrorIs(t, err, ErrNotReady)
	assert.ErrorIs(t, sess.RequestDelete("1"), ErrNotReady)
	assert.False(t, sess.SetPage(1))
}

func TestImportReplacesWorkingSet(t *testing.T) {
	sess := newTestSession(t)

	result, err := sess.Import(csvOf(model.StatusPending, model.StatusCompleted))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Empty(t, result.Skipped)
	assert.Equal(t, 2, sess.TotalCount())

	// Session-scoped: the store still holds only the seed data.
	stored, err := sess.store.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, len(store.BootstrapRecords()))
}

func TestImportAbortsOnMalformedRows(t *testing.T) {
	sess := newTestSession(t)
	before := sess.TotalCount()

	_, err := sess.Import("header\n1,Pending,Refill,Alice,100,2024-01-01\nbad row")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")

	// The previously loaded set is untouched.
	assert.Equal(t, before, sess.TotalCount())
}

func TestImportKeepsGoodRowsWhenPartialAllowed(t *testing.T) {
	sess := newTestSession(t, WithPartialImports())

	result, err := sess.Import("header\n1,Pending,Refill,Alice,100,2024-01-01\nbad row")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, 3, result.Skipped[0].Line)
	assert.Equal(t, 1, sess.TotalCount())
}

func TestSaveAllPersistsImportedRecords(t *testing.T) {
	sess := newTestSession(t)

	_, err := sess.Import(csvOf(model.StatusPending, model.StatusCompleted))
	require.NoError(t, err)
	require.NoError(t, sess.SaveAll(context.Background()))

	stored, err := sess.store.GetAll(context.Background())
	require.NoError(t, err)
	// Seed ids 1-3 are upserted by imported ids 1-2, so 3 remain.
	assert.Len(t, stored, 3)
}

func TestPagination(t *testing.T) {
	sess := newTestSession(t)
	_, err := sess.Import(csvOf(manyStatuses(25)...))
	require.NoError(t, err)

	require.NoError(t, sess.SetFilter(filter.Spec{}))
	assert.Equal(t, 3, sess.PageCount())

	assert.True(t, sess.SetPage(3))
	page := sess.Page()
	require.Len(t, page, 5)
	assert.Equal(t, "21", page[0].ID)
	assert.Equal(t, "25", page[4].ID)
}

func TestSetPageRejectsOutOfRange(t *testing.T) {
	sess := newTestSession(t)
	_, err := sess.Import(csvOf(manyStatuses(25)...))
	require.NoError(t, err)

	assert.True(t, sess.SetPage(2))
	assert.False(t, sess.SetPage(0))
	assert.False(t, sess.SetPage(4))
	assert.Equal(t, 2, sess.CurrentPage(), "rejected request must not move the page")
}

func TestSetFilterResetsPage(t *testing.T) {
	sess := newTestSession(t)
	_, err := sess.Import(csvOf(manyStatuses(25)...))
	require.NoError(t, err)

	require.True(t, sess.SetPage(3))
	require.NoError(t, sess.SetFilter(filter.Spec{}))
	assert.Equal(t, 1, sess.CurrentPage())
}

func TestEditMergesPersistsAndRefilters(t *testing.T) {
	sess := newTestSession(t)
	ctx := context.Background()

	newAmount := dec("500")
	newClient := "Updated Client"
	rec, err := sess.Edit(ctx, "1", Changes{Amount: &newAmount, ClientName: &newClient})
	require.NoError(t, err)
	assert.Equal(t, "1", rec.ID)
	assert.True(t, newAmount.Equal(rec.Amount))
	assert.Equal(t, newClient, rec.ClientName)
	// Unchanged fields keep their values.
	assert.Equal(t, model.StatusPending, rec.Status)

	stored, err := sess.store.GetAll(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, stored)
	assert.True(t, newAmount.Equal(stored[0].Amount), "edit must persist")
}

func TestEditUnknownIDFails(t *testing.T) {
	sess := newTestSession(t)
	ctx := context.Background()
	before := sess.TotalCount()

	amount := dec("500")
	_, err := sess.Edit(ctx, "no-such-id", Changes{Amount: &amount})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "no-such-id", notFound.ID)
	assert.Equal(t, before, sess.TotalCount())
}

func TestDeleteIsTwoPhase(t *testing.T) {
	sess := newTestSession(t)
	ctx := context.Background()
	before := sess.TotalCount()

	require.NoError(t, sess.RequestDelete("1"))
	_, pending := sess.PendingDelete()
	assert.True(t, pending)
	assert.Equal(t, before, sess.TotalCount(), "request alone must not delete")

	require.NoError(t, sess.ConfirmDelete(ctx))
	assert.Equal(t, before-1, sess.TotalCount())

	stored, err := sess.store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, before-1)
}

func TestConfirmWithoutRequestIsNoOp(t *testing.T) {
	sess := newTestSession(t)
	before := sess.TotalCount()

	require.NoError(t, sess.ConfirmDelete(context.Background()))
	assert.Equal(t, before, sess.TotalCount())
}

func TestCancelDeleteDiscardsPending(t *testing.T) {
	sess := newTestSession(t)
	before := sess.TotalCount()

	require.NoError(t, sess.RequestDelete("1"))
	sess.CancelDelete()
	require.NoError(t, sess.ConfirmDelete(context.Background()))
	assert.Equal(t, before, sess.TotalCount())
}

func TestRequestDeleteUnknownIDFails(t *testing.T) {
	sess := newTestSession(t)

	var notFound *NotFoundError
	require.ErrorAs(t, sess.RequestDelete("no-such-id"), &notFound)
}

func TestAddAssignsIDAndPersists(t *testing.T) {
	sess := newTestSession(t)
	ctx := context.Background()
	before := sess.TotalCount()

	rec, err := sess.Add(ctx, AddParams{
		Status:     model.StatusCompleted,
		Type:       model.TypeWithdrawal,
		ClientName: "Eve",
		Amount:     dec("42"),
		Date:       date(2024, 6, 1),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, before+1, sess.TotalCount())

	stored, err := sess.store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, before+1)
}

func TestAddRejectsDuplicateID(t *testing.T) {
	sess := newTestSession(t)

	_, err := sess.Add(context.Background(), AddParams{
		ID:     "1", // seeded id
		Status: model.StatusPending,
		Type:   model.TypeRefill,
		Amount: dec("1"),
		Date:   date(2024, 6, 1),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestStatusBreakdown(t *testing.T) {
	sess := newTestSession(t)
	_, err := sess.Import(csvOf(model.StatusPending, model.StatusPending, model.StatusCompleted))
	require.NoError(t, err)

	breakdown := sess.StatusBreakdown()
	require.Len(t, breakdown, 2)
	assert.True(t, dec("66.67").Equal(breakdown[model.StatusPending]), "got %s", breakdown[model.StatusPending])
	assert.True(t, dec("33.33").Equal(breakdown[model.StatusCompleted]), "got %s", breakdown[model.StatusCompleted])
}

func TestStatusBreakdownFollowsFilter(t *testing.T) {
	sess := newTestSession(t)
	_, err := sess.Import(csvOf(model.StatusPending, model.StatusPending, model.StatusCompleted))
	require.NoError(t, err)

	completed := model.StatusCompleted
	require.NoError(t, sess.SetFilter(filter.Spec{Status: &completed}))

	breakdown := sess.StatusBreakdown()
	require.Len(t, breakdown, 1)
	assert.True(t, dec("100").Equal(breakdown[model.StatusCompleted]))
}

func TestExportUsesFilteredSetAndColumnSelection(t *testing.T) {
	sess := newTestSession(t)
	_, err := sess.Import(csvOf(model.StatusPending, model.StatusCompleted))
	require.NoError(t, err)

	pending := model.StatusPending
	require.NoError(t, sess.SetFilter(filter.Spec{Status: &pending}))
	sess.SetColumns([]model.Column{model.ColumnID, model.ColumnStatus})

	text, err := sess.Export()
	require.NoError(t, err)
	assert.Equal(t, "Id,Status\n1,Pending", text)
}

func TestToggleColumn(t *testing.T) {
	sess := newTestSession(t)
	sess.SetColumns([]model.Column{model.ColumnID, model.ColumnStatus})

	sess.ToggleColumn(model.ColumnStatus)
	assert.Equal(t, []model.Column{model.ColumnID}, sess.Columns())

	sess.ToggleColumn(model.ColumnAmount)
	assert.Equal(t, []model.Column{model.ColumnID, model.ColumnAmount}, sess.Columns())
}
