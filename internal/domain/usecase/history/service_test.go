package history

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/sealpay/wallet-ledger/internal/domain/entity"
	errs "github.com/sealpay/wallet-ledger/internal/domain/error"
	coreport "github.com/sealpay/wallet-ledger/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) SetLevel(coreport.LogLevel)   {}
func (nopLogger) Debug(string, map[string]any) {}
func (nopLogger) Info(string, map[string]any)  {}
func (nopLogger) Warn(string, map[string]any)  {}
func (nopLogger) Error(string, map[string]any) {}
func (nopLogger) Flush() error                 { return nil }

// fakeLedger serves canned ledger entries, ordered the way the real store
// orders them: created_at descending, then id descending
type fakeLedger struct {
	entries []*entity.Transaction
	err     error
}

func sortNewestFirst(entries []*entity.Transaction) {
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		}
		return entries[i].ID > entries[j].ID
	})
}

func (f *fakeLedger) Append(ctx context.Context, txn *entity.Transaction) error {
	f.entries = append(f.entries, txn)
	return nil
}

func (f *fakeLedger) ListForUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Transaction
	for _, txn := range f.entries {
		if txn.FromUserID == userID || txn.ToUserID == userID {
			out = append(out, txn)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (f *fakeLedger) ListSent(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Transaction
	for _, txn := range f.entries {
		if txn.FromUserID == userID {
			out = append(out, txn)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (f *fakeLedger) ListReceived(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Transaction
	for _, txn := range f.entries {
		if txn.ToUserID == userID {
			out = append(out, txn)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func at(day int) time.Time {
	return time.Date(2025, 6, day, 12, 0, 0, 0, time.UTC)
}

func seedLedger() *fakeLedger {
	// Stored out of order on purpose; the list methods impose the contract
	return &fakeLedger{entries: []*entity.Transaction{
		{ID: 1, FromUserID: 1, ToUserID: 2, FromPhone: "+15550001", ToPhone: "+15550002", Amount: "10.00", Status: entity.StatusSuccess, CreatedAt: at(1)},
		{ID: 3, FromUserID: 2, ToUserID: 1, FromPhone: "+15550002", ToPhone: "+15550001", Amount: "5.00", Status: entity.StatusSuccess, CreatedAt: at(3)},
		{ID: 2, FromUserID: 1, ToUserID: 3, FromPhone: "+15550001", ToPhone: "+15550003", Amount: "8.25", Status: entity.StatusSuccess, CreatedAt: at(2)},
	}}
}

func TestHistory(t *testing.T) {
	svc := NewService(seedLedger(), nopLogger{})

	records, err := svc.History(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Newest first, direction computed per entry for the viewer
	assert.Equal(t, uint64(3), records[0].ID)
	assert.Equal(t, entity.DirectionReceived, records[0].Direction)
	assert.Equal(t, uint64(2), records[1].ID)
	assert.Equal(t, entity.DirectionSent, records[1].Direction)
	assert.Equal(t, uint64(1), records[2].ID)
	assert.Equal(t, entity.DirectionSent, records[2].Direction)
}

func TestHistoryDirectionSymmetry(t *testing.T) {
	svc := NewService(seedLedger(), nopLogger{})

	viewer1, err := svc.History(context.Background(), 1)
	require.NoError(t, err)
	viewer2, err := svc.History(context.Background(), 2)
	require.NoError(t, err)

	// Entry 1 involves both users and labels oppositely for each
	assert.Equal(t, entity.DirectionSent, viewer1[2].Direction)
	assert.Equal(t, entity.DirectionReceived, viewer2[1].Direction)
	assert.Equal(t, viewer1[2].ID, viewer2[1].ID)
	assert.Equal(t, viewer1[2].Amount, viewer2[1].Amount)
}

func TestSent(t *testing.T) {
	svc := NewService(seedLedger(), nopLogger{})

	records, err := svc.Sent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 2)

	for _, rec := range records {
		assert.Equal(t, entity.DirectionSent, rec.Direction)
		assert.Equal(t, "+15550001", rec.FromPhone)
	}
	assert.Equal(t, uint64(2), records[0].ID)
	assert.Equal(t, uint64(1), records[1].ID)
}

func TestReceived(t *testing.T) {
	svc := NewService(seedLedger(), nopLogger{})

	records, err := svc.Received(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, entity.DirectionReceived, records[0].Direction)
	assert.Equal(t, uint64(3), records[0].ID)
}

func TestHistoryTieBreaksOnIDDescending(t *testing.T) {
	// Three entries persisted within the same timestamp tick; the entry id
	// is the only thing that orders them
	same := at(5)
	ledger := &fakeLedger{entries: []*entity.Transaction{
		{ID: 6, FromUserID: 1, ToUserID: 2, FromPhone: "+15550001", ToPhone: "+15550002", Amount: "1.00", Status: entity.StatusSuccess, CreatedAt: same},
		{ID: 8, FromUserID: 2, ToUserID: 1, FromPhone: "+15550002", ToPhone: "+15550001", Amount: "2.00", Status: entity.StatusSuccess, CreatedAt: same},
		{ID: 7, FromUserID: 1, ToUserID: 2, FromPhone: "+15550001", ToPhone: "+15550002", Amount: "3.00", Status: entity.StatusSuccess, CreatedAt: same},
	}}
	svc := NewService(ledger, nopLogger{})

	records, err := svc.History(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, uint64(8), records[0].ID)
	assert.Equal(t, uint64(7), records[1].ID)
	assert.Equal(t, uint64(6), records[2].ID)
}

func TestHistoryEmptyForUnknownUser(t *testing.T) {
	svc := NewService(seedLedger(), nopLogger{})

	records, err := svc.History(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHistoryIdempotent(t *testing.T) {
	svc := NewService(seedLedger(), nopLogger{})

	first, err := svc.History(context.Background(), 1)
	require.NoError(t, err)
	second, err := svc.History(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHistoryPropagatesStoreError(t *testing.T) {
	svc := NewService(&fakeLedger{err: errs.ErrStorageUnavailable}, nopLogger{})

	_, err := svc.History(context.Background(), 1)
	assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
}
