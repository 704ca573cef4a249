package transfer

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sealpay/wallet-ledger/internal/domain/entity"
	errs "github.com/sealpay/wallet-ledger/internal/domain/error"
	coreport "github.com/sealpay/wallet-ledger/internal/domain/port/core"
	"github.com/sealpay/wallet-ledger/internal/domain/port/persistence"
)

// fixedTimeProvider returns a constant time for deterministic assertions
type fixedTimeProvider struct {
	now time.Time
}

func newFixedTimeProvider() *fixedTimeProvider {
	return &fixedTimeProvider{now: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

func (p *fixedTimeProvider) Since(t time.Time) time.Duration { return p.now.Sub(t) }

func (p *fixedTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) SetLevel(coreport.LogLevel)   {}
func (nopLogger) Debug(string, map[string]any) {}
func (nopLogger) Info(string, map[string]any)  {}
func (nopLogger) Warn(string, map[string]any)  {}
func (nopLogger) Error(string, map[string]any) {}
func (nopLogger) Flush() error                 { return nil }

// memStore is an in-memory wallet and ledger store. A mutex serializes units
// of work the way row locks serialize them in the real store, and a snapshot
// taken at the start of each unit restores state on rollback.
type memStore struct {
	mu           sync.Mutex
	wallets      map[uint64]*entity.Wallet
	phoneToID    map[string]uint64
	ledger       []*entity.Transaction
	nextWalletID uint64
	nextTxnID    uint64

	failAppend bool
}

func newMemStore() *memStore {
	return &memStore{
		wallets:   make(map[uint64]*entity.Wallet),
		phoneToID: make(map[string]uint64),
	}
}

// addWallet seeds a wallet with the given phone and balance
func (s *memStore) addWallet(userID uint64, phone string, balanceInCents int64, tp coreport.TimeProvider) *entity.Wallet {
	s.nextWalletID++
	w := entity.NewWallet(userID, tp)
	w.ID = s.nextWalletID
	w.Phone = phone
	w.SetBalance(balanceInCents)
	s.wallets[w.ID] = w
	s.phoneToID[phone] = w.ID
	return w
}

func (s *memStore) balanceOf(phone string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wallets[s.phoneToID[phone]].Balance()
}

func (s *memStore) totalBalance() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, w := range s.wallets {
		total += w.Balance()
	}
	return total
}

func (s *memStore) ledgerSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ledger)
}

func copyWallet(w *entity.Wallet) *entity.Wallet {
	clone := *w
	return &clone
}

// fakeUnitOfWork implements persistence.UnitOfWork over a memStore
type fakeUnitOfWork struct {
	store *memStore
}

func newFakeUnitOfWork(store *memStore) *fakeUnitOfWork {
	return &fakeUnitOfWork{store: store}
}

func (u *fakeUnitOfWork) Execute(ctx context.Context, fn func(txCtx context.Context) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	snapshot := make(map[uint64]*entity.Wallet, len(u.store.wallets))
	for id, w := range u.store.wallets {
		snapshot[id] = copyWallet(w)
	}
	ledgerLen := len(u.store.ledger)

	if err := fn(ctx); err != nil {
		u.store.wallets = snapshot
		u.store.ledger = u.store.ledger[:ledgerLen]
		return err
	}
	return nil
}

func (u *fakeUnitOfWork) WalletRepository(ctx context.Context) persistence.WalletRepository {
	return &memWalletRepo{store: u.store}
}

func (u *fakeUnitOfWork) LedgerRepository(ctx context.Context) persistence.LedgerRepository {
	return &memLedgerRepo{store: u.store}
}

func (u *fakeUnitOfWork) UserRepository(ctx context.Context) persistence.UserRepository {
	return nil
}

// memWalletRepo operates on the store owned by the enclosing unit of work.
// Reads hand out copies; only Update writes through.
type memWalletRepo struct {
	store *memStore
}

func (r *memWalletRepo) GetByPhone(ctx context.Context, phone string) (*entity.Wallet, error) {
	id, ok := r.store.phoneToID[phone]
	if !ok {
		return nil, errs.ErrWalletNotFound
	}
	return copyWallet(r.store.wallets[id]), nil
}

func (r *memWalletRepo) GetByUserID(ctx context.Context, userID uint64) (*entity.Wallet, error) {
	for _, w := range r.store.wallets {
		if w.UserID == userID {
			return copyWallet(w), nil
		}
	}
	return nil, errs.ErrWalletNotFound
}

func (r *memWalletRepo) LockByID(ctx context.Context, id uint64) (*entity.Wallet, error) {
	w, ok := r.store.wallets[id]
	if !ok {
		return nil, errs.ErrWalletNotFound
	}
	return copyWallet(w), nil
}

func (r *memWalletRepo) Create(ctx context.Context, wallet *entity.Wallet) error {
	r.store.nextWalletID++
	wallet.ID = r.store.nextWalletID
	r.store.wallets[wallet.ID] = copyWallet(wallet)
	r.store.phoneToID[wallet.Phone] = wallet.ID
	return nil
}

func (r *memWalletRepo) Update(ctx context.Context, wallet *entity.Wallet) error {
	if _, ok := r.store.wallets[wallet.ID]; !ok {
		return errs.ErrWalletNotFound
	}
	r.store.wallets[wallet.ID] = copyWallet(wallet)
	return nil
}

// memLedgerRepo appends to the in-memory ledger
type memLedgerRepo struct {
	store *memStore
}

func (r *memLedgerRepo) Append(ctx context.Context, txn *entity.Transaction) error {
	if r.store.failAppend {
		return errs.ErrStorageUnavailable
	}
	r.store.nextTxnID++
	txn.ID = r.store.nextTxnID
	r.store.ledger = append(r.store.ledger, txn)
	return nil
}

// orderNewestFirst matches the persisted ordering contract: created_at
// descending with the entry id as tiebreak
func orderNewestFirst(entries []*entity.Transaction) []*entity.Transaction {
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		}
		return entries[i].ID > entries[j].ID
	})
	return entries
}

func (r *memLedgerRepo) ListForUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, txn := range r.store.ledger {
		if txn.FromUserID == userID || txn.ToUserID == userID {
			out = append(out, txn)
		}
	}
	return orderNewestFirst(out), nil
}

func (r *memLedgerRepo) ListSent(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, txn := range r.store.ledger {
		if txn.FromUserID == userID {
			out = append(out, txn)
		}
	}
	return orderNewestFirst(out), nil
}

func (r *memLedgerRepo) ListReceived(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, txn := range r.store.ledger {
		if txn.ToUserID == userID {
			out = append(out, txn)
		}
	}
	return orderNewestFirst(out), nil
}
