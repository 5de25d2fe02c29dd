package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestBalanceUnknownAccount(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "ledger")

	ctrl := NewController()
	if _, err := ctrl.Balance(db, weavetest.NewCondition().Address()); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %q", err)
	}
}

func TestDispatchAndAcknowledge(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "ledger")

	buyer := weavetest.NewCondition().Address()
	custody := weavetest.NewCondition().Address()

	balances := NewBalanceBucket()
	_, err := balances.Put(db, buyer, &Balance{
		Metadata: &weave.Metadata{Schema: 1},
		Coins:    coin.Coins{coin.NewCoinp(10, 0, "IOV")},
	})
	assert.Nil(t, err)

	ctx := weave.WithBlockTime(context.Background(), time.Now())
	ctrl := NewController()

	id, err := ctrl.Dispatch(ctx, db, buyer, custody, coin.NewCoin(4, 0, "IOV"), "deposit")
	assert.Nil(t, err)

	// Dispatching only records the intent, balances are untouched.
	got, err := ctrl.Balance(db, buyer)
	assert.Nil(t, err)
	if !got.Equals(coin.Coins{coin.NewCoinp(10, 0, "IOV")}) {
		t.Fatalf("balance changed before acknowledgement: %v", got)
	}
	tr, err := ctrl.Transfer(db, id)
	assert.Nil(t, err)
	assert.Equal(t, TransferPending, tr.State)

	tr, err = ctrl.Acknowledge(db, id, true)
	assert.Nil(t, err)
	assert.Equal(t, TransferConfirmed, tr.State)

	got, err = ctrl.Balance(db, buyer)
	assert.Nil(t, err)
	if !got.Equals(coin.Coins{coin.NewCoinp(6, 0, "IOV")}) {
		t.Fatalf("unexpected source balance: %v", got)
	}
	// Credit created the custody account.
	got, err = ctrl.Balance(db, custody)
	assert.Nil(t, err)
	if !got.Equals(coin.Coins{coin.NewCoinp(4, 0, "IOV")}) {
		t.Fatalf("unexpected destination balance: %v", got)
	}

	// A settled transfer cannot be acknowledged again.
	if _, err := ctrl.Acknowledge(db, id, true); !errors.ErrState.Is(err) {
		t.Fatalf("want state error, got %q", err)
	}
}

func TestAcknowledgeFailedTransfer(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "ledger")

	src := weavetest.NewCondition().Address()
	dst := weavetest.NewCondition().Address()

	balances := NewBalanceBucket()
	_, err := balances.Put(db, src, &Balance{
		Metadata: &weave.Metadata{Schema: 1},
		Coins:    coin.Coins{coin.NewCoinp(3, 0, "IOV")},
	})
	assert.Nil(t, err)

	ctx := weave.WithBlockTime(context.Background(), time.Now())
	ctrl := NewController()

	id, err := ctrl.Dispatch(ctx, db, src, dst, coin.NewCoin(3, 0, "IOV"), "")
	assert.Nil(t, err)

	tr, err := ctrl.Acknowledge(db, id, false)
	assert.Nil(t, err)
	assert.Equal(t, TransferFailed, tr.State)

	// A failed transfer does not touch the balances.
	got, err := ctrl.Balance(db, src)
	assert.Nil(t, err)
	if !got.Equals(coin.Coins{coin.NewCoinp(3, 0, "IOV")}) {
		t.Fatalf("unexpected source balance: %v", got)
	}
	if _, err := ctrl.Balance(db, dst); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %q", err)
	}
}

func TestAcknowledgeUncoveredTransfer(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "ledger")

	src := weavetest.NewCondition().Address()
	dst := weavetest.NewCondition().Address()

	balances := NewBalanceBucket()
	_, err := balances.Put(db, src, &Balance{
		Metadata: &weave.Metadata{Schema: 1},
		Coins:    coin.Coins{coin.NewCoinp(1, 0, "IOV")},
	})
	assert.Nil(t, err)

	ctx := weave.WithBlockTime(context.Background(), time.Now())
	ctrl := NewController()

	id, err := ctrl.Dispatch(ctx, db, src, dst, coin.NewCoin(5, 0, "IOV"), "")
	assert.Nil(t, err)

	if _, err := ctrl.Acknowledge(db, id, true); !errors.ErrAmount.Is(err) {
		t.Fatalf("want amount error, got %q", err)
	}
}

func TestDispatchToSelf(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "ledger")

	addr := weavetest.NewCondition().Address()
	ctx := weave.WithBlockTime(context.Background(), time.Now())

	ctrl := NewController()
	if _, err := ctrl.Dispatch(ctx, db, addr, addr, coin.NewCoin(1, 0, "IOV"), ""); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %q", err)
	}
}
