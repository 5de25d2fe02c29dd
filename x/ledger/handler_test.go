package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestRegisterAccountHandler(t *testing.T) {
	accountCond := weavetest.NewCondition()

	cases := map[string]struct {
		Conditions     []weave.Condition
		Msg            weave.Msg
		WantCheckErr   *errors.Error
		WantDeliverErr *errors.Error
	}{
		"account can register itself": {
			Conditions: []weave.Condition{accountCond},
			Msg: &RegisterAccountMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Account:  accountCond.Address(),
			},
		},
		"registration requires the account signature": {
			Conditions: []weave.Condition{weavetest.NewCondition()},
			Msg: &RegisterAccountMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Account:  accountCond.Address(),
			},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			RegisterRoutes(rt, auth)

			db := store.MemStore()
			migration.MustInitPkg(db, "ledger")

			ctx := weave.WithHeight(context.Background(), 1)
			ctx = weave.WithBlockTime(ctx, time.Now())
			ctx = auth.SetConditions(ctx, tc.Conditions...)

			tx := &weavetest.Tx{Msg: tc.Msg}

			cache := db.CacheWrap()
			if _, err := rt.Check(ctx, cache, tx); !tc.WantCheckErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			cache.Discard()
			if _, err := rt.Deliver(ctx, db, tx); !tc.WantDeliverErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}
		})
	}
}

func TestRegisterAccountOnlyOnce(t *testing.T) {
	accountCond := weavetest.NewCondition()

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	RegisterRoutes(rt, auth)

	db := store.MemStore()
	migration.MustInitPkg(db, "ledger")

	ctx := weave.WithHeight(context.Background(), 1)
	ctx = weave.WithBlockTime(ctx, time.Now())
	ctx = auth.SetConditions(ctx, accountCond)

	tx := &weavetest.Tx{Msg: &RegisterAccountMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Account:  accountCond.Address(),
	}}
	if _, err := rt.Deliver(ctx, db, tx); err != nil {
		t.Fatalf("deliver: %s", err)
	}
	// Registration is a one time operation.
	if _, err := rt.Deliver(ctx, db, tx); !errors.ErrDuplicate.Is(err) {
		t.Fatalf("want duplicate, got %q", err)
	}

	// A fresh account is registered with an empty balance, which is not
	// the same as being unknown.
	ctrl := NewController()
	got, err := ctrl.Balance(db, accountCond.Address())
	assert.Nil(t, err)
	if !got.IsEmpty() {
		t.Fatalf("want empty balance, got %v", got)
	}
}

func TestAckTransferHandler(t *testing.T) {
	relayCond := weavetest.NewCondition()
	sourceCond := weavetest.NewCondition()
	destCond := weavetest.NewCondition()

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	RegisterRoutes(rt, auth)

	db := store.MemStore()
	migration.MustInitPkg(db, "ledger")

	config := Configuration{
		Metadata:  &weave.Metadata{Schema: 1},
		Owner:     relayCond.Address(),
		Authority: relayCond.Address(),
	}
	if err := gconf.Save(db, "ledger", &config); err != nil {
		t.Fatalf("cannot save configuration: %s", err)
	}

	balances := NewBalanceBucket()
	_, err := balances.Put(db, sourceCond.Address(), &Balance{
		Metadata: &weave.Metadata{Schema: 1},
		Coins:    coin.Coins{coin.NewCoinp(20, 0, "IOV")},
	})
	assert.Nil(t, err)

	ctx := weave.WithHeight(context.Background(), 1)
	ctx = weave.WithBlockTime(ctx, time.Now())

	ctrl := NewController()
	transferID, err := ctrl.Dispatch(ctx, db, sourceCond.Address(), destCond.Address(), coin.NewCoin(8, 0, "IOV"), "payout")
	assert.Nil(t, err)

	// Only the configured relay authority can acknowledge.
	strangerCtx := auth.SetConditions(ctx, weavetest.NewCondition())
	tx := &weavetest.Tx{Msg: &AckTransferMsg{
		Metadata:   &weave.Metadata{Schema: 1},
		TransferID: transferID,
		Confirmed:  true,
	}}
	if _, err := rt.Deliver(strangerCtx, db, tx); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %q", err)
	}

	relayCtx := auth.SetConditions(ctx, relayCond)
	if _, err := rt.Deliver(relayCtx, db, tx); err != nil {
		t.Fatalf("deliver: %s", err)
	}

	got, err := ctrl.Balance(db, sourceCond.Address())
	assert.Nil(t, err)
	if !got.Equals(coin.Coins{coin.NewCoinp(12, 0, "IOV")}) {
		t.Fatalf("unexpected source balance: %v", got)
	}
	got, err = ctrl.Balance(db, destCond.Address())
	assert.Nil(t, err)
	if !got.Equals(coin.Coins{coin.NewCoinp(8, 0, "IOV")}) {
		t.Fatalf("unexpected destination balance: %v", got)
	}

	// Settled transfers cannot be acknowledged twice.
	if _, err := rt.Deliver(relayCtx, db, tx); !errors.ErrState.Is(err) {
		t.Fatalf("want state error, got %q", err)
	}
}
