package market

import (
	"context"
	"testing"
	"time"

	"github.com/dmarket-network/dmarket/x/ledger"
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

type fixture struct {
	rt        *app.Router
	auth      *weavetest.CtxAuth
	db        weave.CacheableKVStore
	ctrl      ledger.Controller
	authority weave.Condition
	custody   weave.Address
	owner     weave.Condition
	buyer     weave.Condition
	now       time.Time
	ctx       weave.Context
}

func newFixture(t testing.TB) *fixture {
	t.Helper()

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	ctrl := ledger.NewController()
	RegisterRoutes(rt, auth, ctrl)

	db := store.MemStore()
	migration.MustInitPkg(db, "market", "ledger")

	authority := weavetest.NewCondition()
	custody := weavetest.NewCondition().Address()
	conf := Configuration{
		Metadata:     &weave.Metadata{Schema: 1},
		Owner:        authority.Address(),
		Authority:    authority.Address(),
		Custody:      custody,
		TradeTimeout: weave.AsUnixDuration(time.Hour),
	}
	if err := gconf.Save(db, "market", &conf); err != nil {
		t.Fatalf("cannot save configuration: %s", err)
	}

	owner := weavetest.NewCondition()
	buyer := weavetest.NewCondition()
	balances := ledger.NewBalanceBucket()
	_, err := balances.Put(db, buyer.Address(), &ledger.Balance{
		Metadata: &weave.Metadata{Schema: 1},
		Coins:    coin.Coins{coin.NewCoinp(100, 0, "IOV")},
	})
	assert.Nil(t, err)

	now := time.Now().UTC()
	ctx := weave.WithHeight(context.Background(), 1)
	ctx = weave.WithBlockTime(ctx, now)

	return &fixture{
		rt:        rt,
		auth:      auth,
		db:        db,
		ctrl:      ctrl,
		authority: authority,
		custody:   custody,
		owner:     owner,
		buyer:     buyer,
		now:       now,
		ctx:       ctx,
	}
}

func (f *fixture) deliver(cond weave.Condition, msg weave.Msg) error {
	ctx := f.auth.SetConditions(f.ctx, cond)
	_, err := f.rt.Deliver(ctx, f.db, &weavetest.Tx{Msg: msg})
	return err
}

// listed creates and publishes a listing owned by f.owner.
func (f *fixture) listed(t testing.TB, id []byte, price coin.Coin) {
	t.Helper()
	err := f.deliver(f.owner, &CreateListingMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		ListingID: id,
		Title:     "a dataset",
		Tags:      []string{"test"},
		DataSize:  1024,
	})
	assert.Nil(t, err)
	err = f.deliver(f.owner, &PublishListingMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		ListingID: id,
		Price:     &price,
	})
	assert.Nil(t, err)
}

// purchased runs a purchase by f.buyer and returns the deposit transfer ID.
func (f *fixture) purchased(t testing.TB, id []byte) []byte {
	t.Helper()
	err := f.deliver(f.buyer, &PurchaseMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		ListingID: id,
		PubKey:    []byte("buyer-public-key"),
	})
	assert.Nil(t, err)
	var trade Trade
	if err := NewTradeBucket().One(f.db, id, &trade); err != nil {
		t.Fatalf("cannot load trade: %s", err)
	}
	return trade.TransferID
}

func (f *fixture) balance(t testing.TB, account weave.Address) coin.Coins {
	t.Helper()
	cs, err := f.ctrl.Balance(f.db, account)
	assert.Nil(t, err)
	return cs
}

func TestCreateListingHandler(t *testing.T) {
	f := newFixture(t)

	msg := &CreateListingMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		ListingID: []byte("weather-2026"),
		Title:     "weather observations",
		DataSize:  4096,
	}
	assert.Nil(t, f.deliver(f.owner, msg))

	var lst Listing
	assert.Nil(t, NewListingBucket().One(f.db, msg.ListingID, &lst))
	assert.Equal(t, ListingPrivate, lst.State)
	if lst.Price != nil {
		t.Fatalf("a new listing must not have a price: %v", lst.Price)
	}

	// The content ID must be unique, even across owners.
	if err := f.deliver(f.buyer, msg); !errors.ErrDuplicate.Is(err) {
		t.Fatalf("want duplicate, got %q", err)
	}
}

func TestPublishListingHandler(t *testing.T) {
	f := newFixture(t)

	id := []byte("weather-2026")
	assert.Nil(t, f.deliver(f.owner, &CreateListingMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		ListingID: id,
		Title:     "weather observations",
		DataSize:  4096,
	}))

	price := coin.NewCoin(5, 0, "IOV")
	publish := &PublishListingMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		ListingID: id,
		Price:     &price,
	}

	if err := f.deliver(f.buyer, publish); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %q", err)
	}
	assert.Nil(t, f.deliver(f.owner, publish))

	var lst Listing
	assert.Nil(t, NewListingBucket().One(f.db, id, &lst))
	assert.Equal(t, ListingPublic, lst.State)
	assert.Equal(t, &price, lst.Price)

	// Once public the price is frozen.
	cheaper := coin.NewCoin(1, 0, "IOV")
	publish.Price = &cheaper
	if err := f.deliver(f.owner, publish); !errors.ErrState.Is(err) {
		t.Fatalf("want state error, got %q", err)
	}
}

func TestPurchaseHandler(t *testing.T) {
	cases := map[string]struct {
		Prepare func(t *testing.T, f *fixture) *fixture
		Signer  func(f *fixture) weave.Condition
		Msg     func(f *fixture) *PurchaseMsg
		WantErr *errors.Error
	}{
		"happy path": {},
		"unknown listing": {
			Msg: func(f *fixture) *PurchaseMsg {
				return &PurchaseMsg{
					Metadata:  &weave.Metadata{Schema: 1},
					ListingID: []byte("no-such-listing"),
					PubKey:    []byte("buyer-public-key"),
				}
			},
			WantErr: errors.ErrNotFound,
		},
		"owner cannot buy own listing": {
			Signer: func(f *fixture) weave.Condition {
				return f.owner
			},
			WantErr: errors.ErrState,
		},
		"unregistered buyer": {
			Signer: func(f *fixture) weave.Condition {
				return weavetest.NewCondition()
			},
			WantErr: errors.ErrNotFound,
		},
		"balance too low": {
			Prepare: func(t *testing.T, f *fixture) *fixture {
				poor := weavetest.NewCondition()
				_, err := ledger.NewBalanceBucket().Put(f.db, poor.Address(), &ledger.Balance{
					Metadata: &weave.Metadata{Schema: 1},
					Coins:    coin.Coins{coin.NewCoinp(1, 0, "IOV")},
				})
				assert.Nil(t, err)
				f.buyer = poor
				return f
			},
			WantErr: errors.ErrAmount,
		},
		"second purchase while pending": {
			Prepare: func(t *testing.T, f *fixture) *fixture {
				f.purchased(t, []byte("weather-2026"))
				other := weavetest.NewCondition()
				_, err := ledger.NewBalanceBucket().Put(f.db, other.Address(), &ledger.Balance{
					Metadata: &weave.Metadata{Schema: 1},
					Coins:    coin.Coins{coin.NewCoinp(100, 0, "IOV")},
				})
				assert.Nil(t, err)
				f.buyer = other
				return f
			},
			WantErr: errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t)
			f.listed(t, []byte("weather-2026"), coin.NewCoin(5, 0, "IOV"))
			if tc.Prepare != nil {
				f = tc.Prepare(t, f)
			}
			signer := f.buyer
			if tc.Signer != nil {
				signer = tc.Signer(f)
			}
			msg := &PurchaseMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				ListingID: []byte("weather-2026"),
				PubKey:    []byte("buyer-public-key"),
			}
			if tc.Msg != nil {
				msg = tc.Msg(f)
			}
			if err := f.deliver(signer, msg); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}
		})
	}
}

func TestPurchaseDispatchesDeposit(t *testing.T) {
	f := newFixture(t)
	id := []byte("weather-2026")
	f.listed(t, id, coin.NewCoin(5, 0, "IOV"))

	transferID := f.purchased(t, id)

	// The deposit is an outbox entry, no shadow funds moved yet.
	deposit, err := f.ctrl.Transfer(f.db, transferID)
	assert.Nil(t, err)
	assert.Equal(t, ledger.TransferPending, deposit.State)
	assert.Equal(t, f.buyer.Address(), deposit.Source)
	assert.Equal(t, f.custody, deposit.Destination)
	got := f.balance(t, f.buyer.Address())
	if !got.Equals(coin.Coins{coin.NewCoinp(100, 0, "IOV")}) {
		t.Fatalf("unexpected buyer balance: %v", got)
	}

	var lst Listing
	assert.Nil(t, NewListingBucket().One(f.db, id, &lst))
	assert.Equal(t, f.buyer.Address(), lst.PendingBuyer)
}

func TestConfirmTradeApprove(t *testing.T) {
	f := newFixture(t)
	id := []byte("weather-2026")
	f.listed(t, id, coin.NewCoin(5, 0, "IOV"))
	transferID := f.purchased(t, id)

	approve := &ConfirmTradeMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		ListingID: id,
		Buyer:     f.buyer.Address(),
		Approve:   true,
		AccessKey: []byte("encrypted-access-key"),
	}

	// The deposit was not acknowledged by the relay yet.
	if err := f.deliver(f.owner, approve); !errors.ErrState.Is(err) {
		t.Fatalf("want state error, got %q", err)
	}

	_, err := f.ctrl.Acknowledge(f.db, transferID, true)
	assert.Nil(t, err)

	if err := f.deliver(weavetest.NewCondition(), approve); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want unauthorized, got %q", err)
	}
	assert.Nil(t, f.deliver(f.owner, approve))

	var grant Grant
	assert.Nil(t, NewGrantBucket().One(f.db, grantKey(f.buyer.Address(), id), &grant))
	assert.Equal(t, []byte("encrypted-access-key"), grant.AccessKey)
	assert.Equal(t, []byte("buyer-public-key"), grant.PubKey)

	var lst Listing
	assert.Nil(t, NewListingBucket().One(f.db, id, &lst))
	if lst.PendingBuyer != nil {
		t.Fatalf("pending buyer must be cleared: %v", lst.PendingBuyer)
	}
	if !lst.HasGrantee(f.buyer.Address()) {
		t.Fatal("buyer must be a grantee")
	}
	if n := len(lst.Grantees); n != 1 {
		t.Fatalf("buyer must be listed as a grantee exactly once, got %d entries", n)
	}
	if err := NewTradeBucket().Has(f.db, id); !errors.ErrNotFound.Is(err) {
		t.Fatalf("trade must be deleted, got %q", err)
	}

	// The payout is dispatched from custody to the owner and settles once
	// the relay acknowledges it.
	var payouts []ledger.Transfer
	if _, err := ledger.NewTransferBucket().ByIndex(f.db, "source", f.custody, &payouts); err != nil {
		t.Fatalf("cannot list transfers: %s", err)
	}
	if len(payouts) != 1 {
		t.Fatalf("want one payout, got %d", len(payouts))
	}
	payout := payouts[0]
	assert.Equal(t, ledger.TransferPending, payout.State)
	assert.Equal(t, f.owner.Address(), payout.Destination)
	if !payout.Amount.Equals(coin.NewCoin(5, 0, "IOV")) {
		t.Fatalf("unexpected payout amount: %v", payout.Amount)
	}

	// The same buyer cannot purchase the listing twice.
	err = f.deliver(f.buyer, &PurchaseMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		ListingID: id,
		PubKey:    []byte("buyer-public-key"),
	})
	if !errors.ErrDuplicate.Is(err) {
		t.Fatalf("want duplicate, got %q", err)
	}
}

func TestConfirmTradeReject(t *testing.T) {
	f := newFixture(t)
	id := []byte("weather-2026")
	f.listed(t, id, coin.NewCoin(5, 0, "IOV"))
	transferID := f.purchased(t, id)
	_, err := f.ctrl.Acknowledge(f.db, transferID, true)
	assert.Nil(t, err)

	// The settlement authority can reject on behalf of the owner.
	assert.Nil(t, f.deliver(f.authority, &ConfirmTradeMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		ListingID: id,
		Buyer:     f.buyer.Address(),
		Approve:   false,
	}))

	if err := NewGrantBucket().Has(f.db, grantKey(f.buyer.Address(), id)); !errors.ErrNotFound.Is(err) {
		t.Fatalf("no grant expected, got %q", err)
	}
	if err := NewTradeBucket().Has(f.db, id); !errors.ErrNotFound.Is(err) {
		t.Fatalf("trade must be deleted, got %q", err)
	}

	// The confirmed deposit is refunded through the outbox.
	var refunds []ledger.Transfer
	if _, err := ledger.NewTransferBucket().ByIndex(f.db, "source", f.custody, &refunds); err != nil {
		t.Fatalf("cannot list transfers: %s", err)
	}
	if len(refunds) != 1 {
		t.Fatalf("want one refund, got %d", len(refunds))
	}
	assert.Equal(t, f.buyer.Address(), refunds[0].Destination)

	// With the trade gone the listing can be purchased again.
	f.purchased(t, id)
}

func TestConfirmTradeWrongBuyer(t *testing.T) {
	f := newFixture(t)
	id := []byte("weather-2026")
	f.listed(t, id, coin.NewCoin(5, 0, "IOV"))
	transferID := f.purchased(t, id)
	_, err := f.ctrl.Acknowledge(f.db, transferID, true)
	assert.Nil(t, err)

	err = f.deliver(f.owner, &ConfirmTradeMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		ListingID: id,
		Buyer:     weavetest.NewCondition().Address(),
		Approve:   true,
		AccessKey: []byte("encrypted-access-key"),
	})
	if !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %q", err)
	}
}

func TestExpireTradeHandler(t *testing.T) {
	f := newFixture(t)
	id := []byte("weather-2026")
	f.listed(t, id, coin.NewCoin(5, 0, "IOV"))
	transferID := f.purchased(t, id)
	_, err := f.ctrl.Acknowledge(f.db, transferID, true)
	assert.Nil(t, err)

	expire := &ExpireTradeMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		ListingID: id,
	}
	anyone := weavetest.NewCondition()

	if err := f.deliver(anyone, expire); !errors.ErrState.Is(err) {
		t.Fatalf("want state error, got %q", err)
	}

	// Expiry does not need any signature, only a deadline in the past.
	f.ctx = weave.WithBlockTime(f.ctx, f.now.Add(2*time.Hour))
	assert.Nil(t, f.deliver(anyone, expire))

	if err := NewTradeBucket().Has(f.db, id); !errors.ErrNotFound.Is(err) {
		t.Fatalf("trade must be deleted, got %q", err)
	}
	var lst Listing
	assert.Nil(t, NewListingBucket().One(f.db, id, &lst))
	if lst.PendingBuyer != nil {
		t.Fatalf("pending buyer must be cleared: %v", lst.PendingBuyer)
	}

	// The acknowledged deposit is refunded.
	var refunds []ledger.Transfer
	if _, err := ledger.NewTransferBucket().ByIndex(f.db, "source", f.custody, &refunds); err != nil {
		t.Fatalf("cannot list transfers: %s", err)
	}
	if len(refunds) != 1 {
		t.Fatalf("want one refund, got %d", len(refunds))
	}
	assert.Equal(t, f.buyer.Address(), refunds[0].Destination)

	if err := f.deliver(anyone, expire); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %q", err)
	}
}

func TestExpireTradeUnacknowledgedDeposit(t *testing.T) {
	f := newFixture(t)
	id := []byte("weather-2026")
	f.listed(t, id, coin.NewCoin(5, 0, "IOV"))
	f.purchased(t, id)

	f.ctx = weave.WithBlockTime(f.ctx, f.now.Add(2*time.Hour))
	assert.Nil(t, f.deliver(weavetest.NewCondition(), &ExpireTradeMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		ListingID: id,
	}))

	// A pending deposit never moved funds so there is nothing to refund.
	var refunds []ledger.Transfer
	if _, err := ledger.NewTransferBucket().ByIndex(f.db, "source", f.custody, &refunds); err != nil {
		t.Fatalf("cannot list transfers: %s", err)
	}
	if len(refunds) != 0 {
		t.Fatalf("want no refund, got %d", len(refunds))
	}
}
