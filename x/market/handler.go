package market

import (
	"github.com/dmarket-network/dmarket/x/ledger"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
)

const (
	createListingCost  = 10
	publishListingCost = 5
	// Purchase pays for the trade bookkeeping and the outbox entry.
	purchaseCost     = 25
	confirmTradeCost = 25
	expireTradeCost  = 5
)

// RegisterQuery registers the market buckets for queries.
func RegisterQuery(qr weave.QueryRouter) {
	NewListingBucket().Register("listings", qr)
	NewTradeBucket().Register("trades", qr)
	NewGrantBucket().Register("grants", qr)
}

// RegisterRoutes registers handlers for all market messages. Value transfers
// go through the given ledger controller.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl ledger.Controller) {
	r = migration.SchemaMigratingRegistry("market", r)

	listings := NewListingBucket()
	trades := NewTradeBucket()
	grants := NewGrantBucket()

	r.Handle(&CreateListingMsg{}, &createListingHandler{
		auth:     auth,
		listings: listings,
	})
	r.Handle(&PublishListingMsg{}, &publishListingHandler{
		auth:     auth,
		listings: listings,
	})
	r.Handle(&PurchaseMsg{}, &purchaseHandler{
		auth:     auth,
		listings: listings,
		trades:   trades,
		grants:   grants,
		ctrl:     ctrl,
	})
	r.Handle(&ConfirmTradeMsg{}, &confirmTradeHandler{
		auth:     auth,
		listings: listings,
		trades:   trades,
		grants:   grants,
		ctrl:     ctrl,
	})
	r.Handle(&ExpireTradeMsg{}, &expireTradeHandler{
		auth:     auth,
		listings: listings,
		trades:   trades,
		ctrl:     ctrl,
	})
	r.Handle(&UpdateConfigurationMsg{}, gconf.NewUpdateConfigurationHandler(
		"market", &Configuration{}, auth, migration.CurrentAdmin))
}

// mainSigner returns the address of the first signer of the transaction, or
// nil when the transaction is not signed.
func mainSigner(ctx weave.Context, auth x.Authenticator) weave.Address {
	conditions := auth.GetConditions(ctx)
	if len(conditions) == 0 {
		return nil
	}
	return conditions[0].Address()
}

type createListingHandler struct {
	auth     x.Authenticator
	listings orm.ModelBucket
}

func (h *createListingHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: createListingCost}, nil
}

func (h *createListingHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	owner := mainSigner(ctx, h.auth)
	lst := &Listing{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner,
		Title:    msg.Title,
		Tags:     msg.Tags,
		DataSize: msg.DataSize,
		State:    ListingPrivate,
	}
	if _, err := h.listings.Put(db, msg.ListingID, lst); err != nil {
		return nil, errors.Wrap(err, "save listing")
	}
	return &weave.DeliverResult{Data: msg.ListingID}, nil
}

func (h *createListingHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateListingMsg, error) {
	var msg CreateListingMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if mainSigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "message must be signed")
	}
	switch err := h.listings.Has(db, msg.ListingID); {
	case err == nil:
		return nil, errors.Wrap(errors.ErrDuplicate, "listing id already taken")
	case errors.ErrNotFound.Is(err):
		return &msg, nil
	default:
		return nil, errors.Wrap(err, "has listing")
	}
}

type publishListingHandler struct {
	auth     x.Authenticator
	listings orm.ModelBucket
}

func (h *publishListingHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: publishListingCost}, nil
}

func (h *publishListingHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, lst, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	lst.State = ListingPublic
	lst.Price = msg.Price
	if _, err := h.listings.Put(db, msg.ListingID, lst); err != nil {
		return nil, errors.Wrap(err, "save listing")
	}
	return &weave.DeliverResult{Data: msg.ListingID}, nil
}

func (h *publishListingHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*PublishListingMsg, *Listing, error) {
	var msg PublishListingMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var lst Listing
	if err := h.listings.One(db, msg.ListingID, &lst); err != nil {
		return nil, nil, errors.Wrap(err, "listing")
	}
	if !h.auth.HasAddress(ctx, lst.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the owner can publish")
	}
	// The price is fixed when publishing. A published listing cannot be
	// republished with a different price.
	if lst.State != ListingPrivate {
		return nil, nil, errors.Wrap(errors.ErrState, "already published")
	}
	return &msg, &lst, nil
}

type purchaseHandler struct {
	auth     x.Authenticator
	listings orm.ModelBucket
	trades   orm.ModelBucket
	grants   orm.ModelBucket
	ctrl     ledger.Controller
}

func (h *purchaseHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: purchaseCost}, nil
}

func (h *purchaseHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, lst, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	buyer := mainSigner(ctx, h.auth)

	// Fire and forget. The deposit is not usable until the relay confirms
	// the request.
	transferID, err := h.ctrl.Dispatch(ctx, db, buyer, conf.Custody, *lst.Price, "escrow deposit")
	if err != nil {
		return nil, errors.Wrap(err, "dispatch deposit")
	}

	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	trade := &Trade{
		Metadata:   &weave.Metadata{Schema: 1},
		ListingID:  msg.ListingID,
		Buyer:      buyer,
		Owner:      lst.Owner,
		PubKey:     msg.PubKey,
		TransferID: transferID,
		Deadline:   weave.AsUnixTime(now).Add(conf.TradeTimeout.Duration()),
	}
	if _, err := h.trades.Put(db, msg.ListingID, trade); err != nil {
		return nil, errors.Wrap(err, "save trade")
	}
	lst.PendingBuyer = buyer
	if _, err := h.listings.Put(db, msg.ListingID, lst); err != nil {
		return nil, errors.Wrap(err, "save listing")
	}
	return &weave.DeliverResult{Data: transferID}, nil
}

func (h *purchaseHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*PurchaseMsg, *Listing, error) {
	var msg PurchaseMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	buyer := mainSigner(ctx, h.auth)
	if buyer == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "message must be signed")
	}

	var lst Listing
	if err := h.listings.One(db, msg.ListingID, &lst); err != nil {
		return nil, nil, errors.Wrap(err, "listing")
	}
	if lst.State != ListingPublic {
		return nil, nil, errors.Wrap(errors.ErrState, "listing is not published")
	}
	if buyer.Equals(lst.Owner) {
		return nil, nil, errors.Wrap(errors.ErrState, "cannot purchase own listing")
	}
	switch err := h.trades.Has(db, msg.ListingID); {
	case err == nil:
		return nil, nil, errors.Wrap(errors.ErrState, "a purchase is already pending")
	case errors.ErrNotFound.Is(err):
		// No pending trade, all good.
	default:
		return nil, nil, errors.Wrap(err, "has trade")
	}
	switch err := h.grants.Has(db, grantKey(buyer, msg.ListingID)); {
	case err == nil:
		return nil, nil, errors.Wrap(errors.ErrDuplicate, "listing already purchased")
	case errors.ErrNotFound.Is(err):
		// Not purchased before, all good.
	default:
		return nil, nil, errors.Wrap(err, "has grant")
	}
	balance, err := h.ctrl.Balance(db, buyer)
	if err != nil {
		return nil, nil, errors.Wrap(err, "buyer balance")
	}
	if !balance.Contains(*lst.Price) {
		return nil, nil, errors.Wrapf(errors.ErrAmount, "balance does not cover %s", lst.Price)
	}
	return &msg, &lst, nil
}

type confirmTradeHandler struct {
	auth     x.Authenticator
	listings orm.ModelBucket
	trades   orm.ModelBucket
	grants   orm.ModelBucket
	ctrl     ledger.Controller
}

func (h *confirmTradeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: confirmTradeCost}, nil
}

func (h *confirmTradeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, trade, deposit, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	var lst Listing
	if err := h.listings.One(db, msg.ListingID, &lst); err != nil {
		return nil, errors.Wrap(err, "listing")
	}

	if msg.Approve {
		if _, err := h.ctrl.Dispatch(ctx, db, conf.Custody, trade.Owner, *deposit.Amount, "trade payout"); err != nil {
			return nil, errors.Wrap(err, "dispatch payout")
		}
		now, err := weave.BlockTime(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "block time")
		}
		grant := &Grant{
			Metadata:  &weave.Metadata{Schema: 1},
			ListingID: trade.ListingID,
			Buyer:     trade.Buyer,
			Owner:     trade.Owner,
			AccessKey: msg.AccessKey,
			PubKey:    trade.PubKey,
			CreatedAt: weave.AsUnixTime(now),
		}
		if _, err := h.grants.Put(db, grantKey(trade.Buyer, trade.ListingID), grant); err != nil {
			return nil, errors.Wrap(err, "save grant")
		}
		if !lst.HasGrantee(trade.Buyer) {
			lst.Grantees = append(lst.Grantees, trade.Buyer)
		}
	} else if deposit.State == ledger.TransferConfirmed {
		if _, err := h.ctrl.Dispatch(ctx, db, conf.Custody, trade.Buyer, *deposit.Amount, "trade refund"); err != nil {
			return nil, errors.Wrap(err, "dispatch refund")
		}
	}

	lst.PendingBuyer = nil
	if _, err := h.listings.Put(db, msg.ListingID, &lst); err != nil {
		return nil, errors.Wrap(err, "save listing")
	}
	if err := h.trades.Delete(db, msg.ListingID); err != nil {
		return nil, errors.Wrap(err, "delete trade")
	}
	return &weave.DeliverResult{Data: msg.ListingID}, nil
}

func (h *confirmTradeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ConfirmTradeMsg, *Trade, *ledger.Transfer, error) {
	var msg ConfirmTradeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	var trade Trade
	if err := h.trades.One(db, msg.ListingID, &trade); err != nil {
		return nil, nil, nil, errors.Wrap(err, "trade")
	}
	// Settlement targets an exact (listing, buyer) pair. A stale message
	// must never settle another buyer's purchase.
	if !trade.Buyer.Equals(msg.Buyer) {
		return nil, nil, nil, errors.Wrap(errors.ErrNotFound, "no pending purchase from this buyer")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, nil, err
	}
	if !h.auth.HasAddress(ctx, trade.Owner) && !h.auth.HasAddress(ctx, conf.Authority) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the listing owner or the settlement authority can settle")
	}
	deposit, err := h.ctrl.Transfer(db, trade.TransferID)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "deposit")
	}
	if deposit.State == ledger.TransferPending {
		return nil, nil, nil, errors.Wrap(errors.ErrState, "deposit not acknowledged yet")
	}
	if msg.Approve && deposit.State != ledger.TransferConfirmed {
		return nil, nil, nil, errors.Wrap(errors.ErrState, "deposit failed, trade cannot be approved")
	}
	return &msg, &trade, deposit, nil
}

type expireTradeHandler struct {
	auth     x.Authenticator
	listings orm.ModelBucket
	trades   orm.ModelBucket
	ctrl     ledger.Controller
}

func (h *expireTradeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: expireTradeCost}, nil
}

func (h *expireTradeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, trade, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	deposit, err := h.ctrl.Transfer(db, trade.TransferID)
	if err != nil {
		return nil, errors.Wrap(err, "deposit")
	}
	// Only a confirmed deposit is refunded. A still pending or failed
	// request never moved any shadow funds.
	if deposit.State == ledger.TransferConfirmed {
		if _, err := h.ctrl.Dispatch(ctx, db, conf.Custody, trade.Buyer, *deposit.Amount, "trade refund"); err != nil {
			return nil, errors.Wrap(err, "dispatch refund")
		}
	}
	var lst Listing
	if err := h.listings.One(db, msg.ListingID, &lst); err != nil {
		return nil, errors.Wrap(err, "listing")
	}
	lst.PendingBuyer = nil
	if _, err := h.listings.Put(db, msg.ListingID, &lst); err != nil {
		return nil, errors.Wrap(err, "save listing")
	}
	if err := h.trades.Delete(db, msg.ListingID); err != nil {
		return nil, errors.Wrap(err, "delete trade")
	}
	return &weave.DeliverResult{Data: msg.ListingID}, nil
}

func (h *expireTradeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ExpireTradeMsg, *Trade, error) {
	var msg ExpireTradeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var trade Trade
	if err := h.trades.One(db, msg.ListingID, &trade); err != nil {
		return nil, nil, errors.Wrap(err, "trade")
	}
	// Anyone can expire an overdue trade, no signature check.
	if !weave.IsExpired(ctx, trade.Deadline) {
		return nil, nil, errors.Wrap(errors.ErrState, "deadline has not passed")
	}
	return &msg, &trade, nil
}
