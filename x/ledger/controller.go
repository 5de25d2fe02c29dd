package ledger

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// Controller is the functionality of the ledger that other extensions are
// allowed to use. Balances are advisory copies and transfer requests are fire
// and forget, so nothing here blocks on the external service.
type Controller interface {
	// Balance returns the shadow balance of an account. It returns
	// ErrNotFound for an account that was never registered, which is not
	// the same as a registered account holding no funds.
	Balance(db weave.KVStore, account weave.Address) (coin.Coins, error)

	// Dispatch records a transfer request in the outbox and returns its
	// ID. The request stays pending until the relay acknowledges it.
	Dispatch(ctx weave.Context, db weave.KVStore, source, destination weave.Address, amount coin.Coin, memo string) ([]byte, error)

	// Transfer returns the outbox entry with the given ID.
	Transfer(db weave.KVStore, transferID []byte) (*Transfer, error)

	// Acknowledge settles a pending outbox entry. A confirmed transfer
	// moves the amount between the shadow balances, a failed one only
	// flips the state. Only pending entries can be acknowledged.
	Acknowledge(db weave.KVStore, transferID []byte, confirmed bool) (*Transfer, error)
}

type controller struct {
	balances  orm.ModelBucket
	transfers orm.ModelBucket
}

var _ Controller = (*controller)(nil)

func NewController() Controller {
	return &controller{
		balances:  NewBalanceBucket(),
		transfers: NewTransferBucket(),
	}
}

func (c *controller) Balance(db weave.KVStore, account weave.Address) (coin.Coins, error) {
	var b Balance
	if err := c.balances.One(db, account, &b); err != nil {
		return nil, errors.Wrapf(err, "account %s", account)
	}
	return coin.Coins(b.Coins), nil
}

func (c *controller) Dispatch(ctx weave.Context, db weave.KVStore, source, destination weave.Address, amount coin.Coin, memo string) ([]byte, error) {
	if source.Equals(destination) {
		return nil, errors.Wrap(errors.ErrInput, "source and destination are the same")
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	t := Transfer{
		Metadata:    &weave.Metadata{Schema: 1},
		Source:      source,
		Destination: destination,
		Amount:      &amount,
		Memo:        memo,
		State:       TransferPending,
		CreatedAt:   weave.AsUnixTime(now),
	}
	id, err := c.transfers.Put(db, nil, &t)
	if err != nil {
		return nil, errors.Wrap(err, "save transfer")
	}
	return id, nil
}

func (c *controller) Transfer(db weave.KVStore, transferID []byte) (*Transfer, error) {
	var t Transfer
	if err := c.transfers.One(db, transferID, &t); err != nil {
		return nil, errors.Wrap(err, "transfer")
	}
	return &t, nil
}

func (c *controller) Acknowledge(db weave.KVStore, transferID []byte, confirmed bool) (*Transfer, error) {
	var t Transfer
	if err := c.transfers.One(db, transferID, &t); err != nil {
		return nil, errors.Wrap(err, "transfer")
	}
	if t.State != TransferPending {
		return nil, errors.Wrapf(errors.ErrState, "transfer is %s", t.State)
	}
	if confirmed {
		if err := c.applyTransfer(db, &t); err != nil {
			return nil, err
		}
		t.State = TransferConfirmed
	} else {
		t.State = TransferFailed
	}
	if _, err := c.transfers.Put(db, transferID, &t); err != nil {
		return nil, errors.Wrap(err, "save transfer")
	}
	return &t, nil
}

// applyTransfer moves the amount between the shadow balances. The external
// service already moved the real funds, but a shadow copy must never go
// negative so an uncovered debit is rejected.
func (c *controller) applyTransfer(db weave.KVStore, t *Transfer) error {
	var src Balance
	if err := c.balances.One(db, t.Source, &src); err != nil {
		return errors.Wrapf(err, "source account %s", t.Source)
	}
	if !coin.Coins(src.Coins).Contains(*t.Amount) {
		return errors.Wrapf(errors.ErrAmount, "%s does not cover %s", t.Source, t.Amount)
	}
	if err := src.Subtract(*t.Amount); err != nil {
		return errors.Wrap(err, "debit source")
	}
	var dst Balance
	switch err := c.balances.One(db, t.Destination, &dst); {
	case err == nil:
		// Account is registered.
	case errors.ErrNotFound.Is(err):
		// A credit creates the account.
		dst = Balance{Metadata: &weave.Metadata{Schema: 1}}
	default:
		return errors.Wrapf(err, "destination account %s", t.Destination)
	}
	if err := dst.Add(*t.Amount); err != nil {
		return errors.Wrap(err, "credit destination")
	}
	if _, err := c.balances.Put(db, t.Source, &src); err != nil {
		return errors.Wrap(err, "save source")
	}
	if _, err := c.balances.Put(db, t.Destination, &dst); err != nil {
		return errors.Wrap(err, "save destination")
	}
	return nil
}
