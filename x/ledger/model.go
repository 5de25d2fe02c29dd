package ledger

import (
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Balance{}, migration.NoModification)
	migration.MustRegister(1, &Transfer{}, migration.NoModification)
}

var _ orm.Model = (*Balance)(nil)

func (b *Balance) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", b.Metadata.Validate())
	errs = errors.AppendField(errs, "Coins", coin.Coins(b.Coins).Validate())
	return errs
}

// Add updates the balance by the given amount. Use a negative amount to
// subtract. Fails when the result would be negative.
func (b *Balance) Add(c coin.Coin) error {
	cs, err := coin.Coins(b.Coins).Add(c)
	if err != nil {
		return err
	}
	if !cs.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "negative balance")
	}
	b.Coins = cs
	return nil
}

func (b *Balance) Subtract(c coin.Coin) error {
	return b.Add(c.Negative())
}

// NewBalanceBucket returns a bucket of shadow balances. Balances are keyed by
// the account address so existence of an entry is what distinguishes a
// registered account from an unknown one.
func NewBalanceBucket() orm.ModelBucket {
	b := orm.NewModelBucket("balances", &Balance{})
	return migration.NewModelBucket("ledger", b)
}

var _ orm.Model = (*Transfer)(nil)

func (t *Transfer) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", t.Metadata.Validate())
	errs = errors.AppendField(errs, "Source", t.Source.Validate())
	errs = errors.AppendField(errs, "Destination", t.Destination.Validate())
	if t.Amount == nil {
		errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrEmpty, "amount is required"))
	} else {
		errs = errors.AppendField(errs, "Amount", t.Amount.Validate())
		if !t.Amount.IsPositive() {
			errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "must be positive"))
		}
	}
	switch t.State {
	case TransferPending, TransferConfirmed, TransferFailed:
		// All good.
	default:
		errs = errors.AppendField(errs, "State", errors.Wrapf(errors.ErrState, "invalid state %s", t.State))
	}
	if t.CreatedAt == 0 {
		errs = errors.AppendField(errs, "CreatedAt", errors.Wrap(errors.ErrEmpty, "creation time is required"))
	} else {
		errs = errors.AppendField(errs, "CreatedAt", t.CreatedAt.Validate())
	}
	return errs
}

func NewTransferBucket() orm.ModelBucket {
	b := orm.NewModelBucket("transfers", &Transfer{},
		orm.WithIDSequence(transferSeq),
		orm.WithIndex("source", idxTransferSource, false),
	)
	return migration.NewModelBucket("ledger", b)
}

var transferSeq = orm.NewSequence("ledger", "id")

func idxTransferSource(obj orm.Object) ([]byte, error) {
	if obj == nil || obj.Value() == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	t, ok := obj.Value().(*Transfer)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Transfer")
	}
	return t.Source, nil
}
