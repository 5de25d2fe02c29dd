package ledger

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
)

const (
	registerAccountCost = 10
	ackTransferCost     = 10
)

// RegisterQuery registers the ledger buckets for queries.
func RegisterQuery(qr weave.QueryRouter) {
	NewBalanceBucket().Register("ledgerbalances", qr)
	NewTransferBucket().Register("ledgertransfers", qr)
}

// RegisterRoutes registers handlers for all ledger messages.
func RegisterRoutes(r weave.Registry, auth x.Authenticator) {
	r = migration.SchemaMigratingRegistry("ledger", r)

	r.Handle(&RegisterAccountMsg{}, &registerAccountHandler{
		auth:     auth,
		balances: NewBalanceBucket(),
	})
	r.Handle(&AckTransferMsg{}, &ackTransferHandler{
		auth: auth,
		ctrl: NewController(),
	})
	r.Handle(&UpdateConfigurationMsg{}, gconf.NewUpdateConfigurationHandler(
		"ledger", &Configuration{}, auth, migration.CurrentAdmin))
}

type registerAccountHandler struct {
	auth     x.Authenticator
	balances orm.ModelBucket
}

func (h *registerAccountHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: registerAccountCost}, nil
}

func (h *registerAccountHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	b := &Balance{
		Metadata: &weave.Metadata{Schema: 1},
	}
	if _, err := h.balances.Put(db, msg.Account, b); err != nil {
		return nil, errors.Wrap(err, "save balance")
	}
	return &weave.DeliverResult{Data: msg.Account}, nil
}

func (h *registerAccountHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RegisterAccountMsg, error) {
	var msg RegisterAccountMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Account) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "account signature is required")
	}
	switch err := h.balances.Has(db, msg.Account); {
	case err == nil:
		return nil, errors.Wrap(errors.ErrDuplicate, "account already registered")
	case errors.ErrNotFound.Is(err):
		return &msg, nil
	default:
		return nil, errors.Wrap(err, "has balance")
	}
}

type ackTransferHandler struct {
	auth x.Authenticator
	ctrl Controller
}

func (h *ackTransferHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: ackTransferCost}, nil
}

func (h *ackTransferHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.ctrl.Acknowledge(db, msg.TransferID, msg.Confirmed); err != nil {
		return nil, errors.Wrap(err, "acknowledge")
	}
	return &weave.DeliverResult{Data: msg.TransferID}, nil
}

func (h *ackTransferHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*AckTransferMsg, error) {
	var msg AckTransferMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Authority) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "relay authority signature is required")
	}
	return &msg, nil
}
