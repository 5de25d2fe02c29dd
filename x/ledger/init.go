package ledger

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial account balances and the ledger
// configuration from genesis and save them to the database.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	// Configuration can also be created later through an update message.
	if err := gconf.InitConfig(kv, opts, "ledger", &Configuration{}); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "init config")
	}

	var accounts []struct {
		Address weave.Address `json:"address"`
		Coins   coin.Coins    `json:"coins"`
	}
	if err := opts.ReadOptions("ledger", &accounts); err != nil {
		return errors.Wrap(err, "read options")
	}
	balances := NewBalanceBucket()
	for i, a := range accounts {
		if err := a.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account #%d address", i)
		}
		b := &Balance{
			Metadata: &weave.Metadata{Schema: 1},
			Coins:    a.Coins,
		}
		if _, err := balances.Put(kv, a.Address, b); err != nil {
			return errors.Wrapf(err, "save account #%d", i)
		}
	}
	return nil
}
