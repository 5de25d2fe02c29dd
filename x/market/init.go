package market

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse the market configuration from genesis and save it to
// the database.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	// The custody account and the settlement authority must be known
	// before the first purchase, so unlike most extensions the market
	// requires its configuration in genesis.
	if err := gconf.InitConfig(kv, opts, "market", &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}
	return nil
}
