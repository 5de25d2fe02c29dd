package dmarketd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/dmarket-network/dmarket/x/ledger"
	"github.com/dmarket-network/dmarket/x/market"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/multisig"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode
//
// You can set
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := "IOV"
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, fmt.Errorf("invalid ticker %s", ticker)
		}
	}

	var addr string
	if len(args) > 1 {
		addr = args[1]
	} else {
		// if no address provided, auto-generate one
		// and print out a recovery phrase
		bz, phrase, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz.String()
		fmt.Println(phrase)
	}

	// The generated account doubles as the custody account and the relay
	// authority so a single key is enough to exercise a dev chain.
	opts := fmt.Sprintf(`
	  {
	    "cash": [
	      {
	        "address": "%s",
	        "coins": [
	          {"whole": 123456789, "ticker": "%s"}
	        ]
	      }
	    ],
	    "ledger": [
	      {
	        "address": "%s",
	        "coins": [
	          {"whole": 1000000, "ticker": "%s"}
	        ]
	      }
	    ],
	    "conf": {
	      "cash": {
	        "collector_address": "%s",
	        "minimal_fee": {}
	      },
	      "migration": {
	        "admin": "%s"
	      },
	      "ledger": {
	        "metadata": {"schema": 1},
	        "owner": "%s",
	        "authority": "%s"
	      },
	      "market": {
	        "metadata": {"schema": 1},
	        "owner": "%s",
	        "authority": "%s",
	        "custody": "%s",
	        "trade_timeout": "168h"
	      }
	    },
	    "initialize_schema": [
	      {"pkg": "cash", "ver": 1},
	      {"pkg": "sigs", "ver": 1},
	      {"pkg": "multisig", "ver": 1},
	      {"pkg": "ledger", "ver": 1},
	      {"pkg": "market", "ver": 1}
	    ]
	  }
	`, addr, ticker, addr, ticker, addr, addr, addr, addr, addr, addr, addr)
	return []byte(opts), nil
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "dmarket.db")
	}

	stack := Stack()
	application, err := Application("dmarketd", stack, TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, err
	}
	return DecorateApp(application, options.Logger), nil
}

// DecorateApp adds initializers and Logger to an Application
func DecorateApp(application app.BaseApp, logger log.Logger) app.BaseApp {
	application.WithInit(app.ChainInitializers(
		&migration.Initializer{},
		&cash.Initializer{},
		&multisig.Initializer{},
		&ledger.Initializer{},
		&market.Initializer{},
	))
	application.WithLogger(logger)
	return application
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key,
// along with a json representation of the keys.
// You can give coins to this address and
// import the keys in the js client to use them
func GenerateCoinKey() (weave.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", err
	}

	return addr, string(keys), nil
}
