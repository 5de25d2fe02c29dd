package dmarketd

import (
	"fmt"
	"testing"
	"time"

	"github.com/dmarket-network/dmarket/x/ledger"
	"github.com/dmarket-network/dmarket/x/market"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/multisig"
	"github.com/iov-one/weave/x/sigs"
	abci "github.com/tendermint/tendermint/abci/types"
)

const chainID = "test-dmarket-chain"

func TestTxDecoder(t *testing.T) {
	tx := &Tx{
		Sum: &Tx_MarketPurchaseMsg{&market.PurchaseMsg{
			Metadata:  &weave.Metadata{Schema: 1},
			ListingID: []byte("weather-2026"),
			PubKey:    []byte("buyer-public-key"),
		}},
	}
	bz, err := tx.Marshal()
	assert.Nil(t, err)

	decoded, err := TxDecoder(bz)
	assert.Nil(t, err)
	msg, err := decoded.GetMsg()
	assert.Nil(t, err)
	assert.Equal(t, "market/purchase", msg.Path())
}

func TestAppTradeFlow(t *testing.T) {
	ownerKey := crypto.GenPrivKeyEd25519()
	buyerKey := crypto.GenPrivKeyEd25519()
	guardKey := crypto.GenPrivKeyEd25519()
	buyer := buyerKey.PublicKey().Address()
	guard := guardKey.PublicKey().Address()

	myApp, err := Application("dmarket-test", Stack(), TxDecoder, "", true)
	assert.Nil(t, err)
	myApp.WithInit(app.ChainInitializers(
		&migration.Initializer{},
		&cash.Initializer{},
		&multisig.Initializer{},
		&ledger.Initializer{},
		&market.Initializer{},
	))

	// The guardian account is at the same time the migration admin, the
	// relay authority and the escrow custody.
	appState := fmt.Sprintf(`{
	  "cash": [],
	  "ledger": [
	    {"address": "%s", "coins": [{"whole": 100, "ticker": "DATA"}]}
	  ],
	  "conf": {
	    "cash": {"collector_address": "%s", "minimal_fee": {}},
	    "migration": {"admin": "%s"},
	    "ledger": {"metadata": {"schema": 1}, "owner": "%s", "authority": "%s"},
	    "market": {"metadata": {"schema": 1}, "owner": "%s", "authority": "%s", "custody": "%s", "trade_timeout": "24h"}
	  },
	  "initialize_schema": [
	    {"pkg": "cash", "ver": 1},
	    {"pkg": "sigs", "ver": 1},
	    {"pkg": "multisig", "ver": 1},
	    {"pkg": "ledger", "ver": 1},
	    {"pkg": "market", "ver": 1}
	  ]
	}`, buyer, guard, guard, guard, guard, guard, guard, guard)
	myApp.InitChain(abci.RequestInitChain{
		AppStateBytes: []byte(appState),
		ChainId:       chainID,
	})

	id := []byte("weather-2026")
	price := coin.NewCoin(5, 0, "DATA")

	resp := deliverTx(t, myApp, 1, &Tx{Sum: &Tx_MarketCreateListingMsg{&market.CreateListingMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		ListingID: id,
		Title:     "weather observations",
		Tags:      []string{"weather"},
		DataSize:  4096,
	}}}, ownerKey, 0)
	if resp.Code != 0 {
		t.Fatalf("create listing failed: %s", resp.Log)
	}

	resp = deliverTx(t, myApp, 2, &Tx{Sum: &Tx_MarketPublishListingMsg{&market.PublishListingMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		ListingID: id,
		Price:     &price,
	}}}, ownerKey, 1)
	if resp.Code != 0 {
		t.Fatalf("publish listing failed: %s", resp.Log)
	}

	resp = deliverTx(t, myApp, 3, &Tx{Sum: &Tx_MarketPurchaseMsg{&market.PurchaseMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		ListingID: id,
		PubKey:    []byte("buyer-public-key"),
	}}}, buyerKey, 0)
	if resp.Code != 0 {
		t.Fatalf("purchase failed: %s", resp.Log)
	}
	transferID := resp.Data
	if len(transferID) == 0 {
		t.Fatal("purchase must return the deposit transfer id")
	}

	// The relay confirms that the real funds arrived at custody.
	resp = deliverTx(t, myApp, 4, &Tx{Sum: &Tx_LedgerAckTransferMsg{&ledger.AckTransferMsg{
		Metadata:   &weave.Metadata{Schema: 1},
		TransferID: transferID,
		Confirmed:  true,
	}}}, guardKey, 0)
	if resp.Code != 0 {
		t.Fatalf("ack transfer failed: %s", resp.Log)
	}

	resp = deliverTx(t, myApp, 5, &Tx{Sum: &Tx_MarketConfirmTradeMsg{&market.ConfirmTradeMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		ListingID: id,
		Buyer:     buyer,
		Approve:   true,
		AccessKey: []byte("encrypted-access-key"),
	}}}, ownerKey, 2)
	if resp.Code != 0 {
		t.Fatalf("confirm trade failed: %s", resp.Log)
	}
}

func deliverTx(t *testing.T, myApp app.BaseApp, height int64, tx *Tx, key *crypto.PrivateKey, seq int64) abci.ResponseDeliverTx {
	t.Helper()

	sig, err := sigs.SignTx(key, tx, chainID, seq)
	assert.Nil(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	bz, err := tx.Marshal()
	assert.Nil(t, err)

	header := abci.Header{Height: height, Time: time.Now()}
	myApp.BeginBlock(abci.RequestBeginBlock{Header: header})
	resp := myApp.DeliverTx(bz)
	myApp.EndBlock(abci.RequestEndBlock{})
	myApp.Commit()
	return resp
}
