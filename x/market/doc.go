/*
Package market implements a marketplace for encrypted data objects.

Sellers register listings that reference data kept off chain and publish them
with a price. A buyer purchases a published listing, which escrows the price
with a custody account and parks the purchase as a trade awaiting the seller's
decision. The seller either approves the trade, which pays out the deposit and
issues an access credential to the buyer, or rejects it, which refunds the
deposit. Trades that are never settled can be expired by anyone once their
deadline passed.

Funds never move inside this extension. All value transfers go through the
ledger extension, which mirrors an external fungible token service.

Access credentials are ordinary chain state. Like any bucket the grants are
readable through public queries, so the access key must be encrypted to the
buyer's public key before it is submitted. The chain only guarantees that a
credential exists per (buyer, listing) pair, never its confidentiality.
*/
package market
