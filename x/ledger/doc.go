/*
Package ledger implements a shadow balance ledger.

Real funds custody belongs to an external fungible token service. This
extension mirrors that service: it keeps an advisory per-account balance used
for admission checks, records outgoing transfer requests in an outbox and
reconciles balances when a relay acknowledges the outcome of a request.

Transfer requests are fire and forget. Dispatching one only persists the
intent; the shadow balances change when the configured relay authority
delivers an AckTransferMsg for the request.
*/
package ledger
