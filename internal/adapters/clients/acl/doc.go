// Package acl is the anti-corruption layer between the quotes HTTP API and
// code that consumes it, such as the quotes CLI.
//
// Wire envelopes never leave the package. [QuoteClient] decodes them,
// checks each quote against the domain rules, and hands back
// [domain.Quote] values.
//
// Failed calls come back as domain errors:
//   - 400 → [domain.ErrValidation], with one field error per envelope detail
//   - 404 → [domain.ErrNotFound]
//   - 409 → [domain.ErrConflict]
//   - 5xx, transport failures and [clients.ErrCircuitOpen] → [domain.ErrUnavailable]
//
// The client does not retry on its own. Retries are opt-in through
// client.retry.max_attempts.
package acl
