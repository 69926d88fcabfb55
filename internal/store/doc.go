// Package store provides SQLite-backed durable slot storage for QuickCart.
//
// The storefront persists exactly two logical records, each under a
// fixed, well-known key:
//   - quickcart_session: the current authenticated user, or absent
//   - quickcart_users:   the ordered collection of registered accounts
//
// Slot semantics:
//   - A write fully replaces the slot's prior value. There is no merge.
//   - Reading an absent key returns ok=false, never an error. Callers
//     treat absence as "logged out" / "no accounts yet".
//   - Values are JSON text encoded with HTML escaping disabled so image
//     URLs stored in records stay byte-stable across round-trips.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// The catalog and the cart are deliberately NOT stored here: the catalog
// is seeded at startup and mutated in memory, and the cart lives only
// for the process lifetime (it is cleared on logout).
package store
