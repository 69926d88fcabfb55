// Package app composes the four stores behind the storefront and gates
// every mutation.
//
// ARCHITECTURE:
//
// Single-writer state:
// The controller owns the session store, the user registry, the catalog
// and the cart, and is the only code that mutates any of them. Every
// operation runs to completion under one mutex, so the next event
// always observes stores whose invariants hold. The logout cascade in
// particular is atomic from the presentation layer's perspective: no
// render can observe a half-reset application.
//
// Gating:
// The stores themselves are not role-aware. The controller enforces
// that an unauthenticated caller can only reach login/register/restore,
// and that catalog and user management require the admin role.
//
// Controller-mediated cascades:
// Stores never call each other. Deleting a product removes the matching
// cart line here, not inside the catalog; login refreshes the user
// registry here, not inside the session store.
//
// Destructive confirmation:
// Category and user deletion pass through an injected Confirmer before
// mutating. Declining leaves all state unchanged. Tests substitute a
// scripted responder.
package app
