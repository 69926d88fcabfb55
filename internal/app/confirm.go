package app

// Confirmer answers destructive-action confirmation prompts.
//
// The storefront asks before deleting a category or a user account.
// The presentation layer supplies the real prompt; tests supply a
// scripted responder.
type Confirmer interface {
	// Confirm reports whether the acting user approved the intent.
	Confirm(intent string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(intent string) bool

func (f ConfirmerFunc) Confirm(intent string) bool { return f(intent) }

// AlwaysConfirm approves every prompt. Used by surfaces that carry the
// confirmation out-of-band (the HTTP layer requires an explicit
// confirm flag before it ever reaches the controller).
var AlwaysConfirm = ConfirmerFunc(func(string) bool { return true })

// NeverConfirm declines every prompt.
var NeverConfirm = ConfirmerFunc(func(string) bool { return false })
