// Package notify defines the notification bridge the form engine reports
// outcomes through, plus the implementations shipped with the module:
//
//   - Toaster renders toast markup into an htmldoc document.
//   - Console writes prefixed lines, for terminal sessions.
//   - Alert is the last-resort fallback used when nothing is registered.
//
// The engine never owns a notifier. It resolves one from a shared Namespace
// at call time via Lookup, so a toast implementation registered after a form
// is created is still picked up.
package notify
