// Package settlement finds auction lots whose end time has passed and issues
// the won item to the prize sink exactly once.
//
// A recurring sweep reconciles every lot against the store, and each open lot
// gets a one-shot timer for its end time. Both paths end in Settle, which is
// idempotent: the processed set covers one process lifetime, the remote
// issued flag and the prize sink duplicate check cover restarts and other
// instances.
package settlement
