// Package events is the notification surface of a securedb store.
//
// Observers subscribe a Handler to one Kind, or to every kind. Handlers run
// synchronously, in registration order, before the store call that caused
// the event returns. There is no unsubscribe.
package events
