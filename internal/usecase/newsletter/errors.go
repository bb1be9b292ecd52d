// Package newsletter manages newsletter sign-ups.
package newsletter

import "errors"

// ErrSubscriberNotFound is returned when unsubscribing an email that is not actively subscribed.
var ErrSubscriberNotFound = errors.New("subscriber not found")
