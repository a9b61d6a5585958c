package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrLockNotAcquired means another worker holds the subscription's delivery
	// lock. Transient: the job is re-queued and no failure is counted.
	ErrLockNotAcquired = errors.New("webhook delivery lock not acquired")

	// ErrSubscriptionInactive means the owning webhook is no longer ACTIVE.
	// Terminal: the call is DISCARDED and never retried.
	ErrSubscriptionInactive = errors.New("webhook subscription is not active")
)

// DeliveryErrorKind classifies a failed delivery attempt.
type DeliveryErrorKind string

const (
	DeliveryTimeout      DeliveryErrorKind = "timeout"
	DeliveryHTTPError    DeliveryErrorKind = "http_error"
	DeliveryNetworkError DeliveryErrorKind = "network_error"
)

// DeliveryError carries the diagnostics of one failed HTTP attempt.
// StatusCode and ResponseText are zero/empty when no response was received.
type DeliveryError struct {
	Kind           DeliveryErrorKind
	StatusCode     int
	ResponseTimeMs int
	ResponseText   string
	Err            error
}

func (e *DeliveryError) Error() string {
	switch e.Kind {
	case DeliveryHTTPError:
		return fmt.Sprintf("webhook responded with HTTP %d", e.StatusCode)
	case DeliveryTimeout:
		return fmt.Sprintf("webhook request timed out after %dms", e.ResponseTimeMs)
	default:
		if e.Err != nil {
			return fmt.Sprintf("webhook request failed: %v", e.Err)
		}
		return "webhook request failed"
	}
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// HasResponse reports whether the endpoint answered at all.
func (e *DeliveryError) HasResponse() bool {
	return e.StatusCode != 0
}

// AsDeliveryError extracts a *DeliveryError from err, if any.
func AsDeliveryError(err error) (*DeliveryError, bool) {
	var de *DeliveryError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
