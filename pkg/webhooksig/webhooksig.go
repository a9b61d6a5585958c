// Package webhooksig verifies signed webhook deliveries on the receiving side.
//
// A delivery carries X-UseSend-Signature ("v1=" + hex HMAC-SHA256 over
// "{timestamp}.{body}") and X-UseSend-Timestamp (unix milliseconds).
package webhooksig

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Header names set on every delivery.
const (
	SignatureHeader = "X-UseSend-Signature"
	TimestampHeader = "X-UseSend-Timestamp"
	EventHeader     = "X-UseSend-Event"
	CallHeader      = "X-UseSend-Call"
)

const signaturePrefix = "v1="

// DefaultTolerance is the accepted clock skew between sender and receiver.
const DefaultTolerance = 5 * time.Minute

// ErrorCode identifies why verification failed.
type ErrorCode string

const (
	CodeMissingSignature       ErrorCode = "MISSING_SIGNATURE"
	CodeMissingTimestamp       ErrorCode = "MISSING_TIMESTAMP"
	CodeInvalidSignatureFormat ErrorCode = "INVALID_SIGNATURE_FORMAT"
	CodeInvalidTimestamp       ErrorCode = "INVALID_TIMESTAMP"
	CodeTimestampOutOfRange    ErrorCode = "TIMESTAMP_OUT_OF_RANGE"
	CodeSignatureMismatch      ErrorCode = "SIGNATURE_MISMATCH"
	CodeInvalidBody            ErrorCode = "INVALID_BODY"
	CodeInvalidJSON            ErrorCode = "INVALID_JSON"
)

// VerificationError is returned for every rejected delivery.
type VerificationError struct {
	Code    ErrorCode
	Message string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Event is a verified delivery envelope.
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Version   string          `json:"version"`
	CreatedAt string          `json:"createdAt"`
	TeamID    string          `json:"teamId"`
	Data      json.RawMessage `json:"data"`
	Attempt   int             `json:"attempt"`
}

type options struct {
	tolerance time.Duration
	now       func() time.Time
}

// Option customizes verification.
type Option func(*options)

// WithTolerance overrides DefaultTolerance. A negative value disables the
// timestamp check.
func WithTolerance(d time.Duration) Option {
	return func(o *options) { o.tolerance = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Sign computes the signature header value for body at timestamp.
func Sign(secret string, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(body)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// Verify checks the signature and timestamp headers against body.
func Verify(body []byte, header http.Header, secret string, opts ...Option) error {
	o := options{tolerance: DefaultTolerance, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	signature := header.Get(SignatureHeader)
	timestamp := header.Get(TimestampHeader)

	if signature == "" {
		return &VerificationError{Code: CodeMissingSignature, Message: "Missing " + SignatureHeader + " header"}
	}
	if timestamp == "" {
		return &VerificationError{Code: CodeMissingTimestamp, Message: "Missing " + TimestampHeader + " header"}
	}
	if !strings.HasPrefix(signature, signaturePrefix) {
		return &VerificationError{Code: CodeInvalidSignatureFormat, Message: "Signature header must start with v1="}
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return &VerificationError{Code: CodeInvalidTimestamp, Message: "Timestamp header must be a number (milliseconds since epoch)"}
	}

	if o.tolerance >= 0 {
		skew := o.now().UnixMilli() - ts
		if skew < 0 {
			skew = -skew
		}
		if skew > o.tolerance.Milliseconds() {
			return &VerificationError{Code: CodeTimestampOutOfRange, Message: "Webhook timestamp is outside the allowed tolerance"}
		}
	}

	if !utf8.Valid(body) {
		return &VerificationError{Code: CodeInvalidBody, Message: "Webhook body must be valid UTF-8."}
	}

	expected := Sign(secret, timestamp, body)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return &VerificationError{Code: CodeSignatureMismatch, Message: "Webhook signature does not match"}
	}
	return nil
}

// Valid is Verify reduced to a boolean.
func Valid(body []byte, header http.Header, secret string, opts ...Option) bool {
	return Verify(body, header, secret, opts...) == nil
}

// ConstructEvent verifies the delivery and decodes its envelope.
func ConstructEvent(body []byte, header http.Header, secret string, opts ...Option) (*Event, error) {
	if err := Verify(body, header, secret, opts...); err != nil {
		return nil, err
	}

	var evt Event
	if err := json.Unmarshal(body, &evt); err != nil {
		return nil, &VerificationError{Code: CodeInvalidJSON, Message: fmt.Sprintf("Webhook payload is not valid JSON: %v", err)}
	}
	return &evt, nil
}
