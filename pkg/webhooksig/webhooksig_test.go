package webhooksig

import (
	"errors"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test"

var fixedNow = time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC)

func signedHeader(secret string, at time.Time, body []byte) http.Header {
	ts := strconv.FormatInt(at.UnixMilli(), 10)
	h := http.Header{}
	h.Set(SignatureHeader, Sign(secret, ts, body))
	h.Set(TimestampHeader, ts)
	return h
}

func clock() Option {
	return WithClock(func() time.Time { return fixedNow })
}

func codeOf(t *testing.T, err error) ErrorCode {
	t.Helper()
	var ve *VerificationError
	require.True(t, errors.As(err, &ve), "expected *VerificationError, got %v", err)
	return ve.Code
}

func TestVerify_Valid(t *testing.T) {
	body := []byte(`{"id":"c1","type":"email.delivered","data":{"id":"email_1"}}`)
	assert.NoError(t, Verify(body, signedHeader(testSecret, fixedNow, body), testSecret, clock()))
	assert.True(t, Valid(body, signedHeader(testSecret, fixedNow, body), testSecret, clock()))
}

func TestVerify_Rejections(t *testing.T) {
	body := []byte(`{"id":"c1"}`)

	tests := []struct {
		name     string
		secret   string
		signedAt time.Time
		signed   []byte
		sent     []byte
		mutate   func(h http.Header)
		code     ErrorCode
	}{
		{name: "missing signature", mutate: func(h http.Header) { h.Del(SignatureHeader) }, code: CodeMissingSignature},
		{name: "missing timestamp", mutate: func(h http.Header) { h.Del(TimestampHeader) }, code: CodeMissingTimestamp},
		{name: "bad format", mutate: func(h http.Header) { h.Set(SignatureHeader, "sha256=abc") }, code: CodeInvalidSignatureFormat},
		{name: "non numeric timestamp", mutate: func(h http.Header) { h.Set(TimestampHeader, "yesterday") }, code: CodeInvalidTimestamp},
		{name: "stale timestamp", signedAt: fixedNow.Add(-6 * time.Minute), code: CodeTimestampOutOfRange},
		{name: "future timestamp", signedAt: fixedNow.Add(6 * time.Minute), code: CodeTimestampOutOfRange},
		{name: "wrong secret", secret: "whsec_other", code: CodeSignatureMismatch},
		{name: "tampered body", sent: []byte(`{"id":"c2"}`), code: CodeSignatureMismatch},
		{name: "non utf8 body", signed: []byte{0xff}, sent: []byte{0xff}, code: CodeInvalidBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret, at, signed, sent := testSecret, fixedNow, body, body
			if tt.secret != "" {
				secret = tt.secret
			}
			if !tt.signedAt.IsZero() {
				at = tt.signedAt
			}
			if tt.signed != nil {
				signed = tt.signed
			}
			if tt.sent != nil {
				sent = tt.sent
			}

			header := signedHeader(secret, at, signed)
			if tt.mutate != nil {
				tt.mutate(header)
			}

			err := Verify(sent, header, testSecret, clock())
			require.Error(t, err)
			assert.Equal(t, tt.code, codeOf(t, err))
		})
	}
}

func TestVerify_NegativeToleranceDisablesTimestampCheck(t *testing.T) {
	body := []byte(`{}`)
	header := signedHeader(testSecret, fixedNow.Add(-24*time.Hour), body)

	assert.NoError(t, Verify(body, header, testSecret, clock(), WithTolerance(-1)))
}

func TestConstructEvent(t *testing.T) {
	body := []byte(`{"id":"c1","type":"email.bounced","version":"2025-01-01","createdAt":"2026-02-08T10:00:00Z","teamId":"t1","data":{"bounce":{"type":"Permanent"}},"attempt":1}`)

	evt, err := ConstructEvent(body, signedHeader(testSecret, fixedNow, body), testSecret, clock())
	require.NoError(t, err)
	assert.Equal(t, "c1", evt.ID)
	assert.Equal(t, "email.bounced", evt.Type)
	assert.Equal(t, 1, evt.Attempt)
	assert.JSONEq(t, `{"bounce":{"type":"Permanent"}}`, string(evt.Data))
}

func TestConstructEvent_InvalidJSON(t *testing.T) {
	body := []byte(`not json`)

	_, err := ConstructEvent(body, signedHeader(testSecret, fixedNow, body), testSecret, clock())
	require.Error(t, err)
	assert.Equal(t, CodeInvalidJSON, codeOf(t, err))
	assert.Contains(t, err.Error(), "[INVALID_JSON]")
}
