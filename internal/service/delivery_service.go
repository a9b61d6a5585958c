package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"webhook-dispatcher/internal/core/domain"
	"webhook-dispatcher/internal/core/ports"
	"webhook-dispatcher/pkg/apperror"

	"github.com/rs/zerolog"
)

// Outbound delivery headers. Receivers verify X-UseSend-Signature over
// "{X-UseSend-Timestamp}.{raw body}".
const (
	HeaderSignature = "X-UseSend-Signature"
	HeaderTimestamp = "X-UseSend-Timestamp"
	HeaderEvent     = "X-UseSend-Event"
	HeaderCall      = "X-UseSend-Call"
	HeaderRetry     = "X-UseSend-Retry"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewDeliveryHTTPClient returns a client that never follows redirects: a 3xx
// is handed back as-is and counts as a failed delivery.
func NewDeliveryHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ExpectContinueTimeout: time.Second,
		},
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// DeliveryOptions configures a DeliveryService.
type DeliveryOptions struct {
	RequestTimeout time.Duration
	UserAgent      string
	CaptureLimit   int
}

// DeliveryService implements ports.DeliveryExecutor: one signed POST per call.
type DeliveryService struct {
	httpClient HTTPClient
	cipher     ports.SecretCipher
	signer     ports.SignatureService
	capture    *ResponseCapture
	opts       DeliveryOptions
	now        func() time.Time
	log        zerolog.Logger
}

// NewDeliveryService creates a new delivery executor.
func NewDeliveryService(
	httpClient HTTPClient,
	cipher ports.SecretCipher,
	signer ports.SignatureService,
	opts DeliveryOptions,
	log zerolog.Logger,
) *DeliveryService {
	return &DeliveryService{
		httpClient: httpClient,
		cipher:     cipher,
		signer:     signer,
		capture:    NewResponseCapture(opts.CaptureLimit),
		opts:       opts,
		now:        time.Now,
		log:        log,
	}
}

// Deliver performs a single attempt. Any non-2xx status, timeout or transport
// failure is returned as *apperror.DeliveryError carrying the diagnostics.
func (s *DeliveryService) Deliver(ctx context.Context, call *domain.WebhookCall, webhook *domain.Webhook) (*domain.DeliveryResult, error) {
	body, err := MarshalEnvelope(call)
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}

	secret, err := s.cipher.Open(webhook.SecretEnc)
	if err != nil {
		return nil, fmt.Errorf("open webhook secret: %w", err)
	}

	timestamp := strconv.FormatInt(s.now().UnixMilli(), 10)

	reqCtx, cancel := context.WithTimeout(ctx, s.opts.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, webhook.URL, bytes.NewReader(body))
	if err != nil {
		return nil, &apperror.DeliveryError{Kind: apperror.DeliveryNetworkError, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", s.opts.UserAgent)
	req.Header.Set(HeaderEvent, call.Type)
	req.Header.Set(HeaderCall, call.ID.String())
	req.Header.Set(HeaderTimestamp, timestamp)
	req.Header.Set(HeaderSignature, s.signer.SignWebhook(secret, timestamp, body))
	req.Header.Set(HeaderRetry, strconv.FormatBool(call.IsRetry()))

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	elapsed := int(time.Since(start).Milliseconds())
	if err != nil {
		kind := apperror.DeliveryNetworkError
		if isTimeout(reqCtx, err) {
			kind = apperror.DeliveryTimeout
		}
		return nil, &apperror.DeliveryError{Kind: kind, ResponseTimeMs: elapsed, Err: err}
	}
	defer resp.Body.Close()

	text := s.capture.Capture(resp)

	s.log.Debug().
		Str("call_id", call.ID.String()).
		Str("webhook_id", webhook.ID.String()).
		Int("attempt", call.Attempt).
		Int("status", resp.StatusCode).
		Int("response_time_ms", elapsed).
		Msg("webhook: response received")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &apperror.DeliveryError{
			Kind:           apperror.DeliveryHTTPError,
			StatusCode:     resp.StatusCode,
			ResponseTimeMs: elapsed,
			ResponseText:   text,
		}
	}

	return &domain.DeliveryResult{
		StatusCode:     resp.StatusCode,
		ResponseTimeMs: elapsed,
		ResponseText:   text,
	}, nil
}

func isTimeout(reqCtx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
