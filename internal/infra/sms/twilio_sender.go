package sms

import (
	"context"
	"net/http"
	"net/url"

	"votegate/config"
	"votegate/internal/domain/service"
	"votegate/internal/errors"

	"github.com/twilio/twilio-go"
	"github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type twilioSender struct {
	cfg        *config.TwilioConfig
	baseURL    *url.URL
	httpClient *http.Client
}

// NewTwilioSender sends through the Twilio Messages resource. A non-empty BaseURL
// redirects the SDK's requests to another host, which is how tests and relays plug in.
func NewTwilioSender(cfg *config.TwilioConfig, httpClient *http.Client) (service.SMSSender, error) {
	sender := &twilioSender{cfg: cfg, httpClient: httpClient}

	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, errors.Errorf("invalid twilio baseUrl %q", cfg.BaseURL)
		}
		sender.baseURL = u
	}

	return sender, nil
}

func (s *twilioSender) Send(ctx context.Context, phone, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(s.cfg.FromNumber)
	params.SetBody(message)

	if _, err := s.restClient(ctx).Api.CreateMessage(params); err != nil {
		return errors.Wrap(err, "twilio create message")
	}

	return nil
}

// restClient binds the SDK to ctx; CreateMessage itself takes no context.
func (s *twilioSender) restClient(ctx context.Context) *twilio.RestClient {
	next := http.DefaultTransport
	if s.httpClient.Transport != nil {
		next = s.httpClient.Transport
	}

	base := &client.Client{
		Credentials: client.NewCredentials(s.cfg.AccountSID, s.cfg.AuthToken),
		HTTPClient: &http.Client{
			Timeout:   s.httpClient.Timeout,
			Transport: &twilioTransport{ctx: ctx, baseURL: s.baseURL, next: next},
		},
	}
	base.SetAccountSid(s.cfg.AccountSID)

	return twilio.NewRestClientWithParams(twilio.ClientParams{Client: base})
}

type twilioTransport struct {
	ctx     context.Context
	baseURL *url.URL
	next    http.RoundTripper
}

func (t *twilioTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(t.ctx)
	if t.baseURL != nil {
		out.URL.Scheme = t.baseURL.Scheme
		out.URL.Host = t.baseURL.Host
		out.Host = ""
	}

	return t.next.RoundTrip(out)
}
