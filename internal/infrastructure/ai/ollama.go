package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/ebrahas/smartcli/internal/domain"
	"github.com/ebrahas/smartcli/internal/ports"
)

// maxResponseBytes caps how much of a generate response is read.
const maxResponseBytes = 1 << 20

// OllamaClient queries a local Ollama server's generate endpoint.
// Deadlines come from the caller's context; the HTTP client carries none.
type OllamaClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewOllamaClient builds a client for endpoint (DefaultEndpoint when empty).
func NewOllamaClient(endpoint string, client *http.Client) *OllamaClient {
	if client == nil {
		client = &http.Client{}
	}
	return &OllamaClient{
		endpoint:   valueOrDefault(endpoint, domain.DefaultEndpoint),
		httpClient: client,
	}
}

func (o *OllamaClient) Name() string {
	return "ollama"
}

// Endpoint returns the generate URL in use.
func (o *OllamaClient) Endpoint() string {
	return o.endpoint
}

// Generate sends one non-streaming generate request and normalizes the reply.
func (o *OllamaClient) Generate(ctx context.Context, req ports.ProviderRequest) (ports.ProviderResponse, error) {
	prompt, err := renderDirective(req.Instruction, req.Structured)
	if err != nil {
		return ports.ProviderResponse{}, fmt.Errorf("render prompt: %w", err)
	}

	payload := generateRequest{
		Model:  req.Model,
		Prompt: prompt,
		Stream: false,
	}
	if req.Structured {
		payload.Format = commandSchema
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return ports.ProviderResponse{}, err
	}

	raw, err := o.post(ctx, body)
	if err != nil {
		return ports.ProviderResponse{}, err
	}

	text, err := decodeGenerateResponse(raw)
	if err != nil {
		return ports.ProviderResponse{}, err
	}

	content := text
	if req.Structured {
		content, err = decodeStructuredCommand(text)
		if err != nil {
			return ports.ProviderResponse{}, err
		}
	}

	command := NormalizeCommand(content)
	if command == "" {
		return ports.ProviderResponse{Raw: text}, domain.NewError(domain.ErrKindEmptyResult,
			fmt.Sprintf("model %s returned no command", req.Model), nil)
	}

	return ports.ProviderResponse{
		Command: command,
		Raw:     text,
	}, nil
}

func (o *OllamaClient) post(ctx context.Context, body []byte) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewError(domain.ErrKindTransport, "invalid inference endpoint "+o.endpoint, err)
	}
	httpReq.Header.Set("content-type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyRequestError(ctx, o.endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, classifyRequestError(ctx, o.endpoint, err)
	}

	if resp.StatusCode >= 400 {
		return nil, domain.NewError(domain.ErrKindTransport, statusMessage(resp.Status, raw), nil)
	}
	return raw, nil
}

// Ping checks that the Ollama server answers on its base URL.
func (o *OllamaClient) Ping(ctx context.Context) error {
	_, err := o.get(ctx, "/")
	return err
}

// InstalledModels returns model names reported by /api/tags.
func (o *OllamaClient) InstalledModels(ctx context.Context) ([]string, error) {
	raw, err := o.get(ctx, "/api/tags")
	if err != nil {
		return nil, err
	}

	var tags tagsResponse
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, domain.NewError(domain.ErrKindTransport, "malformed /api/tags response", err)
	}

	names := make([]string, 0, len(tags.Models))
	for _, model := range tags.Models {
		names = append(names, model.Name)
	}
	return names, nil
}

func (o *OllamaClient) get(ctx context.Context, path string) ([]byte, error) {
	base, err := baseURL(o.endpoint)
	if err != nil {
		return nil, domain.NewError(domain.ErrKindTransport, "invalid inference endpoint "+o.endpoint, err)
	}
	target := base + path

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, domain.NewError(domain.ErrKindTransport, "invalid inference endpoint "+target, err)
	}

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyRequestError(ctx, target, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, classifyRequestError(ctx, target, err)
	}
	if resp.StatusCode >= 400 {
		return nil, domain.NewError(domain.ErrKindTransport, statusMessage(resp.Status, raw), nil)
	}
	return raw, nil
}

func decodeGenerateResponse(raw []byte) (string, error) {
	var decoded generateResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", domain.NewError(domain.ErrKindTransport, "malformed response from inference endpoint", err)
	}
	if decoded.Response == nil {
		return "", domain.NewError(domain.ErrKindTransport, "inference response has no \"response\" field", nil)
	}
	return *decoded.Response, nil
}

func decodeStructuredCommand(text string) (string, error) {
	var decoded structuredCommand
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &decoded); err != nil {
		return "", domain.NewError(domain.ErrKindTransport, "structured response is not a JSON object", err)
	}
	if decoded.Cmd == nil {
		return "", domain.NewError(domain.ErrKindTransport, "structured response has no \"cmd\" field", nil)
	}
	return *decoded.Cmd, nil
}

func classifyRequestError(ctx context.Context, target string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domain.NewError(domain.ErrKindTimeout, "no response from "+target+" before the timeout", err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.NewError(domain.ErrKindTimeout, "no response from "+target+" before the timeout", err)
	}
	return domain.NewError(domain.ErrKindTransport, "cannot reach "+target+" (is `ollama serve` running?)", err)
}

func statusMessage(status string, body []byte) string {
	var decoded errorResponse
	if err := json.Unmarshal(body, &decoded); err == nil && decoded.Error != "" {
		return fmt.Sprintf("ollama: %s: %s", status, decoded.Error)
	}
	return "ollama: " + status
}

func baseURL(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("endpoint %q must be an absolute URL", endpoint)
	}
	return u.Scheme + "://" + u.Host, nil
}

var (
	_ ports.Provider     = (*OllamaClient)(nil)
	_ ports.HealthProber = (*OllamaClient)(nil)
)
