// Package cep resolves Brazilian postal codes to street addresses
// through a ViaCEP-compatible service.
package cep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/camp-buscape/registration-api/internal/format"
)

// ErrNotFound means the service knows the code format but has no
// address for it.
var ErrNotFound = errors.New("cep not found")

type Address struct {
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup fetches the address for an 8-digit postal code. The city field
// is rendered as localidade/UF, the way the form displays it.
func (c *Client) Lookup(ctx context.Context, cep string) (Address, error) {
	clean := format.CEPDigits(cep)
	if len(clean) != 8 {
		return Address{}, fmt.Errorf("cep must have 8 digits, got %q", cep)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/ws/%s/json/", c.baseURL, clean), nil)
	if err != nil {
		return Address{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Address{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Address{}, fmt.Errorf("cep service returned status %d", resp.StatusCode)
	}

	var payload struct {
		Logradouro string `json:"logradouro"`
		Bairro     string `json:"bairro"`
		Localidade string `json:"localidade"`
		UF         string `json:"uf"`
		Erro       bool   `json:"erro"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Address{}, err
	}
	if payload.Erro {
		return Address{}, ErrNotFound
	}

	return Address{
		Street:       payload.Logradouro,
		Neighborhood: payload.Bairro,
		City:         payload.Localidade + "/" + payload.UF,
	}, nil
}

// Resolver serializes lookups for one form session. Each Resolve call
// bumps a generation counter; a response whose generation is no longer
// the latest reports apply=false, so a slow lookup for a stale code can
// never overwrite the result of a later one.
type Resolver struct {
	client *Client

	mu  sync.Mutex
	gen uint64
}

func NewResolver(client *Client) *Resolver {
	return &Resolver{client: client}
}

// Resolve looks up cep and reports whether the caller should apply the
// returned address. apply is false when the lookup failed or when a
// newer lookup was started while this one was in flight.
func (r *Resolver) Resolve(ctx context.Context, cep string) (addr Address, apply bool, err error) {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.mu.Unlock()

	addr, err = r.client.Lookup(ctx, cep)
	if err != nil {
		return Address{}, false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		return Address{}, false, nil
	}
	return addr, true, nil
}
