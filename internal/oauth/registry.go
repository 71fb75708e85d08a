package oauth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"golang.org/x/oauth2"
)

// Profile is the provider-agnostic identity assertion consumed once per
// callback: display name plus whatever emails the provider granted.
type Profile struct {
	Name   string
	Emails []string
}

// Provider couples an oauth2.Config with the provider's userinfo
// endpoint and response decoding. Past FetchProfile every provider
// looks identical to the auth flow.
type Provider struct {
	Name        string
	Config      *oauth2.Config
	UserInfoURL string
	decode      func(data []byte) (*Profile, error)
}

// AuthCodeURL builds the provider consent URL for the given CSRF state.
func (p *Provider) AuthCodeURL(state string) string {
	return p.Config.AuthCodeURL(state)
}

// FetchProfile exchanges the authorization code and fetches the
// provider's userinfo document, normalized into a Profile.
func (p *Provider) FetchProfile(ctx context.Context, code string) (*Profile, error) {
	tok, err := p.Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%s code exchange failed: %w", p.Name, err)
	}

	client := p.Config.Client(ctx, tok)
	resp, err := client.Get(p.UserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("%s userinfo request failed: %w", p.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%s userinfo error (status %d): %s", p.Name, resp.StatusCode, string(body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s userinfo read failed: %w", p.Name, err)
	}

	return p.decode(data)
}

// Registry holds the providers configured at startup. It is built once
// in main and handed to the auth handler by reference; nothing looks up
// providers through ambient globals at request time.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]*Provider
}

func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]*Provider)}
}

func (r *Registry) Register(p *Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.Name] = p
}

func (r *Registry) Get(name string) *Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.providers[name]
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}
