package supabase

import (
	"github.com/supabase-community/supabase-go"

	"luxcert-backend/internal/config"
)

// Client wraps the Supabase project client. The service key gives the Auth
// field admin access, which the identity resolver uses to provision guest
// accounts and generate setup links.
type Client struct {
	Supabase *supabase.Client
	Config   *config.Config
}

func NewClient(cfg *config.Config) (*Client, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		Supabase: client,
		Config:   cfg,
	}, nil
}
