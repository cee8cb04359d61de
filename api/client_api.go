// client_api.go - API-Methoden des Clients
// Enthaelt: Heartbeat, Version, Schemes, Export, Stats, Verify
package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// Heartbeat prueft, ob der Server laeuft und antwortet
func (c *Client) Heartbeat(ctx context.Context) error {
	return c.do(ctx, http.MethodHead, "/", nil, nil)
}

// Version liefert die Version des Servers
func (c *Client) Version(ctx context.Context) (string, error) {
	var version struct {
		Version string `json:"version"`
	}

	if err := c.do(ctx, http.MethodGet, "/api/version", nil, &version); err != nil {
		return "", err
	}

	return version.Version, nil
}

// Schemes listet die Quantisierungs-Schemata des Servers
func (c *Client) Schemes(ctx context.Context) (*SchemesResponse, error) {
	var resp SchemesResponse
	if err := c.do(ctx, http.MethodGet, "/api/schemes", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Export schickt den Snapshot aus r an den Server und liefert den C-Header
func (c *Client) Export(ctx context.Context, r io.Reader, req *ExportRequest) ([]byte, error) {
	query := url.Values{}
	if req.Format != "" {
		query.Set("format", req.Format)
	}
	if req.Guard != "" {
		query.Set("guard", req.Guard)
	}
	if req.RunName != "" {
		query.Set("run_name", req.RunName)
	}
	if req.NoDate {
		query.Set("no_date", "true")
	}

	return c.send(ctx, http.MethodPost, "/api/export", query, r)
}

// Stats liefert die Gewichts-Statistik des Snapshots aus r
func (c *Client) Stats(ctx context.Context, r io.Reader) (*StatsResponse, error) {
	var resp StatsResponse
	if err := c.do(ctx, http.MethodPost, "/api/stats", r, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Verify prueft den Snapshot aus r per Round-Trip auf dem Server
func (c *Client) Verify(ctx context.Context, r io.Reader) (*VerifyResponse, error) {
	var resp VerifyResponse
	if err := c.do(ctx, http.MethodPost, "/api/verify", r, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
