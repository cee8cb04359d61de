// Package api - Client fuer den mcuexport Server.
// Dieses Modul enthaelt die Client-Struktur und Basis-Methoden.
// API-Methoden sind in client_api.go, Request/Response-Typen in types.go.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"

	"github.com/bitnetmcu/mcuexport/envconfig"
	"github.com/bitnetmcu/mcuexport/version"
)

// Client kapselt die Verbindung zum Server. Erzeugung ueber [ClientFromEnvironment].
type Client struct {
	base *url.URL
	http *http.Client
}

func checkError(resp *http.Response, body []byte) error {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	apiError := StatusError{StatusCode: resp.StatusCode, Status: resp.Status}

	err := json.Unmarshal(body, &apiError)
	if err != nil {
		// Body als Meldung, wenn er kein JSON ist
		apiError.ErrorMessage = string(body)
	}

	return apiError
}

// ClientFromEnvironment erzeugt einen [Client] fuer MCU_HOST.
// Format der Variable:
//
//	<scheme>://<host>:<port>
//
// Ohne MCU_HOST wird 127.0.0.1:11480 verwendet.
func ClientFromEnvironment() (*Client, error) {
	return &Client{
		base: envconfig.Host(),
		http: http.DefaultClient,
	}, nil
}

func NewClient(base *url.URL, http *http.Client) *Client {
	return &Client{
		base: base,
		http: http,
	}
}

// send fuehrt den Request aus und liefert den Response-Body
func (c *Client) send(ctx context.Context, method, path string, query url.Values, reqData any) ([]byte, error) {
	var reqBody io.Reader
	contentType := "application/json"

	switch reqData := reqData.(type) {
	case io.Reader:
		reqBody = reqData
		contentType = "application/octet-stream"
	case nil:
		// noop
	default:
		data, err := json.Marshal(reqData)
		if err != nil {
			return nil, err
		}

		reqBody = bytes.NewReader(data)
	}

	requestURL := c.base.JoinPath(path)
	if len(query) > 0 {
		requestURL.RawQuery = query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, method, requestURL.String(), reqBody)
	if err != nil {
		return nil, err
	}

	request.Header.Set("Content-Type", contentType)
	request.Header.Set("User-Agent", fmt.Sprintf("mcuexport/%s (%s %s) Go/%s", version.Version, runtime.GOARCH, runtime.GOOS, runtime.Version()))

	respObj, err := c.http.Do(request)
	if err != nil {
		return nil, err
	}
	defer respObj.Body.Close()

	respBody, err := io.ReadAll(respObj.Body)
	if err != nil {
		return nil, err
	}

	if err := checkError(respObj, respBody); err != nil {
		return nil, err
	}

	return respBody, nil
}

func (c *Client) do(ctx context.Context, method, path string, reqData, respData any) error {
	respBody, err := c.send(ctx, method, path, nil, reqData)
	if err != nil {
		return err
	}

	if len(respBody) > 0 && respData != nil {
		if err := json.Unmarshal(respBody, respData); err != nil {
			return err
		}
	}
	return nil
}
