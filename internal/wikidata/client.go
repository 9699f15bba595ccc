// Package wikidata talks to the triple-store endpoint and turns raw SPARQL
// result bindings into canonical answer strings.
package wikidata

import (
	"context"
	"net/url"

	"github.com/kiss2smiles/wdqa/internal"
	"github.com/kiss2smiles/wdqa/internal/infra"
)

// Cell is one value of a SPARQL result binding row.
type Cell struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type selectResponse struct {
	Results struct {
		Bindings []map[string]Cell `json:"bindings"`
	} `json:"results"`
}

// Client executes SELECT queries against a SPARQL endpoint over HTTP GET.
type Client struct {
	config     *internal.Config
	httpClient *infra.HttpClient
}

func NewClient(config *internal.Config) *Client {
	return &Client{
		config:     config,
		httpClient: infra.NewHttpClient(config.SparqlTimeout),
	}
}

// NewClientWithHttpClient creates a Client with the given HTTP client.
func NewClientWithHttpClient(config *internal.Config, httpClient *infra.HttpClient) *Client {
	return &Client{
		config:     config,
		httpClient: httpClient,
	}
}

// Select runs one query and returns its raw binding rows. Transport faults
// come back as Unavailable-coded errors; deciding whether a fault should be
// treated like an empty answer set is the caller's call, not the client's.
func (c *Client) Select(ctx context.Context, query string) ([]map[string]Cell, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("format", "json")

	var resp selectResponse
	err := c.httpClient.Get(
		ctx,
		infra.Request{
			Url: c.config.SparqlUrl + "?" + params.Encode(),
			Headers: map[string]string{
				"Accept": "application/sparql-results+json",
			},
		},
		&resp,
	)
	if err != nil {
		return nil, err
	}
	return resp.Results.Bindings, nil
}
