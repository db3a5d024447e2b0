package api

import (
	"context"
	"net/http"

	"lexcal/pkg/utils"
)

// ListCases fetches the case summaries used to populate the
// case-selection control. The store denormalizes case and client
// display fields onto events itself.
func (c *Client) ListCases(ctx context.Context) ([]CaseSummary, error) {
	var cases []CaseSummary
	if err := c.do(ctx, http.MethodGet, "/cases", nil, nil, &cases); err != nil {
		return nil, err
	}
	utils.Log("Loaded %d cases from store", len(cases))
	return cases, nil
}
