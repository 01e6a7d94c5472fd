package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"bolsa-pipeline/internal/model"
)

// DailyBars fetches up to days recent daily bars for symbol.
//
// A successful response carrying zero observations yields (nil, nil): an
// empty window is an expected outcome, not a failure. Provider-side
// problems (HTTP errors, in-band chart errors, malformed payloads) return
// a non-nil error.
func (c *Client) DailyBars(ctx context.Context, symbol string, days int) ([]model.RawBar, error) {
	if symbol == "" {
		return nil, errors.New("symbol must not be empty")
	}
	if days < 1 {
		return nil, fmt.Errorf("lookback must be >= 1 day, got %d", days)
	}

	query := url.Values{}
	query.Set("range", fmt.Sprintf("%dd", days))
	query.Set("interval", "1d")

	var resp chartResponse
	path := "/v8/finance/chart/" + url.PathEscape(symbol)
	if err := c.get(ctx, path, query, &resp); err != nil {
		return nil, err
	}

	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("chart error %s: %s", resp.Chart.Error.Code, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, nil
	}

	return resultToBars(&resp.Chart.Result[0]), nil
}
