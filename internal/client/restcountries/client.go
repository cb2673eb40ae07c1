// Package restcountries is the HTTP client for the REST Countries v3.1 API,
// the project's only external data source. The API is read-only; responses
// are JSON country records. A non-2xx response is a fetch failure. No
// automatic retries are performed.
package restcountries

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"worldquery/internal/client/models"
	"worldquery/internal/common"
)

// detailFields is the field list requested for a single-country lookup,
// matching what the detail view renders.
const detailFields = "name,flags,capital,region,subregion,population,languages," +
	"currencies,borders,latlng,coatOfArms,timezones,continents,startOfWeek,car," +
	"area,independent,unMember,landlocked,gini,maps,cca2,cca3,cioc,tld"

// neighborFields is the reduced field list used when resolving border codes.
const neighborFields = "name,flags,cca3"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a client for the API rooted at baseURL
// (e.g. "https://restcountries.com/v3.1"). timeout bounds each request.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// All fetches the full country collection.
func (c *Client) All(ctx context.Context) ([]models.Country, error) {
	body, err := c.get(ctx, c.baseURL+"/all")
	if err != nil {
		return nil, err
	}

	var countries []models.Country
	if err := json.Unmarshal(body, &countries); err != nil {
		return nil, fmt.Errorf("failed to decode country list: %w", err)
	}
	return countries, nil
}

// ByCode fetches a single country by its alpha code. A failed lookup is
// retried once with the lower-cased code before giving up; the API is picky
// about case for some code forms.
func (c *Client) ByCode(ctx context.Context, code string) (*models.Country, error) {
	u := fmt.Sprintf("%s/alpha/%s?fields=%s", c.baseURL, url.PathEscape(code), detailFields)

	body, err := c.get(ctx, u)
	if err != nil {
		lower := strings.ToLower(code)
		if lower == code {
			return nil, err
		}
		u = fmt.Sprintf("%s/alpha/%s?fields=%s", c.baseURL, url.PathEscape(lower), detailFields)
		if body, err = c.get(ctx, u); err != nil {
			return nil, err
		}
	}

	return decodeSingle(body)
}

// ByCodes resolves several alpha codes at once, as used for border
// neighbors. An empty codes list returns an empty slice without a request.
func (c *Client) ByCodes(ctx context.Context, codes []string) ([]models.Country, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	q := url.Values{}
	q.Set("codes", strings.Join(codes, ","))
	q.Set("fields", neighborFields)

	body, err := c.get(ctx, c.baseURL+"/alpha?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var countries []models.Country
	if err := json.Unmarshal(body, &countries); err != nil {
		return nil, fmt.Errorf("failed to decode neighbor list: %w", err)
	}
	return countries, nil
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &common.FetchError{URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &common.FetchError{URL: u, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &common.FetchError{URL: u, Err: err}
	}
	return body, nil
}

// decodeSingle tolerates both response shapes of /alpha/{code}: a single
// record or a one-element array.
func decodeSingle(body []byte) (*models.Country, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var countries []models.Country
		if err := json.Unmarshal(trimmed, &countries); err != nil {
			return nil, fmt.Errorf("failed to decode country: %w", err)
		}
		if len(countries) == 0 {
			return nil, common.ErrNotFound
		}
		return &countries[0], nil
	}

	var country models.Country
	if err := json.Unmarshal(trimmed, &country); err != nil {
		return nil, fmt.Errorf("failed to decode country: %w", err)
	}
	return &country, nil
}
