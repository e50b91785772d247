package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"sort"
	"sync"
	"time"

	"skylog/flightdeck/internal/constants"
	"skylog/flightdeck/internal/models/dtos"

	"golang.org/x/sync/errgroup"
)

const (
	defaultPageSize = 100
	maxPages        = 5
)

// ProviderError carries a machine-readable code alongside the message so the
// API layer can map provider failures without string matching.
type ProviderError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// AeroDataService talks to the third-party flight-data API that backs route
// lookups. All failures degrade to a ProviderError; callers decide whether
// to serve partial data or an error response.
type AeroDataService struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewAeroDataService reads config from the environment.
func NewAeroDataService() *AeroDataService {
	baseURL := os.Getenv("AERO_API_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.aviationstack.com/v1"
	}
	return &AeroDataService{
		BaseURL: baseURL,
		APIKey:  os.Getenv("AERO_API_KEY"),
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// doGET performs an authenticated GET and decodes JSON into result.
func (svc *AeroDataService) doGET(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	params.Set("access_key", svc.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, svc.BaseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := svc.Client.Do(req)
	if err != nil {
		return &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.MsgProviderDown,
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &ProviderError{Code: constants.ErrCodeProviderDown, Message: "resource not found"}
	}
	if resp.StatusCode != http.StatusOK {
		return &ProviderError{
			Code:    constants.ErrCodeProviderDown,
			Message: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

// FetchRouteFlights pulls every flight the provider knows for a route. The
// first page reveals the total; remaining pages are fetched concurrently
// with errgroup, capped at maxPages to keep a fat route from fanning out
// unbounded.
func (svc *AeroDataService) FetchRouteFlights(ctx context.Context, depIata, arrIata string) ([]dtos.AeroFlight, error) {
	first, err := svc.fetchPage(ctx, depIata, arrIata, 0)
	if err != nil {
		return nil, err
	}

	flights := first.Data
	total := first.Pagination.Total
	if total <= len(flights) {
		return flights, nil
	}

	pages := (total + defaultPageSize - 1) / defaultPageSize
	if pages > maxPages {
		pages = maxPages
	}

	var mu sync.Mutex
	byOffset := map[int][]dtos.AeroFlight{}

	g, gctx := errgroup.WithContext(ctx)
	for p := 1; p < pages; p++ {
		offset := p * defaultPageSize
		g.Go(func() error {
			page, err := svc.fetchPage(gctx, depIata, arrIata, offset)
			if err != nil {
				return err
			}
			mu.Lock()
			byOffset[offset] = page.Data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	offsets := make([]int, 0, len(byOffset))
	for off := range byOffset {
		offsets = append(offsets, off)
	}
	sort.Ints(offsets)
	for _, off := range offsets {
		flights = append(flights, byOffset[off]...)
	}
	return flights, nil
}

func (svc *AeroDataService) fetchPage(ctx context.Context, depIata, arrIata string, offset int) (*dtos.AeroFlightsResponse, error) {
	params := url.Values{}
	params.Set("dep_iata", depIata)
	params.Set("arr_iata", arrIata)
	params.Set("limit", fmt.Sprintf("%d", defaultPageSize))
	params.Set("offset", fmt.Sprintf("%d", offset))

	var page dtos.AeroFlightsResponse
	if err := svc.doGET(ctx, "/flights", params, &page); err != nil {
		var provErr *ProviderError
		if errors.As(err, &provErr) {
			return nil, err
		}
		return nil, &ProviderError{
			Code:    constants.ErrCodeNetworkError,
			Message: constants.MsgProviderDown,
			Err:     err,
		}
	}
	return &page, nil
}
