// Package gateway is a typed HTTP client for the innkeep back-office API.
// Every entity exposed by the API, and the back-office collaborators that
// live behind it (suppliers, employees, discounts, orders, clients), is
// reachable through a resource on Client.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ErrStale is returned by List and calendar calls when a later request on
// the same resource has already completed. Callers refreshing on rapid
// filter changes can drop the response instead of rendering it.
var ErrStale = errors.New("gateway: stale response superseded by a newer request")

// APIError carries a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gateway: api error: status=%d message=%s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gateway: api error: status=%d", e.StatusCode)
}

type Client struct {
	BaseURL    string
	Username   string
	Password   string
	HTTPClient *http.Client

	seq    atomic.Int64
	mu     sync.Mutex
	latest map[string]int64

	Bookings  *Resource[Booking]
	Rooms     *Resource[Room]
	Events    *Resource[Event]
	Inventory *Resource[InventoryItem]
	Menu      *Resource[MenuItem]
	Suppliers *Resource[Supplier]
	Employees *Resource[Employee]
	Admins    *Resource[Admin]
	Discounts *Resource[Discount]
	Orders    *Resource[Order]
	Clients   *Resource[ClientRecord]
}

func New(baseURL, username, password string) *Client {
	c := &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Username:   username,
		Password:   password,
		HTTPClient: &http.Client{Timeout: 20 * time.Second},
		latest:     make(map[string]int64),
	}

	c.Bookings = newResource[Booking](c, "bookings")
	c.Rooms = newResource[Room](c, "rooms")
	c.Events = newResource[Event](c, "events")
	c.Inventory = newResource[InventoryItem](c, "inventory")
	c.Menu = newResource[MenuItem](c, "menu")
	c.Suppliers = newResource[Supplier](c, "suppliers")
	c.Employees = newResource[Employee](c, "employees")
	c.Admins = newResource[Admin](c, "admins")
	c.Discounts = newResource[Discount](c, "discounts")
	c.Orders = newResource[Order](c, "orders")
	c.Clients = newResource[ClientRecord](c, "clients")

	return c
}

// nextSeq hands out the sequence token for a list-shaped request.
func (c *Client) nextSeq() int64 {
	return c.seq.Add(1)
}

// commit records seq as the newest completed request for key. It reports
// false when a later request already finished, in which case the response
// carrying seq is stale.
func (c *Client) commit(key string, seq int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq < c.latest[key] {
		return false
	}
	c.latest[key] = seq
	return true
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, reqBody any, respBody any) error {
	var buf bytes.Buffer
	if reqBody != nil {
		if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
			return err
		}
	}

	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Username != "" {
		req.SetBasicAuth(c.Username, c.Password)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	b, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var body struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(b, &body) == nil && body.Error != "" {
			apiErr.Message = body.Error
		}
		return apiErr
	}

	if respBody != nil && len(b) > 0 {
		if err := json.Unmarshal(b, respBody); err != nil {
			return fmt.Errorf("gateway: decode response failed: %w", err)
		}
	}

	return nil
}

// cacheBust mirrors the browser clients this API grew up with, which append
// a timestamp to defeat intermediary caches. The server ignores it.
func cacheBust(q url.Values) url.Values {
	if q == nil {
		q = url.Values{}
	}
	q.Set("_t", strconv.FormatInt(time.Now().UnixMilli(), 10))
	return q
}
