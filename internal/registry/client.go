package registry

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

type Component struct {
	Mint   string `json:"mint"`
	Weight uint64 `json:"weight,string"`
}

// Listing is one basket as the registry publishes it.
type Listing struct {
	ID          string      `json:"id,omitempty"`
	EtfMint     string      `json:"etfMint"`
	Name        string      `json:"name"`
	Symbol      string      `json:"symbol"`
	Description string      `json:"description,omitempty"`
	Creator     string      `json:"creator,omitempty"`
	Components  []Component `json:"components"`
	CreatedAt   *time.Time  `json:"createdAt,omitempty"`
}

// Client is the listing registry REST client. No method returns an error:
// failures are logged and reported as "absent" through the bool result.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(defaultTimeout).
			SetHeader("Accept", "application/json"),
		logger: logger.Named("registry"),
	}
}

func (c *Client) Create(ctx context.Context, listing Listing) (Listing, bool) {
	var created Listing
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(listing).
		SetResult(&created).
		Post("/baskets")
	if !c.ok("create listing", resp, err, zap.String("etf_mint", listing.EtfMint)) {
		return Listing{}, false
	}
	return created, true
}

func (c *Client) Delete(ctx context.Context, id string) bool {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete("/baskets/{id}")
	return c.ok("delete listing", resp, err, zap.String("id", id))
}

func (c *Client) List(ctx context.Context) ([]Listing, bool) {
	var listings []Listing
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&listings).
		Get("/baskets")
	if !c.ok("list listings", resp, err) {
		return nil, false
	}
	return listings, true
}

func (c *Client) Get(ctx context.Context, id string) (Listing, bool) {
	var listing Listing
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&listing).
		Get("/baskets/{id}")
	if !c.ok("get listing", resp, err, zap.String("id", id)) {
		return Listing{}, false
	}
	return listing, true
}

func (c *Client) ok(op string, resp *resty.Response, err error, fields ...zap.Field) bool {
	if err != nil {
		c.logger.Warn(op+" failed", append(fields, zap.Error(err))...)
		return false
	}
	if !resp.IsSuccess() {
		c.logger.Warn(op+" rejected", append(fields,
			zap.Int("status", resp.StatusCode()),
			zap.ByteString("body", resp.Body()),
		)...)
		return false
	}
	return true
}
