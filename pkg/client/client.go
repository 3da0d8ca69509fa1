package client

import (
	"context"
	"fmt"
	"time"

	wifiscanner "github.com/dogeorg/wifiscanner/pkg"
	"github.com/go-resty/resty/v2"
)

// Client talks to the REST API of a running `wifiscan serve`.
type Client struct {
	r *resty.Client
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func New(baseURL string) Client {
	r := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json")
	return Client{r: r}
}

func (c Client) do(ctx context.Context, method, path string, result any) error {
	var apiErr apiError
	resp, err := c.r.R().
		SetContext(ctx).
		SetResult(result).
		SetError(&apiErr).
		Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		msg := apiErr.Error.Message
		if msg == "" {
			msg = resp.Status()
		}
		return fmt.Errorf("%s %s: %s", method, path, msg)
	}
	return nil
}

// StartScan asks the server to start a scan and returns its session ID.
func (c Client) StartScan(ctx context.Context) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, resty.MethodPost, "/scan", &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c Client) Session(ctx context.Context) (wifiscanner.SessionView, error) {
	var out wifiscanner.SessionView
	err := c.do(ctx, resty.MethodGet, "/scan", &out)
	return out, err
}

// WaitScan polls until session id completes. A different live session ID
// means ours was superseded.
func (c Client) WaitScan(ctx context.Context, id string, every time.Duration) (wifiscanner.SessionView, error) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		v, err := c.Session(ctx)
		if err != nil {
			return v, err
		}
		if v.ID != id {
			return v, wifiscanner.ErrSuperseded
		}
		if v.State == wifiscanner.StateCompleted {
			return v, nil
		}

		select {
		case <-ctx.Done():
			return v, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Export saves the server's latest session and returns the snapshot path.
func (c Client) Export(ctx context.Context) (string, error) {
	var out struct {
		Path string `json:"path"`
	}
	if err := c.do(ctx, resty.MethodPost, "/scan/export", &out); err != nil {
		return "", err
	}
	return out.Path, nil
}
