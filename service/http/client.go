package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"responder/errs"
)

const defaultTimeout = 5 * time.Second

type Client struct {
	addr   string
	url    string
	client *http.Client
}

func NewClient(addr string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		addr: addr,
		url:  fmt.Sprintf("http://%s", addr),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Probe(ctx context.Context, path string) (string, error) {
	if path == "" || !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	res, err := c.do(ctx, &doRequest{
		method: http.MethodGet,
		path:   path,
		header: c.jsonHeader(),
	})
	if err != nil {
		return "", err
	}

	return res.Message, nil
}

func (c *Client) jsonHeader() http.Header {
	header := http.Header{}
	header.Set("Accept", contentType)

	return header
}

type doRequest struct {
	method string
	path   string
	header http.Header
}

func (c *Client) do(ctx context.Context, req *doRequest) (*payload, error) {
	r, err := http.NewRequestWithContext(ctx, req.method, c.url+req.path, nil)
	if err != nil {
		return nil, err
	}
	if req.header != nil {
		r.Header = req.header
	}

	res, err := c.client.Do(r)
	if err != nil {
		return nil, errors.Wrapf(err, "request %s", c.addr)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(errs.ErrUnexpectedStatus, "%s answered %s", c.addr, res.Status)
	}

	mediaType, _, err := mime.ParseMediaType(res.Header.Get("Content-Type"))
	if err != nil || mediaType != contentType {
		return nil, errors.Wrapf(errs.ErrUnexpectedContentType, "%s answered %q", c.addr, res.Header.Get("Content-Type"))
	}

	bs, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read body from %s", c.addr)
	}

	var p payload
	if err := json.Unmarshal(bs, &p); err != nil || p.Message == "" {
		return nil, errors.Wrapf(errs.ErrNotResponder, "%s answered %q", c.addr, bs)
	}

	return &p, nil
}
