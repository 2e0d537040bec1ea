// Package requestutils performs the HTTP calls of covcompare.
package requestutils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/LambdaTest/covcompare/pkg/core"
	"github.com/LambdaTest/covcompare/pkg/errs"
	"github.com/LambdaTest/covcompare/pkg/lumber"
	"github.com/cenkalti/backoff/v4"
)

type requests struct {
	logger  lumber.Logger
	client  http.Client
	backoff backoff.BackOff
}

// New returns a core.Requests that gives up after timeout per attempt and
// retries according to policy. Pass &backoff.StopBackOff{} for a single attempt.
func New(logger lumber.Logger, timeout time.Duration, policy backoff.BackOff) core.Requests {
	return &requests{
		logger:  logger,
		client:  http.Client{Timeout: timeout},
		backoff: policy,
	}
}

// MakeAPIRequest sends the request and returns the response body and status.
// Transport failures and 5xx responses are retried by the policy; any other
// status is returned to the caller to interpret.
func (r *requests) MakeAPIRequest(ctx context.Context,
	httpMethod, endpoint string,
	body []byte,
	query map[string]interface{},
	headers map[string]string) (rawBody []byte, statusCode int, err error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		r.logger.Errorf("error while parsing endpoint %s, %v", endpoint, err)
		return nil, 0, err
	}
	if len(query) > 0 {
		q := u.Query()
		for key, val := range query {
			q.Set(key, fmt.Sprint(val))
		}
		u.RawQuery = q.Encode()
	}

	operation := func() error {
		rawBody, statusCode, err = r.do(ctx, httpMethod, u.String(), body, headers)
		if err != nil {
			return err
		}
		if statusCode >= http.StatusInternalServerError {
			r.logger.Warnf("%s %s returned status %d", httpMethod, u.Path, statusCode)
			return errs.ErrAPIStatus(u.Path, statusCode)
		}
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(r.backoff, ctx)); err != nil {
		return rawBody, statusCode, err
	}
	return rawBody, statusCode, nil
}

func (r *requests) do(ctx context.Context, httpMethod, endpoint string, body []byte, headers map[string]string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, httpMethod, endpoint, bytes.NewBuffer(body))
	if err != nil {
		r.logger.Errorf("error while creating http request %v", err)
		return nil, 0, err
	}
	for key, val := range headers {
		req.Header.Set(key, val)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Errorf("error while sending http request %v", err)
		return nil, 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		r.logger.Errorf("error while reading http response body %v", err)
		return nil, resp.StatusCode, err
	}
	return respBody, resp.StatusCode, nil
}
