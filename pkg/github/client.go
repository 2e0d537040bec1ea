// Package github talks to the GitHub REST and GraphQL APIs: it downloads the
// baseline summary from the latest release and manages pull request comments.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/LambdaTest/covcompare/config"
	"github.com/LambdaTest/covcompare/pkg/core"
	"github.com/LambdaTest/covcompare/pkg/errs"
	"github.com/LambdaTest/covcompare/pkg/global"
	"github.com/LambdaTest/covcompare/pkg/lumber"
	"github.com/tidwall/gjson"
)

// Client is a GitHub API client scoped to one repository.
type Client struct {
	logger     lumber.Logger
	requests   core.Requests
	apiURL     string
	graphQLURL string
	token      string
	owner      string
	repo       string
}

// New returns a Client for the repository named in cfg.
func New(cfg *config.ComparerConfig, logger lumber.Logger, requests core.Requests) *Client {
	return &Client{
		logger:     logger,
		requests:   requests,
		apiURL:     strings.TrimSuffix(cfg.GitHubAPIURL, "/"),
		graphQLURL: cfg.GitHubGraphQLURL,
		token:      cfg.Token,
		owner:      cfg.Owner,
		repo:       cfg.Repo,
	}
}

// LatestReleaseAsset returns a source reading the asset called name from the
// latest release of the repository.
func (c *Client) LatestReleaseAsset(name string) core.CoverageSource {
	return &releaseAsset{client: c, name: name}
}

// PullRequest returns a sink for the comments of pull request number.
func (c *Client) PullRequest(number int) core.CommentSink {
	return &pullRequest{client: c, number: number}
}

func (c *Client) repoEndpoint(parts ...string) string {
	escaped := make([]string, 0, len(parts))
	for _, p := range parts {
		escaped = append(escaped, url.PathEscape(p))
	}
	return fmt.Sprintf("%s/repos/%s/%s/%s", c.apiURL, url.PathEscape(c.owner), url.PathEscape(c.repo), strings.Join(escaped, "/"))
}

func (c *Client) restHeaders(accept string) map[string]string {
	return map[string]string{
		"Accept":               accept,
		"Authorization":        fmt.Sprintf("token %s", c.token),
		"X-GitHub-Api-Version": global.GitHubAPIVersion,
	}
}

// rest performs a REST call and fails on any status outside of want.
func (c *Client) rest(ctx context.Context, method, endpoint, accept string, body []byte, want ...int) ([]byte, int, error) {
	headers := c.restHeaders(accept)
	if body != nil {
		headers["Content-Type"] = "application/json"
	}
	raw, status, err := c.requests.MakeAPIRequest(ctx, method, endpoint, body, nil, headers)
	if err != nil {
		return nil, status, err
	}
	for _, w := range want {
		if status == w {
			return raw, status, nil
		}
	}
	c.logger.Debugf("%s %s: %s", method, endpoint, string(raw))
	return raw, status, errs.ErrAPIStatus(endpoint, status)
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// graphQL runs query and returns the data member of the response.
func (c *Client) graphQL(ctx context.Context, query string, variables map[string]interface{}) (gjson.Result, error) {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return gjson.Result{}, err
	}
	headers := map[string]string{
		"Authorization": fmt.Sprintf("bearer %s", c.token),
		"Content-Type":  "application/json",
	}
	raw, status, err := c.requests.MakeAPIRequest(ctx, http.MethodPost, c.graphQLURL, body, nil, headers)
	if err != nil {
		return gjson.Result{}, err
	}
	if status != http.StatusOK {
		return gjson.Result{}, errs.ErrAPIStatus(c.graphQLURL, status)
	}
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, errs.New("graphql response is not valid json")
	}
	resp := gjson.ParseBytes(raw)
	if messages := resp.Get("errors.#.message"); len(messages.Array()) > 0 {
		msgs := make([]string, 0, len(messages.Array()))
		for _, m := range messages.Array() {
			msgs = append(msgs, m.String())
		}
		return gjson.Result{}, errs.New(fmt.Sprintf("graphql: %s", strings.Join(msgs, "; ")))
	}
	return resp.Get("data"), nil
}
