package github

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/LambdaTest/covcompare/pkg/core"
	"github.com/LambdaTest/covcompare/pkg/global"
	"github.com/tidwall/gjson"
)

type pullRequest struct {
	client *Client
	number int
}

// ListComments returns the last comments of the pull request, oldest first.
func (p *pullRequest) ListComments(ctx context.Context) ([]core.Comment, error) {
	c := p.client
	data, err := c.graphQL(ctx, getIssuesQuery, map[string]interface{}{
		"owner":    c.owner,
		"repo":     c.repo,
		"issue_id": p.number,
	})
	if err != nil {
		return nil, err
	}

	nodes := data.Get("repository.pullRequest.comments.nodes").Array()
	comments := make([]core.Comment, 0, len(nodes))
	for _, node := range nodes {
		comments = append(comments, core.Comment{
			ID:          node.Get("id").String(),
			Body:        node.Get("body").String(),
			IsMinimized: node.Get("isMinimized").Bool(),
		})
	}
	if total := data.Get("repository.pullRequest.comments.totalCount").Int(); total > global.CommentPageSize {
		c.logger.Debugf("pull request #%d has %d comments, only the last %d are inspected", p.number, total, global.CommentPageSize)
	}
	return comments, nil
}

// HideComment minimizes the comment as outdated.
func (p *pullRequest) HideComment(ctx context.Context, id string) error {
	c := p.client
	data, err := c.graphQL(ctx, hideCommentMutation, map[string]interface{}{
		"id":         id,
		"classifier": global.MinimizeClassifier,
	})
	if err != nil {
		return err
	}
	if !data.Get("minimizeComment.minimizedComment.isMinimized").Bool() {
		c.logger.Warnf("comment %s was not reported as minimized", id)
	}
	return nil
}

// PostComment adds body as a new comment on the pull request.
func (p *pullRequest) PostComment(ctx context.Context, body string) error {
	c := p.client
	payload, err := json.Marshal(map[string]string{"body": body})
	if err != nil {
		return err
	}
	raw, _, err := c.rest(ctx, http.MethodPost, c.repoEndpoint("issues", strconv.Itoa(p.number), "comments"),
		global.GitHubJSONMIMEType, payload, http.StatusCreated)
	if err != nil {
		return err
	}
	c.logger.Debugf("posted comment %s", gjson.GetBytes(raw, "html_url").String())
	return nil
}
