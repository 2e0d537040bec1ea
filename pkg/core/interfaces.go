package core

import "context"

// CoverageSource yields a raw coverage summary document.
type CoverageSource interface {
	// Fetch returns the summary JSON. Sources backed by a remote artifact
	// return errs.ErrNoPrevCoverage when the artifact does not exist.
	Fetch(ctx context.Context) ([]byte, error)
}

// CommentSink manages the report comments on a pull request.
type CommentSink interface {
	// ListComments returns the most recent comments of the pull request.
	ListComments(ctx context.Context) ([]Comment, error)
	// HideComment minimizes the comment with the given id.
	HideComment(ctx context.Context, id string) error
	// PostComment adds a new comment with the given body.
	PostComment(ctx context.Context, body string) error
}

// Requests is a thin http layer shared by the API clients
type Requests interface {
	// MakeAPIRequest sends the request and returns the raw body and the status code.
	MakeAPIRequest(ctx context.Context, httpMethod, endpoint string, body []byte,
		query map[string]interface{}, headers map[string]string) (rawBody []byte, statusCode int, err error)
}
