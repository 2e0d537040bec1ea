// Package mocks holds testify mocks of the core interfaces.
package mocks

import (
	"context"

	"github.com/LambdaTest/covcompare/pkg/core"
	"github.com/stretchr/testify/mock"
)

// CoverageSource is a mock implementation of core.CoverageSource.
type CoverageSource struct {
	mock.Mock
}

var _ core.CoverageSource = &CoverageSource{} // Compile-time check

// Fetch implements the CoverageSource interface.
func (m *CoverageSource) Fetch(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

// CommentSink is a mock implementation of core.CommentSink.
type CommentSink struct {
	mock.Mock
}

var _ core.CommentSink = &CommentSink{} // Compile-time check

// ListComments implements the CommentSink interface.
func (m *CommentSink) ListComments(ctx context.Context) ([]core.Comment, error) {
	args := m.Called(ctx)
	comments, _ := args.Get(0).([]core.Comment)
	return comments, args.Error(1)
}

// HideComment implements the CommentSink interface.
func (m *CommentSink) HideComment(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// PostComment implements the CommentSink interface.
func (m *CommentSink) PostComment(ctx context.Context, body string) error {
	args := m.Called(ctx, body)
	return args.Error(0)
}

// Requests is a mock implementation of core.Requests.
type Requests struct {
	mock.Mock
}

var _ core.Requests = &Requests{} // Compile-time check

// MakeAPIRequest implements the Requests interface.
func (m *Requests) MakeAPIRequest(ctx context.Context, httpMethod, endpoint string, body []byte,
	query map[string]interface{}, headers map[string]string) ([]byte, int, error) {
	args := m.Called(ctx, httpMethod, endpoint, body, query, headers)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Int(1), args.Error(2)
}
