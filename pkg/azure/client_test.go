package azure

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/LambdaTest/covcompare/config"
	"github.com/LambdaTest/covcompare/pkg/errs"
	"github.com/LambdaTest/covcompare/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const summary = `{"total":{"statements":{"pct":50}}}`

func fakeBlobService(t *testing.T, calls *int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		assert.Contains(t, r.Header.Get("Authorization"), "SharedKey account:")
		switch r.URL.Path {
		case "/coverage/main/coverage-summary.json":
			w.Header().Set("Content-Length", strconv.Itoa(len(summary)))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(summary))
		case "/missing/main/coverage-summary.json":
			w.Header().Set("x-ms-error-code", "ContainerNotFound")
			w.WriteHeader(http.StatusNotFound)
		case "/broken/main/coverage-summary.json":
			w.Header().Set("x-ms-error-code", "InternalError")
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.Header().Set("x-ms-error-code", "BlobNotFound")
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func azureConfig(serviceURL, container, blob string) config.Azure {
	return config.Azure{
		ContainerName:      container,
		StorageAccountName: "account",
		StorageAccessKey:   base64.StdEncoding.EncodeToString([]byte("secret")),
		BlobPath:           blob,
		ServiceURL:         serviceURL,
	}
}

func TestStore_Fetch(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)

	var calls int32
	server := fakeBlobService(t, &calls)

	tests := []struct {
		name      string
		container string
		blob      string
		want      string
		wantErr   error
	}{
		{"downloads the blob", "coverage", "main/coverage-summary.json", summary, nil},
		{"missing blob", "coverage", "main/other.json", "", errs.ErrNoPrevCoverage},
		{"missing container", "missing", "main/coverage-summary.json", "", errs.ErrNoPrevCoverage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewAzureBlobEnv(azureConfig(server.URL, tt.container, tt.blob), logger)
			require.NoError(t, err)

			got, err := store.Fetch(context.Background())
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "unexpected error %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestStore_FetchDoesNotRetry(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)

	var calls int32
	server := fakeBlobService(t, &calls)

	store, err := NewAzureBlobEnv(azureConfig(server.URL, "broken", "main/coverage-summary.json"), logger)
	require.NoError(t, err)

	_, err = store.Fetch(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, errs.ErrNoPrevCoverage))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestNewAzureBlobEnv_MissingCredentials(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)

	_, err = NewAzureBlobEnv(config.Azure{ContainerName: "coverage"}, logger)
	assert.Error(t, err)
}
