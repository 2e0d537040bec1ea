// Package azure reads the baseline coverage summary from Azure blob storage.
package azure

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/LambdaTest/covcompare/config"
	"github.com/LambdaTest/covcompare/pkg/errs"
	"github.com/LambdaTest/covcompare/pkg/fileutils"
	"github.com/LambdaTest/covcompare/pkg/lumber"
)

// Store represents the azure storage
type Store struct {
	containerName string
	blobPath      string
	client        *azblob.Client
	logger        lumber.Logger
}

// NewAzureBlobEnv returns a Store that downloads cfg.BlobPath from cfg.ContainerName.
func NewAzureBlobEnv(cfg config.Azure, logger lumber.Logger) (*Store, error) {
	if len(cfg.StorageAccountName) == 0 || len(cfg.StorageAccessKey) == 0 {
		return nil, errors.New("either the storage account or storage access key environment variable is not set")
	}
	credential, err := azblob.NewSharedKeyCredential(cfg.StorageAccountName, cfg.StorageAccessKey)
	if err != nil {
		return nil, err
	}

	serviceURL := cfg.ServiceURL
	if serviceURL == "" {
		serviceURL = fmt.Sprintf("https://%s.blob.core.windows.net/", cfg.StorageAccountName)
	}
	client, err := azblob.NewClientWithSharedKeyCredential(serviceURL, credential, &azblob.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			// one attempt per download
			Retry: policy.RetryOptions{MaxRetries: -1},
		},
	})
	if err != nil {
		return nil, err
	}

	return &Store{
		containerName: cfg.ContainerName,
		blobPath:      cfg.BlobPath,
		client:        client,
		logger:        logger,
	}, nil
}

// Fetch downloads the baseline blob. A missing blob or container means there
// is no previous coverage.
func (s *Store) Fetch(ctx context.Context) ([]byte, error) {
	s.logger.Debugf("downloading blob %s from container %s", s.blobPath, s.containerName)
	resp, err := s.client.DownloadStream(ctx, s.containerName, s.blobPath, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
			s.logger.Warnf("blob %s/%s does not exist", s.containerName, s.blobPath)
			return nil, errs.ErrNoPrevCoverage
		}
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	out, err := fileutils.Decompress(s.blobPath, data)
	if err != nil {
		return nil, fmt.Errorf("blob %s: %w", s.blobPath, err)
	}
	return out, nil
}
