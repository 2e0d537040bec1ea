package github

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/LambdaTest/covcompare/pkg/errs"
	"github.com/LambdaTest/covcompare/pkg/fileutils"
	"github.com/LambdaTest/covcompare/pkg/global"
	"github.com/tidwall/gjson"
)

type releaseAsset struct {
	client *Client
	name   string
}

// Fetch downloads the asset from the latest release. A repository without
// releases, or a release without the asset, has no previous coverage.
func (a *releaseAsset) Fetch(ctx context.Context) ([]byte, error) {
	c := a.client
	raw, status, err := c.rest(ctx, http.MethodGet, c.repoEndpoint("releases", "latest"),
		global.GitHubJSONMIMEType, nil, http.StatusOK, http.StatusNotFound)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		c.logger.Warnf("repository %s/%s has no published release", c.owner, c.repo)
		return nil, errs.ErrNoPrevCoverage
	}

	assetID, found := findAsset(raw, a.name)
	if !found {
		c.logger.Warnf("latest release %s has no asset named %s", gjson.GetBytes(raw, "tag_name").String(), a.name)
		return nil, errs.ErrNoPrevCoverage
	}

	c.logger.Debugf("downloading release asset %s (%d)", a.name, assetID)
	data, status, err := c.rest(ctx, http.MethodGet, c.repoEndpoint("releases", "assets", strconv.FormatInt(assetID, 10)),
		global.OctetStreamMIMEType, nil, http.StatusOK, http.StatusNotFound)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, errs.ErrNoPrevCoverage
	}

	out, err := fileutils.Decompress(a.name, data)
	if err != nil {
		return nil, fmt.Errorf("release asset %s: %w", a.name, err)
	}
	return out, nil
}

// findAsset returns the id of the first asset called name.
func findAsset(release []byte, name string) (id int64, found bool) {
	gjson.GetBytes(release, "assets").ForEach(func(_, asset gjson.Result) bool {
		if asset.Get("name").String() == name {
			id, found = asset.Get("id").Int(), true
			return false
		}
		return true
	})
	return id, found
}
