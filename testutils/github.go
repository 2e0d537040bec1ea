package testutils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/LambdaTest/covcompare/pkg/core"
	"github.com/LambdaTest/covcompare/pkg/global"
	"github.com/LambdaTest/covcompare/pkg/lumber"
	"github.com/gin-gonic/gin"
)

// ReleaseAsset is a file attached to the fake latest release.
type ReleaseAsset struct {
	ID      int64
	Name    string
	Content []byte
}

// FakeGitHub serves the subset of the GitHub API used by covcompare.
type FakeGitHub struct {
	Server *httptest.Server

	mu          sync.Mutex
	hasRelease  bool
	assets      []ReleaseAsset
	comments    []core.Comment
	posted      []string
	hidden      []string
	requests    []string
	failGraphQL bool
}

type graphQLBody struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// NewFakeGitHub starts a fake API expecting Token. Close it with Close.
func NewFakeGitHub(logger lumber.Logger) *FakeGitHub {
	gin.SetMode(gin.TestMode)
	f := &FakeGitHub{}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(lumber.NewWriter(logger)), gin.Recovery(), f.record)

	repo := router.Group("/repos/:owner/:repo", f.requireAuth("token"), f.requireRepo)
	repo.GET("/releases/latest", f.latestRelease)
	repo.GET("/releases/assets/:id", f.releaseAsset)
	repo.POST("/issues/:number/comments", f.createComment)
	router.POST("/graphql", f.requireAuth("bearer"), f.graphQL)

	f.Server = httptest.NewServer(router)
	return f
}

// Close shuts the server down.
func (f *FakeGitHub) Close() {
	f.Server.Close()
}

// APIURL is the REST base url of the fake.
func (f *FakeGitHub) APIURL() string {
	return f.Server.URL
}

// GraphQLURL is the GraphQL endpoint of the fake.
func (f *FakeGitHub) GraphQLURL() string {
	return f.Server.URL + "/graphql"
}

// AddRelease publishes a latest release carrying assets.
func (f *FakeGitHub) AddRelease(assets ...ReleaseAsset) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hasRelease = true
	f.assets = append(f.assets, assets...)
}

// AddComments seeds existing pull request comments.
func (f *FakeGitHub) AddComments(comments ...core.Comment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.comments = append(f.comments, comments...)
}

// FailGraphQL makes every GraphQL call answer with an error payload.
func (f *FakeGitHub) FailGraphQL() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failGraphQL = true
}

// Posted returns the bodies of the comments created so far.
func (f *FakeGitHub) Posted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.posted...)
}

// Hidden returns the ids of the comments minimized so far.
func (f *FakeGitHub) Hidden() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.hidden...)
}

// Requests returns "METHOD path" for every request received.
func (f *FakeGitHub) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *FakeGitHub) record(c *gin.Context) {
	f.mu.Lock()
	f.requests = append(f.requests, c.Request.Method+" "+c.Request.URL.Path)
	f.mu.Unlock()
	c.Next()
}

func (f *FakeGitHub) requireAuth(scheme string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != fmt.Sprintf("%s %s", scheme, Token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Bad credentials"})
			return
		}
		c.Next()
	}
}

func (f *FakeGitHub) requireRepo(c *gin.Context) {
	if c.Param("owner") != Owner || c.Param("repo") != Repo {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Not Found"})
		return
	}
	c.Next()
}

func (f *FakeGitHub) latestRelease(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.hasRelease {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
		return
	}
	assets := make([]gin.H, 0, len(f.assets))
	for _, a := range f.assets {
		assets = append(assets, gin.H{"id": a.ID, "name": a.Name, "size": len(a.Content)})
	}
	c.JSON(http.StatusOK, gin.H{"id": 1, "tag_name": "v1.0.0", "assets": assets})
}

func (f *FakeGitHub) releaseAsset(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.assets {
		if a.ID != id {
			continue
		}
		if c.GetHeader("Accept") != global.OctetStreamMIMEType {
			c.JSON(http.StatusOK, gin.H{"id": a.ID, "name": a.Name})
			return
		}
		c.Data(http.StatusOK, global.OctetStreamMIMEType, a.Content)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
}

func (f *FakeGitHub) createComment(c *gin.Context) {
	if c.Param("number") != strconv.Itoa(PRNumber) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
		return
	}
	var body struct {
		Body string `json:"body"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posted = append(f.posted, body.Body)
	id := fmt.Sprintf("IC_%d", len(f.comments)+1)
	f.comments = append(f.comments, core.Comment{ID: id, Body: body.Body})
	c.JSON(http.StatusCreated, gin.H{"node_id": id, "body": body.Body, "html_url": "https://github.com/" + Owner + "/" + Repo + "/pull/9#" + id})
}

func (f *FakeGitHub) graphQL(c *gin.Context) {
	var body graphQLBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGraphQL {
		c.JSON(http.StatusOK, gin.H{"data": nil, "errors": []gin.H{{"message": "Something went wrong"}}})
		return
	}

	switch {
	case strings.Contains(body.Query, "query getIssues"):
		nodes := make([]gin.H, 0, len(f.comments))
		for _, cm := range f.comments {
			nodes = append(nodes, gin.H{"id": cm.ID, "body": cm.Body, "isMinimized": cm.IsMinimized})
		}
		c.JSON(http.StatusOK, gin.H{"data": gin.H{"repository": gin.H{
			"id": "R_1",
			"pullRequest": gin.H{"comments": gin.H{
				"pageInfo":   gin.H{"startCursor": nil, "hasNextPage": false},
				"totalCount": len(nodes),
				"nodes":      nodes,
			}},
		}}})
	case strings.Contains(body.Query, "minimizeComment"):
		id, _ := body.Variables["id"].(string)
		classifier, _ := body.Variables["classifier"].(string)
		for i := range f.comments {
			if f.comments[i].ID == id {
				f.comments[i].IsMinimized = true
				f.hidden = append(f.hidden, id)
				c.JSON(http.StatusOK, gin.H{"data": gin.H{"minimizeComment": gin.H{"minimizedComment": gin.H{
					"isMinimized": true, "minimizedReason": strings.ToLower(classifier),
				}}}})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"data": nil, "errors": []gin.H{{"message": "Could not resolve to a node with the global id of '" + id + "'"}}})
	default:
		c.JSON(http.StatusOK, gin.H{"errors": []gin.H{{"message": "unknown operation"}}})
	}
}
