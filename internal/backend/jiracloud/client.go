// Package jiracloud implements the service.Service interface using the Jira
// Cloud REST API.
package jiracloud

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	jira "github.com/andygrunwald/go-jira"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"

	"pulljira/internal/config"
	pullerrors "pulljira/internal/errors"
	"pulljira/internal/log"
	"pulljira/internal/service"
)

const (
	// SearchPath is the issue search endpoint, relative to the site URL.
	SearchPath = "rest/api/3/search"

	// siteURLFormat builds the site URL from the organization name.
	siteURLFormat = "https://%s.atlassian.net"

	// tokenType makes the token source emit "Authorization: Basic <token>".
	tokenType = "Basic"
)

// searchResult is the relevant subset of the search response.
type searchResult struct {
	StartAt    int           `json:"startAt"`
	MaxResults int           `json:"maxResults"`
	Total      int           `json:"total"`
	Issues     []searchIssue `json:"issues"`
}

type searchIssue struct {
	Key    string       `json:"key"`
	Fields searchFields `json:"fields"`
}

type searchFields struct {
	Summary string `json:"summary"`
}

// Client implements service.Service using Jira Cloud.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a Jira Cloud client that talks to https://{org}.atlassian.net.
func New() *Client {
	return &Client{}
}

// NewWithHTTPClient creates a client that sends every request to baseURL
// through httpClient (for testing).
func NewWithHTTPClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{httpClient: httpClient, baseURL: baseURL}
}

// SiteURL returns the Jira Cloud site of an organization.
func SiteURL(org string) string {
	return fmt.Sprintf(siteURLFormat, org)
}

// BrowseURL returns the browser link of an issue.
func BrowseURL(org, key string) string {
	return SiteURL(org) + "/browse/" + key
}

// TasksFromIssues maps issues to tasks, keeping their order.
func TasksFromIssues(org string, issues []service.Issue) []service.Task {
	tasks := make([]service.Task, 0, len(issues))
	for _, issue := range issues {
		tasks = append(tasks, service.Task{
			Title: issue.Summary,
			URL:   BrowseURL(org, issue.Key),
		})
	}
	return tasks
}

// FetchTasks implements service.Service.
func (c *Client) FetchTasks(ctx context.Context, settings config.Settings) ([]service.Task, error) {
	issues, err := c.Search(ctx, settings)
	if err != nil {
		return nil, err
	}
	return TasksFromIssues(settings.Organization, issues), nil
}

// Search runs the configured JQL query and returns the first page of issues.
func (c *Client) Search(ctx context.Context, settings config.Settings) ([]service.Issue, error) {
	baseURL := c.baseURL
	if baseURL == "" {
		baseURL = SiteURL(settings.Organization)
	}

	client, err := jira.NewClient(c.authorizedClient(ctx, settings.Token), baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid jira site %q", baseURL)
	}

	query := url.Values{"jql": []string{settings.Query}}
	req, err := client.NewRequestWithContext(ctx, http.MethodGet, SearchPath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create jira request")
	}
	req.Header.Set("Accept", "application/json")

	fields := map[string]interface{}{"org": settings.Organization}
	log.Debug(ctx, fields, "searching jira: %s", req.URL.Redacted())

	var result searchResult
	resp, err := client.Do(req, &result)
	if err != nil {
		return nil, wrapError(resp, err)
	}

	if result.Total > len(result.Issues) {
		log.Warn(ctx, fields, "query matched %d issues, only the first %d are pulled", result.Total, len(result.Issues))
	}
	log.Debug(ctx, fields, "jira issues fetched: %d", len(result.Issues))

	issues := make([]service.Issue, 0, len(result.Issues))
	for _, i := range result.Issues {
		issues = append(issues, service.Issue{Key: i.Key, Summary: i.Fields.Summary})
	}
	return issues, nil
}

// authorizedClient returns an HTTP client that sets the pre-encoded
// credential as a Basic Authorization header on every request.
func (c *Client) authorizedClient(ctx context.Context, token string) *http.Client {
	if c.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: tokenType})
	return oauth2.NewClient(ctx, src)
}

// wrapError classifies a failed request. A missing response means the
// request never completed; a response means the tracker rejected it or its
// body could not be decoded.
func wrapError(resp *jira.Response, err error) error {
	if resp == nil || resp.Response == nil {
		return pullerrors.NewTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return pullerrors.NewHTTPError(resp.StatusCode, errorDetail(resp))
	}
	return errors.Wrap(err, "failed to parse jira response")
}

// errorDetail extracts the messages of a Jira error body.
func errorDetail(resp *jira.Response) string {
	var jerr jira.Error
	if err := json.NewDecoder(resp.Body).Decode(&jerr); err != nil {
		return ""
	}

	msgs := append([]string(nil), jerr.ErrorMessages...)
	keys := make([]string, 0, len(jerr.Errors))
	for k := range jerr.Errors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		msgs = append(msgs, k+": "+jerr.Errors[k])
	}
	return strings.Join(msgs, "; ")
}
