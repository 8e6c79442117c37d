package services

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/enecpp/financial-news-analyzer/config"
	"github.com/enecpp/financial-news-analyzer/internal/github"
	"github.com/enecpp/financial-news-analyzer/internal/sheets"
	csvstore "github.com/enecpp/financial-news-analyzer/store/csv"
	"github.com/enecpp/financial-news-analyzer/types"
	"github.com/resend/resend-go/v2"
)

// Backend names reported in outcomes and metrics.
const (
	BackendIssueTracker = "issue-tracker"
	BackendSpreadsheet  = "spreadsheet"
	BackendEmail        = "email"
	BackendCSV          = "csv"
)

// FeedbackBackend is one destination in the storage chain. Save must return
// an error for any non-success condition; the pipeline treats all errors as
// "this backend failed" and moves on.
type FeedbackBackend interface {
	Name() string
	IsConfigured() bool
	Save(ctx context.Context, record *types.Feedback) error
}

// GitHubBackend records feedback as labelled GitHub issues.
type GitHubBackend struct {
	cfg    *config.GitHubConfig
	client *github.Client
}

// NewGitHubBackend creates the issue-tracker backend. The client is built
// even when unconfigured; IsConfigured gates whether it is ever used.
func NewGitHubBackend(cfg *config.GitHubConfig, opts ...github.ClientOption) *GitHubBackend {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	clientOpts := []github.ClientOption{
		github.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if cfg.APIBaseURL != "" {
		clientOpts = append(clientOpts, github.WithBaseURL(cfg.APIBaseURL))
	}
	clientOpts = append(clientOpts, opts...)

	return &GitHubBackend{
		cfg:    cfg,
		client: github.NewClient(cfg.Token, cfg.RepoOwner, cfg.RepoName, clientOpts...),
	}
}

func (b *GitHubBackend) Name() string { return BackendIssueTracker }

func (b *GitHubBackend) IsConfigured() bool { return b.cfg.IsConfigured() }

func (b *GitHubBackend) Save(ctx context.Context, record *types.Feedback) error {
	req := &github.IssueRequest{
		Title: fmt.Sprintf("Feedback from %s - %s", record.Name, record.Timestamp),
		Body: fmt.Sprintf(
			"## User Feedback\n\n**Name:** %s\n**Email:** %s\n**Timestamp:** %s\n\n---\n\n### Message\n%s\n",
			record.Name, record.Email, record.Timestamp, record.Message,
		),
		Labels: []string{"feedback", "contact-form"},
	}

	_, err := b.client.CreateIssue(ctx, req)
	return err
}

// TestConnection exposes the repository self-test for the health service.
func (b *GitHubBackend) TestConnection(ctx context.Context) error {
	return b.client.TestConnection(ctx)
}

// SheetsBackend appends feedback rows to a Google Sheets worksheet. The
// API client is built lazily on first use since construction performs
// credential validation that should count as a backend failure, not a
// startup failure.
type SheetsBackend struct {
	cfg *config.SheetsConfig

	mu     sync.Mutex
	client *sheets.Client
}

func NewSheetsBackend(cfg *config.SheetsConfig) *SheetsBackend {
	return &SheetsBackend{cfg: cfg}
}

func (b *SheetsBackend) Name() string { return BackendSpreadsheet }

func (b *SheetsBackend) IsConfigured() bool { return b.cfg.IsConfigured() }

func (b *SheetsBackend) Save(ctx context.Context, record *types.Feedback) error {
	client, err := b.getClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, backendTimeout(b.cfg.TimeoutSeconds, 30*time.Second))
	defer cancel()

	header := []interface{}{"Timestamp", "Name", "Email", "Message", "Status"}
	row := []interface{}{record.Timestamp, record.Name, record.Email, record.Message, "new"}
	return client.AppendRow(ctx, header, row)
}

func (b *SheetsBackend) getClient() (*sheets.Client, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.client != nil {
		return b.client, nil
	}

	key := &sheets.ServiceAccountKey{
		Type:         b.cfg.Type,
		ProjectID:    b.cfg.ProjectID,
		PrivateKeyID: b.cfg.PrivateKeyID,
		PrivateKey:   b.cfg.PrivateKey,
		ClientEmail:  b.cfg.ClientEmail,
		ClientID:     b.cfg.ClientID,
		AuthURI:      b.cfg.AuthURI,
		TokenURI:     b.cfg.TokenURI,
	}

	// The service must outlive the request that triggered its construction:
	// its oauth2 token source keeps the construction context for later
	// token refreshes.
	client, err := sheets.NewClient(context.Background(), key, b.cfg.SpreadsheetID, b.cfg.WorksheetName)
	if err != nil {
		return nil, err
	}

	b.client = client
	return client, nil
}

type emailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// EmailBackend forwards feedback to a configured inbox through the Resend
// API. Disabled by default.
type EmailBackend struct {
	cfg    *config.EmailConfig
	sender emailSender
}

func NewEmailBackend(cfg *config.EmailConfig) *EmailBackend {
	return &EmailBackend{
		cfg:    cfg,
		sender: resend.NewClient(cfg.ResendAPIKey).Emails,
	}
}

func (b *EmailBackend) Name() string { return BackendEmail }

func (b *EmailBackend) IsConfigured() bool { return b.cfg.IsConfigured() }

func (b *EmailBackend) Save(ctx context.Context, record *types.Feedback) error {
	ctx, cancel := context.WithTimeout(ctx, backendTimeout(b.cfg.TimeoutSeconds, 10*time.Second))
	defer cancel()

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", b.cfg.FromName, b.cfg.FromAddress),
		To:      []string{b.cfg.ToAddress},
		Subject: fmt.Sprintf("Feedback from %s - %s", record.Name, record.Timestamp),
		Text: fmt.Sprintf("Name: %s\nEmail: %s\nTimestamp: %s\n\n%s\n",
			record.Name, record.Email, record.Timestamp, record.Message),
	}

	_, err := b.sender.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// backendTimeout converts a configured timeout in seconds to a duration,
// falling back when unset. Every remote backend call is bounded so a stuck
// backend cannot hang a submission.
func backendTimeout(seconds int, fallback time.Duration) time.Duration {
	if seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}

// CSVBackend is the backend of last resort, wrapping the local file store.
type CSVBackend struct {
	store *csvstore.Store
}

func NewCSVBackend(store *csvstore.Store) *CSVBackend {
	return &CSVBackend{store: store}
}

func (b *CSVBackend) Name() string { return BackendCSV }

// IsConfigured always returns true: the file backend needs no credentials.
func (b *CSVBackend) IsConfigured() bool { return true }

func (b *CSVBackend) Save(_ context.Context, record *types.Feedback) error {
	return b.store.Append(record)
}
