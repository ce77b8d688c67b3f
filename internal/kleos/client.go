// Package kleos is the HTTP client for the Kleos case-management API.
// Every call authenticates with a bearer token from the injected token
// provider and is bounded by the caller's context plus the client timeout.
package kleos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"

	"kleos-intake/internal/auth"
	"kleos-intake/internal/metrics"
	"kleos-intake/internal/models"

	"go.uber.org/zap"
)

// APIError is a non-2xx response from the Kleos API. Body carries the raw
// upstream payload so callers can surface or record it verbatim.
type APIError struct {
	Endpoint   string
	StatusCode int
	Body       json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("kleos %s returned %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Client calls the Kleos REST API.
type Client struct {
	baseURL string
	tokens  auth.TokenProvider
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a Kleos API client for the given base URL.
func NewClient(baseURL string, tokens auth.TokenProvider, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    httpClient,
		logger:  logger,
	}
}

// CaseTypes lists the configured case types.
func (c *Client) CaseTypes(ctx context.Context) ([]json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, "/caseTypes", "", nil, "caseTypes")
	if err != nil {
		return nil, err
	}
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode caseTypes response: %w", err)
	}
	items, _ := UnwrapItems(env.Result)
	return items, nil
}

// Contacts lists existing contacts.
func (c *Client) Contacts(ctx context.Context) ([]models.Contact, error) {
	body, err := c.do(ctx, http.MethodGet, "/contacts", "", nil, "contacts")
	if err != nil {
		return nil, err
	}
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode contacts response: %w", err)
	}
	items, _ := UnwrapItems(env.Result)
	contacts := make([]models.Contact, 0, len(items))
	for _, item := range items {
		var contact models.Contact
		if err := json.Unmarshal(item, &contact); err != nil {
			c.logger.Warn("Skipping undecodable contact", zap.Error(err))
			continue
		}
		contacts = append(contacts, contact)
	}
	return contacts, nil
}

// CreateContact upserts a contact and returns the identity id from the bare
// result value. A zero id with a nil error means the call succeeded
// transport-wise but yielded no usable identity.
func (c *Client) CreateContact(ctx context.Context, payload models.ContactPayload) (int64, json.RawMessage, error) {
	body, err := c.doJSON(ctx, http.MethodPut, "/contacts", "application/json-patch+json", payload, "contacts")
	if err != nil {
		return 0, nil, err
	}
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return 0, body, nil
	}
	return decodeID(env.Result), body, nil
}

// CreateCase creates a case and returns its id from result.id, falling back
// to a bare result value.
func (c *Client) CreateCase(ctx context.Context, payload models.CasePayload) (int64, json.RawMessage, error) {
	body, err := c.doJSON(ctx, http.MethodPut, "/cases", "application/json", payload, "cases")
	if err != nil {
		return 0, nil, err
	}
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return 0, body, nil
	}
	var wrapped struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(env.Result, &wrapped); err == nil && wrapped.ID != 0 {
		return wrapped.ID, body, nil
	}
	return decodeID(env.Result), body, nil
}

// DocumentFolders returns the folder tree of a case.
func (c *Client) DocumentFolders(ctx context.Context, caseID int64, maxLevels int) ([]models.Folder, error) {
	path := fmt.Sprintf("/documentfolders/%d?maxLevels=%d", caseID, maxLevels)
	body, err := c.do(ctx, http.MethodGet, path, "", nil, "documentfolders")
	if err != nil {
		return nil, err
	}
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode documentfolders response: %w", err)
	}
	var folders []models.Folder
	if len(env.Result) > 0 && string(env.Result) != "null" {
		if err := json.Unmarshal(env.Result, &folders); err != nil {
			return nil, fmt.Errorf("decode folder tree: %w", err)
		}
	}
	return folders, nil
}

// CreateDocumentFolder creates a folder for a case. A nil parent creates a
// top-level folder.
func (c *Client) CreateDocumentFolder(ctx context.Context, caseID int64, name string, parentID *int64) (int64, error) {
	payload := models.FolderPayload{CaseID: caseID, Name: name, ParentID: parentID}
	body, err := c.doJSON(ctx, http.MethodPost, "/documentfolders", "application/json", payload, "documentfolders")
	if err != nil {
		return 0, err
	}
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return 0, fmt.Errorf("decode folder creation response: %w", err)
	}
	var wrapped struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(env.Result, &wrapped); err == nil && wrapped.ID != 0 {
		return wrapped.ID, nil
	}
	if id := decodeID(env.Result); id != 0 {
		return id, nil
	}
	return 0, fmt.Errorf("folder creation returned no id")
}

// Documents lists the documents of a case folder.
func (c *Client) Documents(ctx context.Context, caseID, folderID int64) ([]json.RawMessage, error) {
	q := url.Values{}
	q.Set("caseId", strconv.FormatInt(caseID, 10))
	q.Set("folderId", strconv.FormatInt(folderID, 10))
	body, err := c.do(ctx, http.MethodGet, "/documents?"+q.Encode(), "", nil, "documents")
	if err != nil {
		return nil, err
	}
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode documents response: %w", err)
	}
	items, _ := UnwrapItems(env.Result)
	return items, nil
}

// UploadDocument sends one document as multipart form data: the metadata
// JSON under "document" (no filename on that part) and the raw bytes under
// "file" with the sanitized filename and original content type.
func (c *Client) UploadDocument(ctx context.Context, doc models.DocumentPayload, filename, contentType string, content []byte) (json.RawMessage, error) {
	meta, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	metaPart, err := form.CreateFormField("document")
	if err != nil {
		return nil, err
	}
	if _, err := metaPart.Write(meta); err != nil {
		return nil, err
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(filename)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)
	filePart, err := form.CreatePart(header)
	if err != nil {
		return nil, err
	}
	if _, err := filePart.Write(content); err != nil {
		return nil, err
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	return c.do(ctx, http.MethodPost, "/documents/upload", form.FormDataContentType(), &buf, "documents/upload")
}

func (c *Client) doJSON(ctx context.Context, method, path, contentType string, payload interface{}, endpoint string) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, method, path, contentType, bytes.NewReader(body), endpoint)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, endpoint string) (json.RawMessage, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveUpstream(endpoint, 0)
		c.logger.Error("Kleos API call failed",
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()
	metrics.ObserveUpstream(endpoint, resp.StatusCode)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("Kleos API call rejected",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody))
		return nil, &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: respBody}
	}

	return respBody, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// decodeID reads an id that may arrive as a JSON number or numeric string.
func decodeID(raw json.RawMessage) int64 {
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
	}
	return 0
}
