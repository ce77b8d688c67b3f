package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"kleos-intake/internal/handlers"
	"kleos-intake/internal/kleos"
	"kleos-intake/internal/models"
	"kleos-intake/pkg/errors"
	"kleos-intake/test/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleCountries(t *testing.T) {
	handler := handlers.NewDirectoryHandler(new(mocks.MockDirectory), zap.NewNop())

	req := httptest.NewRequest("GET", "/api/countries", nil)
	rr := httptest.NewRecorder()
	handler.HandleCountries(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var countries []models.Country
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &countries))
	assert.NotEmpty(t, countries)

	found := false
	for _, c := range countries {
		if c.Code == "FR" {
			found = true
			assert.Equal(t, "France", c.Name)
		}
	}
	assert.True(t, found, "country table should contain FR")
}

func TestHandleCaseTypes(t *testing.T) {
	directory := new(mocks.MockDirectory)
	handler := handlers.NewDirectoryHandler(directory, zap.NewNop())

	directory.On("CaseTypes", mock.Anything).Return([]json.RawMessage{
		json.RawMessage(`{"id":59,"name":"Contentieux"}`),
	}, nil)

	req := httptest.NewRequest("GET", "/api/case-types", nil)
	rr := httptest.NewRecorder()
	handler.HandleCaseTypes(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":59,"name":"Contentieux"}]`, rr.Body.String())
	directory.AssertExpectations(t)
}

func TestHandleCaseTypesUpstreamFailure(t *testing.T) {
	directory := new(mocks.MockDirectory)
	handler := handlers.NewDirectoryHandler(directory, zap.NewNop())

	apiErr := &kleos.APIError{Endpoint: "caseTypes", StatusCode: 500, Body: json.RawMessage(`{"message":"down"}`)}
	directory.On("CaseTypes", mock.Anything).Return(nil, errors.Wrap(apiErr, errors.ErrUpstreamCall))

	req := httptest.NewRequest("GET", "/api/case-types", nil)
	rr := httptest.NewRecorder()
	handler.HandleCaseTypes(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "UPSTREAM_CALL_FAILED", body["error"])
	assert.Equal(t, map[string]interface{}{"message": "down"}, body["details"])
}

func TestHandleContactCountriesDeduplicates(t *testing.T) {
	directory := new(mocks.MockDirectory)
	handler := handlers.NewDirectoryHandler(directory, zap.NewNop())

	directory.On("Contacts", mock.Anything).Return([]models.Contact{
		{ID: 1, MainAddress: &models.Address{CountryCode: "FR", Country: "France"}},
		{ID: 2, MainAddress: &models.Address{CountryCode: "BE", Country: "Belgique"}},
		{ID: 3, MainAddress: &models.Address{CountryCode: "FR", Country: "France"}},
		{ID: 4},                                             // no address
		{ID: 5, MainAddress: &models.Address{Town: "Lyon"}}, // address without country
	}, nil)

	req := httptest.NewRequest("GET", "/api/contacts", nil)
	rr := httptest.NewRecorder()
	handler.HandleContactCountries(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"code":"FR","name":"France"},{"code":"BE","name":"Belgique"}]`, rr.Body.String())
}

func buildSubmitForm(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, form.WriteField(k, v))
	}
	for name, content := range files {
		part, err := form.CreateFormFile("documents", name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, form.Close())
	return &buf, form.FormDataContentType()
}

func TestHandleSubmit(t *testing.T) {
	submitter := new(mocks.MockSubmitter)
	handler := handlers.NewSubmitHandler(submitter, zap.NewNop())

	result := &models.SubmissionResult{
		Success: true,
		Contact: json.RawMessage(`{"result":42}`),
		Case:    json.RawMessage(`{"result":{"id":108}}`),
		Uploads: []models.UploadOutcome{
			{Name: "piece.pdf", Success: true, Info: json.RawMessage(`{"result":{"id":900}}`)},
		},
		DocumentsInFolder: []json.RawMessage{},
	}

	submitter.On("Submit", mock.Anything, mock.MatchedBy(func(in models.ContactInput) bool {
		return in.LastName == "Durand" && in.FirstName == "Marie" && in.CountryCode == "FR"
	}), mock.MatchedBy(func(files []models.AttachedFile) bool {
		return len(files) == 1 && files[0].Name == "piece.pdf"
	})).Return(result, nil)

	body, contentType := buildSubmitForm(t,
		map[string]string{"nom": "Durand", "prenom": "Marie", "country": "FR"},
		map[string][]byte{"piece.pdf": []byte("content")})

	req := httptest.NewRequest("POST", "/api/submit-case", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	handler.HandleSubmit(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.SubmissionResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Len(t, got.Uploads, 1)
	submitter.AssertExpectations(t)
}

func TestHandleSubmitMissingName(t *testing.T) {
	submitter := new(mocks.MockSubmitter)
	handler := handlers.NewSubmitHandler(submitter, zap.NewNop())

	body, contentType := buildSubmitForm(t, map[string]string{"prenom": "Marie"}, nil)

	req := httptest.NewRequest("POST", "/api/submit-case", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	handler.HandleSubmit(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	submitter.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleSubmitPipelineFailure(t *testing.T) {
	submitter := new(mocks.MockSubmitter)
	handler := handlers.NewSubmitHandler(submitter, zap.NewNop())

	apiErr := &kleos.APIError{Endpoint: "contacts", StatusCode: 500, Body: json.RawMessage(`{"message":"duplicate"}`)}
	submitter.On("Submit", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(apiErr, errors.ErrUpstreamCall))

	body, contentType := buildSubmitForm(t, map[string]string{"nom": "Durand", "prenom": "Marie"}, nil)

	req := httptest.NewRequest("POST", "/api/submit-case", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	handler.HandleSubmit(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)

	var respBody map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &respBody))
	assert.Equal(t, "UPSTREAM_CALL_FAILED", respBody["error"])
	assert.Equal(t, map[string]interface{}{"message": "duplicate"}, respBody["details"])
}
