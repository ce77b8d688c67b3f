package mocks

import (
	"context"
	"encoding/json"

	"kleos-intake/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockAPI is a mock implementation of submission.API
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) CreateContact(ctx context.Context, payload models.ContactPayload) (int64, json.RawMessage, error) {
	args := m.Called(ctx, payload)
	var raw json.RawMessage
	if args.Get(1) != nil {
		raw = args.Get(1).(json.RawMessage)
	}
	return args.Get(0).(int64), raw, args.Error(2)
}

func (m *MockAPI) CreateCase(ctx context.Context, payload models.CasePayload) (int64, json.RawMessage, error) {
	args := m.Called(ctx, payload)
	var raw json.RawMessage
	if args.Get(1) != nil {
		raw = args.Get(1).(json.RawMessage)
	}
	return args.Get(0).(int64), raw, args.Error(2)
}

func (m *MockAPI) DocumentFolders(ctx context.Context, caseID int64, maxLevels int) ([]models.Folder, error) {
	args := m.Called(ctx, caseID, maxLevels)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Folder), args.Error(1)
}

func (m *MockAPI) CreateDocumentFolder(ctx context.Context, caseID int64, name string, parentID *int64) (int64, error) {
	args := m.Called(ctx, caseID, name, parentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAPI) Documents(ctx context.Context, caseID, folderID int64) ([]json.RawMessage, error) {
	args := m.Called(ctx, caseID, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}

func (m *MockAPI) UploadDocument(ctx context.Context, doc models.DocumentPayload, filename, contentType string, content []byte) (json.RawMessage, error) {
	args := m.Called(ctx, doc, filename, contentType, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// MockDirectory is a mock implementation of handlers.Directory
type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) CaseTypes(ctx context.Context) ([]json.RawMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}

func (m *MockDirectory) Contacts(ctx context.Context) ([]models.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contact), args.Error(1)
}

// MockSubmitter is a mock implementation of handlers.Submitter
type MockSubmitter struct {
	mock.Mock
}

func (m *MockSubmitter) Submit(ctx context.Context, in models.ContactInput, files []models.AttachedFile) (*models.SubmissionResult, error) {
	args := m.Called(ctx, in, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubmissionResult), args.Error(1)
}
