// Package submission runs the case intake pipeline: create the contact,
// create the case, resolve the upload folder, then upload each attached
// document independently. There is no rollback: a contact created before a
// later stage fails stays in Kleos.
package submission

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"kleos-intake/internal/countries"
	"kleos-intake/internal/kleos"
	"kleos-intake/internal/metrics"
	"kleos-intake/internal/models"
	"kleos-intake/pkg/errors"

	"go.uber.org/zap"
)

const (
	// ExternalFolderName is the per-case folder that receives intake uploads.
	ExternalFolderName = "Documents Externes"

	// externalPartyTypeCode tags the contact's role on the case.
	externalPartyTypeCode = "POU"

	// DefaultCaseTypeID is used when the form provides no case type.
	DefaultCaseTypeID = "59"

	folderTreeDepth = 10

	// isoMillis matches the timestamp format the remote API expects.
	isoMillis = "2006-01-02T15:04:05.000Z07:00"
)

// API is the slice of the Kleos client the pipeline needs.
type API interface {
	CreateContact(ctx context.Context, payload models.ContactPayload) (int64, json.RawMessage, error)
	CreateCase(ctx context.Context, payload models.CasePayload) (int64, json.RawMessage, error)
	DocumentFolders(ctx context.Context, caseID int64, maxLevels int) ([]models.Folder, error)
	CreateDocumentFolder(ctx context.Context, caseID int64, name string, parentID *int64) (int64, error)
	Documents(ctx context.Context, caseID, folderID int64) ([]json.RawMessage, error)
	UploadDocument(ctx context.Context, doc models.DocumentPayload, filename, contentType string, content []byte) (json.RawMessage, error)
}

// Orchestrator sequences one submission end to end.
type Orchestrator struct {
	api    API
	logger *zap.Logger

	// Now is the clock used for timestamps and references. Tests may replace it.
	Now func() time.Time
}

// NewOrchestrator creates a submission orchestrator.
func NewOrchestrator(api API, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		api:    api,
		logger: logger,
		Now:    time.Now,
	}
}

// Submit runs the pipeline. Stages before the uploads fail fast and abort
// the whole submission; each upload is attempted and recorded on its own,
// so partial upload failure still yields a successful result.
func (o *Orchestrator) Submit(ctx context.Context, in models.ContactInput, files []models.AttachedFile) (result *models.SubmissionResult, err error) {
	defer func() { metrics.ObserveSubmission(err) }()

	typeID := in.TypeID
	if typeID == "" {
		typeID = DefaultCaseTypeID
	}

	identityID, contactRaw, err := o.createContact(ctx, in, typeID)
	if err != nil {
		return nil, err
	}

	caseID, caseRaw, err := o.createCase(ctx, in, typeID, identityID)
	if err != nil {
		return nil, err
	}

	folderID, err := o.resolveFolder(ctx, caseID)
	if err != nil {
		return nil, err
	}

	uploads := o.uploadAll(ctx, caseID, folderID, files)

	// Post-upload verification is best effort; a listing failure never
	// fails the submission.
	docs, err := o.api.Documents(ctx, caseID, folderID)
	if err != nil {
		o.logger.Warn("Post-upload document listing failed",
			zap.Int64("case_id", caseID),
			zap.Int64("folder_id", folderID),
			zap.Error(err))
		docs = nil
		err = nil
	}
	if docs == nil {
		docs = []json.RawMessage{}
	}

	return &models.SubmissionResult{
		Success:           true,
		Contact:           contactRaw,
		Case:              caseRaw,
		Uploads:           uploads,
		DocumentsInFolder: docs,
	}, nil
}

func (o *Orchestrator) createContact(ctx context.Context, in models.ContactInput, typeID string) (int64, json.RawMessage, error) {
	payload := models.ContactPayload{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Gender:      in.Gender,
		Email:       in.Email,
		LegalForm:   in.LegalForm,
		PhoneNumber: in.Phone,
		Type:        in.ContactType,
		TypeID:      typeID,
		MainAddress: models.Address{
			Address1:    in.Street,
			Town:        in.City,
			ZipCode:     in.PostalCode,
			CountryCode: in.CountryCode,
			Country:     countries.Resolve(in.CountryCode),
		},
	}

	identityID, raw, err := o.api.CreateContact(ctx, payload)
	if err != nil {
		return 0, nil, wrapUpstream(err)
	}
	if identityID == 0 {
		o.logger.Error("Contact creation returned no identity id", zap.ByteString("response", raw))
		return 0, nil, errors.Wrap(fmt.Errorf("contact creation returned no identity id"), errors.ErrUpstreamData)
	}

	o.logger.Info("Contact created", zap.Int64("identity_id", identityID))
	return identityID, raw, nil
}

func (o *Orchestrator) createCase(ctx context.Context, in models.ContactInput, typeID string, identityID int64) (int64, json.RawMessage, error) {
	now := o.Now()
	displayName := in.LastName + " " + in.FirstName
	payload := models.CasePayload{
		TypeID:       typeID,
		Title:        displayName,
		Name:         displayName,
		CreationDate: now.UTC().Format(isoMillis),
		// Millisecond wall-clock reference; collisions are possible under
		// concurrent submissions for the same name.
		Reference: fmt.Sprintf("%s_%s_%d", in.LastName, in.FirstName, now.UnixMilli()),
		ExternalParties: []models.ExternalParty{
			{IdentityID: identityID, TypeCode: externalPartyTypeCode, Reference: ""},
		},
	}

	caseID, raw, err := o.api.CreateCase(ctx, payload)
	if err != nil {
		return 0, nil, wrapUpstream(err)
	}
	if caseID == 0 {
		o.logger.Error("Case creation returned no case id", zap.ByteString("response", raw))
		return 0, nil, errors.Wrap(fmt.Errorf("case creation returned no case id"), errors.ErrUpstreamData)
	}

	o.logger.Info("Case created", zap.Int64("case_id", caseID))
	return caseID, raw, nil
}

// resolveFolder finds the intake folder by name among the case's top-level
// folders, creating it when absent. Not atomic against concurrent
// submissions for the same case; two racers can each create one.
func (o *Orchestrator) resolveFolder(ctx context.Context, caseID int64) (int64, error) {
	folders, err := o.api.DocumentFolders(ctx, caseID, folderTreeDepth)
	if err != nil {
		return 0, wrapUpstream(err)
	}
	for _, folder := range folders {
		if folder.Name == ExternalFolderName {
			o.logger.Info("Reusing existing upload folder",
				zap.Int64("case_id", caseID),
				zap.Int64("folder_id", folder.ID))
			return folder.ID, nil
		}
	}

	folderID, err := o.api.CreateDocumentFolder(ctx, caseID, ExternalFolderName, nil)
	if err != nil {
		return 0, wrapUpstream(err)
	}
	o.logger.Info("Created upload folder",
		zap.Int64("case_id", caseID),
		zap.Int64("folder_id", folderID))
	return folderID, nil
}

func (o *Orchestrator) uploadAll(ctx context.Context, caseID, folderID int64, files []models.AttachedFile) []models.UploadOutcome {
	uploads := make([]models.UploadOutcome, 0, len(files))
	for _, file := range files {
		name := SanitizeFilename(file.Name)
		doc := models.DocumentPayload{
			ID:           0,
			Title:        name,
			Description:  "",
			CaseID:       caseID,
			FolderID:     folderID,
			ReadOnly:     false,
			CreationDate: o.Now().UTC().Format(isoMillis),
		}

		info, err := o.api.UploadDocument(ctx, doc, name, file.ContentType, file.Content)
		metrics.ObserveUpload(err == nil)
		if err != nil {
			o.logger.Error("Document upload failed",
				zap.String("file", name),
				zap.Int64("case_id", caseID),
				zap.Error(err))
			uploads = append(uploads, models.UploadOutcome{
				Name:    name,
				Success: false,
				Info:    errorInfo(err),
			})
			continue
		}

		uploads = append(uploads, models.UploadOutcome{
			Name:    name,
			Success: true,
			Info:    info,
		})
	}
	return uploads
}

// wrapUpstream keeps auth failures as-is and tags everything else as a
// failed upstream call.
func wrapUpstream(err error) error {
	if errors.Is(err, errors.ErrAuthFailure) {
		return err
	}
	return errors.Wrap(err, errors.ErrUpstreamCall)
}

// errorInfo captures the upstream error payload when one exists, the error
// text otherwise, always as valid JSON.
func errorInfo(err error) json.RawMessage {
	var apiErr *kleos.APIError
	if stderrors.As(err, &apiErr) && len(apiErr.Body) > 0 && json.Valid(apiErr.Body) {
		return apiErr.Body
	}
	msg, _ := json.Marshal(err.Error())
	return msg
}
