package handlers

import (
	"context"
	"io"
	"net/http"

	"kleos-intake/internal/models"
	"kleos-intake/pkg/errors"

	"go.uber.org/zap"
)

// maxUploadMemory is the in-memory threshold for multipart parsing; larger
// files spill to disk.
const maxUploadMemory = 32 << 20

// Submitter runs one case submission pipeline.
type Submitter interface {
	Submit(ctx context.Context, in models.ContactInput, files []models.AttachedFile) (*models.SubmissionResult, error)
}

// SubmitHandler handles the intake form POST.
type SubmitHandler struct {
	submitter Submitter
	logger    *zap.Logger
}

// NewSubmitHandler creates a new submit handler
func NewSubmitHandler(submitter Submitter, logger *zap.Logger) *SubmitHandler {
	return &SubmitHandler{
		submitter: submitter,
		logger:    logger,
	}
}

// HandleSubmit handles POST /api/submit-case. The form field names are the
// contract with the bundled front end, hence the French names.
func (h *SubmitHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		sendError(w, errors.Wrap(err, errors.ErrInvalidRequest))
		return
	}

	in := models.ContactInput{
		LastName:    r.FormValue("nom"),
		FirstName:   r.FormValue("prenom"),
		Gender:      r.FormValue("gender"),
		Email:       r.FormValue("email"),
		LegalForm:   r.FormValue("formeJuridique"),
		Phone:       r.FormValue("phone"),
		ContactType: r.FormValue("contactType"),
		Street:      r.FormValue("street"),
		City:        r.FormValue("city"),
		PostalCode:  r.FormValue("postalCode"),
		CountryCode: r.FormValue("country"),
		TypeID:      r.FormValue("typeId"),
	}

	if in.LastName == "" || in.FirstName == "" {
		sendError(w, errors.ErrInvalidRequest)
		return
	}

	files, err := readAttachedFiles(r)
	if err != nil {
		sendError(w, errors.Wrap(err, errors.ErrInvalidRequest))
		return
	}

	h.logger.Info("Submission received",
		zap.String("name", in.LastName+" "+in.FirstName),
		zap.Int("files", len(files)))

	result, err := h.submitter.Submit(r.Context(), in, files)
	if err != nil {
		h.logger.Error("Submission failed", zap.Error(err))
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, result)
}

func readAttachedFiles(r *http.Request) ([]models.AttachedFile, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	var files []models.AttachedFile
	for _, header := range r.MultipartForm.File["documents"] {
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, models.AttachedFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Content:     content,
		})
	}
	return files, nil
}
