package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"kleos-intake/internal/countries"
	"kleos-intake/internal/models"

	"go.uber.org/zap"
)

// Directory is the read-only slice of the Kleos client the lookup
// endpoints use.
type Directory interface {
	CaseTypes(ctx context.Context) ([]json.RawMessage, error)
	Contacts(ctx context.Context) ([]models.Contact, error)
}

// DirectoryHandler serves the lookup endpoints backing the intake form.
type DirectoryHandler struct {
	directory Directory
	logger    *zap.Logger
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directory Directory, logger *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		directory: directory,
		logger:    logger,
	}
}

// HandleCaseTypes handles GET /api/case-types
func (h *DirectoryHandler) HandleCaseTypes(w http.ResponseWriter, r *http.Request) {
	items, err := h.directory.CaseTypes(r.Context())
	if err != nil {
		h.logger.Error("Failed to list case types", zap.Error(err))
		sendError(w, err)
		return
	}
	if items == nil {
		items = []json.RawMessage{}
	}
	sendJSON(w, http.StatusOK, items)
}

// HandleContactCountries handles GET /api/contacts. It reduces the contact
// list to the unique country code/name pairs seen in main addresses, which
// is all the front end reads from it.
func (h *DirectoryHandler) HandleContactCountries(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.directory.Contacts(r.Context())
	if err != nil {
		h.logger.Error("Failed to list contacts", zap.Error(err))
		sendError(w, err)
		return
	}

	unique := []models.Country{}
	seen := map[string]bool{}
	for _, contact := range contacts {
		addr := contact.MainAddress
		if addr == nil || addr.CountryCode == "" || addr.Country == "" {
			continue
		}
		if seen[addr.CountryCode] {
			continue
		}
		seen[addr.CountryCode] = true
		unique = append(unique, models.Country{Code: addr.CountryCode, Name: addr.Country})
	}

	sendJSON(w, http.StatusOK, unique)
}

// HandleCountries handles GET /api/countries from the static table.
func (h *DirectoryHandler) HandleCountries(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, countries.All)
}
