package models

import "encoding/json"

// TokenResponse represents the OAuth2 token endpoint response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ContactInput carries the intake form fields for one submission
type ContactInput struct {
	LastName    string // form field "nom"
	FirstName   string // form field "prenom"
	Gender      string
	Email       string
	LegalForm   string // form field "formeJuridique"
	Phone       string
	ContactType string
	Street      string
	City        string
	PostalCode  string
	CountryCode string // ISO code, e.g. "FR"
	TypeID      string // case type id, defaults to "59"
}

// Address is the mainAddress block of a Kleos contact
type Address struct {
	Address1    string `json:"address1"`
	Town        string `json:"town"`
	ZipCode     string `json:"zipCode"`
	CountryCode string `json:"countryCode"`
	Country     string `json:"country"`
}

// ContactPayload is the body of PUT /contacts
type ContactPayload struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Gender      string  `json:"gender,omitempty"`
	Email       string  `json:"email,omitempty"`
	LegalForm   string  `json:"legalForm,omitempty"`
	PhoneNumber string  `json:"phoneNumber,omitempty"`
	Type        string  `json:"type,omitempty"`
	TypeID      string  `json:"typeId"`
	MainAddress Address `json:"mainAddress"`
}

// Contact is the subset of a Kleos contact the service reads back
type Contact struct {
	ID          int64    `json:"id"`
	Type        string   `json:"type"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	MainAddress *Address `json:"mainAddress"`
}

// ExternalParty links a case to an identity with a fixed role code
type ExternalParty struct {
	IdentityID int64  `json:"identityId"`
	TypeCode   string `json:"typeCode"`
	Reference  string `json:"reference"`
}

// CasePayload is the body of PUT /cases
type CasePayload struct {
	TypeID          string          `json:"typeId"`
	Title           string          `json:"title"`
	Name            string          `json:"name"`
	CreationDate    string          `json:"creationDate"`
	Reference       string          `json:"reference"`
	ExternalParties []ExternalParty `json:"externalParties"`
}

// Folder is a node of the per-case document folder tree
type Folder struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	ParentID *int64   `json:"parentId,omitempty"`
	Children []Folder `json:"children,omitempty"`
}

// FolderPayload is the body of POST /documentfolders
type FolderPayload struct {
	CaseID   int64  `json:"caseId"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parentId"`
}

// DocumentPayload is the metadata part of POST /documents/upload
type DocumentPayload struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	CaseID       int64  `json:"caseId"`
	FolderID     int64  `json:"folderId"`
	ReadOnly     bool   `json:"readOnly"`
	CreationDate string `json:"creationDate"`
}

// AttachedFile is one uploaded file from the intake form
type AttachedFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// UploadOutcome records the result of a single document upload.
// Info carries either the upstream confirmation payload or the captured
// error detail; one file failing never affects its siblings.
type UploadOutcome struct {
	Name    string          `json:"name"`
	Success bool            `json:"success"`
	Info    json.RawMessage `json:"info,omitempty"`
}

// SubmissionResult aggregates one full submission pipeline run
type SubmissionResult struct {
	Success           bool              `json:"success"`
	Contact           json.RawMessage   `json:"contact"`
	Case              json.RawMessage   `json:"case"`
	Uploads           []UploadOutcome   `json:"uploads"`
	DocumentsInFolder []json.RawMessage `json:"documentsInFolder"`
}

// Country pairs an ISO code with its display name
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
