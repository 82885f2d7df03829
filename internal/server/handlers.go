package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/identity-verifier/internal/extraction"
	"github.com/jonathan/identity-verifier/internal/profile"
	"github.com/jonathan/identity-verifier/internal/types"
	"github.com/jonathan/identity-verifier/internal/validation"
)

// VerifyRequest represents the request body for /verify
type VerifyRequest struct {
	UserID         string `json:"user_id" validate:"required"`
	DocumentType   string `json:"document_type" validate:"required"`
	DocumentText   string `json:"document_text" validate:"required"`
	DocumentNumber string `json:"document_number,omitempty"`
}

// VerifyResponse represents the response for /verify
type VerifyResponse struct {
	VerificationID string                `json:"verification_id"`
	Report         *types.VerdictReport  `json:"report"`
	NumberCheck    *validation.Result    `json:"number_check,omitempty"`
	Extracted      types.ExtractedRecord `json:"extracted_details"`
}

// ReconcileRequest represents the request body for /reconcile
type ReconcileRequest struct {
	Profile      types.ProfileRecord   `json:"profile" validate:"required"`
	Extracted    types.ExtractedRecord `json:"extracted" validate:"required"`
	DocumentType string                `json:"document_type,omitempty"`
}

// handleVerify runs the full verification flow for a user's document:
// LLM extraction and profile lookup in parallel, then reconciliation and
// optional document number validation.
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	var (
		profileRecord types.ProfileRecord
		extracted     types.ExtractedRecord
	)

	// Extraction calls the LLM and the profile lookup hits the database;
	// neither depends on the other.
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		record, err := s.extractor.Extract(ctx, req.DocumentText)
		if err != nil {
			return err
		}
		extracted = extraction.CanonicalDetails(record)
		return nil
	})
	g.Go(func() error {
		record, err := s.store.GetProfile(ctx, req.UserID)
		if err != nil {
			return err
		}
		profileRecord = record
		return nil
	})
	if err := g.Wait(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	report, err := s.engine.Compare(profileRecord, extracted, req.DocumentType)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	response := VerifyResponse{
		Report:    report,
		Extracted: extracted,
	}
	if req.DocumentNumber != "" {
		if result, ok := validation.Validate(req.DocumentType, req.DocumentNumber); ok {
			response.NumberCheck = &result
		}
	}

	verification := &profile.Verification{
		UserID:         req.UserID,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		Report:         report,
	}
	if err := s.store.SaveVerification(r.Context(), verification); err != nil {
		// The verdict is still useful; persistence failure shouldn't hide it.
		log.Printf("Failed to save verification for %s: %v", req.UserID, err)
	} else {
		response.VerificationID = verification.ID.String()
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// handleReconcile compares a caller-supplied profile against an already
// extracted record, without touching the LLM or the profile store.
func (s *Server) handleReconcile(w http.ResponseWriter, r *http.Request) {
	var req ReconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	// No canonical key mapping here: the caller supplies the extracted
	// record directly and the engine's flattener and resolver handle its
	// shape.
	report, err := s.engine.Compare(req.Profile, req.Extracted, req.DocumentType)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleListVerifications returns recent verification outcomes for a user.
func (s *Server) handleListVerifications(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	if userID == "" {
		s.errorResponse(w, http.StatusBadRequest, "User ID is required")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	verifications, err := s.store.ListVerifications(r.Context(), userID, limit)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if verifications == nil {
		verifications = []profile.Verification{}
	}

	s.jsonResponse(w, http.StatusOK, verifications)
}
