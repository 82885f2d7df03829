package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/identity-verifier/internal/extraction"
	"github.com/jonathan/identity-verifier/internal/llm"
	"github.com/jonathan/identity-verifier/internal/profile"
	"github.com/jonathan/identity-verifier/internal/reconcile"
	"github.com/jonathan/identity-verifier/internal/types"
)

// stubLLM returns a canned extraction response without calling out.
type stubLLM struct {
	response string
	err      error
}

func (s *stubLLM) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	return s.response, s.err
}
func (s *stubLLM) GetModel(llm.ModelTier) string { return "stub-model" }
func (s *stubLLM) Close() error                  { return nil }

const aadhaarExtraction = `{
	"Personal Information": {
		"Full Name": "RAVI KUMAR",
		"Date of Birth": "12/05/1990"
	},
	"Contact Information": {
		"Phone Number(s)": ["+91 9876543210"],
		"Full Address": "12 MG Road, Pune"
	},
	"Document Identifiers": {
		"Aadhaar Number": "234567890124"
	}
}`

func newTestServer(t *testing.T, llmClient llm.Client) (*Server, *profile.MemoryStore) {
	t.Helper()
	store := profile.NewMemoryStore()
	store.PutApplication("user-1", map[string]any{
		"fullName": "Ravi Kumar",
		"dob":      "1990-05-12",
		"phone":    "9876543210",
		"address":  "12 MG Road, Pune",
	})

	return &Server{
		store:     store,
		engine:    reconcile.NewEngine(reconcile.Options{}),
		extractor: extraction.New(llmClient),
		llmClient: llmClient,
		validator: validator.New(),
	}, store
}

func TestHandleVerify(t *testing.T) {
	s, store := newTestServer(t, &stubLLM{response: aadhaarExtraction})

	body, _ := json.Marshal(VerifyRequest{
		UserID:         "user-1",
		DocumentType:   "aadhaar",
		DocumentText:   "GOVERNMENT OF INDIA ... RAVI KUMAR ...",
		DocumentNumber: "234567890124",
	})
	req := httptest.NewRequest(http.MethodPost, "/verify", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.handleVerify(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp VerifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.NotNil(t, resp.Report)
	assert.Equal(t, types.VerdictCorrect, resp.Report.Verdict)
	assert.Equal(t, "aadhaar", resp.Report.DocumentType)
	assert.True(t, resp.Report.Details["name"].Match)
	assert.Equal(t, 100, resp.Report.Details["date_of_birth"].Similarity)
	assert.True(t, resp.Report.Details["contact"].Match)

	require.NotNil(t, resp.NumberCheck)
	assert.Equal(t, "valid", resp.NumberCheck.Status)

	assert.NotEmpty(t, resp.VerificationID)
	saved, err := store.ListVerifications(context.Background(), "user-1", 0)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "aadhaar", saved[0].DocumentType)
}

func TestHandleVerifyUnknownUser(t *testing.T) {
	s, _ := newTestServer(t, &stubLLM{response: aadhaarExtraction})

	body, _ := json.Marshal(VerifyRequest{
		UserID:       "nobody",
		DocumentType: "aadhaar",
		DocumentText: "some document",
	})
	req := httptest.NewRequest(http.MethodPost, "/verify", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.handleVerify(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleVerifyMissingFields(t *testing.T) {
	s, _ := newTestServer(t, &stubLLM{response: aadhaarExtraction})

	body, _ := json.Marshal(VerifyRequest{UserID: "user-1"})
	req := httptest.NewRequest(http.MethodPost, "/verify", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.handleVerify(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleVerifyExtractionFailure(t *testing.T) {
	s, _ := newTestServer(t, &stubLLM{response: "the model refused to answer"})

	body, _ := json.Marshal(VerifyRequest{
		UserID:       "user-1",
		DocumentType: "aadhaar",
		DocumentText: "some document",
	})
	req := httptest.NewRequest(http.MethodPost, "/verify", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.handleVerify(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleReconcile(t *testing.T) {
	s, _ := newTestServer(t, &stubLLM{})

	body, _ := json.Marshal(ReconcileRequest{
		Profile: types.ProfileRecord{
			"name":          "Ravi Kumar",
			"date_of_birth": "1990-05-12",
		},
		Extracted: types.ExtractedRecord{
			"Name":          "Ravi Kumar",
			"Date of Birth": "12/05/1990",
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/reconcile", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.handleReconcile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report types.VerdictReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, types.VerdictCorrect, report.Verdict)
	assert.Equal(t, 100.0, report.SimilarityScore)
}

func TestHandleReconcileNestedProfileValue(t *testing.T) {
	s, _ := newTestServer(t, &stubLLM{})

	body, _ := json.Marshal(ReconcileRequest{
		Profile: types.ProfileRecord{
			"name": map[string]any{"first": "Ravi"},
		},
		Extracted: types.ExtractedRecord{"Name": "Ravi"},
	})
	req := httptest.NewRequest(http.MethodPost, "/reconcile", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	s.handleReconcile(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleListVerifications(t *testing.T) {
	s, store := newTestServer(t, &stubLLM{})
	require.NoError(t, store.SaveVerification(context.Background(), &profile.Verification{
		UserID: "user-1",
		Report: &types.VerdictReport{Verdict: types.VerdictCorrect},
	}))

	req := httptest.NewRequest(http.MethodGet, "/verifications/user-1", nil)
	req.SetPathValue("user_id", "user-1")
	rec := httptest.NewRecorder()

	s.handleListVerifications(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var out []profile.Verification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "user-1", out[0].UserID)
}

func TestHandleHealth(t *testing.T) {
	s := &Server{}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	s.handleHealth(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
