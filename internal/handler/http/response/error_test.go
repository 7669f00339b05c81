package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/attendance"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/auth"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/employee"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/holiday"
	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/task"
	"github.com/MHamza118/EMSFSPro-sub000/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandleError_ValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	errs := validator.ValidationErrors{
		{Field: "email", Message: "email is required"},
	}

	HandleError(rec, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "email is required", resp.Error.Details["email"])
}

func TestHandleError_GateRejection(t *testing.T) {
	rec := httptest.NewRecorder()
	gateErr := &attendance.GateError{
		Decision: attendance.Reject(attendance.ReasonTooEarly, "Too early to check in"),
	}

	HandleError(rec, gateErr)

	assert.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "TOO_EARLY", resp.Error.Code)
	assert.Equal(t, "Too early to check in", resp.Error.Message)
	assert.NotNil(t, resp.Data)
}

func TestHandleError_DomainSentinels(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
	}{
		{auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{auth.ErrAccountDisabled, http.StatusForbidden},
		{auth.ErrRefreshTokenRevoked, http.StatusUnauthorized},
		{employee.ErrEmployeeNotFound, http.StatusNotFound},
		{employee.ErrEmailExists, http.StatusConflict},
		{holiday.ErrRequestNotFound, http.StatusNotFound},
		{holiday.ErrAlreadyDecided, http.StatusConflict},
		{task.ErrTaskNotFound, http.StatusNotFound},
		{task.ErrInvalidTransition, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandleError_WrappedSentinel(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("failed to load task: %w", task.ErrTaskNotFound))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleError_UnknownError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("pool exhausted"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", resp.Error.Code)
}
