package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/pitchconnect/standings-engine/internal/usecase"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{
			name:       "invalid input",
			err:        fmt.Errorf("%w: bad payload", usecase.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantReason: "invalidInput",
		},
		{
			name:       "not found",
			err:        fmt.Errorf("%w: competition=missing", usecase.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantReason: "notFound",
		},
		{
			name:       "unauthorized",
			err:        fmt.Errorf("%w: invalid internal job token", usecase.ErrUnauthorized),
			wantStatus: http.StatusUnauthorized,
			wantReason: "unauthorized",
		},
		{
			name:       "dependency unavailable",
			err:        fmt.Errorf("%w: standings store down", usecase.ErrDependencyUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantReason: "dependencyUnavailable",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantReason: "internalError",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mapped := mapError(tc.err)
			if mapped.HTTPStatus != tc.wantStatus {
				t.Fatalf("HTTPStatus = %d, want %d", mapped.HTTPStatus, tc.wantStatus)
			}
			if mapped.Reason != tc.wantReason {
				t.Fatalf("Reason = %q, want %q", mapped.Reason, tc.wantReason)
			}
		})
	}
}

func TestWriteSuccessEnvelope(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	writeSuccess(context.Background(), recorder, http.StatusOK, map[string]string{"hello": "world"})

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusOK)
	}
	if ct := recorder.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}

	var envelope struct {
		APIVersion string            `json:"apiVersion"`
		Data       map[string]string `json:"data"`
	}
	if err := sonic.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.APIVersion != googleAPIVersion {
		t.Fatalf("apiVersion = %q, want %q", envelope.APIVersion, googleAPIVersion)
	}
	if envelope.Data["hello"] != "world" {
		t.Fatalf("data = %+v", envelope.Data)
	}
}

func TestWriteErrorEnvelope(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	writeError(context.Background(), recorder, fmt.Errorf("%w: competition=missing", usecase.ErrNotFound))

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusNotFound)
	}

	var envelope struct {
		APIVersion string `json:"apiVersion"`
		Error      struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
			Status  string `json:"status"`
			Errors  []struct {
				Domain string `json:"domain"`
				Reason string `json:"reason"`
			} `json:"errors"`
		} `json:"error"`
	}
	if err := sonic.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Error.Code != http.StatusNotFound {
		t.Fatalf("error code = %d", envelope.Error.Code)
	}
	if envelope.Error.Status != "NOT_FOUND" {
		t.Fatalf("error status = %q", envelope.Error.Status)
	}
	if len(envelope.Error.Errors) != 1 || envelope.Error.Errors[0].Domain != errorDomain {
		t.Fatalf("error items = %+v", envelope.Error.Errors)
	}
	if !strings.Contains(envelope.Error.Message, "competition=missing") {
		t.Fatalf("error message = %q", envelope.Error.Message)
	}
}

func TestWriteInternalErrorHidesDetails(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	writeInternalError(context.Background(), recorder)

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", recorder.Code)
	}
	if strings.Contains(recorder.Body.String(), "panic") {
		t.Fatalf("body leaks details: %s", recorder.Body.String())
	}
	if !strings.Contains(recorder.Body.String(), "internal server error") {
		t.Fatalf("body = %s", recorder.Body.String())
	}
}
