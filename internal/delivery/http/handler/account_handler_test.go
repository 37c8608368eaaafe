package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/validator"
)

type stubAccountUsecase struct {
	createErr error
	loginErr  error
	changeErr error
	listErr   error
	account   *dto.AccountResponse
	names     []string
}

func (s *stubAccountUsecase) CreateAccount(ctx context.Context, req *dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.account, nil
}

func (s *stubAccountUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AccountResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.account, nil
}

func (s *stubAccountUsecase) ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest) error {
	return s.changeErr
}

func (s *stubAccountUsecase) ListDoctorNames(ctx context.Context) ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.names, nil
}

func newAccountHandler(stub *stubAccountUsecase) *AccountHandler {
	return NewAccountHandler(stub, validator.NewValidator())
}

func postJSON(t *testing.T, h http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return body
}

func validCreateBody() dto.CreateAccountRequest {
	return dto.CreateAccountRequest{
		Name: "Dr A", Email: "a@x.com", Password: "p", DoctorID: "D1",
	}
}

func TestCreateAccountHandler(t *testing.T) {
	tests := []struct {
		name       string
		stub       *stubAccountUsecase
		body       interface{}
		wantStatus int
		wantError  string
	}{
		{
			name:       "created",
			stub:       &stubAccountUsecase{account: &dto.AccountResponse{DoctorID: "D1"}},
			body:       validCreateBody(),
			wantStatus: http.StatusCreated,
		},
		{
			name:       "duplicate email",
			stub:       &stubAccountUsecase{createErr: usecase.ErrEmailAlreadyExists},
			body:       validCreateBody(),
			wantStatus: http.StatusConflict,
			wantError:  "Email already exists",
		},
		{
			name:       "duplicate doctor id",
			stub:       &stubAccountUsecase{createErr: usecase.ErrDoctorIDAlreadyExists},
			body:       validCreateBody(),
			wantStatus: http.StatusConflict,
			wantError:  "Doctor ID already exists",
		},
		{
			name:       "missing required field",
			stub:       &stubAccountUsecase{},
			body:       dto.CreateAccountRequest{Email: "a@x.com", Password: "p", DoctorID: "D1"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Name is required",
		},
		{
			name:       "notification failure",
			stub:       &stubAccountUsecase{createErr: context.DeadlineExceeded},
			body:       validCreateBody(),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, newAccountHandler(tt.stub).CreateAccount, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			body := decodeBody(t, rec)
			if tt.wantError != "" {
				if body["error"] != tt.wantError {
					t.Errorf("error = %v, want %q", body["error"], tt.wantError)
				}
				return
			}
			if _, ok := body["admin"]; !ok {
				t.Errorf("success body %v missing admin payload", body)
			}
			if body["message"] == "" {
				t.Error("success body missing message")
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name       string
		stub       *stubAccountUsecase
		wantStatus int
	}{
		{"success", &stubAccountUsecase{account: &dto.AccountResponse{DoctorID: "D1", IsFirstLogin: true}}, http.StatusOK},
		{"unknown doctor", &stubAccountUsecase{loginErr: usecase.ErrDoctorNotFound}, http.StatusNotFound},
		{"bad credentials", &stubAccountUsecase{loginErr: usecase.ErrInvalidCredentials}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, newAccountHandler(tt.stub).Login, dto.LoginRequest{DoctorID: "D1", Password: "p"})
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				body := decodeBody(t, rec)
				doctor, ok := body["doctor"].(map[string]interface{})
				if !ok {
					t.Fatalf("body %v missing doctor payload", body)
				}
				if doctor["is_first_login"] != true {
					t.Errorf("is_first_login = %v, want true", doctor["is_first_login"])
				}
			}
		})
	}
}

func TestChangePasswordHandler(t *testing.T) {
	tests := []struct {
		name       string
		stub       *stubAccountUsecase
		wantStatus int
	}{
		{"success", &stubAccountUsecase{}, http.StatusOK},
		{"unknown doctor", &stubAccountUsecase{changeErr: usecase.ErrDoctorNotFound}, http.StatusNotFound},
		{"wrong current password", &stubAccountUsecase{changeErr: usecase.ErrInvalidCredentials}, http.StatusUnauthorized},
		{"confirmation mismatch", &stubAccountUsecase{changeErr: usecase.ErrPasswordConfirmMismatch}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := dto.ChangePasswordRequest{DoctorID: "D1", Password: "p", NewPassword: "q", ConfirmPassword: "q"}
			rec := postJSON(t, newAccountHandler(tt.stub).ChangePassword, body)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestListDoctorNamesHandler(t *testing.T) {
	stub := &stubAccountUsecase{names: []string{"Dr Ahmed", "Dr Malik"}}
	rec := postJSON(t, newAccountHandler(stub).ListDoctorNames, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	doctors, ok := body["doctors"].([]interface{})
	if !ok {
		t.Fatalf("body %v missing doctors payload", body)
	}
	if len(doctors) != 2 || doctors[0] != "Dr Ahmed" {
		t.Errorf("doctors = %v, want [Dr Ahmed Dr Malik]", doctors)
	}
}
