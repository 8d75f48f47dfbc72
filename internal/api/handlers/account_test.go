package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shoe-design-api/internal/api/handlers"
	"shoe-design-api/internal/services"
	"shoe-design-api/internal/transport/dto"
)

func setupAccountRouter(t *testing.T) (http.Handler, *MockAccountService) {
	router, v := setupTestRouter(t)
	svc := new(MockAccountService)
	h := handlers.NewAccountHandler(svc, v, zap.NewNop())
	router.PUT("/account/password", h.ChangePassword)
	router.PUT("/account/profile", h.UpdateProfile)
	return router, svc
}

func TestAccountHandler_ChangePassword(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, svc := setupAccountRouter(t)
		want := &dto.ChangePasswordRequest{CurrentPassword: "old-secret", NewPassword: "new-secret"}
		svc.On("ChangePassword", mock.Anything, testCaller, want).Return(nil).Once()

		rec := doJSON(router, http.MethodPut, "/account/password", `{"currentPassword":"old-secret","newPassword":"new-secret"}`, asCaller())

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
		svc.AssertExpectations(t)
	})

	t.Run("Missing fields", func(t *testing.T) {
		tests := []struct {
			name    string
			body    string
			missing []string
		}{
			{"no currentPassword", `{"newPassword":"new-secret"}`, []string{"currentPassword"}},
			{"no newPassword", `{"currentPassword":"old-secret"}`, []string{"newPassword"}},
			{"empty object", `{}`, []string{"currentPassword", "newPassword"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				router, svc := setupAccountRouter(t)

				rec := doJSON(router, http.MethodPut, "/account/password", tt.body, asCaller())

				assert.Equal(t, http.StatusBadRequest, rec.Code)
				resp := decodeError(t, rec)
				assert.Equal(t, "Validation failed", resp.Error)
				assert.Len(t, resp.Details, len(tt.missing))
				for _, f := range tt.missing {
					assert.Contains(t, resp.Details, f)
				}
				svc.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("Translated details", func(t *testing.T) {
		router, _ := setupAccountRouter(t)

		rec := doJSON(router, http.MethodPut, "/account/password?lang=zh", `{"currentPassword":"old-secret"}`, asCaller())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "newPassword为必填字段", decodeError(t, rec).Details["newPassword"])
	})

	t.Run("Malformed body", func(t *testing.T) {
		router, svc := setupAccountRouter(t)

		rec := doJSON(router, http.MethodPut, "/account/password", `{"currentPassword":`, asCaller())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", decodeError(t, rec).Error)
		svc.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing caller", func(t *testing.T) {
		router, svc := setupAccountRouter(t)

		rec := doJSON(router, http.MethodPut, "/account/password", `{"currentPassword":"a","newPassword":"b"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Wrong current password", func(t *testing.T) {
		router, svc := setupAccountRouter(t)
		svc.On("ChangePassword", mock.Anything, testCaller, mock.Anything).
			Return(fmt.Errorf("check password: %w", services.ErrInvalidCredentials)).Once()

		rec := doJSON(router, http.MethodPut, "/account/password", `{"currentPassword":"a","newPassword":"b"}`, asCaller())

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", decodeError(t, rec).Error)
		svc.AssertExpectations(t)
	})
}

func multipartBody(t *testing.T, fields [][2]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for _, f := range fields {
		require.NoError(t, w.WriteField(f[0], f[1]))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestAccountHandler_UpdateProfile(t *testing.T) {
	want := &dto.UpdateProfileDTO{Name: "Ana", Email: "ana@example.com", PhoneNo: "+15550100"}

	orders := map[string][][2]string{
		"name first":    {{"name", "Ana"}, {"email", "ana@example.com"}, {"phoneNo", "+15550100"}},
		"phoneNo first": {{"phoneNo", "+15550100"}, {"name", "Ana"}, {"email", "ana@example.com"}},
		"email first":   {{"email", "ana@example.com"}, {"phoneNo", "+15550100"}, {"name", "Ana"}},
	}
	for name, fields := range orders {
		t.Run("Multipart "+name, func(t *testing.T) {
			router, svc := setupAccountRouter(t)
			svc.On("UpdateProfile", mock.Anything, testCaller, want).
				Return(&dto.DesignerResponseDTO{DesignerID: "d-1", DesignerName: "Ana"}, nil).Once()

			body, contentType := multipartBody(t, fields)
			req := httptest.NewRequest(http.MethodPut, "/account/profile", body)
			req.Header.Set("Content-Type", contentType)
			req.Header.Set(callerHeader, testCaller)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "d-1", resp["designerId"])
			assert.Equal(t, []any{}, resp["feedBackList"])
			assert.Equal(t, []any{}, resp["shoeCustomList"])
			svc.AssertExpectations(t)
		})
	}

	t.Run("Urlencoded with avatar", func(t *testing.T) {
		router, svc := setupAccountRouter(t)
		withAvatar := &dto.UpdateProfileDTO{Avatar: ptr("ana.png"), Name: "Ana", Email: "ana@example.com", PhoneNo: "+15550100"}
		svc.On("UpdateProfile", mock.Anything, testCaller, withAvatar).
			Return(&dto.DesignerResponseDTO{DesignerID: "d-1"}, nil).Once()

		form := url.Values{"phoneNo": {"+15550100"}, "avatar": {"ana.png"}, "email": {"ana@example.com"}, "name": {"Ana"}}
		req := httptest.NewRequest(http.MethodPut, "/account/profile", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set(callerHeader, testCaller)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("No collaborator", func(t *testing.T) {
		router, v := setupTestRouter(t)
		h := handlers.NewAccountHandler(services.Unavailable{}, v, zap.NewNop())
		router.PUT("/account/profile", h.UpdateProfile)

		body, contentType := multipartBody(t, orders["name first"])
		req := httptest.NewRequest(http.MethodPut, "/account/profile", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set(callerHeader, testCaller)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotImplemented, rec.Code)
		assert.Equal(t, "Not implemented", decodeError(t, rec).Error)
	})
}
