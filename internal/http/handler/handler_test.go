package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"questshare/internal/model"
	"questshare/internal/repository"
	"questshare/internal/service"
	serviceMocks "questshare/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func studentAccount() *model.Account {
	return &model.Account{ID: "u1", FullName: "Ayesha Khan", Role: model.RoleStudent}
}

func adminAccount() *model.Account {
	return &model.Account{ID: "a1", FullName: "Portal Admin", Email: "admin@quest.edu.pk", Role: model.RoleAdmin}
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListDepartments(t *testing.T) {
	app := fiber.New()
	app.Get("/catalog/departments", ListDepartments())

	req := httptest.NewRequest(http.MethodGet, "/catalog/departments", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Departments []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"departments"`
	}
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Len(t, body.Departments, 8)
}

func TestRegisterAccount(t *testing.T) {
	mockSvc := new(serviceMocks.MockAccountService)
	app := fiber.New()
	app.Post("/accounts", RegisterAccount(mockSvc))

	payload := `{"full_name":"Ayesha Khan","email":"ayesha@students.quest.edu.pk","contact_number":"+92 300 1234567","roll_no":"21SW001","department":"Software Engineering","semester":3,"batch":21}`

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Register", mock.Anything, "u1", mock.Anything).
			Return(studentAccount(), nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(IdentityHeader, "u1")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.Account
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "u1", result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "UNAUTHENTICATED", res.Error.Code)
	})

	t.Run("validation error includes fields", func(t *testing.T) {
		mockSvc.On("Register", mock.Anything, "u1", mock.Anything).
			Return(nil, &service.ValidationError{Fields: map[string]string{"email": "Please enter a valid email address."}}).Once()

		req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(IdentityHeader, "u1")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
		assert.Contains(t, res.Error.Fields, "email")
		mockSvc.AssertExpectations(t)
	})

	t.Run("duplicate registration conflicts", func(t *testing.T) {
		mockSvc.On("Register", mock.Anything, "u1", mock.Anything).
			Return(nil, service.ErrAccountExists).Once()

		req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(IdentityHeader, "u1")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetMyAccount(t *testing.T) {
	mockSvc := new(serviceMocks.MockAccountService)
	app := fiber.New()
	app.Get("/accounts/me", GetMyAccount(mockSvc))

	t.Run("registered identity", func(t *testing.T) {
		mockSvc.On("Resolve", mock.Anything, "u1").Return(studentAccount(), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/accounts/me", nil)
		req.Header.Set(IdentityHeader, "u1")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unregistered identity signals registration", func(t *testing.T) {
		mockSvc.On("Resolve", mock.Anything, "ghost").Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/accounts/me", nil)
		req.Header.Set(IdentityHeader, "ghost")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/accounts/me", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestListMaterials(t *testing.T) {
	mockSvc := new(serviceMocks.MockMaterialService)
	app := fiber.New()
	app.Get("/materials", ListMaterials(mockSvc))

	t.Run("passes type and filter through", func(t *testing.T) {
		mockSvc.On("ListApproved", mock.Anything, model.TypePastPaper, service.MaterialFilter{
			Search:     "final",
			Department: "Software Engineering",
			Semester:   "3",
			Subject:    "all",
		}).Return([]model.Material{{ID: "m1"}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet,
			"/materials?type=past-paper&search=final&department=Software+Engineering&semester=3&subject=all", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Items []model.Material `json:"items"`
			Total int              `json:"total"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, 1, body.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown type", func(t *testing.T) {
		mockSvc.On("ListApproved", mock.Anything, model.MaterialType("thesis"), mock.Anything).
			Return(nil, &service.ValidationError{Fields: map[string]string{"type": "unknown material type"}}).Once()

		req := httptest.NewRequest(http.MethodGet, "/materials?type=thesis", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("ListApproved", mock.Anything, model.TypeNote, mock.Anything).
			Return(nil, errors.New("db fail")).Once()

		req := httptest.NewRequest(http.MethodGet, "/materials?type=note", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestListRecentMaterials(t *testing.T) {
	mockSvc := new(serviceMocks.MockMaterialService)
	app := fiber.New()
	app.Get("/materials/recent", ListRecentMaterials(mockSvc))

	t.Run("default limit", func(t *testing.T) {
		mockSvc.On("ListRecent", mock.Anything, 10).Return([]model.Material{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/materials/recent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/materials/recent?limit=abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestListMyMaterials(t *testing.T) {
	mockAccounts := new(serviceMocks.MockAccountService)
	mockMaterials := new(serviceMocks.MockMaterialService)
	app := fiber.New()
	app.Get("/materials/mine", ListMyMaterials(mockAccounts, mockMaterials))

	t.Run("success", func(t *testing.T) {
		mockAccounts.On("Resolve", mock.Anything, "u1").Return(studentAccount(), nil).Once()
		mockMaterials.On("ListMine", mock.Anything, mock.Anything).
			Return([]model.Material{{ID: "m1", Status: model.StatusPending}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/materials/mine", nil)
		req.Header.Set(IdentityHeader, "u1")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockAccounts.AssertExpectations(t)
		mockMaterials.AssertExpectations(t)
	})

	t.Run("unregistered identity is unauthenticated", func(t *testing.T) {
		mockAccounts.On("Resolve", mock.Anything, "ghost").Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/materials/mine", nil)
		req.Header.Set(IdentityHeader, "ghost")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		mockAccounts.AssertExpectations(t)
	})
}

func uploadForm(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.WriteField("title", "Final Quiz")
	writer.WriteField("description", "Solved final quiz with answers")
	writer.WriteField("type", "past-paper")
	writer.WriteField("department", "Software Engineering")
	writer.WriteField("semester", "3")
	writer.WriteField("subject", "Web Development")
	part, err := writer.CreateFormFile("file", "quiz.pdf")
	require.NoError(t, err)
	part.Write([]byte("pdf bytes"))
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestUploadMaterial(t *testing.T) {
	mockAccounts := new(serviceMocks.MockAccountService)
	mockMaterials := new(serviceMocks.MockMaterialService)
	app := fiber.New()
	app.Post("/materials", UploadMaterial(mockAccounts, mockMaterials))

	t.Run("success", func(t *testing.T) {
		body, contentType := uploadForm(t)

		mockAccounts.On("Resolve", mock.Anything, "u1").Return(studentAccount(), nil).Once()
		mockMaterials.On("Upload", mock.Anything, mock.Anything, mock.MatchedBy(func(in service.UploadInput) bool {
			return in.Title == "Final Quiz" && in.Semester == 3 && in.FileName == "quiz.pdf"
		}), mock.Anything).Return(&model.Material{ID: "m1", Status: model.StatusPending}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/materials", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set(IdentityHeader, "u1")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.Material
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, model.StatusPending, result.Status)
		mockAccounts.AssertExpectations(t)
		mockMaterials.AssertExpectations(t)
	})

	t.Run("no file", func(t *testing.T) {
		mockAccounts.On("Resolve", mock.Anything, "u1").Return(studentAccount(), nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/materials", nil)
		req.Header.Set(IdentityHeader, "u1")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
		mockAccounts.AssertExpectations(t)
	})

	t.Run("missing identity never reaches the service", func(t *testing.T) {
		body, contentType := uploadForm(t)

		req := httptest.NewRequest(http.MethodPost, "/materials", body)
		req.Header.Set("Content-Type", contentType)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("partial upload maps to UPLOAD_ERROR", func(t *testing.T) {
		body, contentType := uploadForm(t)

		mockAccounts.On("Resolve", mock.Anything, "u1").Return(studentAccount(), nil).Once()
		mockMaterials.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &service.UploadError{ObjectKey: "materials/u1/x", Err: errors.New("rollback failed")}).Once()

		req := httptest.NewRequest(http.MethodPost, "/materials", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set(IdentityHeader, "u1")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "UPLOAD_ERROR", res.Error.Code)
		mockAccounts.AssertExpectations(t)
		mockMaterials.AssertExpectations(t)
	})
}

func TestListPendingMaterials(t *testing.T) {
	mockAccounts := new(serviceMocks.MockAccountService)
	mockModeration := new(serviceMocks.MockModerationService)
	app := fiber.New()
	app.Get("/admin/materials/pending", ListPendingMaterials(mockAccounts, mockModeration))

	t.Run("admin sees the queue", func(t *testing.T) {
		mockAccounts.On("Resolve", mock.Anything, "a1").Return(adminAccount(), nil).Once()
		mockModeration.On("ListPending", mock.Anything, mock.Anything).
			Return([]model.Material{{ID: "m1", Status: model.StatusPending}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/admin/materials/pending", nil)
		req.Header.Set(IdentityHeader, "a1")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockModeration.AssertExpectations(t)
	})

	t.Run("student is forbidden", func(t *testing.T) {
		mockAccounts.On("Resolve", mock.Anything, "u1").Return(studentAccount(), nil).Once()
		mockModeration.On("ListPending", mock.Anything, mock.Anything).
			Return(nil, service.ErrPermissionDenied).Once()

		req := httptest.NewRequest(http.MethodGet, "/admin/materials/pending", nil)
		req.Header.Set(IdentityHeader, "u1")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "FORBIDDEN", res.Error.Code)
	})
}

func TestModerationStats(t *testing.T) {
	mockAccounts := new(serviceMocks.MockAccountService)
	mockModeration := new(serviceMocks.MockModerationService)
	app := fiber.New()
	app.Get("/admin/materials/stats", ModerationStats(mockAccounts, mockModeration))

	mockAccounts.On("Resolve", mock.Anything, "a1").Return(adminAccount(), nil).Once()
	mockModeration.On("Stats", mock.Anything, mock.Anything).
		Return(&repository.CountsByStatus{Pending: 2, Approved: 5, Rejected: 1}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/admin/materials/stats", nil)
	req.Header.Set(IdentityHeader, "a1")
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var counts repository.CountsByStatus
	json.NewDecoder(resp.Body).Decode(&counts)
	assert.Equal(t, 5, counts.Approved)
	mockModeration.AssertExpectations(t)
}

func TestDecideMaterial(t *testing.T) {
	mockAccounts := new(serviceMocks.MockAccountService)
	mockModeration := new(serviceMocks.MockModerationService)
	app := fiber.New()
	app.Patch("/admin/materials/:id/status", DecideMaterial(mockAccounts, mockModeration))

	patch := func(id, body, identity string) *http.Response {
		req := httptest.NewRequest(http.MethodPatch, "/admin/materials/"+id+"/status", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if identity != "" {
			req.Header.Set(IdentityHeader, identity)
		}
		resp, _ := app.Test(req)
		return resp
	}

	t.Run("approve", func(t *testing.T) {
		mockAccounts.On("Resolve", mock.Anything, "a1").Return(adminAccount(), nil).Once()
		mockModeration.On("Decide", mock.Anything, mock.Anything, "m1", model.StatusApproved).
			Return(&model.Material{ID: "m1", Status: model.StatusApproved}, nil).Once()

		resp := patch("m1", `{"status":"approved"}`, "a1")

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.Material
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, model.StatusApproved, result.Status)
		mockModeration.AssertExpectations(t)
	})

	t.Run("already moderated conflicts", func(t *testing.T) {
		mockAccounts.On("Resolve", mock.Anything, "a1").Return(adminAccount(), nil).Once()
		mockModeration.On("Decide", mock.Anything, mock.Anything, "m1", model.StatusRejected).
			Return(nil, service.ErrAlreadyModerated).Once()

		resp := patch("m1", `{"status":"rejected"}`, "a1")

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "CONFLICT", res.Error.Code)
	})

	t.Run("unknown material", func(t *testing.T) {
		mockAccounts.On("Resolve", mock.Anything, "a1").Return(adminAccount(), nil).Once()
		mockModeration.On("Decide", mock.Anything, mock.Anything, "missing", model.StatusApproved).
			Return(nil, service.ErrNotFound).Once()

		resp := patch("missing", `{"status":"approved"}`, "a1")

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("missing identity", func(t *testing.T) {
		resp := patch("m1", `{"status":"approved"}`, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestGenerateStudyGuide(t *testing.T) {
	mockSvc := new(serviceMocks.MockStudyGuideService)
	app := fiber.New()
	app.Post("/study-guides", GenerateStudyGuide(mockSvc))

	post := func(body string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/study-guides", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)
		return resp
	}

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Generate", mock.Anything, "Operating Systems").
			Return(&model.StudyGuide{
				Topic:             "Operating Systems",
				KeyConcepts:       []string{"processes"},
				Summary:           "summary",
				PracticeQuestions: []string{"q1", "q2", "q3"},
			}, nil).Once()

		resp := post(`{"topic":"Operating Systems"}`)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var guide model.StudyGuide
		json.NewDecoder(resp.Body).Decode(&guide)
		assert.Equal(t, "Operating Systems", guide.Topic)
		mockSvc.AssertExpectations(t)
	})

	t.Run("blank topic", func(t *testing.T) {
		mockSvc.On("Generate", mock.Anything, "").
			Return(nil, &service.ValidationError{Fields: map[string]string{"topic": "topic is required"}}).Once()

		resp := post(`{"topic":""}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("generator failure maps to GENERATION_ERROR", func(t *testing.T) {
		mockSvc.On("Generate", mock.Anything, "Calculus").
			Return(nil, &service.GenerationError{Err: errors.New("upstream timeout")}).Once()

		resp := post(`{"topic":"Calculus"}`)

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "GENERATION_ERROR", res.Error.Code)
	})
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	RegisterRoutes(app, nil,
		new(serviceMocks.MockAccountService),
		new(serviceMocks.MockMaterialService),
		new(serviceMocks.MockModerationService),
		new(serviceMocks.MockStudyGuideService),
	)

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "METHOD_NOT_ALLOWED", res.Error.Code)
	})
}
