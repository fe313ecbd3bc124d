package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/pagination"
	"dental-clinic-api/pkg/response"
	"dental-clinic-api/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDirectoryUsecase struct {
	mock.Mock
}

func (m *mockDirectoryUsecase) ListPersonnel(ctx context.Context, personnelType entity.PersonnelType, query dto.DirectoryQuery) (*dto.ListResponse[dto.PersonnelResponse], error) {
	args := m.Called(ctx, personnelType, query)
	res, _ := args.Get(0).(*dto.ListResponse[dto.PersonnelResponse])
	return res, args.Error(1)
}

func (m *mockDirectoryUsecase) ListPatients(ctx context.Context, query dto.DirectoryQuery) (*dto.ListResponse[dto.PatientResponse], error) {
	args := m.Called(ctx, query)
	res, _ := args.Get(0).(*dto.ListResponse[dto.PatientResponse])
	return res, args.Error(1)
}

func (m *mockDirectoryUsecase) GetPersonnel(ctx context.Context, id int, personnelType entity.PersonnelType) (*dto.PersonnelResponse, error) {
	args := m.Called(ctx, id, personnelType)
	res, _ := args.Get(0).(*dto.PersonnelResponse)
	return res, args.Error(1)
}

func (m *mockDirectoryUsecase) GetPatient(ctx context.Context, id int) (*dto.PatientResponse, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*dto.PatientResponse)
	return res, args.Error(1)
}

type mockSessionUsecase struct {
	mock.Mock
}

func (m *mockSessionUsecase) ListSessions(ctx context.Context, sessionType entity.SessionType, query dto.SessionListQuery) (*dto.ListResponse[dto.SessionResponse], error) {
	args := m.Called(ctx, sessionType, query)
	res, _ := args.Get(0).(*dto.ListResponse[dto.SessionResponse])
	return res, args.Error(1)
}

func (m *mockSessionUsecase) GetSessionInfo(ctx context.Context, id int, sessionType entity.SessionType) (*dto.SessionResponse, error) {
	args := m.Called(ctx, id, sessionType)
	res, _ := args.Get(0).(*dto.SessionResponse)
	return res, args.Error(1)
}

func (m *mockSessionUsecase) GetExaminationInfo(ctx context.Context, id int) (*dto.SessionResponse, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*dto.SessionResponse)
	return res, args.Error(1)
}

func (m *mockSessionUsecase) GetTreatmentInfo(ctx context.Context, id int) (*dto.TreatmentSessionResponse, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*dto.TreatmentSessionResponse)
	return res, args.Error(1)
}

func (m *mockSessionUsecase) CreateSession(ctx context.Context, sessionType entity.SessionType, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	args := m.Called(ctx, sessionType, req)
	res, _ := args.Get(0).(*dto.SessionResponse)
	return res, args.Error(1)
}

type envelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func serve(h http.HandlerFunc, method, target string, body string, vars map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestListByType_LimitRequired(t *testing.T) {
	uc := new(mockDirectoryUsecase)
	h := NewPersonnelHandler(uc, pagination.NewPaginator(100))

	endpoints := map[string]http.HandlerFunc{
		"dentists":  h.ListByType(entity.PersonnelTypeDentist),
		"staffs":    h.ListByType(entity.PersonnelTypeStaff),
		"personels": h.ListPersonnel,
		"patients":  h.ListPatients,
	}

	for name, endpoint := range endpoints {
		t.Run(name, func(t *testing.T) {
			rec := serve(endpoint, http.MethodGet, "/"+name, "", nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, 400, body.Status)
			assert.Equal(t, "limit is required", body.Message)
		})
	}
	uc.AssertNotCalled(t, "ListPersonnel", mock.Anything, mock.Anything, mock.Anything)
}

func TestListByType(t *testing.T) {
	uc := new(mockDirectoryUsecase)
	h := NewPersonnelHandler(uc, pagination.NewPaginator(100))

	query := dto.DirectoryQuery{Name: "budi", Page: pagination.Params{Page: 1, Limit: 10, Skip: 10, Take: 10}}
	uc.On("ListPersonnel", mock.Anything, entity.PersonnelTypeDentist, query).Return(&dto.ListResponse[dto.PersonnelResponse]{
		List:  []dto.PersonnelResponse{{ID: 2, Name: "Dr. Budi", Type: "DENTIST"}},
		Total: 11,
	}, nil)

	rec := serve(h.ListByType(entity.PersonnelTypeDentist), http.MethodGet, "/dentists?limit=10&page=1&name=budi", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var data dto.ListResponse[dto.PersonnelResponse]
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
	assert.Equal(t, int64(11), data.Total)
	assert.Equal(t, "Dr. Budi", data.List[0].Name)
}

func TestListPersonnel_TypeQuery(t *testing.T) {
	uc := new(mockDirectoryUsecase)
	h := NewPersonnelHandler(uc, pagination.NewPaginator(100))

	uc.On("ListPersonnel", mock.Anything, entity.PersonnelTypeAssistant, mock.Anything).
		Return(&dto.ListResponse[dto.PersonnelResponse]{List: []dto.PersonnelResponse{}}, nil)
	uc.On("ListPatients", mock.Anything, mock.Anything).
		Return(&dto.ListResponse[dto.PatientResponse]{List: []dto.PatientResponse{}}, nil)
	uc.On("ListPersonnel", mock.Anything, entity.PersonnelType("NURSE"), mock.Anything).
		Return(nil, usecase.ErrInvalidPersonnelType)

	rec := serve(h.ListPersonnel, http.MethodGet, "/personels?limit=5&type=assistant", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h.ListPersonnel, http.MethodGet, "/personels?limit=5&type=PATIENT", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertCalled(t, "ListPatients", mock.Anything, mock.Anything)

	rec = serve(h.ListPersonnel, http.MethodGet, "/personels?limit=5&type=nurse", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "type is invalid", decode(t, rec).Message)
}

func TestGetByType(t *testing.T) {
	uc := new(mockDirectoryUsecase)
	h := NewPersonnelHandler(uc, pagination.NewPaginator(100))

	uc.On("GetPersonnel", mock.Anything, 4, entity.PersonnelTypeStaff).Return(nil, usecase.ErrStaffNotFound)
	uc.On("GetPersonnel", mock.Anything, 5, entity.PersonnelTypeStaff).Return(nil, errors.New("db down"))

	rec := serve(h.GetByType(entity.PersonnelTypeStaff), http.MethodGet, "/staffs/4", "", map[string]string{"id": "4"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "staff not found", decode(t, rec).Message)

	rec = serve(h.GetByType(entity.PersonnelTypeStaff), http.MethodGet, "/staffs/5", "", map[string]string{"id": "5"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to get staff", decode(t, rec).Message)

	rec = serve(h.GetByType(entity.PersonnelTypeStaff), http.MethodGet, "/staffs/abc", "", map[string]string{"id": "abc"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid staff ID", decode(t, rec).Message)

	rec = serve(h.GetByType(""), http.MethodGet, "/personels/", "", map[string]string{"id": ""})
	assert.Equal(t, "id is required", decode(t, rec).Message)
}

func TestListSessions(t *testing.T) {
	uc := new(mockSessionUsecase)
	h := NewSessionHandler(uc, pagination.NewPaginator(100), validator.NewValidator())

	want := dto.SessionListQuery{Today: true, Page: pagination.Params{Limit: 20, Take: 20}}
	uc.On("ListSessions", mock.Anything, entity.SessionTypeExamination, want).Return(&dto.ListResponse[dto.SessionResponse]{
		List:  []dto.SessionResponse{{ID: 1, Type: "EXAMINATION"}},
		Total: 1,
	}, nil)

	rec := serve(h.ListSessions(entity.SessionTypeExamination), http.MethodGet, "/examinations?limit=20&today=true", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 200, decode(t, rec).Status)

	rec = serve(h.ListSessions(entity.SessionTypeExamination), http.MethodGet, "/examinations?limit=-2", "", nil)
	assert.Equal(t, "limit must be a positive number", decode(t, rec).Message)
}

func TestCreateSession(t *testing.T) {
	uc := new(mockSessionUsecase)
	h := NewSessionHandler(uc, pagination.NewPaginator(100), validator.NewValidator())

	uc.On("CreateSession", mock.Anything, entity.SessionTypeExamination, mock.MatchedBy(func(req *dto.CreateSessionRequest) bool {
		return req.PatientID == 1 && req.DentistID == 2 && req.RoomID == 3 && req.AssistantID == nil
	})).Return(&dto.SessionResponse{ID: 10, Status: "SCHEDULED"}, nil)

	body := `{"patient_id":1,"dentist_id":2,"room_id":3,"time":"2024-01-01T10:00:00Z"}`
	rec := serve(h.CreateSession(entity.SessionTypeExamination), http.MethodPost, "/examinations", body, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var session dto.SessionResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &session))
	assert.Equal(t, "SCHEDULED", session.Status)
	assert.Nil(t, session.AssistantID)
}

func TestCreateSession_Errors(t *testing.T) {
	uc := new(mockSessionUsecase)
	h := NewSessionHandler(uc, pagination.NewPaginator(100), validator.NewValidator())

	uc.On("CreateSession", mock.Anything, entity.SessionTypeTreatment, mock.MatchedBy(func(req *dto.CreateSessionRequest) bool {
		return req.RoomID == 999
	})).Return(nil, usecase.ErrRoomNotExist)

	rec := serve(h.CreateSession(entity.SessionTypeTreatment), http.MethodPost, "/treatments", `{"patient_id":1,"dentist_id":2,"room_id":999,"time":"2024-01-01T10:00:00Z"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Room is not exist", decode(t, rec).Message)

	rec = serve(h.CreateSession(entity.SessionTypeTreatment), http.MethodPost, "/treatments", `{"patient_id":`, nil)
	assert.Equal(t, "Invalid request body", decode(t, rec).Message)

	rec = serve(h.CreateSession(entity.SessionTypeTreatment), http.MethodPost, "/treatments", `{"patient_id":1,"dentist_id":2,"room_id":3,"assistant_id":-5,"time":"2024-01-01T10:00:00Z"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Validation failed", body.Message)
	assert.Contains(t, body.Errors, "assistant_id")
}

func TestGetExaminationInfo(t *testing.T) {
	uc := new(mockSessionUsecase)
	h := NewSessionHandler(uc, pagination.NewPaginator(100), validator.NewValidator())

	uc.On("GetExaminationInfo", mock.Anything, 3).Return(nil, usecase.ErrExaminationNotFound)
	uc.On("GetExaminationInfo", mock.Anything, 4).Return(&dto.SessionResponse{ID: 4, Type: "EXAMINATION"}, nil)

	rec := serve(h.GetExaminationInfo, http.MethodGet, "/examinations/3", "", map[string]string{"id": "3"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "examination not found", decode(t, rec).Message)

	rec = serve(h.GetExaminationInfo, http.MethodGet, "/examinations/4", "", map[string]string{"id": "4"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h.GetExaminationInfo, http.MethodGet, "/examinations/x", "", map[string]string{"id": "x"})
	assert.Equal(t, "Invalid examination ID", decode(t, rec).Message)
}

func TestGetTreatmentInfo(t *testing.T) {
	uc := new(mockSessionUsecase)
	h := NewSessionHandler(uc, pagination.NewPaginator(100), validator.NewValidator())

	uc.On("GetTreatmentInfo", mock.Anything, 9).Return(nil, fmt.Errorf("find treatment: %w", errors.New("timeout")))

	rec := serve(h.GetTreatmentInfo, http.MethodGet, "/treatments/9", "", map[string]string{"id": "9"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Failed to get treatment", body.Message)
	assert.NotContains(t, rec.Body.String(), "timeout")
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, usecase.ErrMissingFields, "fallback")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "You are missing some fields !", body.Message)

	rec = httptest.NewRecorder()
	writeError(rec, errors.New("boom"), "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
