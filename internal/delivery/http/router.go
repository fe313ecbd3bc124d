package http

import (
	"net/http"

	"dental-clinic-api/internal/delivery/http/handler"
	"dental-clinic-api/internal/delivery/http/middleware"
	"dental-clinic-api/internal/domain/entity"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router           *mux.Router
	log              *logrus.Logger
	personnelHandler *handler.PersonnelHandler
	sessionHandler   *handler.SessionHandler
	catalogHandler   *handler.CatalogHandler
	auditLogHandler  *handler.AuditLogHandler
	healthHandler    *handler.HealthHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

// NewRouter wires the handlers. A nil authMiddleware mounts every group
// without authentication or role checks.
func NewRouter(
	log *logrus.Logger,
	personnelHandler *handler.PersonnelHandler,
	sessionHandler *handler.SessionHandler,
	catalogHandler *handler.CatalogHandler,
	auditLogHandler *handler.AuditLogHandler,
	healthHandler *handler.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		log:              log,
		personnelHandler: personnelHandler,
		sessionHandler:   sessionHandler,
		catalogHandler:   catalogHandler,
		auditLogHandler:  auditLogHandler,
		healthHandler:    healthHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.AccessLog(r.log))
	r.router.Use(middleware.Recovery(r.log))

	api := r.router.PathPrefix("/api").Subrouter()

	// Probes (public)
	api.HandleFunc("/health", r.healthHandler.Health).Methods(http.MethodGet)
	api.HandleFunc("/ready", r.healthHandler.Ready).Methods(http.MethodGet)

	// Dentist routes
	dentist := r.group(api, "", middleware.RequireDentist)
	dentist.HandleFunc("/dentists", r.personnelHandler.ListByType(entity.PersonnelTypeDentist)).Methods(http.MethodGet)
	dentist.HandleFunc("/dentist/{id}", r.personnelHandler.GetByType(entity.PersonnelTypeDentist)).Methods(http.MethodGet)
	dentist.HandleFunc("/sessions/{id}", r.sessionHandler.GetSessionInfo("")).Methods(http.MethodGet)

	// Admin routes
	admin := r.group(api, "/admin", middleware.RequireAdmin)
	admin.HandleFunc("/staffs", r.personnelHandler.ListByType(entity.PersonnelTypeStaff)).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Staff routes
	staff := r.group(api, "/staff", middleware.RequireStaff)

	// Sessions
	staff.HandleFunc("/examinations", r.sessionHandler.ListSessions(entity.SessionTypeExamination)).Methods(http.MethodGet)
	staff.HandleFunc("/examinations", r.sessionHandler.CreateSession(entity.SessionTypeExamination)).Methods(http.MethodPost)
	staff.HandleFunc("/examinations/{id}", r.sessionHandler.GetExaminationInfo).Methods(http.MethodGet)
	staff.HandleFunc("/re-examinations", r.sessionHandler.ListSessions(entity.SessionTypeReExamination)).Methods(http.MethodGet)
	staff.HandleFunc("/re-examinations", r.sessionHandler.CreateSession(entity.SessionTypeReExamination)).Methods(http.MethodPost)
	staff.HandleFunc("/re-examinations/{id}", r.sessionHandler.GetSessionInfo(entity.SessionTypeReExamination)).Methods(http.MethodGet)
	staff.HandleFunc("/treatments", r.sessionHandler.ListSessions(entity.SessionTypeTreatment)).Methods(http.MethodGet)
	staff.HandleFunc("/treatments", r.sessionHandler.CreateSession(entity.SessionTypeTreatment)).Methods(http.MethodPost)
	staff.HandleFunc("/treatments/{id}", r.sessionHandler.GetTreatmentInfo).Methods(http.MethodGet)
	staff.HandleFunc("/sessions/{id}", r.sessionHandler.GetSessionInfo("")).Methods(http.MethodGet)

	// Directory
	staff.HandleFunc("/personels", r.personnelHandler.ListPersonnel).Methods(http.MethodGet)
	staff.HandleFunc("/personels/{id}", r.personnelHandler.GetByType("")).Methods(http.MethodGet)
	staff.HandleFunc("/staffs/{id}", r.personnelHandler.GetByType(entity.PersonnelTypeStaff)).Methods(http.MethodGet)
	staff.HandleFunc("/dentists/{id}", r.personnelHandler.GetByType(entity.PersonnelTypeDentist)).Methods(http.MethodGet)
	staff.HandleFunc("/assistants/{id}", r.personnelHandler.GetByType(entity.PersonnelTypeAssistant)).Methods(http.MethodGet)
	staff.HandleFunc("/patients", r.personnelHandler.ListPatients).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}", r.personnelHandler.GetPatient).Methods(http.MethodGet)

	// Catalogue
	staff.HandleFunc("/rooms", r.catalogHandler.GetRooms).Methods(http.MethodGet)
	staff.HandleFunc("/categories", r.catalogHandler.GetCategories).Methods(http.MethodGet)
	staff.HandleFunc("/drugs", r.catalogHandler.GetDrugs).Methods(http.MethodGet)
	staff.HandleFunc("/teeth", r.catalogHandler.GetTeeth).Methods(http.MethodGet)

	return r.router
}

// Handler wraps the routes in CORS. It sits outside mux so preflight
// requests are answered even though no route accepts OPTIONS.
func (r *Router) Handler() http.Handler {
	return r.corsMiddleware.Handle(r.Setup())
}

// group mounts a subrouter behind authentication and gate.
func (r *Router) group(parent *mux.Router, prefix string, gate mux.MiddlewareFunc) *mux.Router {
	sub := parent.NewRoute().Subrouter()
	if prefix != "" {
		sub = parent.PathPrefix(prefix).Subrouter()
	}
	if r.authMiddleware != nil {
		sub.Use(r.authMiddleware.Authenticate)
		sub.Use(gate)
	}
	return sub
}
