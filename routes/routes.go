package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "p9e.in/treeflow/docs"
	"p9e.in/treeflow/handlers"
	"p9e.in/treeflow/middleware"
	"p9e.in/treeflow/models"
	"p9e.in/treeflow/pkg/apperr"
)

// Options tunes the route table.
type Options struct {
	// RequireAuth puts resource routes behind a bearer token and a role
	// permission. The current-user route is always protected.
	RequireAuth bool
	// LoginRateLimit is requests per minute per IP on the public auth routes.
	LoginRateLimit int
	// UploadDir is served at /uploads/ when photos are stored locally.
	UploadDir string
}

type guardFunc func(permission string) func(http.Handler) http.Handler

// RegisterRoutes sets up all application routes
func RegisterRoutes(h *handlers.Handler, auth *middleware.Auth, opts Options) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Observe)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apperr.Write(w, apperr.NotFound("Ruta no encontrada"))
	})

	guard := guardFunc(func(string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler { return next }
	})
	if opts.RequireAuth {
		guard = func(permission string) func(http.Handler) http.Handler {
			return func(next http.Handler) http.Handler {
				return auth.JWTMiddleware(middleware.RequirePermission(permission)(next))
			}
		}
	}

	// =====================================================
	// System
	// =====================================================
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))
	if opts.UploadDir != "" {
		r.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.UploadDir))),
		)
	}

	api := r.PathPrefix("/api").Subrouter()
	registerAuthRoutes(api, h, auth, opts.LoginRateLimit)
	registerCensusRoutes(api, h, guard)
	registerMaintenanceRoutes(api, h, guard)
	registerWorkOrderRoutes(api, h, guard)
	registerLookupRoutes(api, h, guard)

	return r
}

// registerAuthRoutes registers the public account routes
func registerAuthRoutes(api *mux.Router, h *handlers.Handler, auth *middleware.Auth, limit int) {
	limited := middleware.RateLimitByIP(limit, "/api/auth")

	api.Handle("/auth/register", limited(http.HandlerFunc(h.Register))).Methods("POST")
	api.Handle("/auth/login", limited(http.HandlerFunc(h.Login))).Methods("POST")
	api.Handle("/auth/request-reset", limited(http.HandlerFunc(h.RequestReset))).Methods("POST")
	api.Handle("/auth/user", auth.JWTMiddleware(http.HandlerFunc(h.CurrentUser))).Methods("GET")
}

func registerCensusRoutes(api *mux.Router, h *handlers.Handler, guard guardFunc) {
	registerCRUDRoutes(api, "/arboles", "arbol", guard, crudHandlers{
		create: h.CreateCensusTree,
		getOne: h.GetCensusTree,
		update: h.UpdateCensusTree,
		delete: h.DeleteCensusTree,
	})
	read := guard("arbol:read")
	api.Handle("/arboles-censados", read(http.HandlerFunc(h.ListCensusTrees))).Methods("GET")
	api.Handle("/arboles-censados/export", read(http.HandlerFunc(h.ExportCensusTrees))).Methods("GET")
	api.Handle("/arboles-censados/geojson", read(http.HandlerFunc(h.CensusTreesGeoJSON))).Methods("GET")
	api.Handle("/arboles-censados/kmz", read(http.HandlerFunc(h.CensusTreesKMZ))).Methods("GET")
	api.Handle("/arboles-censados/estadisticas", read(http.HandlerFunc(h.CensusTreeStats))).Methods("GET")
	api.Handle("/arboles-filtrados", read(http.HandlerFunc(h.ListCensusTreeSummaries))).Methods("GET")

	registerCRUDRoutes(api, "/plantaciones", "plantacion", guard, crudHandlers{
		getAll: h.ListPlantings,
		create: h.CreatePlanting,
		getOne: h.GetPlanting,
		update: h.UpdatePlanting,
		delete: h.DeletePlanting,
	})
}

func registerMaintenanceRoutes(api *mux.Router, h *handlers.Handler, guard guardFunc) {
	registerCRUDRoutes(api, "/mantenimientos", "mantenimiento", guard, crudHandlers{
		getAll: h.ListMaintenance,
		create: h.CreateMaintenance,
		getOne: h.GetMaintenance,
		update: h.UpdateMaintenance,
		delete: h.DeleteMaintenance,
	})
	api.Handle("/mantenimiento", guard("mantenimiento:read")(
		http.HandlerFunc(h.ListMaintenance))).Methods("GET")
}

func registerWorkOrderRoutes(api *mux.Router, h *handlers.Handler, guard guardFunc) {
	registerCRUDRoutes(api, "/ordenes", "orden", guard, crudHandlers{
		getAll: h.ListWorkOrders,
		create: h.CreateWorkOrder,
		getOne: h.GetWorkOrder,
		update: h.UpdateWorkOrder,
		delete: h.DeleteWorkOrder,
	})
	api.Handle("/ordenes-empresa/{id:[0-9]+}", guard("orden:update")(
		http.HandlerFunc(h.UpdateWorkOrderByContractor))).Methods("PUT")

	read := guard("orden:read")
	api.Handle("/mantenimientos-ordenes", read(http.HandlerFunc(h.ListMaintenanceOrders))).Methods("GET")
	api.Handle("/mantenimientos-ordenes/export", read(http.HandlerFunc(h.ExportMaintenanceOrders))).Methods("GET")
}

// registerLookupRoutes exposes every reference table read-only
func registerLookupRoutes(api *mux.Router, h *handlers.Handler, guard guardFunc) {
	read := guard("catalogo:read")
	for _, l := range models.Lookups {
		api.Handle("/"+l.Path, read(h.ListLookup(l))).Methods("GET")
	}
}

// crudHandlers holds handlers for a CRUD resource. Nil entries are not routed.
type crudHandlers struct {
	getAll func(http.ResponseWriter, *http.Request)
	create func(http.ResponseWriter, *http.Request)
	getOne func(http.ResponseWriter, *http.Request)
	update func(http.ResponseWriter, *http.Request)
	delete func(http.ResponseWriter, *http.Request)
}

// registerCRUDRoutes registers standard CRUD routes for a resource
func registerCRUDRoutes(router *mux.Router, path string, resource string, guard guardFunc, h crudHandlers) {
	byID := path + "/{id:[0-9]+}"

	if h.getAll != nil {
		router.Handle(path, guard(resource+":read")(http.HandlerFunc(h.getAll))).Methods("GET")
	}
	if h.create != nil {
		router.Handle(path, guard(resource+":create")(http.HandlerFunc(h.create))).Methods("POST")
	}
	if h.getOne != nil {
		router.Handle(byID, guard(resource+":read")(http.HandlerFunc(h.getOne))).Methods("GET")
	}
	if h.update != nil {
		router.Handle(byID, guard(resource+":update")(http.HandlerFunc(h.update))).Methods("PUT")
	}
	if h.delete != nil {
		router.Handle(byID, guard(resource+":delete")(http.HandlerFunc(h.delete))).Methods("DELETE")
	}
}
