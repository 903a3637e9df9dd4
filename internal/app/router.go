package app

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/seba-moreno/real-estate-tracker/internal/config"
	"github.com/seba-moreno/real-estate-tracker/internal/controllers"
	"github.com/seba-moreno/real-estate-tracker/internal/middleware"
	"github.com/seba-moreno/real-estate-tracker/internal/routes"
	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

// NewRouter builds the full HTTP handler: routes, middleware chain and CORS.
func NewRouter(a *App) http.Handler {
	// 1) Controllers
	healthCtrl := controllers.NewHealthController(a, a.Config.AppVersion)
	propertyCtrl := controllers.NewPropertyController(a.PropertyService)
	conceptCtrl := controllers.NewConceptController(a.ConceptService)
	contractCtrl := controllers.NewContractController(a.ContractService)
	pcCtrl := controllers.NewPropertiesConceptsController(a.PropertiesConceptsService)
	txCtrl := controllers.NewTransactionController(a.TransactionService)

	// 2) Routes
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	router.HandleFunc(routes.Root, healthCtrl.RootHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.HealthDB, healthCtrl.DBHealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Version, healthCtrl.VersionHandler).Methods(http.MethodGet)

	router.HandleFunc(routes.Property, propertyCtrl.ListHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Property, propertyCtrl.CreateHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.PropertyByID, propertyCtrl.GetHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.PropertyByID, propertyCtrl.UpdateHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.PropertyByID, propertyCtrl.DeleteHandler).Methods(http.MethodDelete)

	router.HandleFunc(routes.Concept, conceptCtrl.ListHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Concept, conceptCtrl.CreateHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.ConceptByID, conceptCtrl.GetHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.ConceptByID, conceptCtrl.UpdateHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.ConceptByID, conceptCtrl.DeleteHandler).Methods(http.MethodDelete)

	router.HandleFunc(routes.Contract, contractCtrl.ListHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Contract, contractCtrl.CreateHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.ContractEndingIn, contractCtrl.EndingInHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.ContractByID, contractCtrl.GetHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.ContractByID, contractCtrl.UpdateHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.ContractByID, contractCtrl.DeleteHandler).Methods(http.MethodDelete)

	router.HandleFunc(routes.PropertiesConcepts, pcCtrl.ListHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.PropertiesConcepts, pcCtrl.CreateHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.PropertiesConceptsCombos, pcCtrl.ListHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.PropertiesConceptsByID, pcCtrl.GetHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.PropertiesConceptsByID, pcCtrl.UpdateHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.PropertiesConceptsByID, pcCtrl.DeleteHandler).Methods(http.MethodDelete)

	router.HandleFunc(routes.Transaction, txCtrl.ListHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Transaction, txCtrl.CreateHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.TransactionBalance, txCtrl.BalanceHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.TransactionByID, txCtrl.GetHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.TransactionByID, txCtrl.UpdateHandler).Methods(http.MethodPut)
	router.HandleFunc(routes.TransactionByID, txCtrl.DeleteHandler).Methods(http.MethodDelete)

	// 3) Middleware, innermost first
	var handler http.Handler = router
	handler = middleware.RateLimitMiddleware(a.RateLimitStore, a.Config.LDFlag_RateLimitPerMinute, config.RateLimitWindow)(handler)
	handler = middleware.AccessLogMiddleware(handler)
	handler = middleware.CorrelationIDMiddleware(handler)
	handler = trimTrailingSlash(handler)

	// 4) CORS
	origins := []string{"*"}
	if a.Config.LDFlag_CORSHighSecurity && a.Config.AppUrl != "" {
		origins = []string{a.Config.AppUrl}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", utils.HeaderRequestID},
		ExposedHeaders: []string{utils.HeaderRequestID},
	})
	return c.Handler(handler)
}

// trimTrailingSlash lets "/api/v1/property/" reach the same route as "/api/v1/property".
func trimTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.URL.Path) > 1 && strings.HasSuffix(r.URL.Path, "/") {
			r.URL.Path = strings.TrimRight(r.URL.Path, "/")
			if r.URL.Path == "" {
				r.URL.Path = "/"
			}
			r.URL.RawPath = ""
		}
		next.ServeHTTP(w, r)
	})
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Resource not found", nil)
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondErrorWithCode(w, http.StatusMethodNotAllowed, utils.ErrCodeMethodNotAllowed, "Method not allowed", nil)
}
