package routes

import (
	"encoding/json"
	"net/http"

	"quill/app/controllers"
	"quill/app/middleware"
	"quill/app/repositories"
	"quill/app/services"

	"github.com/gorilla/mux"
)

// SetupRoutes defines the application's routes over the given store and returns a router.
func SetupRoutes(store *repositories.Store) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	authorController := controllers.NewAuthorController(services.NewAuthorService(store.Authors()))
	postController := controllers.NewPostController(services.NewPostService(store.Posts()))

	router.HandleFunc("/healthz", health(store)).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	// Authors API endpoints
	authors := api.PathPrefix("/authors").Subrouter()
	authors.HandleFunc("", authorController.Index).Methods("GET")
	authors.HandleFunc("", authorController.Create).Methods("POST")
	authors.HandleFunc("/{id:[0-9]+}", authorController.Show).Methods("GET")
	authors.HandleFunc("/{id:[0-9]+}", authorController.Replace).Methods("PUT")
	authors.HandleFunc("/{id:[0-9]+}", authorController.Patch).Methods("PATCH")
	authors.HandleFunc("/{id:[0-9]+}", authorController.Delete).Methods("DELETE")

	// Posts API endpoints
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id:[0-9]+}", postController.Replace).Methods("PUT")
	posts.HandleFunc("/{id:[0-9]+}", postController.Patch).Methods("PATCH")
	posts.HandleFunc("/{id:[0-9]+}", postController.Delete).Methods("DELETE")

	router.NotFoundHandler = middleware.RequestID(middleware.Logger(http.HandlerFunc(notFound)))
	router.MethodNotAllowedHandler = middleware.RequestID(middleware.Logger(http.HandlerFunc(methodNotAllowed)))

	return router
}

func health(store *repositories.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, code := "ok", http.StatusOK
		if store.DB().IsClosed() {
			status, code = "unavailable", http.StatusServiceUnavailable
		}
		writeJSON(w, code, map[string]string{"status": status})
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
