package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"minisocial/internal/config"
	"minisocial/internal/di"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system env variables")
	}

	cfg := config.Load()
	log.Println("Configuration loaded")

	app, cleanup, err := di.InitializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer cleanup()
	log.Println("Dependencies wired successfully")

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      newRouter(app),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	log.Printf("Social service listening on :%s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Failed to serve HTTP: %v", err)
	}
}

// newRouter mounts register/login and the health check publicly; every
// other route sits behind the session middleware.
func newRouter(app *di.Application) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods("GET")

	router.HandleFunc("/api/register", app.UserHandler.Register).Methods("POST")
	router.HandleFunc("/api/login", app.UserHandler.Login).Methods("POST")

	api := router.PathPrefix("/api").Subrouter()
	api.Use(app.Sessions.Middleware)

	api.HandleFunc("/logout", app.UserHandler.Logout).Methods("POST")

	api.HandleFunc("/feed", app.FeedHandlers.ListFeed).Methods("GET")
	api.HandleFunc("/posts", app.FeedHandlers.CreatePost).Methods("POST")
	api.HandleFunc("/posts/{id:[0-9]+}", app.FeedHandlers.DeletePost).Methods("DELETE")
	api.HandleFunc("/posts/{id:[0-9]+}/like", app.FeedHandlers.ToggleLike).Methods("POST")
	api.HandleFunc("/posts/{id:[0-9]+}/comments", app.FeedHandlers.ListComments).Methods("GET")
	api.HandleFunc("/posts/{id:[0-9]+}/comments", app.FeedHandlers.AddComment).Methods("POST")

	api.HandleFunc("/messages", app.ChatHandler.Mailbox).Methods("GET")
	api.HandleFunc("/messages", app.ChatHandler.Send).Methods("POST")
	api.HandleFunc("/messages/{username}", app.ChatHandler.Conversation).Methods("GET")

	api.HandleFunc("/admin/users", app.AdminHandler.ListUsers).Methods("GET")
	api.HandleFunc("/admin/users/{id:[0-9]+}/toggle-admin", app.AdminHandler.ToggleAdmin).Methods("POST")
	api.HandleFunc("/admin/posts/{id:[0-9]+}", app.AdminHandler.DeletePost).Methods("DELETE")

	return router
}
