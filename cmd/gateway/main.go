package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/quizforge/quizforge/internal/api/http"
	"github.com/quizforge/quizforge/internal/auth"
	"github.com/quizforge/quizforge/internal/config"
	"github.com/quizforge/quizforge/internal/db"
	"github.com/quizforge/quizforge/internal/parser"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/rbac"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	tuning, err := config.LoadTuning(cfg.ParserTuningPath)
	if err != nil {
		log.Fatalf("parser tuning: %v", err)
	}
	p := parser.New(parser.WithTuning(tuning))

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := quiz.NewSQLStore(dbh, cfg.DBDriver)

	authSvc := auth.NewAuthService(cfg.AuthHMACSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, dbh, auth.Credentials{
		AdminUser:     cfg.AdminUser,
		AdminPassHash: cfg.AdminPassHash,
	}))

	// Protected API
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.With(rbac.Require("parse:preview")).Post("/parse/preview", api.ParsePreviewHandler(p))
		pr.With(rbac.Require("parse:detect")).Post("/parse/detect", api.DetectFormatHandler())

		pr.With(rbac.Require("quiz:create")).Post("/quizzes", api.CreateQuizHandler(p, store))
		pr.With(rbac.Require("quiz:view")).Get("/quizzes", api.ListQuizzesHandler(store))
		pr.With(rbac.Require("quiz:view")).Get("/quizzes/{quizID}", api.GetQuizHandler(store))
		pr.With(rbac.RequireAny("quiz:delete_own", "quiz:delete")).Delete("/quizzes/{quizID}", api.DeleteQuizHandler(store))
		pr.With(rbac.Require("quiz:export")).Get("/quizzes/{quizID}/export", api.ExportQuizHandler(store))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("quizforge gateway listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
