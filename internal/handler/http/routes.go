package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// credentialed cross-origin calls require echoing an explicit origin;
	// a wildcard is incompatible with cookies
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Trace-ID"},
		ExposedHeaders:   []string{"Set-Cookie"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Route("/api", func(api chi.Router) {
		// routes without authorization
		api.Group(func(r chi.Router) {
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)
			r.Post("/auth/logout", h.logout)
		})

		// routes behind the session guard
		api.Group(func(r chi.Router) {
			r.Use(h.sessionAuth)

			r.Get("/auth/me", h.me)
			r.Put("/auth/profile", h.updateProfile)
			r.Delete("/auth/profile", h.deleteAccount)

			r.Get("/tasks", h.listTasks)
			r.Post("/tasks", h.createTask)
			r.Patch("/tasks/{id}/status", h.toggleTaskStatus)
			r.Patch("/tasks/{id}/title", h.updateTaskTitle)
			r.Patch("/tasks/{id}/date", h.updateTaskDueDate)
			r.Delete("/tasks/{id}", h.deleteTask)
		})
	})

	return router
}
