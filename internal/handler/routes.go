package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/TsaqifHasbi/todo-api-go/internal/middleware"
)

// NewRouter builds the route table, resolved once at startup. The register
// and login routes sit behind a per-IP rate limit; everything under /api
// except those two requires a valid bearer token.
func NewRouter(jwtSecret string, auth *AuthHandler, tasks *TaskHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/auth/register", auth.HandleRegister)
		r.Post("/api/auth/login", auth.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(jwtSecret))
		r.Get("/api/auth/me", auth.HandleMe)
		r.Delete("/api/auth/me", auth.HandleDeleteAccount)

		r.Get("/api/tasks", tasks.HandleListTasks)
		r.Post("/api/tasks", tasks.HandleCreateTask)
		r.Put("/api/tasks/{task_id}", tasks.HandleUpdateTask)
		r.Delete("/api/tasks/{task_id}", tasks.HandleDeleteTask)
	})

	return r
}
