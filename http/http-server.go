package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"

	formhttp "github.com/formpulse/backend/form/http"
	submhttp "github.com/formpulse/backend/subm/http"
	"github.com/formpulse/backend/user/auth"
	userhttp "github.com/formpulse/backend/user/http"
)

type HttpServer struct {
	router *chi.Mux
}

func NewHttpServer(
	userHandler *userhttp.UserHttpHandler,
	formHandler *formhttp.FormHttpHandler,
	submHandler *submhttp.SubmHttpHandler,
	jwtKey []byte,
	corsOrigins []string,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("formpulse", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(jwtKey))
	router.Use(newStatsLogger().middleware)

	userHandler.RegisterRoutes(router)
	formHandler.RegisterRoutes(router)
	submHandler.RegisterRoutes(router)

	return &HttpServer{router: router}
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

func (httpserver *HttpServer) Handler() http.Handler {
	return httpserver.router
}
