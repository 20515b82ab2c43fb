package middleware

import (
	"net/http"

	"github.com/vfg2006/ads-pilot-api/pkg/log"
)

var allowedOrigins = []string{
	"http://localhost:8000",
	"http://localhost:3000",
	"http://127.0.0.1:8000",
	"http://127.0.0.1:3000",
	"https://adspilotai.com",
	"https://www.adspilotai.com",
}

func isOriginAllowed(origin string) bool {
	for _, allowedOrigin := range allowedOrigins {
		if origin == allowedOrigin {
			return true
		}
	}
	return false
}

func Cors() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// Origens fora da lista continuam liberadas em dev, apenas com aviso
			if origin != "" && !isOriginAllowed(origin) {
				log.L.WithField("origin", origin).Warn("CORS: origem fora da lista permitida")
			}

			if origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Max-Age", "86400") // Cache do CORS por 24 horas
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
