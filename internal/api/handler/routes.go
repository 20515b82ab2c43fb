package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-pilot-api/internal/api/handler/router"
	"github.com/vfg2006/ads-pilot-api/internal/config"
	"github.com/vfg2006/ads-pilot-api/internal/usecases/authorizing"
	"github.com/vfg2006/ads-pilot-api/internal/usecases/scanning"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Home() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: HomeHandler(),
		},
	}
}

func Healthcheck(cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/api/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(cfg),
		},
	}
}

func Authorization(service authorizing.Authorizer) []router.Route {
	return []router.Route{
		{
			Path:    "/api/auth/google",
			Method:  http.MethodGet,
			Handler: StartGoogleAuth(service),
		},
		{
			Path:    "/api/auth/callback/google",
			Method:  http.MethodGet,
			Handler: GoogleAuthCallback(service),
		},
	}
}

func Campaigns(service scanning.Scanner) []router.Route {
	return []router.Route{
		{
			Path:    "/api/campaigns/scan",
			Method:  http.MethodPost,
			Handler: ScanCampaigns(service),
		},
	}
}
