package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App    App    `mapstructure:",squash"`
	Server Server `mapstructure:",squash"`
	Google Google `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	BackendURL  string `mapstructure:"backend_url"`
	FrontendURL string `mapstructure:"frontend_url"`
}

type Google struct {
	ClientID       string `mapstructure:"google_client_id"`
	ClientSecret   string `mapstructure:"google_client_secret"`
	DeveloperToken string `mapstructure:"google_developer_token"`
	AuthURL        string `mapstructure:"google_auth_url"`
	TokenURL       string `mapstructure:"google_token_url"`
	AdsBaseURL     string `mapstructure:"google_ads_base_url"`
	AdsVersion     string `mapstructure:"google_ads_version"`
	AdsURL         string `mapstructure:"-"`
	RedirectURL    string `mapstructure:"-"`
}

// HasClientSecret indica se o OAuth está configurado. Sem o client secret
// o fluxo de autorização inteiro fica indisponível
func (g Google) HasClientSecret() bool {
	return g.ClientSecret != ""
}

// HasDeveloperToken indica se a API do Google Ads pode ser consultada.
// Sem ele a listagem de contas é pulada e o scan degrada para dados mock
func (g Google) HasDeveloperToken() bool {
	return g.DeveloperToken != ""
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 3001)

	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_DEVELOPER_TOKEN", "") // opcional: sem ele o scan usa dados mock

	viper.SetDefault("GOOGLE_AUTH_URL", "https://accounts.google.com/o/oauth2/v2/auth")
	viper.SetDefault("GOOGLE_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v16")

	viper.SetDefault("BACKEND_URL", "http://localhost:3001")
	viper.SetDefault("FRONTEND_URL", "http://localhost:8000")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// URLs derivadas: a API do Google Ads é versionada e o redirect URI
	// precisa ser exatamente o mesmo nas duas pontas do fluxo OAuth
	config.Google.AdsURL = fmt.Sprintf("%s/%s", config.Google.AdsBaseURL, config.Google.AdsVersion)
	config.Google.RedirectURL = config.App.BackendURL + "/api/auth/callback/google"

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
