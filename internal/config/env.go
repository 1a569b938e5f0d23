package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Env struct {
	AppEnv             string        `yaml:"app_env"`
	AppAddr            string        `yaml:"app_addr"`
	GinMode            string        `yaml:"gin_mode"`
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
	OpenAIAPIKey       string        `yaml:"openai_api_key"`
	OpenAIModel        string        `yaml:"openai_model"`
	OpenAIBaseURL      string        `yaml:"openai_base_url"`
	LLMMaxTokens       int           `yaml:"llm_max_tokens"`
	LLMTimeout         time.Duration `yaml:"llm_timeout"`
	PlanTokenSecret    string        `yaml:"plan_token_secret"`
	PlanTokenTTL       time.Duration `yaml:"plan_token_ttl"`
	DBDriver           string        `yaml:"db_driver"`
	DBDSN              string        `yaml:"db_dsn"`
	Currency           string        `yaml:"currency"`
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// LoadEnv reads .env (outside production), then the optional YAML file
// named by TRIPPLAN_CONFIG, then process environment, later sources win.
func LoadEnv() Env {
	if strings.TrimSpace(os.Getenv("APP_ENV")) != "production" {
		_ = godotenv.Load()
	}

	env := Env{}
	if path := strings.TrimSpace(os.Getenv("TRIPPLAN_CONFIG")); path != "" {
		if err := loadFile(path, &env); err != nil {
			log.Printf("warning: config file %s diabaikan: %v", path, err)
		}
	}

	setString(&env.AppEnv, "APP_ENV")
	setString(&env.AppAddr, "APP_ADDR")
	setString(&env.GinMode, "GIN_MODE")
	setString(&env.OpenAIAPIKey, "OPENAI_API_KEY")
	setString(&env.OpenAIModel, "OPENAI_MODEL")
	setString(&env.OpenAIBaseURL, "OPENAI_BASE_URL")
	setString(&env.PlanTokenSecret, "PLAN_TOKEN_SECRET")
	setString(&env.DBDriver, "DB_DRIVER")
	setString(&env.DBDSN, "DB_DSN")
	setString(&env.Currency, "CURRENCY")
	setInt(&env.LLMMaxTokens, "LLM_MAX_TOKENS")
	setDuration(&env.LLMTimeout, "LLM_TIMEOUT")
	setDuration(&env.PlanTokenTTL, "PLAN_TOKEN_TTL")
	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		env.CORSAllowedOrigins = splitList(v)
	}

	applyDefaults(&env)
	return env
}

func loadFile(path string, env *Env) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(raw, env)
}

func applyDefaults(env *Env) {
	if env.AppAddr == "" {
		env.AppAddr = ":8080"
	}
	if len(env.CORSAllowedOrigins) == 0 {
		env.CORSAllowedOrigins = append([]string(nil), defaultOrigins...)
	}
	if env.LLMTimeout <= 0 {
		env.LLMTimeout = 60 * time.Second
	}
	if env.PlanTokenTTL <= 0 {
		env.PlanTokenTTL = 24 * time.Hour
	}
	if env.DBDriver == "" {
		env.DBDriver = DriverMySQL
	}
	if env.Currency == "" {
		env.Currency = "USD"
	}
	env.Currency = strings.ToUpper(env.Currency)
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("warning: %s=%q bukan angka, diabaikan", key, v)
		return
	}
	*dst = n
}

func setDuration(dst *time.Duration, key string) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("warning: %s=%q bukan durasi, diabaikan", key, v)
		return
	}
	*dst = d
}

func splitList(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
