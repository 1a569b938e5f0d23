package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "tripplanner/internal/config"
	router "tripplanner/internal/http"
	"tripplanner/internal/http/handlers"
	"tripplanner/internal/llm"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	planLog := repositories.PlanLogRepository{}
	if planLog.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := planLog.EnsureSchema(ctx); err != nil {
			log.Printf("Gagal menyiapkan tabel plan_logs: %v", err)
		}
		cancel()
	}

	plans := handlers.PlanHandler{
		Log:      planLog,
		Currency: env.Currency,
		Tokens: services.PlanTokens{
			Secret: []byte(env.PlanTokenSecret),
			TTL:    env.PlanTokenTTL,
		},
	}

	gen, err := llm.NewOpenAIGenerator(llm.OpenAIConfig{
		APIKey:    env.OpenAIAPIKey,
		Model:     env.OpenAIModel,
		BaseURL:   env.OpenAIBaseURL,
		MaxTokens: env.LLMMaxTokens,
		Timeout:   env.LLMTimeout,
	})
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		log.Println("OPENAI_API_KEY kosong, pembuatan itinerary AI dinonaktifkan")
	case err != nil:
		log.Fatalf("Gagal menyiapkan client OpenAI: %v", err)
	default:
		plans.Generator = gen
	}

	if len(plans.Tokens.Secret) == 0 {
		// Tokens signed with a per-process secret stop verifying after restart.
		secret, err := services.NewPlanSecret()
		if err != nil {
			log.Fatalf("Gagal membuat secret token: %v", err)
		}
		plans.Tokens.Secret = secret
		log.Println("warning: PLAN_TOKEN_SECRET kosong, memakai secret acak per proses")
	}

	r := router.NewRouter(env, plans)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      env.LLMTimeout + 30*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server berjalan di http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Gagal menjalankan server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Mematikan server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown server gagal: %v", err)
	}

	log.Println("Server berhenti dengan aman.")
}
