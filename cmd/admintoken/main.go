package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/ignatzorin/listing-reviews/internal/config"
	"github.com/ignatzorin/listing-reviews/internal/service"
)

// admintoken печатает подписанный токен администратора для дашборда.
func main() {
	subject := flag.String("sub", "dashboard", "subject токена")
	ttl := flag.Duration("ttl", 0, "время жизни токена (по умолчанию ADMIN_TOKEN_TTL)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("admintoken: ошибка загрузки конфигурации: %v", err)
	}
	if *ttl > 0 {
		cfg.AdminTokenTTL = *ttl
	}

	authorizer, err := service.NewAdminAuthorizer(cfg.AdminToken, cfg.JWTSecret, cfg.AdminTokenTTL)
	if err != nil {
		log.Fatalf("admintoken: %v", err)
	}

	token, expiresAt, err := authorizer.Issue(*subject)
	if err != nil {
		log.Fatalf("admintoken: не удалось выпустить токен (задан ли JWT_SECRET?): %v", err)
	}

	fmt.Println(token)
	log.Printf("admintoken: токен действует до %s", expiresAt.Format(time.RFC3339))
}
