package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"
)

const version = "1.0.0"

type config struct {
	port int
	env  string
	smtp struct {
		host     string
		port     int
		username string
		password string
		sender   string
	}
	jwtSecret string
	seed      bool
}

type application struct {
	config   config
	storage  *storage
	sessions *sessionRegistry
	mailer   *mailer
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	var cfg config
	flag.IntVar(&cfg.port, "port", 5000, "Server Port")
	flag.StringVar(&cfg.env, "env", "development", "Environment [development|production]")

	flag.StringVar(&cfg.smtp.host, "smtp-host", os.Getenv("SMTP_HOST"), "SMTP host")
	smtpPort := 25
	if v := os.Getenv("SMTP_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf(`invalid value %s for environment variable "SMTP_PORT"`, v)
		}
		smtpPort = p
	}
	flag.IntVar(&cfg.smtp.port, "smtp-port", smtpPort, "SMTP port")
	flag.StringVar(&cfg.smtp.username, "smtp-username", os.Getenv("SMTP_USERNAME"), "SMTP username")
	flag.StringVar(&cfg.smtp.password, "smtp-password", os.Getenv("SMTP_PASSWORD"), "SMTP password")
	flag.StringVar(&cfg.smtp.sender, "smtp-sender", os.Getenv("SMTP_SENDER"), "SMTP sender")

	flag.StringVar(&cfg.jwtSecret, "jwt-secret", os.Getenv("JWT_SECRET"), "JWT secret")
	flag.BoolVar(&cfg.seed, "seed", false, "Seed demo users, projects and tasks")
	flag.Parse()

	if cfg.jwtSecret == "" {
		secret := make([]byte, 32)
		_, err := rand.Read(secret[:])
		if err != nil {
			log.Fatal(err)
		}
		cfg.jwtSecret = string(secret)
	}

	app := &application{
		config:   cfg,
		storage:  newStorage(),
		sessions: newSessionRegistry([]byte(cfg.jwtSecret)),
	}
	if cfg.smtp.host != "" {
		app.mailer = newMailer(cfg.smtp.host, cfg.smtp.port, cfg.smtp.username, cfg.smtp.password, cfg.smtp.sender)
	}
	if cfg.seed {
		if err := seedDemoData(app.storage); err != nil {
			log.Fatal(err)
		}
		log.Println("seeded demo data; log in with pradnya@example.com / password123")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.port),
		Handler:      composeRoutes(app),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	log.Printf("Starting %s server on port %d\n", cfg.env, cfg.port)
	err := srv.ListenAndServe()
	log.Fatal(err)
}
