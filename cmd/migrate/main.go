package main

import (
	"flag"
	"fmt"
	"net/url"

	"go-ecommerce-api/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
)

func main() {
	down := flag.Bool("down", false, "roll back all migrations instead of applying them")
	source := flag.String("source", "file://db/migrations", "migration source URL")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(cfg.DB.User), url.QueryEscape(cfg.DB.Password),
		cfg.DB.Host, cfg.DB.Port, cfg.DB.Name,
	)

	m, err := migrate.New(*source, dsn)
	if err != nil {
		logrus.Fatalf("Failed to initialize migrations: %v", err)
	}
	defer m.Close()

	logrus.Info("Running migrations...")

	if *down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil && err != migrate.ErrNoChange {
		logrus.Fatalf("Migration failed: %v", err)
	}

	logrus.Info("Migrations completed successfully")
}
