package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/auth"
	"workforce/backend/internal/commands"
	"workforce/backend/internal/pkg/config"
	"workforce/backend/internal/pkg/repository/postgresql"
	"workforce/backend/internal/router"

	"github.com/ardanlabs/conf"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var build = "develop"

func main() {
	logger := log.New(os.Stdout, "WORKFORCE : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	if err := run(logger); err != nil {
		if !errors.Is(err, commands.ErrHelp) {
			logger.Println("error :", err)
		}
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	var cfg struct {
		conf.Version
		Args conf.Args
	}
	cfg.Version.SVN = build
	cfg.Version.Desc = "workforce outsourcing backend"

	const prefix = "WORKFORCE"
	if err := conf.Parse(os.Args[1:], prefix, &cfg); err != nil {
		switch {
		case errors.Is(err, conf.ErrHelpWanted):
			usage, err := conf.Usage(prefix, &cfg)
			if err != nil {
				return errors.Wrap(err, "generating config usage")
			}
			fmt.Println(usage)
			return commands.ErrHelp
		case errors.Is(err, conf.ErrVersionWanted):
			version, err := conf.VersionString(prefix, &cfg)
			if err != nil {
				return errors.Wrap(err, "generating config version")
			}
			fmt.Println(version)
			return commands.ErrHelp
		}
		return errors.Wrap(err, "parsing config")
	}

	yamlConfig, err := config.NewConfig()
	if err != nil {
		return errors.Wrap(err, "reading config.yaml")
	}

	postgresDB := postgresql.New(postgresql.Config{
		Username:   yamlConfig.DBUsername,
		Password:   yamlConfig.DBPassword,
		Host:       yamlConfig.DBHost,
		Port:       yamlConfig.DBPort,
		Name:       yamlConfig.DBName,
		DisableTLS: yamlConfig.DisableTLS,
	})
	defer postgresDB.Close()

	switch cfg.Args.Num(0) {
	case "migrate":
		commands.MigrateUP(postgresDB)
		logger.Println("migrations applied")
		return nil
	}

	redisDB := redis.NewClient(&redis.Options{
		Addr:     yamlConfig.RedisAddr,
		Password: yamlConfig.RedisPassword,
		DB:       0,
	})
	defer redisDB.Close()

	authenticator, err := auth.New(yamlConfig.PrivateKeyPath)
	if err != nil {
		return errors.Wrap(err, "constructing authenticator")
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	app := web.NewApp(shutdown)

	r := router.NewRouter(
		app,
		postgresDB,
		redisDB,
		yamlConfig.ServerPort,
		authenticator,
		yamlConfig.PrivateKeyPath,
	)

	logger.Println("starting server on", yamlConfig.ServerPort)

	return r.Init()
}
