package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/formpulse/backend/conf"
	"github.com/formpulse/backend/form"
	formhttp "github.com/formpulse/backend/form/http"
	"github.com/formpulse/backend/http"
	"github.com/formpulse/backend/subm"
	submhttp "github.com/formpulse/backend/subm/http"
	"github.com/formpulse/backend/user"
	userhttp "github.com/formpulse/backend/user/http"
)

func main() {
	// .env is optional outside local dev
	_ = godotenv.Load()

	cfg, err := conf.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	jwtKey, err := conf.JwtKeyFromEnv()
	if err != nil {
		slog.Error("JWT_KEY is not set")
		os.Exit(1)
	}

	ctx := context.Background()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.DynamoDB.Region))
	if err != nil {
		slog.Error("unable to load AWS SDK config", "error", err)
		os.Exit(1)
	}
	ddbClient := dynamodb.NewFromConfig(awsCfg)

	userSrvc := user.NewUserSrvc(
		user.NewDynamoDbUsersTable(ddbClient, cfg.DynamoDB.UsersTable))
	formSrvc := form.NewFormSrvc(
		form.NewDynamoDbFormTable(ddbClient, cfg.DynamoDB.FormsTable))
	submSrvc := subm.NewSubmSrvc(
		subm.NewDynamoDbSubmTable(ddbClient, cfg.DynamoDB.SubmsTable),
		formSrvc)

	httpServer := http.NewHttpServer(
		userhttp.NewUserHttpHandler(userSrvc, jwtKey),
		formhttp.NewFormHttpHandler(formSrvc),
		submhttp.NewSubmHttpHandler(submSrvc),
		jwtKey,
		cfg.HTTP.CorsOrigins,
	)

	log.Printf("Starting server on %s", cfg.HTTP.Address)
	err = httpServer.Start(cfg.HTTP.Address)
	log.Printf("Server stopped with error: %v", err)
}
