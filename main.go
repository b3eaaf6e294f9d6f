package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/micromouse/api"
	api_i "github.com/beka-birhanu/micromouse/api/i"
	solverapi "github.com/beka-birhanu/micromouse/api/solver"
	"github.com/beka-birhanu/micromouse/config"
	"github.com/beka-birhanu/micromouse/infrastruture/leaderboard"
	"github.com/beka-birhanu/micromouse/infrastruture/repo"
	"github.com/beka-birhanu/micromouse/service"
	"github.com/beka-birhanu/micromouse/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient   *mongo.Client
	redisClient   *redis.Client
	runRepo       i.RunRepo
	runBoard      i.Leaderboard
	runService    i.Runner
	runController api_i.Controller
	router        *api.Router
	appLogger     *log.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%v", config.Envs.DBHost, config.Envs.DBPort)
	if config.Envs.DBUser != "" {
		uri = fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Failed to connect to MongoDB: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Printf("%s[ERROR]%s MongoDB ping failed: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Connected to MongoDB", config.LogInfoColor, config.LogColorReset)
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%v", config.Envs.RedisHost, config.Envs.RedisPort),
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Printf("%s[ERROR]%s Redis ping failed: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Connected to Redis", config.LogInfoColor, config.LogColorReset)
}

func initRunRepo(client *mongo.Client) {
	runRepo = repo.NewRunRepo(client, config.Envs.DBName, "runs")
	appLogger.Printf("%s[INFO]%s Run repository initialized", config.LogInfoColor, config.LogColorReset)
}

func initLeaderboard(client *redis.Client) {
	var err error
	runBoard, err = leaderboard.NewRedisLeaderboard(client, int64(config.Envs.LeaderboardSize))
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating leaderboard: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Leaderboard initialized", config.LogInfoColor, config.LogColorReset)
}

func initRunService() {
	var err error
	runService, err = service.NewRunService(&service.Config{
		MaxSteps:    config.Envs.MaxRunSteps,
		Repo:        runRepo,
		Leaderboard: runBoard,
		Logger:      log.New(os.Stdout, "[SOLVER] ", log.LstdFlags),
	})
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating run service: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Run service initialized", config.LogInfoColor, config.LogColorReset)
}

func initRunController() {
	var err error
	runController, err = solverapi.NewRunController(&solverapi.Config{
		Runner:        runService,
		RunRepo:       runRepo,
		Leaderboard:   runBoard,
		DefaultWidth:  config.Envs.MazeWidth,
		DefaultHeight: config.Envs.MazeHeight,
		BoardSize:     int64(config.Envs.LeaderboardSize),
	})
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating run controller: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Run controller initialized", config.LogInfoColor, config.LogColorReset)
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{runController},
	})
	appLogger.Printf("%s[INFO]%s Router initialized", config.LogInfoColor, config.LogColorReset)
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger = log.New(os.Stdout, "[APP] ", log.LstdFlags)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initRunRepo(mongoClient)
	initLeaderboard(redisClient)
	initRunService()
	initRunController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Printf("%s[ERROR]%s Starting server: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
}
