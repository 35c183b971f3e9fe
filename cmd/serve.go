package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/amazeing/api"
	api_i "github.com/beka-birhanu/amazeing/api/i"
	mazeapi "github.com/beka-birhanu/amazeing/api/maze"
	"github.com/beka-birhanu/amazeing/config"
	"github.com/beka-birhanu/amazeing/infrastruture/mazestore"
	"github.com/beka-birhanu/amazeing/service"
	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// Global variables for server dependencies
var (
	envs           config.Config
	redisClient    *redis.Client
	mazeStore      i.MazeStore
	mazeService    i.MazeService
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *log.Logger
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve mazes over a REST API",
		Long: `Serve reads its settings from the environment, or a .env file when one
is present, and exposes maze generation and retrieval under
<base-url>/v1/mazes.`,
		Run: runServe,
	}

	rootCmd.AddCommand(serveCmd)
}

func initStore(ctx context.Context) {
	switch envs.StoreBackend {
	case "redis":
		redisClient = redis.NewClient(&redis.Options{
			Addr:     envs.RedisAddr,
			Password: envs.RedisPassword,
			DB:       envs.RedisDB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			appLogger.Printf("%s[ERROR]%s Redis ping failed: %v", config.LogErrorColor, config.LogColorReset, err)
			os.Exit(1)
		}

		var err error
		mazeStore, err = mazestore.NewRedisStore(redisClient, envs.MazeTTL)
		if err != nil {
			appLogger.Printf("%s[ERROR]%s Creating redis maze store: %v", config.LogErrorColor, config.LogColorReset, err)
			os.Exit(1)
		}
		appLogger.Printf("%s[INFO]%s Connected to Redis at %s", config.LogInfoColor, config.LogColorReset, envs.RedisAddr)
	case "memory":
		mazeStore = mazestore.NewMemoryStore()
		appLogger.Printf("%s[INFO]%s Using the in-memory maze store", config.LogInfoColor, config.LogColorReset)
	default:
		appLogger.Printf("%s[ERROR]%s Unknown maze store backend: %s", config.LogErrorColor, config.LogColorReset, envs.StoreBackend)
		os.Exit(1)
	}
}

func initMazeService() {
	var err error
	mazeService, err = service.NewMazeService(mazeStore, appLogger)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating maze service: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Maze service initialized", config.LogInfoColor, config.LogColorReset)
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating maze controller: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Maze controller initialized", config.LogInfoColor, config.LogColorReset)
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", envs.HostIP, envs.RESTPort),
		BaseURL:     envs.BaseURL,
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Printf("%s[INFO]%s Router initialized", config.LogInfoColor, config.LogColorReset)
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	appLogger = log.New(os.Stdout, "[APP] ", log.LstdFlags)
	envs = config.LoadEnvs()
	gin.SetMode(envs.GinMode)

	initStore(ctx)
	if redisClient != nil {
		defer redisClient.Close()
	}

	initMazeService()
	initMazeController()
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Printf("%s[ERROR]%s Starting server: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
}
