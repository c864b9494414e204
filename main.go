package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/davidvelascogarcia/hns-go/api"
	api_i "github.com/davidvelascogarcia/hns-go/api/i"
	navapi "github.com/davidvelascogarcia/hns-go/api/nav"
	"github.com/davidvelascogarcia/hns-go/config"
	dmn "github.com/davidvelascogarcia/hns-go/domain"
	"github.com/davidvelascogarcia/hns-go/infrastruture/actuator"
	"github.com/davidvelascogarcia/hns-go/infrastruture/logging"
	"github.com/davidvelascogarcia/hns-go/infrastruture/maploader"
	"github.com/davidvelascogarcia/hns-go/infrastruture/render"
	"github.com/davidvelascogarcia/hns-go/infrastruture/repo"
	"github.com/davidvelascogarcia/hns-go/infrastruture/viewer"
	"github.com/davidvelascogarcia/hns-go/nav"
	"github.com/davidvelascogarcia/hns-go/service"
	"github.com/davidvelascogarcia/hns-go/service/i"
)

// Global variables for dependencies
var (
	mongoClient   *mongo.Client
	runRepo       i.RunRepo
	runner        *service.Runner
	navController api_i.Controller
	router        *api.Router
	appLogger     i.Logger
	navLogger     i.Logger
)

func initLoggers() {
	var err error
	appLogger, err = logging.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating app logger: %v\n", err)
		os.Exit(1)
	}

	navLogger, err = logging.New("NAV", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating nav logger: %v", err))
		os.Exit(1)
	}
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRunRepo(client *mongo.Client) {
	runRepo = repo.NewRunRepo(client, config.Envs.DBName, "runs")
	appLogger.Info("Run repository initialized")
}

func initRunner() {
	var err error
	runner, err = service.NewRunner(service.Config{
		MapLoader: func(file string) ([][]int, error) {
			return maploader.Load(filepath.Join(config.Envs.MapDir, file))
		},
		ActuatorFactory: actuatorFactory,
		SinkFactory:     sinkFactory,
		Repo:            runRepo,
		Logger:          navLogger,
		StepLimit:       config.Envs.StepLimit,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating navigation runner: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Navigation runner initialized")
}

func initNavController() {
	navController = navapi.New(runner)
	appLogger.Info("Navigation controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{navController},
	})
	appLogger.Info("Router initialized")
}

// actuatorFactory dials the controller endpoint per run.
func actuatorFactory() (nav.Actuator, error) {
	return actuator.Dial(config.Envs.ActuatorURL, config.Envs.ActuatorTimeout)
}

// sinkFactory assembles the progress sinks for one run. The console
// sink is always on; the terminal viewer joins when enabled.
func sinkFactory() []nav.ProgressSink {
	sinks := []nav.ProgressSink{render.NewConsole(os.Stdout, true)}

	if config.Envs.ViewerMode {
		v, err := viewer.New(config.Envs.SimPeriod)
		if err != nil {
			appLogger.Error(fmt.Sprintf("Creating viewer: %v", err))
			return sinks
		}
		sinks = append(sinks, v)
	}
	return sinks
}

// reportPlatform logs where the process is running.
func reportPlatform() {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	appLogger.Info(fmt.Sprintf("Platform: %s/%s, host: %s", runtime.GOOS, runtime.GOARCH, hostname))
}

// runOnce executes a single navigation run from the environment
// configuration and exits non-zero when the run itself fails.
func runOnce() {
	record, err := runner.Run(i.RunParams{
		MapFile:  config.Envs.MapFile,
		StartRow: config.Envs.InitRow,
		StartCol: config.Envs.InitCol,
		GoalRow:  config.Envs.GoalRow,
		GoalCol:  config.Envs.GoalCol,
		Actuator: config.Envs.ActuatorMode,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Launching navigation run: %v", err))
		os.Exit(1)
	}

	if record.Outcome == dmn.OutcomeFailed {
		appLogger.Error("Navigation run failed")
		os.Exit(1)
	}
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	initLoggers()
	reportPlatform()

	if config.Envs.HistoryMode {
		initMongo(ctx)
		defer func() {
			_ = mongoClient.Disconnect(ctx)
		}()
		initRunRepo(mongoClient)
	}

	initRunner()

	if config.Envs.OneShot {
		runOnce()
	}

	if !config.Envs.ServeAPI {
		return
	}

	initNavController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
