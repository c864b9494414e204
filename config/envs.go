package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP   string // Host IP for the REST server
	RESTPort int    // Port for the REST API
	ServeAPI bool   // Keep the REST server running after startup
	OneShot  bool   // Execute one navigation run at startup

	MapDir    string // Directory holding map files
	MapFile   string // Map file inside MapDir
	InitRow   int    // Requested start row
	InitCol   int    // Requested start column
	GoalRow   int    // Requested goal row
	GoalCol   int    // Requested goal column
	StepLimit int    // Step budget before a run is abandoned

	ActuatorMode    bool          // Relay commands over the actuator channel
	ActuatorURL     string        // WebSocket endpoint of the controller
	ActuatorTimeout time.Duration // Zero blocks on acknowledgements indefinitely

	ViewerMode bool          // Draw the live terminal view
	SimPeriod  time.Duration // Pause between simulation frames

	HistoryMode bool   // Persist finished runs to the database
	DBHost      string // Hostname or IP address for the database
	DBPort      int    // Port number for the database
	DBUser      string // Username for the database
	DBPassword  string // Password for the database
	DBName      string // Name of the database
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file. Every navigation
// setting has a default so the demo runs with no environment at all;
// database credentials are only required when history mode is on.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	initRow, initCol := getEnvAsPos("INIT_POS", 2, 2)
	goalRow, goalCol := getEnvAsPos("GOAL_POS", 7, 2)

	cfg := Config{
		HostIP:          getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:        getEnvAsIntWithDefault("REST_PORT", 8080),
		ServeAPI:        getEnvAsBoolWithDefault("SERVE_API", false),
		OneShot:         getEnvAsBoolWithDefault("ONESHOT_MODE", true),
		MapDir:          getEnvWithDefault("MAP_DIR", "./maps"),
		MapFile:         getEnvWithDefault("MAP_FILE", "map3.csv"),
		InitRow:         initRow,
		InitCol:         initCol,
		GoalRow:         goalRow,
		GoalCol:         goalCol,
		StepLimit:       getEnvAsIntWithDefault("STEP_LIMIT", 100),
		ActuatorMode:    getEnvAsBoolWithDefault("ACTUATOR_MODE", false),
		ActuatorURL:     getEnvWithDefault("ACTUATOR_URL", "ws://127.0.0.1:9090/controller"),
		ActuatorTimeout: time.Duration(getEnvAsIntWithDefault("ACTUATOR_TIMEOUT_MS", 0)) * time.Millisecond,
		ViewerMode:      getEnvAsBoolWithDefault("VIEWER_MODE", false),
		SimPeriod:       time.Duration(getEnvAsIntWithDefault("SIM_PERIOD_MS", 200)) * time.Millisecond,
		HistoryMode:     getEnvAsBoolWithDefault("HISTORY_MODE", false),
	}

	if cfg.HistoryMode {
		cfg.DBHost = mustGetEnv("DB_HOST")
		cfg.DBPort = mustGetEnvAsInt("DB_PORT")
		cfg.DBUser = mustGetEnv("DB_USER")
		cfg.DBPassword = mustGetEnv("DB_PASS")
		cfg.DBName = getEnvWithDefault("DB_NAME", "hns")
	}

	return cfg
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable or returns a default value if not set or unparsable.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [WARN] Environment variable %s is not an integer, using %d", key, defaultValue)
		return defaultValue
	}
	return value
}

// getEnvAsBoolWithDefault retrieves a boolean environment variable or returns a default value if not set or unparsable.
func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[APP] [WARN] Environment variable %s is not a boolean, using %v", key, defaultValue)
		return defaultValue
	}
	return value
}

// getEnvAsPos parses a "row,col" environment variable, falling back to
// the given defaults when the variable is missing or malformed.
func getEnvAsPos(key string, defaultRow, defaultCol int) (int, int) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultRow, defaultCol
	}

	parts := strings.SplitN(valueStr, ",", 2)
	if len(parts) != 2 {
		log.Printf("[APP] [WARN] Environment variable %s is not a row,col pair, using %d,%d", key, defaultRow, defaultCol)
		return defaultRow, defaultCol
	}

	row, errRow := strconv.Atoi(strings.TrimSpace(parts[0]))
	col, errCol := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errRow != nil || errCol != nil {
		log.Printf("[APP] [WARN] Environment variable %s is not a row,col pair, using %d,%d", key, defaultRow, defaultCol)
		return defaultRow, defaultCol
	}
	return row, col
}
