package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	qhttp "edupredict/http"
	"edupredict/ml"
	"edupredict/monitoring"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Artifacts struct {
		ScalerPath string `yaml:"scaler_path"`
		ModelPath  string `yaml:"model_path"`
	} `yaml:"artifacts"`
	Http struct {
		Port           int      `yaml:"port"`
		TimeoutSeconds int      `yaml:"timeout_seconds"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"http"`
	Log struct {
		Level      string `yaml:"level"`
		File       string `yaml:"file"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
	} `yaml:"log"`
	Metrics struct {
		BroadcastSeconds int `yaml:"broadcast_seconds"`
	} `yaml:"metrics"`
}

func main() {
	// 1. Load config
	config, err := loadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Build logger
	logger, err := buildLogger(config)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// 3. Load artifacts once. A failed load is terminal for predictions:
	// the service keeps running and answers 503 instead of retrying.
	loader := &ml.ArtifactLoader{}
	artifacts, err := loader.Load(config.Artifacts.ScalerPath, config.Artifacts.ModelPath)
	if err != nil {
		logger.Error("artifact load failed, predictions unavailable until restart",
			zap.String("scaler", config.Artifacts.ScalerPath),
			zap.String("model", config.Artifacts.ModelPath),
			zap.Error(err))
	} else {
		logger.Info("artifacts loaded",
			zap.String("scaler", artifacts.ScalerPath),
			zap.String("model", artifacts.ModelPath),
			zap.Int("trees", artifacts.Model.TreeCount()))
	}

	// 4. Wire monitoring
	stats := monitoring.NewServiceStats()
	hub := monitoring.NewHub(logger)
	go hub.Run()

	broadcastInterval := 5 * time.Second
	if config.Metrics.BroadcastSeconds > 0 {
		broadcastInterval = time.Duration(config.Metrics.BroadcastSeconds) * time.Second
	}
	go hub.BroadcastStats(stats, broadcastInterval)

	// 5. Start HTTP server
	qhttp.SetLogger(logger)
	qhttp.SetArtifacts(artifacts)
	qhttp.SetStats(stats)
	qhttp.SetHub(hub)

	serverConfig := qhttp.DefaultServerConfig()
	if config.Http.Port > 0 {
		serverConfig.Port = config.Http.Port
	}
	if config.Http.TimeoutSeconds > 0 {
		serverConfig.Timeout = time.Duration(config.Http.TimeoutSeconds) * time.Second
	}
	if len(config.Http.AllowedOrigins) > 0 {
		serverConfig.AllowedOrigins = config.Http.AllowedOrigins
	}

	server := qhttp.NewServer(serverConfig)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	hub.Stop()
	if err := server.Stop(); err != nil {
		logger.Warn("server forced to shutdown", zap.Error(err))
	}

	logger.Info("exiting")
}

func loadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func buildLogger(config *Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if config.Log.Level != "" {
		if err := level.Set(config.Log.Level); err != nil {
			return nil, err
		}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	sink := zapcore.AddSync(os.Stdout)
	if config.Log.File != "" {
		rotating := zapcore.AddSync(&lumberjack.Logger{
			Filename:   config.Log.File,
			MaxSize:    config.Log.MaxSizeMB,
			MaxBackups: config.Log.MaxBackups,
		})
		sink = zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout), rotating)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), sink, level)
	return zap.New(core, zap.AddCaller()), nil
}
