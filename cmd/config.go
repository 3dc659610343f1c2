package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"meshtrace.dev/pkg/meshtrace/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "meshtrace"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	dumpFlagName     = "dump"
	outputFlagName   = "output"
	parallelFlagName = "parallel"
	verboseFlagName  = "verbose"
	edgeFlagName     = "edge"
	fromFlagName     = "from"
	toFlagName       = "to"
	lanesFlagName    = "lanes"

	dumpConfigKey     = "run.dump"
	outputConfigKey   = "run.output"
	parallelConfigKey = "run.parallel"
	edgeConfigKey     = "sample.edge"
	fromConfigKey     = "sample.from"
	toConfigKey       = "sample.to"
	lanesConfigKey    = "links.lanes"
	nodeSizeConfigKey = "mesh.node_size"

	signalsClockKey      = "signals.clock"
	signalsSentKey       = "signals.sent"
	signalsReceivedKey   = "signals.received"
	signalsLatencyKey    = "signals.latency"
	signalsIssuedKey     = "signals.issued"
	signalsCompletedKey  = "signals.completed"
	signalsPortKey       = "signals.port"
	signalsLinkDataKey   = "signals.link_data"
	signalsLinkValidKey  = "signals.link_valid"
	signalsLinkReadyKey  = "signals.link_ready"
	signalsLaneBitmapKey = "signals.lane_bitmap"
	signalsDataCountKey  = "signals.data_count"
	signalsEventCountKey = "signals.event_count"

	defaultDump     = "meshtrace-dump.yaml"
	defaultOutput   = ".meshtrace-series"
	defaultParallel = 4
	defaultEdge     = "rising"
	defaultLanes    = 0
	defaultNodeSize = 1.0

	envPrefix = "MESHTRACE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".meshtrace.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true

	tracingEnabledKey     = "tracing.enabled"
	tracingServiceNameKey = "tracing.service_name"
	tracingSampleRatioKey = "tracing.sample_ratio"
	tracingFileKey        = "tracing.file"
	metricsTextfileKey    = "metrics.textfile"

	defaultTracingEnabled     = false
	defaultTracingServiceName = "meshtrace"
	defaultTracingSampleRatio = 1.0
	defaultTracingFile        = ".meshtrace-spans.json"
	defaultMetricsTextfile    = ""
)

var globalLogger *slog.Logger

func init() {
	loadConfig()
}

// resetConfig drops every flag binding and override and loads the defaults again.
func resetConfig() {
	viper.Reset()
	loadConfig()
}

func loadConfig() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(dumpConfigKey, defaultDump)
	viper.SetDefault(outputConfigKey, defaultOutput)
	viper.SetDefault(parallelConfigKey, defaultParallel)
	viper.SetDefault(edgeConfigKey, defaultEdge)
	viper.SetDefault(fromConfigKey, 0)
	viper.SetDefault(toConfigKey, 0)
	viper.SetDefault(lanesConfigKey, defaultLanes)
	viper.SetDefault(nodeSizeConfigKey, defaultNodeSize)

	setSignalDefaults(domain.DefaultSignalPaths())

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	viper.SetDefault(tracingEnabledKey, defaultTracingEnabled)
	viper.SetDefault(tracingServiceNameKey, defaultTracingServiceName)
	viper.SetDefault(tracingSampleRatioKey, defaultTracingSampleRatio)
	viper.SetDefault(tracingFileKey, defaultTracingFile)
	viper.SetDefault(metricsTextfileKey, defaultMetricsTextfile)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Debug("config not read", "error", err)
		}
	}
}

func setSignalDefaults(paths domain.SignalPaths) {
	viper.SetDefault(signalsClockKey, paths.Clock)
	viper.SetDefault(signalsSentKey, paths.Sent)
	viper.SetDefault(signalsReceivedKey, paths.Received)
	viper.SetDefault(signalsLatencyKey, paths.Latency)
	viper.SetDefault(signalsIssuedKey, paths.Issued)
	viper.SetDefault(signalsCompletedKey, paths.Completed)
	viper.SetDefault(signalsPortKey, paths.Port)
	viper.SetDefault(signalsLinkDataKey, paths.LinkData)
	viper.SetDefault(signalsLinkValidKey, paths.LinkValid)
	viper.SetDefault(signalsLinkReadyKey, paths.LinkReady)
	viper.SetDefault(signalsLaneBitmapKey, paths.LaneBitmap)
	viper.SetDefault(signalsDataCountKey, paths.DataCount)
	viper.SetDefault(signalsEventCountKey, paths.EventCount)
}

// signalPaths reads the signal layout from config.
func signalPaths() domain.SignalPaths {
	return domain.SignalPaths{
		Clock:      viper.GetString(signalsClockKey),
		Sent:       viper.GetString(signalsSentKey),
		Received:   viper.GetString(signalsReceivedKey),
		Latency:    viper.GetString(signalsLatencyKey),
		Issued:     viper.GetString(signalsIssuedKey),
		Completed:  viper.GetString(signalsCompletedKey),
		Port:       viper.GetString(signalsPortKey),
		LinkData:   viper.GetString(signalsLinkDataKey),
		LinkValid:  viper.GetString(signalsLinkValidKey),
		LinkReady:  viper.GetString(signalsLinkReadyKey),
		LaneBitmap: viper.GetString(signalsLaneBitmapKey),
		DataCount:  viper.GetString(signalsDataCountKey),
		EventCount: viper.GetString(signalsEventCountKey),
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels, e.g. -4 for debug.
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
