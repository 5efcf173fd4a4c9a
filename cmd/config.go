package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "inctrim"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	srcDirFlagName   = "src-dir"
	extFlagName      = "ext"
	excludeFlagName  = "exclude"
	fileFlagName     = "file"
	compilerFlagName = "compiler"
	makefileFlagName = "makefile"
	includeFlagName  = "include"
	cflagFlagName    = "cflag"
	fixFlagName      = "fix"
	verboseFlagName  = "verbose"
	diffFlagName     = "diff"
	reportFlagName   = "report"

	srcDirConfigKey   = "paths.src_dir"
	extConfigKey      = "paths.extensions"
	excludeConfigKey  = "paths.exclude"
	compilerConfigKey = "compile.compiler"
	makefileConfigKey = "compile.makefile"
	includeConfigKey  = "compile.include"
	cflagConfigKey    = "compile.cflag"
	fixConfigKey      = "fix"
	diffConfigKey     = "diff"
	reportConfigKey   = "report"

	defaultSrcDir   = "src"
	defaultExt      = ".c"
	defaultCompiler = "cc"
	defaultMakefile = "Makefile"
	defaultFix      = false
	defaultDiff     = false

	envPrefix = "INCTRIM"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".inctrim.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(srcDirConfigKey, defaultSrcDir)
	viper.SetDefault(extConfigKey, []string{defaultExt})
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(compilerConfigKey, defaultCompiler)
	viper.SetDefault(makefileConfigKey, defaultMakefile)
	viper.SetDefault(fixConfigKey, defaultFix)
	viper.SetDefault(diffConfigKey, defaultDiff)
	viper.SetDefault(reportConfigKey, "")

	// compile.include and compile.cflag have no default: an explicit value
	// replaces what the Makefile provides.

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	readConfig()
}

// readConfig loads the config file when there is one. A missing file is
// expected; any other failure is logged and the defaults stay in effect.
func readConfig() {
	err := viper.ReadInConfig()
	if err == nil {
		return
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return
	}

	slog.Warn("Failed to read config file", "path", viper.ConfigFileUsed(), "error", err)
}

// configOverride returns the configured list for key, or nil when it is
// unset or empty. A config written by `init` carries empty lists for these
// keys and must not shadow the Makefile.
func configOverride(key string) []string {
	if !viper.IsSet(key) {
		return nil
	}

	values := viper.GetStringSlice(key)
	if len(values) == 0 {
		return nil
	}

	return values
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

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// Records go to a rotating log file. In verbose mode the file logs at Debug
// and Info records are also printed on stderr.
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

	var handler slog.Handler = slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	if verbose {
		console := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
			Level:  charmlog.InfoLevel,
			Prefix: configBaseName,
		})
		handler = newTeeHandler(handler, console)
	}

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
