package logger

import (
	"io"
	"os"
	"time"

	formatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Logger    *zap.Logger
	NasLogger *zap.Logger
	CliLogger *zap.Logger
)

var log *logrus.Logger

var (
	AppLog *logrus.Entry
	NASLog *logrus.Entry
)

func init() {
	Logger = zap.NewNop()
	NasLogger = Logger
	CliLogger = Logger

	log = logrus.New()
	log.SetReportCaller(false)
	log.SetOutput(os.Stdout)

	log.Formatter = &formatter.Formatter{
		TimestampFormat: time.RFC3339,
		TrimMessages:    true,
		NoFieldsSpace:   true,
		HideKeys:        true,
		FieldsOrder:     []string{"component", "category"},
	}

	AppLog = log.WithFields(logrus.Fields{"component": "NAS", "category": "APP"})
	NASLog = log.WithFields(logrus.Fields{"component": "NAS", "category": "Codec"})
}

// Init builds the zap loggers. format is "console" or "json"; anything else falls back to console.
func Init(logLevel zapcore.Level, format string) {
	InitWriter(logLevel, format, os.Stdout)
}

func InitWriter(logLevel zapcore.Level, format string, out io.Writer) {
	var encoder zapcore.Encoder
	if format == "json" {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(
		encoder,
		zapcore.AddSync(out),
		logLevel,
	)

	Logger = zap.New(core)

	zap.ReplaceGlobals(Logger)

	NasLogger = Logger.With(zap.String("Component", "NAS"))
	CliLogger = Logger.With(zap.String("Component", "CLI"))
}

func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

func SetOutput(out io.Writer) {
	log.SetOutput(out)
}

func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
