package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZap builds the zap logger used by the commands. Debug mode switches to
// zap's development configuration; otherwise a console production logger is
// returned.
func NewZap(debug bool) (*zap.Logger, error) {
	var zapConf zap.Config

	if debug {
		zapConf = zap.NewDevelopmentConfig()
		zapConf.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	} else {
		zapConf = zap.NewProductionConfig()
		zapConf.Encoding = "console"
		zapConf.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
		zapConf.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
		zapConf.EncoderConfig.EncodeCaller = nil
	}

	// Skip 1 caller, since all log calls go through this package
	return zapConf.Build(zap.AddCallerSkip(1))
}
