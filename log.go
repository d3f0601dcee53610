package utaum

import "go.uber.org/zap"

// logger is a no-op by default so the package stays silent as a library.
var logger = zap.NewNop()

// SetLogger installs a zap logger for the package. Passing nil restores the
// no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		logger = zap.NewNop()
		return
	}
	logger = l
}
