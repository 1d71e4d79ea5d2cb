package log

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/openwhistle/tipline/utils/dotenv"
	"github.com/openwhistle/tipline/utils/flag"
)

// global accessible logger
var (
	logger *logrus.Logger
	Log    *logrus.Entry
)

// This init function is only for testing cases, where the entry point is not
// main function. Unit test will fail with nil pointer dereference if we don't
// init here.
func init() {
	InitLogger()
}

func InitLogger() {
	logger = logrus.New()

	// Logs stay on stderr only. This service backs an anonymity platform, so
	// nothing ever goes to a third-party log collector; production uses the
	// JSON formatter for local aggregation.
	logger.SetOutput(os.Stderr)
	if os.Getenv("TIPLINE_ENV") == dotenv.ProdEnv {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	Log = logger.WithFields(
		logrus.Fields{"service": flag.ServiceName, "is_development": os.Getenv("TIPLINE_ENV") != dotenv.ProdEnv},
	)
}
