package logger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
	"google.golang.org/genproto/googleapis/api/monitoredres"

	"github.com/rochabr/connect-parking-demo/common"
)

const (
	// CtxLoggerKey is how request loggers are stored/retrieved.
	CtxLoggerKey = "app-logger"

	// requestLogID is the name of the log for per-request entries.
	requestLogID = "request_logger"

	// appLogID is the name of the log for application entries.
	appLogID = "app_logger"

	serviceField   = "service"
	projectIDField = "project_id"
	versionIDField = "version_id"

	serviceEnv = "SERVICE_NAME"
	versionEnv = "SERVICE_VERSION"
)

var (
	requestLogger *logging.Logger
	appLogger     *logging.Logger
	resource      *monitoredres.MonitoredResource
	projectID     string
	cloudLogging  bool
)

// Provider returns the logger bound to the given context.
type Provider func(ctx context.Context) ILogger

type Logging struct {
}

// NewLogging initializes the Cloud Logging clients when a project is
// configured. Without a project, loggers fall back to stderr only.
func NewLogging(ctx context.Context, project string) (*Logging, error) {
	projectID = project
	cloudLogging = false

	if projectID == "" {
		return &Logging{}, nil
	}

	client, err := logging.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	requestLogger = client.Logger(requestLogID)
	appLogger = client.Logger(appLogID)
	cloudLogging = true

	resource = &monitoredres.MonitoredResource{
		Labels: map[string]string{
			serviceField:   common.GetEnv(serviceEnv, "connect-parking-demo"),
			projectIDField: projectID,
			versionIDField: common.GetEnv(versionEnv, "localhost"),
		},
		Type: "generic_task",
	}

	return &Logging{}, nil
}

// Logger returns the logger that was stored inside the context.
func (l *Logging) Logger(ctx context.Context) ILogger {
	return FromContext(ctx)
}

// NewLogger sets gin.Context with a new logger, with the related trace id.
func NewLogger(ctx *gin.Context) (*Logger, error) {
	l := newDefaultLogger()

	var h string
	if ctx.Request != nil {
		h = ctx.Request.Header.Get("X-Cloud-Trace-Context")
	}

	if h != "" {
		if i := strings.IndexByte(h, '/'); i > 0 {
			if t := h[:i]; strings.Count(t, "0") != len(t) {
				l.trace = getTrace(l.started, t)
			}
		}
	}

	ctx.Set(CtxLoggerKey, l)

	return l, nil
}

// FromContext returns the logger that was stored in context.
// If there isn't a logger stored, returns a new logger.
func FromContext(ctx context.Context) ILogger {
	if l, ok := ctx.Value(CtxLoggerKey).(*Logger); ok {
		return l
	}

	return newDefaultLogger()
}

func getTrace(started time.Time, id string) string {
	return fmt.Sprintf("projects/%s/traces/%d%s", projectID, started.UnixNano(), id)
}
