package log

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // debug | development | production
	Encoding     string // console | json
	ColorEnabled bool
}

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
	ModeDebug       = "debug"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

type ctxKey string

const traceIDKey ctxKey = "trace_id"
