package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// logCtxKey はコンテキストにロガーを格納するためのキーです。
type logCtxKey struct{}

// maxLoggedBody caps request/response bodies in debug logs.
const maxLoggedBody = 4 << 10

// sensitiveHeaders はログ出力時に値をマスキングするヘッダー名のリストです (小文字で定義)。
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
	"x-csrf-token":  true,
}

// responseRecorder は http.ResponseWriter をラップし、ステータスコードとボディを記録します。
type responseRecorder struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
	bytesOut    int
	body        *bytes.Buffer // nil unless debug logging is on
}

func newResponseRecorder(w http.ResponseWriter, captureBody bool) *responseRecorder {
	rr := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
	if captureBody {
		rr.body = new(bytes.Buffer)
	}
	return rr
}

func (rr *responseRecorder) WriteHeader(statusCode int) {
	if rr.wroteHeader {
		return
	}
	rr.statusCode = statusCode
	rr.wroteHeader = true
	rr.ResponseWriter.WriteHeader(statusCode)
}

func (rr *responseRecorder) Write(b []byte) (int, error) {
	if !rr.wroteHeader {
		rr.WriteHeader(http.StatusOK)
	}
	if rr.body != nil && rr.body.Len() < maxLoggedBody {
		rr.body.Write(b)
	}
	n, err := rr.ResponseWriter.Write(b)
	rr.bytesOut += n
	return n, err
}

// LoggingMiddleware はリクエスト/レスポンスのログ出力を一元管理するミドルウェアです。
// リクエストスコープのロガーは GetLogger で取得できます。
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()

			requestLogger := logger.With(slog.String("req_id", middleware.GetReqID(r.Context())))
			r = r.WithContext(WithLogger(r.Context(), requestLogger))

			requestLogger.Info("Request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr),
			)

			debug := logger.Enabled(r.Context(), slog.LevelDebug)
			var reqBodyBytes []byte
			if debug && r.Body != nil {
				reqBodyBytes, _ = io.ReadAll(r.Body)
				r.Body = io.NopCloser(bytes.NewReader(reqBodyBytes))
			}

			rr := newResponseRecorder(w, debug)
			next.ServeHTTP(rr, r)

			logLevel := slog.LevelInfo
			if rr.statusCode >= 500 {
				logLevel = slog.LevelError
			} else if rr.statusCode >= 400 {
				logLevel = slog.LevelWarn
			}

			requestLogger.Log(r.Context(), logLevel, "Request completed",
				slog.Int("status", rr.statusCode),
				slog.Float64("latency_ms", float64(time.Since(startTime).Nanoseconds())/1e6),
				slog.Int("bytes_out", rr.bytesOut),
			)

			if debug {
				requestLogger.Debug("Request detail",
					slog.Any("headers", formatHeaders(r.Header)),
					slog.String("body", truncate(reqBodyBytes)),
				)
				requestLogger.Debug("Response detail",
					slog.Int("status", rr.statusCode),
					slog.Any("headers", formatHeaders(rr.Header())),
					slog.String("body", rr.body.String()),
				)
			}
		})
	}
}

// WithLogger stores logger in ctx for GetLogger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// GetLogger はコンテキストから slog.Logger を取得します。
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// formatHeaders はヘッダー情報をログ出力用に整形・マスキングするヘルパー関数
func formatHeaders(headers http.Header) map[string]string {
	result := make(map[string]string, len(headers))
	for key, values := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			result[key] = "[SENSITIVE]"
		} else {
			result[key] = strings.Join(values, ", ")
		}
	}
	return result
}

func truncate(b []byte) string {
	if len(b) > maxLoggedBody {
		return string(b[:maxLoggedBody]) + "...(truncated)"
	}
	return string(b)
}
