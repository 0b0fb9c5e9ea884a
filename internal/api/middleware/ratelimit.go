package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/garc-IA/sandy-yasmin-agendamento-flow-sub000/internal/api/handlers"
)

const (
	msgRateLimited        = "muitas requisições, tente novamente em instantes"
	msgRateLimiterFailure = "serviço temporariamente indisponível"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// fixed window: первый INCR в окне ставит TTL ключа
var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RateLimiter ограничивает число запросов с одного IP в окне (общий счетчик в Redis,
// чтобы лимит работал на всех инстансах)
type RateLimiter struct {
	limit    int
	window   time.Duration
	prefix   string
	failOpen bool
	logger   Logger
	incr     func(ctx context.Context, key string) (int64, error)
}

// NewRateLimiter создает ограничитель поверх Redis
// При failOpen ошибки Redis пропускают запрос дальше, иначе возвращается 503
func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration, prefix string, failOpen bool, logger Logger) *RateLimiter {
	rl := newRateLimiter(limit, window, prefix, failOpen, logger)
	rl.incr = func(ctx context.Context, key string) (int64, error) {
		return runFixedWindow(ctx, rdb, key, rl.window)
	}
	return rl
}

func newRateLimiter(limit int, window time.Duration, prefix string, failOpen bool, logger Logger) *RateLimiter {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "rl"
	}
	return &RateLimiter{limit: limit, window: window, prefix: prefix, failOpen: failOpen, logger: logger}
}

// Middleware mux middleware ограничителя
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := rl.prefix + ":" + clientKey(r)

		count, err := rl.incr(r.Context(), key)
		if err != nil {
			if rl.logger != nil {
				rl.logger.Warn("RateLimiter: redis error for key=%s: %v", key, err)
			}
			if rl.failOpen {
				next.ServeHTTP(w, r)
				return
			}
			handlers.RespondError(w, http.StatusServiceUnavailable, msgRateLimiterFailure)
			return
		}

		if count > int64(rl.limit) {
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			handlers.RespondError(w, http.StatusTooManyRequests, msgRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func runFixedWindow(ctx context.Context, rdb *redis.Client, key string, window time.Duration) (int64, error) {
	res, err := fixedWindowScript.Run(ctx, rdb, []string{key}, window.Milliseconds()).Result()
	if err != nil {
		return 0, err
	}
	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}

func clientKey(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}
