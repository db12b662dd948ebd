package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Jacksonpirlo/sistemaEscolar/internal/infra"
	"github.com/Jacksonpirlo/sistemaEscolar/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health returns a JSON health check response.
// Checks DB and Redis connectivity; never exposes credentials or internals.
// SMTP problems and dead-lettered emails are reported but do not make the
// service unhealthy.
func Health(db *gorm.DB, rdb *redis.Client, mailer *infra.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "connected"
		var dlq int64
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		} else if n, err := worker.DeadLetterCount(ctx, rdb, worker.QueueEmail); err == nil {
			dlq = n
		}

		smtpStatus := "disabled"
		if mailer.Enabled() {
			smtpStatus = mailer.Breaker().State().String()
		}

		status := http.StatusOK
		if dbStatus != "connected" || redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":        status == http.StatusOK,
			"db":        dbStatus,
			"redis":     redisStatus,
			"smtp":      smtpStatus,
			"email_dlq": dlq,
		})
	}
}
