package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/ccpadmin/internal/codec"
)

const (
	ReadHeaderTimeout = 5 * time.Second
)

type ErrorBody struct {
	Error string `json:"error"`
}

func JSONRecovery(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler { //nolint:errorlint
					panic(err)
				}

				logger.WithField("panic", err).Error("Recovered from panic.")

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorBody{
					Error: "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

func JSONErrorHandler(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			logger.WithError(c.Errors.Last()).Error("Request failed.")

			c.JSON(http.StatusInternalServerError, ErrorBody{
				Error: "Internal server error",
			})
		}
	}
}

func WriteJSON(doc any, w http.ResponseWriter, status int) error {
	body, err := codec.Indent(doc)
	if err != nil {
		return err
	}

	w.WriteHeader(status)

	_, err = w.Write(body)
	if err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}

// LoggingMiddleware logs each request's URI and method.
func LoggingMiddleware(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			total := time.Since(start)
			logger.WithFields(logrus.Fields{
				"method":   c.Request.Method,
				"path":     c.Request.URL.Path,
				"duration": total,
				"status":   c.Writer.Status(),
			}).Infof("%s %s", c.Request.Method, c.Request.URL.Path)
		}()

		c.Next()
	}
}

func NotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorBody{Error: "Not found"})
}
