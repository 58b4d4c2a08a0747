package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel aligns the package logger with the application log level
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// pathID reads a positive integer path parameter
func pathID(ctx *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// respondInternalError logs the fault and hides it behind a generic 500 body
func respondInternalError(ctx *gin.Context, err error, message string) {
	_ = ctx.Error(err)
	log.WithError(err).WithField("path", ctx.Request.URL.Path).Error(message)
	ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse(models.MsgInternalError))
}
