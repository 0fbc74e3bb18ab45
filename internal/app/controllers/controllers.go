// Package controllers handles HTTP request handling
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cohort-tools/api/internal/middleware"
)

// bindJSON binds the request body and attaches a 400 error on failure
func bindJSON(ctx *gin.Context, obj interface{}) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		_ = ctx.Error(middleware.BindingError(err))
		return false
	}
	return true
}

// populateParam reads ?populate=, defaulting to true
func populateParam(ctx *gin.Context) bool {
	raw := ctx.Query("populate")
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return v
}
