package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ทุก response ใช้ envelope เดียวกัน: ok + data/error
// message = ข้อความ toast ฝั่งหน้าเว็บ, redirect = ปลายทางให้ FE พาไป

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}

func OKMessage(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": msg, "data": data})
}

func OKRedirect(c *gin.Context, msg, target string, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": msg, "redirect": target, "data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}

func CreatedRedirect(c *gin.Context, msg, target string, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "message": msg, "redirect": target, "data": data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}

func UnauthorizedRedirect(c *gin.Context, msg, target string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg, "redirect": target})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}

func ForbiddenRedirect(c *gin.Context, msg, target string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg, "redirect": target})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}

func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"ok": false, "error": msg})
}

func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}
