package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	flashNotice = "notice"
	flashError  = "error"
)

type subscribeForm struct {
	Email string `form:"email" binding:"required,email"`
}

// Subscribe acknowledges the newsletter form. The address is validated but not stored.
func Subscribe(c *gin.Context) {
	session := sessions.Default(c)

	var form subscribeForm
	if err := c.ShouldBind(&form); err != nil {
		session.AddFlash("올바른 이메일 주소를 입력해 주세요.", flashError)
	} else {
		slog.Info("newsletter subscribe", "request_id", RequestIDFrom(c))
		session.AddFlash("구독 신청이 완료되었습니다. 감사합니다!", flashNotice)
	}

	if err := session.Save(); err != nil {
		slog.Error("save session", "error", err, "request_id", RequestIDFrom(c))
	}
	c.Redirect(http.StatusSeeOther, "/#subscribe")
}
