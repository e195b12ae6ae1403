package http

import (
	"io"
	"net/http"

	"github.com/MikeRez0/ypshop/internal/adapter/gateway"
	"github.com/MikeRez0/ypshop/internal/adapter/metrics"
	"github.com/MikeRez0/ypshop/internal/core/domain"
	"github.com/MikeRez0/ypshop/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxNotifyBody = 64 << 10

// NotifyHandler serves the asynchronous callbacks of the payment gateways. Callbacks
// reach it already verified, every answer uses the gateway's own wire format.
type NotifyHandler struct {
	Handler
	service port.Service
	metrics *metrics.Metrics
}

func NewNotifyHandler(service port.Service, m *metrics.Metrics, logger *zap.Logger) (*NotifyHandler, error) {
	return &NotifyHandler{
		Handler: *NewHandler(logger),
		service: service,
		metrics: m,
	}, nil
}

func (nh *NotifyHandler) answer(ctx *gin.Context, kind string, ack gateway.Acknowledger, outcome domain.AckOutcome) {
	nh.metrics.ObserveNotification(kind, outcome)
	a := ack.Ack(outcome)
	ctx.Data(http.StatusOK, a.ContentType, []byte(a.Body))
}

func (nh *NotifyHandler) AlipayNotify(ctx *gin.Context) {
	ack := gateway.AlipayAcknowledger{}

	if err := ctx.Request.ParseForm(); err != nil {
		nh.logger.Warn("Alipay notification form", zap.Error(err))
		nh.answer(ctx, "alipay", ack, domain.AckRejected)
		return
	}
	n, err := gateway.DecodeAlipay(ctx.Request.PostForm)
	if err != nil {
		nh.logger.Warn("Alipay notification payload", zap.Error(err))
		nh.answer(ctx, "alipay", ack, domain.AckRejected)
		return
	}

	nh.answer(ctx, "alipay", ack, nh.service.HandlePaymentNotification(ctx, domain.PaymentMethodAlipay, n))
}

func (nh *NotifyHandler) WechatNotify(ctx *gin.Context) {
	ack := gateway.WechatAcknowledger{}

	body, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxNotifyBody))
	if err != nil {
		nh.logger.Warn("Wechat notification body", zap.Error(err))
		nh.answer(ctx, "wechat", ack, domain.AckRejected)
		return
	}
	n, err := gateway.DecodeWechat(body)
	if err != nil {
		nh.logger.Warn("Wechat notification payload", zap.Error(err))
		nh.answer(ctx, "wechat", ack, domain.AckRejected)
		return
	}

	nh.answer(ctx, "wechat", ack, nh.service.HandlePaymentNotification(ctx, domain.PaymentMethodWechat, n))
}

func (nh *NotifyHandler) WechatRefundNotify(ctx *gin.Context) {
	ack := gateway.WechatRefundAcknowledger{}

	body, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxNotifyBody))
	if err != nil {
		nh.logger.Warn("Wechat refund notification body", zap.Error(err))
		nh.answer(ctx, "wechat_refund", ack, domain.AckHardFailure)
		return
	}
	n, err := gateway.DecodeWechatRefund(body)
	if err != nil {
		nh.logger.Warn("Wechat refund notification payload", zap.Error(err))
		nh.answer(ctx, "wechat_refund", ack, domain.AckHardFailure)
		return
	}

	nh.answer(ctx, "wechat_refund", ack, nh.service.HandleRefundNotification(ctx, n))
}
