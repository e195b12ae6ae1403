package gateway

import (
	"encoding/xml"
	"errors"
	"fmt"
	"net/url"

	"github.com/MikeRez0/ypshop/internal/core/domain"
)

var ErrMissingOrderNumber = errors.New("notification has no out_trade_no")

// DecodeAlipay reads the verified form fields of an Alipay asynchronous notification.
func DecodeAlipay(form url.Values) (*domain.PaymentNotification, error) {
	n := &domain.PaymentNotification{
		OutTradeNo:    form.Get("out_trade_no"),
		Status:        form.Get("trade_status"),
		TransactionID: form.Get("trade_no"),
	}
	if n.OutTradeNo == "" {
		return nil, ErrMissingOrderNumber
	}
	return n, nil
}

type wechatPayment struct {
	XMLName       xml.Name `xml:"xml"`
	ReturnCode    string   `xml:"return_code"`
	ResultCode    string   `xml:"result_code"`
	OutTradeNo    string   `xml:"out_trade_no"`
	TransactionID string   `xml:"transaction_id"`
}

// DecodeWechat reads a verified WeChat Pay payment notification.
func DecodeWechat(body []byte) (*domain.PaymentNotification, error) {
	var p wechatPayment
	if err := xml.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("wechat payment xml: %w", err)
	}
	if p.OutTradeNo == "" {
		return nil, ErrMissingOrderNumber
	}
	return &domain.PaymentNotification{
		OutTradeNo:    p.OutTradeNo,
		Status:        p.ResultCode,
		TransactionID: p.TransactionID,
	}, nil
}

type wechatRefund struct {
	XMLName      xml.Name `xml:"xml"`
	OutTradeNo   string   `xml:"out_trade_no"`
	RefundStatus string   `xml:"refund_status"`
}

// DecodeWechatRefund reads the decrypted req_info of a WeChat Pay refund notification.
func DecodeWechatRefund(body []byte) (*domain.RefundNotification, error) {
	var r wechatRefund
	if err := xml.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("wechat refund xml: %w", err)
	}
	if r.OutTradeNo == "" {
		return nil, ErrMissingOrderNumber
	}
	return &domain.RefundNotification{
		OutTradeNo:   r.OutTradeNo,
		RefundStatus: r.RefundStatus,
	}, nil
}
