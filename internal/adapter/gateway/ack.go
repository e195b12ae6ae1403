package gateway

import (
	"github.com/MikeRez0/ypshop/internal/core/domain"
)

const (
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeXML  = "text/xml; charset=utf-8"

	alipaySuccess = "success"
	alipayFail    = "fail"

	wechatSuccess = "<xml><return_code><![CDATA[SUCCESS]]></return_code><return_msg><![CDATA[OK]]></return_msg></xml>"
	wechatFail    = "<xml><return_code><![CDATA[FAIL]]></return_code><return_msg><![CDATA[FAIL]]></return_msg></xml>"
)

// Ack is the HTTP body answered to a gateway callback.
type Ack struct {
	ContentType string
	Body        string
}

// Acknowledger turns a processing outcome into the response format of one gateway.
type Acknowledger interface {
	Ack(outcome domain.AckOutcome) Ack
}

type AlipayAcknowledger struct{}

func (AlipayAcknowledger) Ack(outcome domain.AckOutcome) Ack {
	if outcome == domain.AckAcknowledge {
		return Ack{ContentType: ContentTypeText, Body: alipaySuccess}
	}
	return Ack{ContentType: ContentTypeText, Body: alipayFail}
}

// WechatAcknowledger answers payment callbacks. A rejected notification gets a plain
// "fail", the gateway retries on anything other than the success XML.
type WechatAcknowledger struct{}

func (WechatAcknowledger) Ack(outcome domain.AckOutcome) Ack {
	switch outcome {
	case domain.AckAcknowledge:
		return Ack{ContentType: ContentTypeXML, Body: wechatSuccess}
	case domain.AckHardFailure:
		return Ack{ContentType: ContentTypeXML, Body: wechatFail}
	default:
		return Ack{ContentType: ContentTypeText, Body: alipayFail}
	}
}

// WechatRefundAcknowledger answers refund callbacks, failures always get the failure XML.
type WechatRefundAcknowledger struct{}

func (WechatRefundAcknowledger) Ack(outcome domain.AckOutcome) Ack {
	if outcome == domain.AckAcknowledge {
		return Ack{ContentType: ContentTypeXML, Body: wechatSuccess}
	}
	return Ack{ContentType: ContentTypeXML, Body: wechatFail}
}
