package gateway

import (
	"net/url"
	"testing"

	"github.com/MikeRez0/ypshop/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcknowledgers(t *testing.T) {
	tests := []struct {
		name    string
		ack     Acknowledger
		outcome domain.AckOutcome
		expBody string
	}{
		{"Alipay ok", AlipayAcknowledger{}, domain.AckAcknowledge, "success"},
		{"Alipay rejected", AlipayAcknowledger{}, domain.AckRejected, "fail"},
		{"Alipay hard failure", AlipayAcknowledger{}, domain.AckHardFailure, "fail"},
		{"Wechat ok", WechatAcknowledger{}, domain.AckAcknowledge, wechatSuccess},
		{"Wechat rejected", WechatAcknowledger{}, domain.AckRejected, "fail"},
		{"Wechat hard failure", WechatAcknowledger{}, domain.AckHardFailure, wechatFail},
		{"Wechat refund ok", WechatRefundAcknowledger{}, domain.AckAcknowledge, wechatSuccess},
		{"Wechat refund hard failure", WechatRefundAcknowledger{}, domain.AckHardFailure, wechatFail},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expBody, test.ack.Ack(test.outcome).Body)
		})
	}

	assert.Equal(t,
		"<xml><return_code><![CDATA[SUCCESS]]></return_code><return_msg><![CDATA[OK]]></return_msg></xml>",
		WechatAcknowledger{}.Ack(domain.AckAcknowledge).Body)
	assert.Equal(t, ContentTypeXML, WechatRefundAcknowledger{}.Ack(domain.AckRejected).ContentType)
}

func TestDecodeAlipay(t *testing.T) {
	n, err := DecodeAlipay(url.Values{
		"out_trade_no": {"20240310143000123456"},
		"trade_status": {"TRADE_SUCCESS"},
		"trade_no":     {"2024031022001"},
	})
	require.NoError(t, err)
	assert.Equal(t, &domain.PaymentNotification{
		OutTradeNo:    "20240310143000123456",
		Status:        "TRADE_SUCCESS",
		TransactionID: "2024031022001",
	}, n)

	_, err = DecodeAlipay(url.Values{"trade_status": {"TRADE_SUCCESS"}})
	assert.ErrorIs(t, err, ErrMissingOrderNumber)
}

func TestDecodeWechat(t *testing.T) {
	n, err := DecodeWechat([]byte(`<xml>
<return_code><![CDATA[SUCCESS]]></return_code>
<result_code><![CDATA[SUCCESS]]></result_code>
<out_trade_no><![CDATA[20240310143000123456]]></out_trade_no>
<transaction_id><![CDATA[4200002024]]></transaction_id>
</xml>`))
	require.NoError(t, err)
	assert.Equal(t, "20240310143000123456", n.OutTradeNo)
	assert.Equal(t, "SUCCESS", n.Status)
	assert.Equal(t, "4200002024", n.TransactionID)

	_, err = DecodeWechat([]byte(`not xml`))
	assert.Error(t, err)

	_, err = DecodeWechat([]byte(`<xml><result_code>SUCCESS</result_code></xml>`))
	assert.ErrorIs(t, err, ErrMissingOrderNumber)
}

func TestDecodeWechatRefund(t *testing.T) {
	n, err := DecodeWechatRefund([]byte(
		`<xml><out_trade_no>20240310143000123456</out_trade_no><refund_status>REFUNDCLOSE</refund_status></xml>`))
	require.NoError(t, err)
	assert.Equal(t, &domain.RefundNotification{OutTradeNo: "20240310143000123456", RefundStatus: "REFUNDCLOSE"}, n)
}
