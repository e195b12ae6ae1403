package domain

// AckOutcome tells the transport boundary which answer a gateway must receive.
type AckOutcome int

const (
	// AckAcknowledge: processed or intentionally ignored.
	AckAcknowledge AckOutcome = iota
	// AckRejected: order not found on the payment path, or the notification could not be stored.
	AckRejected
	// AckHardFailure: refund path failure, answered with the gateway's structured failure document.
	AckHardFailure
)

func (a AckOutcome) String() string {
	switch a {
	case AckAcknowledge:
		return "acknowledge"
	case AckRejected:
		return "rejected"
	case AckHardFailure:
		return "hard_failure"
	default:
		return "unknown"
	}
}

// PaymentNotification is a verified "payment" callback of a gateway.
type PaymentNotification struct {
	OutTradeNo    string
	Status        string
	TransactionID string
}

// RefundNotification is a verified refund callback of a gateway.
type RefundNotification struct {
	OutTradeNo   string
	RefundStatus string
}

const RefundStatusCodeSuccess = "SUCCESS"

var paymentSuccessCodes = map[PaymentMethod][]string{
	PaymentMethodAlipay: {"TRADE_SUCCESS", "TRADE_FINISHED"},
	PaymentMethodWechat: {"SUCCESS"},
}

// IsGateway reports whether m is paid through an external gateway callback.
func IsGateway(m PaymentMethod) bool {
	_, ok := paymentSuccessCodes[m]
	return ok
}

// IsPaymentSuccess reports whether status is a successful payment code of the gateway.
func IsPaymentSuccess(gateway PaymentMethod, status string) bool {
	for _, code := range paymentSuccessCodes[gateway] {
		if code == status {
			return true
		}
	}
	return false
}
