package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MikeRez0/ypshop/internal/adapter/auth"
	"github.com/MikeRez0/ypshop/internal/adapter/config"
	"github.com/MikeRez0/ypshop/internal/adapter/metrics"
	"github.com/MikeRez0/ypshop/internal/core/domain"
	"github.com/MikeRez0/ypshop/internal/core/port"
	"github.com/MikeRez0/ypshop/internal/core/port/mock"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const wechatOK = "<xml><return_code><![CDATA[SUCCESS]]></return_code><return_msg><![CDATA[OK]]></return_msg></xml>"
const wechatFail = "<xml><return_code><![CDATA[FAIL]]></return_code><return_msg><![CDATA[FAIL]]></return_msg></xml>"

func newTestRouter(t *testing.T, svc port.Service) (*Router, port.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts, err := auth.New(nil)
	require.NoError(t, err)

	log := zap.NewNop()
	oh, err := NewOrderHandler(svc, log)
	require.NoError(t, err)
	m := metrics.New(prometheus.NewRegistry())
	nh, err := NewNotifyHandler(svc, m, log)
	require.NoError(t, err)

	r, err := NewRouter(&config.App{Mode: config.AppModeDevelop}, ts, m, oh, nh, log)
	require.NoError(t, err)
	return r, ts
}

func TestNotifyHandler(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type notifyTest struct {
		name        string
		path        string
		contentType string
		body        string
		mock        func(svc *mock.MockService)
		expBody     string
	}

	alipayForm := url.Values{
		"out_trade_no": {"20240310143000123456"},
		"trade_status": {"TRADE_SUCCESS"},
		"trade_no":     {"2024031022001"},
	}.Encode()

	wechatXML := `<xml><result_code><![CDATA[SUCCESS]]></result_code>` +
		`<out_trade_no><![CDATA[20240310143000123456]]></out_trade_no>` +
		`<transaction_id><![CDATA[4200002024]]></transaction_id></xml>`

	refundXML := `<xml><out_trade_no>20240310143000123456</out_trade_no><refund_status>SUCCESS</refund_status></xml>`

	tests := []notifyTest{
		{
			name:        "Alipay acknowledged",
			path:        "/payment/alipay/notify",
			contentType: "application/x-www-form-urlencoded",
			body:        alipayForm,
			mock: func(svc *mock.MockService) {
				svc.EXPECT().HandlePaymentNotification(gomock.Any(), domain.PaymentMethodAlipay,
					&domain.PaymentNotification{
						OutTradeNo:    "20240310143000123456",
						Status:        "TRADE_SUCCESS",
						TransactionID: "2024031022001",
					}).Return(domain.AckAcknowledge)
			},
			expBody: "success",
		},
		{
			name:        "Alipay rejected",
			path:        "/payment/alipay/notify",
			contentType: "application/x-www-form-urlencoded",
			body:        alipayForm,
			mock: func(svc *mock.MockService) {
				svc.EXPECT().HandlePaymentNotification(gomock.Any(), domain.PaymentMethodAlipay, gomock.Any()).
					Return(domain.AckRejected)
			},
			expBody: "fail",
		},
		{
			name:        "Alipay without order number",
			path:        "/payment/alipay/notify",
			contentType: "application/x-www-form-urlencoded",
			body:        "trade_status=TRADE_SUCCESS",
			mock:        func(svc *mock.MockService) {},
			expBody:     "fail",
		},
		{
			name:        "Wechat acknowledged",
			path:        "/payment/wechat/notify",
			contentType: "text/xml",
			body:        wechatXML,
			mock: func(svc *mock.MockService) {
				svc.EXPECT().HandlePaymentNotification(gomock.Any(), domain.PaymentMethodWechat,
					&domain.PaymentNotification{
						OutTradeNo:    "20240310143000123456",
						Status:        "SUCCESS",
						TransactionID: "4200002024",
					}).Return(domain.AckAcknowledge)
			},
			expBody: wechatOK,
		},
		{
			name:        "Wechat broken payload",
			path:        "/payment/wechat/notify",
			contentType: "text/xml",
			body:        "<xml>",
			mock:        func(svc *mock.MockService) {},
			expBody:     "fail",
		},
		{
			name:        "Wechat refund acknowledged",
			path:        "/payment/wechat/refund_notify",
			contentType: "text/xml",
			body:        refundXML,
			mock: func(svc *mock.MockService) {
				svc.EXPECT().HandleRefundNotification(gomock.Any(),
					&domain.RefundNotification{OutTradeNo: "20240310143000123456", RefundStatus: "SUCCESS"}).
					Return(domain.AckAcknowledge)
			},
			expBody: wechatOK,
		},
		{
			name:        "Wechat refund for unknown order",
			path:        "/payment/wechat/refund_notify",
			contentType: "text/xml",
			body:        refundXML,
			mock: func(svc *mock.MockService) {
				svc.EXPECT().HandleRefundNotification(gomock.Any(), gomock.Any()).Return(domain.AckHardFailure)
			},
			expBody: wechatFail,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc := mock.NewMockService(mockCtrl)
			test.mock(svc)
			r, _ := newTestRouter(t, svc)

			req := httptest.NewRequest(http.MethodPost, test.path, strings.NewReader(test.body))
			req.Header.Set("Content-Type", test.contentType)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, test.expBody, w.Body.String())
		})
	}
}

func TestOrderHandler(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	paidAt := time.Date(2024, time.March, 10, 14, 40, 0, 0, time.UTC)
	order := &domain.Order{
		ID:            7,
		Number:        "20240310143000123456",
		UserID:        1,
		TotalAmount:   decimal.MustParse("1000.00"),
		PaidAt:        &paidAt,
		PaymentMethod: domain.PaymentMethodAlipay,
		PaymentNo:     "2024031022001",
		RefundStatus:  domain.RefundStatusNone,
		CreatedAt:     paidAt.Add(-time.Hour),
	}

	type orderTest struct {
		name      string
		method    string
		path      string
		body      string
		userID    uint64
		noAuth    bool
		mock      func(svc *mock.MockService)
		expStatus int
		expBody   map[string]any
	}

	tests := []orderTest{
		{
			name:   "Get order",
			method: http.MethodGet,
			path:   "/api/orders/7",
			userID: 1,
			mock: func(svc *mock.MockService) {
				svc.EXPECT().GetOrder(gomock.Any(), uint64(1), uint64(7)).Return(order, nil)
			},
			expStatus: http.StatusOK,
			expBody: map[string]any{
				"id":             float64(7),
				"no":             "20240310143000123456",
				"total_amount":   1000.0,
				"payment_method": "alipay",
			},
		},
		{
			name:      "No token",
			method:    http.MethodGet,
			path:      "/api/orders/7",
			noAuth:    true,
			mock:      func(svc *mock.MockService) {},
			expStatus: http.StatusUnauthorized,
		},
		{
			name:      "Bad order id",
			method:    http.MethodGet,
			path:      "/api/orders/abc",
			userID:    1,
			mock:      func(svc *mock.MockService) {},
			expStatus: http.StatusBadRequest,
		},
		{
			name:   "Order of another user",
			method: http.MethodGet,
			path:   "/api/orders/7",
			userID: 2,
			mock: func(svc *mock.MockService) {
				svc.EXPECT().GetOrder(gomock.Any(), uint64(2), uint64(7)).Return(nil, domain.ErrForbidden)
			},
			expStatus: http.StatusForbidden,
		},
		{
			name:   "Initiate wechat payment",
			method: http.MethodPost,
			path:   "/api/orders/7/payment/wechat",
			userID: 1,
			mock: func(svc *mock.MockService) {
				svc.EXPECT().InitiatePayment(gomock.Any(), uint64(1), uint64(7), domain.PaymentMethodWechat).
					Return(&domain.PaymentRequest{
						Method:      domain.PaymentMethodWechat,
						OutTradeNo:  order.Number,
						Amount:      decimal.MustParse("1000.00"),
						AmountMinor: 100000,
						Subject:     "Payment for order " + order.Number,
					}, nil)
			},
			expStatus: http.StatusOK,
			expBody: map[string]any{
				"out_trade_no": "20240310143000123456",
				"total_fee":    float64(100000),
			},
		},
		{
			name:   "Initiate payment of paid order",
			method: http.MethodPost,
			path:   "/api/orders/7/payment/alipay",
			userID: 1,
			mock: func(svc *mock.MockService) {
				svc.EXPECT().InitiatePayment(gomock.Any(), uint64(1), uint64(7), domain.PaymentMethodAlipay).
					Return(nil, domain.ErrOrderStatusInvalid)
			},
			expStatus: http.StatusUnprocessableEntity,
			expBody:   map[string]any{"error": domain.ErrOrderStatusInvalid.Error()},
		},
		{
			name:   "Create installment plan",
			method: http.MethodPost,
			path:   "/api/orders/7/installments",
			body:   `{"count": 3}`,
			userID: 1,
			mock: func(svc *mock.MockService) {
				svc.EXPECT().CreateInstallmentPlan(gomock.Any(), uint64(1), uint64(7), 3).
					Return(&domain.Installment{
						ID:          11,
						OrderID:     7,
						TotalAmount: decimal.MustParse("1000.00"),
						Count:       3,
						FeeRate:     decimal.MustParse("1.5"),
						FineRate:    decimal.MustParse("0.05"),
						Status:      domain.InstallmentStatusPending,
					}, nil)
			},
			expStatus: http.StatusOK,
			expBody: map[string]any{
				"id":     float64(11),
				"count":  float64(3),
				"status": "pending",
			},
		},
		{
			name:      "Installment without count",
			method:    http.MethodPost,
			path:      "/api/orders/7/installments",
			body:      `{}`,
			userID:    1,
			mock:      func(svc *mock.MockService) {},
			expStatus: http.StatusBadRequest,
		},
		{
			name:   "Installment below minimum",
			method: http.MethodPost,
			path:   "/api/orders/7/installments",
			body:   `{"count": 3}`,
			userID: 1,
			mock: func(svc *mock.MockService) {
				svc.EXPECT().CreateInstallmentPlan(gomock.Any(), uint64(1), uint64(7), 3).
					Return(nil, domain.ErrInstallmentAmountTooLow)
			},
			expStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "Internal error",
			method: http.MethodPost,
			path:   "/api/orders/7/installments",
			body:   `{"count": 6}`,
			userID: 1,
			mock: func(svc *mock.MockService) {
				svc.EXPECT().CreateInstallmentPlan(gomock.Any(), uint64(1), uint64(7), 6).
					Return(nil, domain.ErrInternal)
			},
			expStatus: http.StatusInternalServerError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc := mock.NewMockService(mockCtrl)
			test.mock(svc)
			r, ts := newTestRouter(t, svc)

			req := httptest.NewRequest(test.method, test.path, strings.NewReader(test.body))
			req.Header.Set("Content-Type", "application/json")
			if !test.noAuth {
				token, err := ts.CreateToken(test.userID)
				require.NoError(t, err)
				req.Header.Set("Authorization", "Bearer "+token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, test.expStatus, w.Code)
			if test.expBody == nil {
				return
			}
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			for k, v := range test.expBody {
				assert.Equal(t, v, body[k], k)
			}
		})
	}
}
