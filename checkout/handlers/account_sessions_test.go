package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	testTools "github.com/rochabr/connect-parking-demo/common/test_tools"
	"github.com/rochabr/connect-parking-demo/logger"
	"github.com/rochabr/connect-parking-demo/checkout/iface/mocks"
	"github.com/rochabr/connect-parking-demo/checkout/service"
)

func TestCheckout_CreateAccountSessionHandler(t *testing.T) {
	type fields struct {
		service *mocks.CheckoutService
	}

	type args struct {
		ctx *gin.Context
	}

	tests := []struct {
		name       string
		args       args
		wantErr    bool
		wantStatus int
		on         func(f *fields)
	}{
		{
			name: "missing account is a bad request",
			args: args{
				ctx: testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{}, nil),
			},
			wantErr:    true,
			wantStatus: http.StatusBadRequest,
			on: func(f *fields) {
				f.service.On("CreateAccountSession", mock.AnythingOfType("*gin.Context"), "").
					Return("", service.ErrAccountRequired)
			},
		},
		{
			name: "provider failure is an internal error",
			args: args{
				ctx: testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{"accountId": "acct_1"}, nil),
			},
			wantErr:    true,
			wantStatus: http.StatusInternalServerError,
			on: func(f *fields) {
				f.service.On("CreateAccountSession", mock.AnythingOfType("*gin.Context"), "acct_1").
					Return("", service.ErrCreateAccountSession)
			},
		},
		{
			name: "success create account session",
			args: args{
				ctx: testTools.GenerateCtxWithJSONAndParams(t, map[string]interface{}{"accountId": "acct_1"}, nil),
			},
			wantErr: false,
			on: func(f *fields) {
				f.service.On("CreateAccountSession", mock.AnythingOfType("*gin.Context"), "acct_1").
					Return("accs_secret_1", nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := fields{
				service: mocks.NewCheckoutService(t),
			}

			h := &Checkout{
				loggerProvider: logger.FromContext,
				service:        fields.service,
				publishableKey: "pk_test_123",
			}

			if tt.on != nil {
				tt.on(&fields)
			}

			err := h.CreateAccountSessionHandler(tt.args.ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("Checkout.CreateAccountSessionHandler() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr && errStatus(t, err) != tt.wantStatus {
				t.Errorf("Checkout.CreateAccountSessionHandler() status = %d, want %d", errStatus(t, err), tt.wantStatus)
			}
		})
	}
}
