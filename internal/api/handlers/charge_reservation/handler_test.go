package charge_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chargeUC "github.com/m04kA/SMC-ParkingService/internal/usecase/charge_reservation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type chargeUseCaseStub struct {
	calls   int
	lastReq *chargeUC.Request
	resp    *chargeUC.Response
	err     error
}

func (s *chargeUseCaseStub) Execute(_ context.Context, req *chargeUC.Request) (*chargeUC.Response, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func chargeResponse() *chargeUC.Response {
	return &chargeUC.Response{
		PaymentID:     101,
		ReservationID: 7,
		Method:        "cash",
		Amount:        decimal.RequireFromString("20.00"),
		Status:        "approved",
		CreatedAt:     time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func doCharge(t *testing.T, uc *chargeUseCaseStub, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/reservations/{reservationId}/charge", h.HandleByReservation).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/reservations/7/charge", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleByReservation_ConfirmFlagAccepted(t *testing.T) {
	uc := &chargeUseCaseStub{resp: chargeResponse()}

	rec := doCharge(t, uc, `{"method":"cash","confirm":true}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, 1, uc.calls)
	assert.Equal(t, int64(7), uc.lastReq.ReservationID)
	assert.Equal(t, "cash", uc.lastReq.Method)

	var resp ChargeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(101), resp.PaymentID)
	assert.Equal(t, "approved", resp.Status)
}

func TestHandleByReservation_ConfirmFalseSameAsAbsent(t *testing.T) {
	withFlag := &chargeUseCaseStub{resp: chargeResponse()}
	without := &chargeUseCaseStub{resp: chargeResponse()}

	recFlag := doCharge(t, withFlag, `{"method":"cash","confirm":false}`)
	recPlain := doCharge(t, without, `{"method":"cash"}`)

	require.Equal(t, http.StatusCreated, recFlag.Code)
	require.Equal(t, http.StatusCreated, recPlain.Code)
	assert.Equal(t, withFlag.lastReq, without.lastReq)
	assert.JSONEq(t, recPlain.Body.String(), recFlag.Body.String())
}

func TestHandleByBody_ConfirmFlagAccepted(t *testing.T) {
	uc := &chargeUseCaseStub{resp: chargeResponse()}
	h := NewHandler(uc, nopLogger{})

	body := `{"reservationId":7,"method":"cash","confirm":true}`
	req := httptest.NewRequest(http.MethodPost, "/payments/charge", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleByBody(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, 1, uc.calls)
	assert.Equal(t, int64(7), uc.lastReq.ReservationID)
}

func TestHandleByReservation_UnknownFieldRejected(t *testing.T) {
	uc := &chargeUseCaseStub{resp: chargeResponse()}

	rec := doCharge(t, uc, `{"method":"cash","bogus":1}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, uc.calls)
}
