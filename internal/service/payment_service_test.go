package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"inspection-billing/internal/adapter/storage/memory"
	"inspection-billing/internal/core/domain"
	"inspection-billing/internal/core/ports"
	"inspection-billing/internal/core/ports/mocks"
	"inspection-billing/internal/observability"
	"inspection-billing/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type paymentTestDeps struct {
	svc        *PaymentServiceImpl
	intentRepo *mocks.MockPaymentIntentRepository
	oracle     *mocks.MockInspectionOracle
	gateways   *mocks.MockGatewayResolver
	gateway    *mocks.MockGatewayClient
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupPaymentService(t *testing.T) *paymentTestDeps {
	ctrl := gomock.NewController(t)
	d := &paymentTestDeps{
		intentRepo: mocks.NewMockPaymentIntentRepository(ctrl),
		oracle:     mocks.NewMockInspectionOracle(ctrl),
		gateways:   mocks.NewMockGatewayResolver(ctrl),
		gateway:    mocks.NewMockGatewayClient(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.gateway.EXPECT().Provider().Return(domain.ProviderMercadoPago).AnyTimes()
	d.svc = NewPaymentService(
		d.intentRepo, d.oracle, d.gateways, NewPricing(1000, 2000),
		d.transactor, observability.Nop{}, time.Second, zerolog.Nop(),
	)
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

// expectGuardPass wires the calls that precede the gateway call.
func (d *paymentTestDeps) expectGuardPass(ctx context.Context, tx pgx.Tx, inspectionID, requesterID uuid.UUID, units int, latest *domain.PaymentIntent) {
	d.oracle.EXPECT().AssertCanPay(ctx, inspectionID, requesterID).Return(nil)
	d.oracle.EXPECT().CountBillableUnits(ctx, inspectionID).Return(units, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.intentRepo.EXPECT().LockInspection(ctx, tx, inspectionID).Return(nil)
	d.intentRepo.EXPECT().GetLatestByInspectionTx(ctx, tx, inspectionID).Return(latest, nil)
}

// ==================== CreatePaymentForInspection Tests ====================

func TestPaymentService_Create_Success(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	inspectionID, requesterID := uuid.New(), uuid.New()
	tx := &mockTx{}

	d.expectGuardPass(ctx, tx, inspectionID, requesterID, 3, nil)
	d.gateways.EXPECT().Default().Return(d.gateway)
	d.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.ChargeRequest) (*ports.Charge, error) {
			assert.Equal(t, inspectionID, req.InspectionID)
			assert.Equal(t, 3, req.UnitCount)
			assert.Equal(t, domain.Money(7000), req.TotalAmount)
			return &ports.Charge{Provider: domain.ProviderMercadoPago, ChargeID: "pref-1", CheckoutURL: "https://mp/checkout/pref-1"}, nil
		})

	var stored *domain.PaymentIntent
	d.intentRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, in *domain.PaymentIntent) error {
			stored = in
			return nil
		})

	answer, err := d.svc.CreatePaymentForInspection(ctx, inspectionID, requesterID)
	require.NoError(t, err)

	assert.Equal(t, "70.00", answer.TotalAmount.String())
	assert.Equal(t, 3, answer.UnitCount)
	assert.Equal(t, domain.PaymentStatusPending, answer.Status)
	assert.Equal(t, domain.ProviderMercadoPago, answer.Provider)
	assert.Equal(t, "https://mp/checkout/pref-1", answer.CheckoutURL)

	require.NotNil(t, stored)
	assert.Equal(t, answer.IntentID, stored.ID)
	assert.Equal(t, domain.Money(1000), stored.ReportFee)
	assert.Equal(t, domain.Money(2000), stored.PricePerUnit)
	assert.Equal(t, "pref-1", stored.ChargeID())
	assert.Nil(t, stored.PaidAt)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestPaymentService_Create_AuthorizationDenied(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	inspectionID, requesterID := uuid.New(), uuid.New()
	d.oracle.EXPECT().AssertCanPay(ctx, inspectionID, requesterID).Return(apperror.ErrAuthorizationDenied())

	_, err := d.svc.CreatePaymentForInspection(ctx, inspectionID, requesterID)
	assertAppError(t, err, "AUTH_002")
}

func TestPaymentService_Create_OracleFailureIsInternal(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	inspectionID, requesterID := uuid.New(), uuid.New()
	d.oracle.EXPECT().AssertCanPay(ctx, inspectionID, requesterID).Return(errors.New("connection refused"))

	_, err := d.svc.CreatePaymentForInspection(ctx, inspectionID, requesterID)
	assertAppError(t, err, "SYS_001")
}

func TestPaymentService_Create_NothingToCharge(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	inspectionID, requesterID := uuid.New(), uuid.New()
	d.oracle.EXPECT().AssertCanPay(ctx, inspectionID, requesterID).Return(nil)
	d.oracle.EXPECT().CountBillableUnits(ctx, inspectionID).Return(0, nil)

	_, err := d.svc.CreatePaymentForInspection(ctx, inspectionID, requesterID)
	assertAppError(t, err, "PAY_006")
}

func TestPaymentService_Create_PendingIntentConflict(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	inspectionID, requesterID := uuid.New(), uuid.New()
	tx := &mockTx{}
	pending := &domain.PaymentIntent{ID: uuid.New(), InspectionID: inspectionID, Status: domain.PaymentStatusPending}

	d.expectGuardPass(ctx, tx, inspectionID, requesterID, 2, pending)
	// No gateway call and no Create are expected.

	_, err := d.svc.CreatePaymentForInspection(ctx, inspectionID, requesterID)
	assertAppError(t, err, "PAY_003")
}

func TestPaymentService_Create_AfterFailedIntentIsAllowed(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	inspectionID, requesterID := uuid.New(), uuid.New()
	tx := &mockTx{}
	failed := &domain.PaymentIntent{ID: uuid.New(), InspectionID: inspectionID, Status: domain.PaymentStatusFailed}

	d.expectGuardPass(ctx, tx, inspectionID, requesterID, 1, failed)
	d.gateways.EXPECT().Default().Return(d.gateway)
	d.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).
		Return(&ports.Charge{ChargeID: "pref-2", CheckoutURL: "https://mp/2"}, nil)
	d.intentRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	answer, err := d.svc.CreatePaymentForInspection(ctx, inspectionID, requesterID)
	require.NoError(t, err)
	assert.Equal(t, "30.00", answer.TotalAmount.String())
	assert.Equal(t, domain.ProviderMercadoPago, answer.Provider, "provider falls back to the client's")
}

func TestPaymentService_Create_GatewayErrorPersistsNothing(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	inspectionID, requesterID := uuid.New(), uuid.New()
	tx := &mockTx{}

	d.expectGuardPass(ctx, tx, inspectionID, requesterID, 2, nil)
	d.gateways.EXPECT().Default().Return(d.gateway)
	d.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return(nil, errors.New("503 from provider"))

	_, err := d.svc.CreatePaymentForInspection(ctx, inspectionID, requesterID)
	assertAppError(t, err, "GW_001")
}

func TestPaymentService_Create_GatewayUnusableResponse(t *testing.T) {
	tests := []struct {
		name   string
		charge *ports.Charge
	}{
		{"nil charge", nil},
		{"no charge id", &ports.Charge{CheckoutURL: "https://mp/1"}},
		{"no checkout url", &ports.Charge{ChargeID: "pref-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupPaymentService(t)
			ctx := context.Background()
			inspectionID, requesterID := uuid.New(), uuid.New()
			tx := &mockTx{}

			d.expectGuardPass(ctx, tx, inspectionID, requesterID, 2, nil)
			d.gateways.EXPECT().Default().Return(d.gateway)
			d.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return(tt.charge, nil)

			_, err := d.svc.CreatePaymentForInspection(ctx, inspectionID, requesterID)
			assertAppError(t, err, "GW_001")
		})
	}
}

func TestPaymentService_Create_GatewayCallIsBounded(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()
	d.svc.gatewayTimeout = 20 * time.Millisecond

	ctx := context.Background()
	inspectionID, requesterID := uuid.New(), uuid.New()
	tx := &mockTx{}

	d.expectGuardPass(ctx, tx, inspectionID, requesterID, 2, nil)
	d.gateways.EXPECT().Default().Return(d.gateway)
	d.gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ ports.ChargeRequest) (*ports.Charge, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	_, err := d.svc.CreatePaymentForInspection(ctx, inspectionID, requesterID)
	assertAppError(t, err, "GW_001")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPaymentService_Create_BeginError(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	inspectionID, requesterID := uuid.New(), uuid.New()
	d.oracle.EXPECT().AssertCanPay(ctx, inspectionID, requesterID).Return(nil)
	d.oracle.EXPECT().CountBillableUnits(ctx, inspectionID).Return(2, nil)
	d.transactor.EXPECT().Begin(ctx).Return(nil, errors.New("pool exhausted"))

	_, err := d.svc.CreatePaymentForInspection(ctx, inspectionID, requesterID)
	assertAppError(t, err, "SYS_001")
}

// ==================== GetLatestPayment Tests ====================

func TestPaymentService_GetLatest(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	inspectionID, requesterID := uuid.New(), uuid.New()
	url := "https://mp/1"
	latest := &domain.PaymentIntent{
		ID: uuid.New(), InspectionID: inspectionID, UnitCountSnapshot: 2,
		TotalAmount: 5000, Status: domain.PaymentStatusPaid, Provider: domain.ProviderMercadoPago,
		ProviderCheckoutURL: &url,
	}

	d.oracle.EXPECT().AssertCanPay(ctx, inspectionID, requesterID).Return(nil)
	d.intentRepo.EXPECT().GetLatestByInspection(ctx, inspectionID).Return(latest, nil)

	answer, err := d.svc.GetLatestPayment(ctx, inspectionID, requesterID)
	require.NoError(t, err)
	assert.Equal(t, latest.ID, answer.IntentID)
	assert.Equal(t, domain.PaymentStatusPaid, answer.Status)
	assert.Equal(t, url, answer.CheckoutURL)
}

func TestPaymentService_GetLatest_None(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	inspectionID, requesterID := uuid.New(), uuid.New()
	d.oracle.EXPECT().AssertCanPay(ctx, inspectionID, requesterID).Return(nil)
	d.intentRepo.EXPECT().GetLatestByInspection(ctx, inspectionID).Return(nil, nil)

	_, err := d.svc.GetLatestPayment(ctx, inspectionID, requesterID)
	assertAppError(t, err, "PAY_004")
}

// ==================== Concurrency ====================

func TestPaymentService_Create_ConcurrentRequestsYieldOneIntent(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := memory.NewStore()
	oracle := memory.NewInspectionOracle(store)
	intents := memory.NewIntentRepo(store)

	inspectionID, owner := uuid.New(), uuid.New()
	oracle.Put(inspectionID, owner, 2)

	gw := mocks.NewMockGatewayClient(ctrl)
	gw.EXPECT().Provider().Return(domain.ProviderMercadoPago).AnyTimes()
	gw.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.ChargeRequest) (*ports.Charge, error) {
			time.Sleep(10 * time.Millisecond) // widen the race window
			return &ports.Charge{ChargeID: "pref-" + req.IntentID.String(), CheckoutURL: "https://mp/x"}, nil
		}).Times(1)
	resolver := mocks.NewMockGatewayResolver(ctrl)
	resolver.EXPECT().Default().Return(gw).AnyTimes()

	svc := NewPaymentService(intents, oracle, resolver, NewPricing(1000, 2000),
		memory.NewTransactor(store), observability.Nop{}, time.Second, zerolog.Nop())

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = svc.CreatePaymentForInspection(context.Background(), inspectionID, owner)
		}(i)
	}
	close(start)
	wg.Wait()

	succeeded, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case apperror.CodeOf(err) == "PAY_003":
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, callers-1, conflicts)

	stale, err := intents.ListStale(context.Background(), time.Now().Add(time.Hour), 100)
	require.NoError(t, err)
	assert.Len(t, stale, 1, "exactly one PENDING intent exists")
}

// ==================== Helper ====================

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}
