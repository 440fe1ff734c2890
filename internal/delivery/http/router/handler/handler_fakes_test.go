package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newEchoContext builds an echo.Context around an httptest request/recorder.
func newEchoContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	errMW := middleware.NewErrorMiddleware(discardLogger())
	e.HTTPErrorHandler = errMW.HandleHTTPError

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// render runs a handler and routes any returned error through the error
// handler, the way the real server does.
func render(c echo.Context, rec *httptest.ResponseRecorder, fn echo.HandlerFunc) *httptest.ResponseRecorder {
	if err := fn(c); err != nil {
		c.Echo().HTTPErrorHandler(err, c)
	}

	return rec
}

func authenticate(c echo.Context, userID string) {
	deliverycontext.SetIdentity(c, &service.Claims{UserID: userID, Email: userID + "@example.com"})
}

// --- Usecase fakes ---

type fakeAccountUsecase struct {
	registerOut *usecase.AuthOutput
	registerErr error
	loginOut    *usecase.AuthOutput
	loginErr    error
	verifyOut   *entity.User
	verifyErr   error
	updateOut   *entity.User
	updateErr   error
}

func (f *fakeAccountUsecase) Register(_ context.Context, _ usecase.RegisterInput) (*usecase.AuthOutput, error) {
	return f.registerOut, f.registerErr
}

func (f *fakeAccountUsecase) Login(_ context.Context, _ usecase.LoginInput) (*usecase.AuthOutput, error) {
	return f.loginOut, f.loginErr
}

func (f *fakeAccountUsecase) Verify(_ context.Context, _ string) (*entity.User, error) {
	return f.verifyOut, f.verifyErr
}

func (f *fakeAccountUsecase) UpdateAddress(_ context.Context, _ string, _ usecase.UpdateAddressInput) (*entity.User, error) {
	return f.updateOut, f.updateErr
}

type fakeCatalogUsecase struct {
	createOut *entity.Product
	createErr error
	listOut   []*entity.Product
	listErr   error
	getOut    *entity.Product
	getErr    error
	updateOut *entity.Product
	updateErr error
	deleteErr error

	lastCategory string
}

func (f *fakeCatalogUsecase) CreateProduct(_ context.Context, _ usecase.CreateProductInput) (*entity.Product, error) {
	return f.createOut, f.createErr
}

func (f *fakeCatalogUsecase) ListProducts(_ context.Context, category string) ([]*entity.Product, error) {
	f.lastCategory = category

	return f.listOut, f.listErr
}

func (f *fakeCatalogUsecase) GetProduct(_ context.Context, _, category string) (*entity.Product, error) {
	f.lastCategory = category

	return f.getOut, f.getErr
}

func (f *fakeCatalogUsecase) UpdateProduct(_ context.Context, _, _ string, _ usecase.UpdateProductInput) (*entity.Product, error) {
	return f.updateOut, f.updateErr
}

func (f *fakeCatalogUsecase) DeleteProduct(_ context.Context, _, _ string) error {
	return f.deleteErr
}

type fakeCartUsecase struct {
	getOut   *entity.Cart
	getErr   error
	saveOut  *entity.Cart
	saveErr  error
	clearErr error
}

func (f *fakeCartUsecase) GetCart(_ context.Context, _ string) (*entity.Cart, error) {
	return f.getOut, f.getErr
}

func (f *fakeCartUsecase) SaveCart(_ context.Context, _ string, _ usecase.SaveCartInput) (*entity.Cart, error) {
	return f.saveOut, f.saveErr
}

func (f *fakeCartUsecase) ClearCart(_ context.Context, _ string) error {
	return f.clearErr
}

type fakeOrderUsecase struct {
	placeOut *entity.Order
	placeErr error
	listOut  []*entity.Order
	listErr  error
	getOut   *entity.Order
	getErr   error
}

func (f *fakeOrderUsecase) PlaceOrder(_ context.Context, _ string, _ usecase.PlaceOrderInput) (*entity.Order, error) {
	return f.placeOut, f.placeErr
}

func (f *fakeOrderUsecase) ListOrders(_ context.Context, _ string) ([]*entity.Order, error) {
	return f.listOut, f.listErr
}

func (f *fakeOrderUsecase) GetOrder(_ context.Context, _, _ string) (*entity.Order, error) {
	return f.getOut, f.getErr
}
