package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jekabolt/resto-manager/internal/auth"
	"github.com/jekabolt/resto-manager/internal/auth/jwt"
	"github.com/jekabolt/resto-manager/internal/dependency/mocks"
	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
	"github.com/jekabolt/resto-manager/internal/period"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	h         http.Handler
	token     string
	repo      *mocks.Repository
	analytics *mocks.Analytics
	expenses  *mocks.Expenses
	stock     *mocks.Stock
	menu      *mocks.Menu
	receivers *mocks.ReportReceivers
	admin     *mocks.Admin
	reports   *mocks.ReportAssembler
	mailer    *mocks.Mailer
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWithConfig(t, &Config{AllowedOrigins: []string{"*"}})
}

func newFixtureWithConfig(t *testing.T, c *Config) *fixture {
	f := &fixture{
		repo:      mocks.NewRepository(t),
		analytics: mocks.NewAnalytics(t),
		expenses:  mocks.NewExpenses(t),
		stock:     mocks.NewStock(t),
		menu:      mocks.NewMenu(t),
		receivers: mocks.NewReportReceivers(t),
		admin:     mocks.NewAdmin(t),
		reports:   mocks.NewReportAssembler(t),
		mailer:    mocks.NewMailer(t),
	}
	a, err := auth.New(&auth.Config{
		JWTSecret:      "secret",
		MasterPassword: "master",
		JWTTTL:         "1h",
		BcryptCost:     bcrypt.MinCost,
	}, f.admin)
	require.NoError(t, err)
	f.token, err = jwt.NewToken(a.JwtAuth, time.Hour, "chef")
	require.NoError(t, err)

	s := New(c, RecurringConfig{ExpenseHorizon: 1, StockHorizon: 11},
		f.repo, f.reports, f.mailer, a)
	f.h = s.Router()
	return f
}

func (f *fixture) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Authorization", "Bearer "+f.token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestAdminRoutesRequireToken(t *testing.T) {
	f := newFixture(t)
	f.token = ""
	rec := f.do(t, http.MethodGet, "/api/analytics/revenue?period=monthly", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRevenueInvalidDateIsRejectedBeforeQuery(t *testing.T) {
	f := newFixture(t)
	for _, q := range []string{
		"period=daily&date=2024-1-15",
		"period=daily&date=2024-13-01",
		"period=monthly&date=2024",
		"period=weekly&date=2024-01-15",
		"period=hourly",
		"",
	} {
		rec := f.do(t, http.MethodGet, "/api/analytics/revenue?"+q, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
		assert.NotEmpty(t, decode[ErrResponse](t, rec).Error)
	}
}

func TestRevenue(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Analytics().Return(f.analytics)
	f.analytics.EXPECT().RevenueByPeriod(mock.Anything, period.Monthly, period.Filter{}).
		Return([]entity.PeriodValue{{Period: "2024-02", Value: decimal.RequireFromString("120.50")}}, nil)

	rec := f.do(t, http.MethodGet, "/api/analytics/revenue?period=monthly", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"period":"2024-02","revenue":"120.5"}]`, rec.Body.String())
}

func TestRevenueEmptyIsArray(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Analytics().Return(f.analytics)
	f.analytics.EXPECT().RevenueByPeriod(mock.Anything, period.Monthly, mock.Anything).Return(nil, nil)

	rec := f.do(t, http.MethodGet, "/api/analytics/revenue?period=monthly&date=2024-03", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestNetProfit(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Analytics().Return(f.analytics)
	f.analytics.EXPECT().RevenueByPeriod(mock.Anything, period.Yearly, mock.Anything).
		Return([]entity.PeriodValue{{Period: "2024", Value: decimal.NewFromInt(100)}}, nil)
	f.analytics.EXPECT().ExpensesByPeriod(mock.Anything, period.Yearly, mock.Anything).
		Return([]entity.PeriodValue{
			{Period: "2024", Value: decimal.NewFromInt(30)},
			{Period: "2023", Value: decimal.NewFromInt(10)},
		}, nil)

	rec := f.do(t, http.MethodGet, "/api/analytics/net?period=yearly", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"period":"2024","revenue":"100","expenses":"30","net":"70"},
		{"period":"2023","revenue":"0","expenses":"10","net":"-10"}
	]`, rec.Body.String())
}

func TestPopularItems(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Analytics().Return(f.analytics)
	f.analytics.EXPECT().PopularItems(mock.Anything, 3).Return([]entity.PopularItem{
		{ItemId: 1, Name: "Margherita", Quantity: 40},
		{ItemId: 2, Name: "Espresso", Quantity: 31},
		{ItemId: 3, Name: "Tiramisu", Quantity: 12},
	}, nil)

	rec := f.do(t, http.MethodGet, "/api/analytics/popular-items?limit=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 3)

	rec = f.do(t, http.MethodGet, "/api/analytics/popular-items?limit=zero", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomerCountCountsPaidOrders(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Analytics().Return(f.analytics)
	f.analytics.EXPECT().PaidOrderCountTrend(mock.Anything, period.Weekly, mock.MatchedBy(func(fl period.Filter) bool {
		return fl.Bounded && fl.To.Equal(time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC))
	})).Return([]entity.PeriodCount{{Period: "2024-01", Count: 9}}, nil)

	rec := f.do(t, http.MethodGet, "/api/analytics/customer-count?period=week&start=2024-01-01&end=2024-01-31", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"period":"2024-01","customers":9}]`, rec.Body.String())
}

func TestOrderTrendsAndHeatmapValidation(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Analytics().Return(f.analytics)
	f.analytics.EXPECT().RevenueHeatmap(mock.Anything, entity.HeatmapKind("monthly"), mock.Anything).
		Return(nil, gerr.InvalidRequest("unsupported heatmap type %q", "monthly"))

	rec := f.do(t, http.MethodGet, "/api/analytics/revenue-heatmap?type=monthly", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/analytics/order-trends?group=decade", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/analytics/order-trends?start=2024-02-01&end=2024-01-01", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStoreFailureIsGeneric(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Analytics().Return(f.analytics)
	f.analytics.EXPECT().OrderCountByPeriod(mock.Anything, period.Daily, mock.Anything).Return(nil, assert.AnError)

	rec := f.do(t, http.MethodGet, "/api/analytics/orders?period=daily", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestGetReportDefaultsToZero(t *testing.T) {
	f := newFixture(t)
	f.reports.EXPECT().GetReport(mock.Anything, "daily", "2024-01-15").Return(&entity.Report{
		Period:   "daily",
		Date:     "2024-01-15",
		Items:    []entity.ItemSale{},
		Revenue:  decimal.Zero,
		Expenses: decimal.Zero,
	}, nil)

	rec := f.do(t, http.MethodGet, "/api/report?period=daily&date=2024-01-15", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"period":"daily","date":"2024-01-15","items":[],"revenue":"0","expenses":"0","profit":"0"}`, rec.Body.String())
}

func TestExportReport(t *testing.T) {
	f := newFixture(t)
	f.reports.EXPECT().GetReport(mock.Anything, "monthly", "2024-02").Return(&entity.Report{
		Period:   "monthly",
		Date:     "2024-02",
		Items:    []entity.ItemSale{{ItemId: 1, Name: "Pizza", Quantity: 2, Total: decimal.NewFromInt(24)}},
		Revenue:  decimal.NewFromInt(24),
		Expenses: decimal.NewFromInt(4),
	}, nil)

	rec := f.do(t, http.MethodGet, "/api/report/export?period=monthly&date=2024-02", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "report-monthly-2024-02.xlsx")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")))
}

type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (w brokenWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestExportReportLogsWriteFailure(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	f := newFixture(t)
	f.reports.EXPECT().GetReport(mock.Anything, "yearly", "2023").Return(&entity.Report{
		Period: "yearly", Date: "2023", Revenue: decimal.Zero, Expenses: decimal.Zero,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/report/export?period=yearly&date=2023", nil)
	req.Header.Set("Authorization", "Bearer "+f.token)
	f.h.ServeHTTP(brokenWriter{httptest.NewRecorder()}, req)

	assert.Contains(t, logs.String(), "can't write report export")
	assert.Contains(t, logs.String(), io.ErrClosedPipe.Error())
}

func TestSendReport(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/send-report", map[string]string{"period": "daily", "date": "2024-01-15", "email": "nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rep := &entity.Report{Period: "daily", Date: "2024-01-15", Revenue: decimal.Zero, Expenses: decimal.Zero}
	f.reports.EXPECT().GetReport(mock.Anything, "daily", "2024-01-15").Return(rep, nil)
	f.mailer.EXPECT().SendReport(mock.Anything, []string{"owner@resto.test"}, rep, mock.Anything).Return(nil).Once()

	rec = f.do(t, http.MethodPost, "/api/send-report", map[string]string{"period": "daily", "date": "2024-01-15", "email": "owner@resto.test"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAddRecurringExpense(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Expenses().Return(f.expenses)

	due := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	f.expenses.EXPECT().AddExpense(mock.Anything, mock.MatchedBy(func(e *entity.ExpenseInsert) bool {
		return e.IsRecurring && e.Frequency.String == "monthly" &&
			e.NextDueDate.Time.Equal(due) && e.EndDate.Time.Equal(end)
	})).Return(5, nil)
	f.expenses.EXPECT().GetExpenseById(mock.Anything, 5).Return(&entity.Expense{
		Id: 5,
		ExpenseInsert: entity.ExpenseInsert{
			Type:        "rent",
			Amount:      decimal.NewFromInt(1500),
			ExpenseDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
	}, nil)

	rec := f.do(t, http.MethodPost, "/api/expenses", map[string]any{
		"type":                "rent",
		"amount":              "1500",
		"expense_date":        "2024-01-10",
		"is_recurring":        true,
		"recurring_frequency": "monthly",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, float64(5), decode[map[string]any](t, rec)["id"])
}

func TestAddExpenseUnknownFrequency(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodPost, "/api/expenses", map[string]any{
		"type":                "rent",
		"amount":              "1500",
		"expense_date":        "2024-01-10",
		"is_recurring":        true,
		"recurring_frequency": "fortnightly",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetExpenseNotFound(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Expenses().Return(f.expenses)
	f.expenses.EXPECT().GetExpenseById(mock.Anything, 42).Return(nil, gerr.NotFound("expense %d not found", 42))

	rec := f.do(t, http.MethodGet, "/api/expenses/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/expenses/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddStockUsesStockHorizon(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Stock().Return(f.stock)
	f.stock.EXPECT().AddStock(mock.Anything, mock.MatchedBy(func(s *entity.StockInsert) bool {
		return s.EndDate.Time.Equal(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	})).RunAndReturn(func(_ context.Context, s *entity.StockInsert) (*entity.Stock, error) {
		return &entity.Stock{Id: 3, StockInsert: *s}, nil
	})

	rec := f.do(t, http.MethodPost, "/api/stock", map[string]any{
		"item_name":           "Flour",
		"quantity":            "2.5",
		"unit":                "kg",
		"unit_cost":           "1.20",
		"purchase_date":       "2024-01-10",
		"is_recurring":        true,
		"recurring_frequency": "monthly",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode[map[string]any](t, rec)
	assert.Equal(t, "3", body["total_cost"])
	assert.Equal(t, "2025-01-10", body["recurring_end_date"])
}

func TestAddItemRejectsImageTraversal(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodPost, "/api/items", map[string]any{
		"category_id": 1,
		"name":        "Pizza",
		"price":       "12",
		"image":       "../../etc/passwd",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublicMenu(t *testing.T) {
	f := newFixture(t)
	f.token = ""
	f.repo.EXPECT().Menu().Return(f.menu)
	f.menu.EXPECT().GetMenu(mock.Anything).Return([]entity.MenuCategory{{
		Category: entity.Category{Id: 1, CategoryInsert: entity.CategoryInsert{Name: "Pizza", Position: 1}},
		Items: []entity.Item{{Id: 7, ItemInsert: entity.ItemInsert{
			CategoryId: 1, Name: "Margherita", Price: decimal.NewFromInt(12), Available: true,
		}}},
	}}, nil)

	rec := f.do(t, http.MethodGet, "/api/menu", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	menu := decode[[]map[string]any](t, rec)
	require.Len(t, menu, 1)
	assert.Equal(t, "Pizza", menu[0]["name"])
}

func TestAddReceiverUnknownAdmin(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().ReportReceivers().Return(f.receivers)
	f.receivers.EXPECT().AddReceiver(mock.Anything, &entity.ReportReceiverInsert{AdminId: 9, Email: "owner@resto.test", Daily: true}).
		Return(0, gerr.NotFound("admin %d not found", 9))

	rec := f.do(t, http.MethodPost, "/api/report-receivers", map[string]any{"admin_id": 9, "email": "owner@resto.test", "daily": true})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	f.token = ""
	hash, err := bcrypt.GenerateFromPassword([]byte("pizza"), bcrypt.MinCost)
	require.NoError(t, err)
	f.admin.EXPECT().PasswordHashByUsername(mock.Anything, "chef").Return(string(hash), nil)

	rec := f.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "chef", "password": "pizza"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decode[map[string]string](t, rec)["token"])

	rec = f.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "chef", "password": "pasta"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminCreationIsRateLimited(t *testing.T) {
	f := newFixtureWithConfig(t, &Config{AllowedOrigins: []string{"*"}, LoginRateLimit: 2})
	f.token = ""
	body := map[string]string{"master_password": "guess", "username": "chef", "password": "pizza"}

	for i := 0; i < 2; i++ {
		rec := f.do(t, http.MethodPost, "/api/auth/admins", body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
	rec := f.do(t, http.MethodPost, "/api/auth/admins", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/auth/login", map[string]string{"username": "chef", "password": "pizza"})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Ping(mock.Anything).Return(nil).Once()
	rec := f.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	f.repo.EXPECT().Ping(mock.Anything).Return(assert.AnError).Once()
	rec = f.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
