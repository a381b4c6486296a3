package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jekabolt/resto-manager/internal/entity"
	"github.com/jekabolt/resto-manager/internal/period"
	"github.com/jmoiron/sqlx"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	Analytics interface {
		// RevenueByPeriod sums paid order totals per period, most recent first.
		RevenueByPeriod(ctx context.Context, g period.Granularity, f period.Filter) ([]entity.PeriodValue, error)
		// ExpensesByPeriod sums expense amounts per period, most recent first.
		ExpensesByPeriod(ctx context.Context, g period.Granularity, f period.Filter) ([]entity.PeriodValue, error)
		// OrderCountByPeriod counts paid orders per period, most recent first.
		OrderCountByPeriod(ctx context.Context, g period.Granularity, f period.Filter) ([]entity.PeriodCount, error)
		// PaidOrderCountTrend counts paid orders per period in chronological order.
		PaidOrderCountTrend(ctx context.Context, g period.Granularity, f period.Filter) ([]entity.PeriodCount, error)
		// OrderTrends returns count and paid total per month or year, chronologically.
		OrderTrends(ctx context.Context, g period.Granularity, f period.Filter) ([]entity.OrderTrend, error)
		// PopularItems returns the top items by quantity sold in paid orders.
		PopularItems(ctx context.Context, limit int) ([]entity.PopularItem, error)
		// RevenueHeatmap buckets paid revenue by hour of day or ISO weekday.
		RevenueHeatmap(ctx context.Context, kind entity.HeatmapKind, f period.Filter) ([]entity.HeatmapBucket, error)
	}

	Reports interface {
		// RevenueTotal sums paid orders inside f.
		RevenueTotal(ctx context.Context, f period.Filter) (decimal.Decimal, error)
		// ExpenseTotal sums expenses inside f.
		ExpenseTotal(ctx context.Context, f period.Filter) (decimal.Decimal, error)
		// ItemSales groups paid order lines inside f by item.
		ItemSales(ctx context.Context, f period.Filter) ([]entity.ItemSale, error)
	}

	Expenses interface {
		AddExpense(ctx context.Context, e *entity.ExpenseInsert) (int, error)
		UpdateExpense(ctx context.Context, id int, e *entity.ExpenseInsert) error
		GetExpenseById(ctx context.Context, id int) (*entity.Expense, error)
		ListExpenses(ctx context.Context, f entity.ExpenseFilter) ([]entity.Expense, error)
		DeleteExpenseById(ctx context.Context, id int) error
	}

	Stock interface {
		// AddStock inserts the purchase together with its stock expense.
		AddStock(ctx context.Context, s *entity.StockInsert) (*entity.Stock, error)
		UpdateStock(ctx context.Context, id int, s *entity.StockInsert) error
		GetStockById(ctx context.Context, id int) (*entity.Stock, error)
		ListStock(ctx context.Context) ([]entity.Stock, error)
		DeleteStockById(ctx context.Context, id int) error
	}

	Wastage interface {
		// AddWastage inserts the entry together with its wastage expense.
		AddWastage(ctx context.Context, w *entity.WastageInsert) (*entity.Wastage, error)
		UpdateWastage(ctx context.Context, id int, w *entity.WastageInsert) error
		ListWastage(ctx context.Context) ([]entity.Wastage, error)
		DeleteWastageById(ctx context.Context, id int) error
	}

	Menu interface {
		AddCategory(ctx context.Context, c *entity.CategoryInsert) (int, error)
		UpdateCategory(ctx context.Context, id int, c *entity.CategoryInsert) error
		ListCategories(ctx context.Context) ([]entity.Category, error)
		DeleteCategoryById(ctx context.Context, id int) error
		AddItem(ctx context.Context, i *entity.ItemInsert) (int, error)
		UpdateItem(ctx context.Context, id int, i *entity.ItemInsert) error
		GetItemById(ctx context.Context, id int) (*entity.Item, error)
		ListItems(ctx context.Context, categoryId int) ([]entity.Item, error)
		DeleteItemById(ctx context.Context, id int) error
		// GetMenu returns categories ordered by position with their available items.
		GetMenu(ctx context.Context) ([]entity.MenuCategory, error)
	}

	ReportReceivers interface {
		ListReceivers(ctx context.Context) ([]entity.ReportReceiver, error)
		// ListOptedIn returns receivers opted in to g that have a non-empty email.
		ListOptedIn(ctx context.Context, g period.Granularity) ([]entity.ReportReceiver, error)
		AddReceiver(ctx context.Context, r *entity.ReportReceiverInsert) (int, error)
		UpdateReceiver(ctx context.Context, id int, r *entity.ReportReceiverInsert) error
		DeleteReceiverById(ctx context.Context, id int) error
	}

	Admin interface {
		AddAdmin(ctx context.Context, un, email, pwHash string) (int, error)
		PasswordHashByUsername(ctx context.Context, un string) (string, error)
		GetAdminById(ctx context.Context, id int) (*entity.Admin, error)
	}

	Repository interface {
		Analytics() Analytics
		Reports() Reports
		Expenses() Expenses
		Stock() Stock
		Wastage() Wastage
		Menu() Menu
		ReportReceivers() ReportReceivers
		Admin() Admin
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Ping(ctx context.Context) error
		Close()
		IsErrUniqueViolation(err error) bool
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	// ReportAssembler builds report payloads for a period name and date.
	ReportAssembler interface {
		GetReport(ctx context.Context, periodName, date string) (*entity.Report, error)
	}

	Mailer interface {
		// SendReport sends one email with the rendered report attached to all recipients.
		SendReport(ctx context.Context, to []string, r *entity.Report, pdf []byte) error
	}

	Sender interface {
		SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
	}
)
