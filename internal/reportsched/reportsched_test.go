package reportsched

import (
	"context"
	"testing"
	"time"

	"github.com/jekabolt/resto-manager/internal/dependency/mocks"
	"github.com/jekabolt/resto-manager/internal/entity"
	"github.com/jekabolt/resto-manager/internal/period"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	d         *Dispatcher
	repo      *mocks.Repository
	receivers *mocks.ReportReceivers
	reports   *mocks.ReportAssembler
	mailer    *mocks.Mailer
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		repo:      mocks.NewRepository(t),
		receivers: mocks.NewReportReceivers(t),
		reports:   mocks.NewReportAssembler(t),
		mailer:    mocks.NewMailer(t),
	}
	d, err := New(nil, f.repo, f.reports, f.mailer)
	require.NoError(t, err)
	d.render = func(r *entity.Report) ([]byte, error) { return []byte("%PDF-test"), nil }
	d.now = func() time.Time { return time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC) }
	f.d = d
	return f
}

func TestAutoSendWithoutReceiversIsNoop(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().ReportReceivers().Return(f.receivers)
	f.receivers.EXPECT().ListOptedIn(mock.Anything, period.Daily).Return(nil, nil)

	err := f.d.AutoSend(context.Background(), period.Daily, "2024-02-29")
	assert.NoError(t, err)
	f.reports.AssertNotCalled(t, "GetReport", mock.Anything, mock.Anything, mock.Anything)
	f.mailer.AssertNotCalled(t, "SendReport", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAutoSendSingleMailToAllReceivers(t *testing.T) {
	f := newFixture(t)
	report := &entity.Report{Period: "monthly", Date: "2024-02", Revenue: decimal.Zero, Expenses: decimal.Zero}

	f.repo.EXPECT().ReportReceivers().Return(f.receivers)
	f.receivers.EXPECT().ListOptedIn(mock.Anything, period.Monthly).Return([]entity.ReportReceiver{
		{Id: 1, ReportReceiverInsert: entity.ReportReceiverInsert{AdminId: 1, Email: "a@resto.test", Monthly: true}},
		{Id: 2, ReportReceiverInsert: entity.ReportReceiverInsert{AdminId: 2, Email: "b@resto.test", Monthly: true}},
		{Id: 3, ReportReceiverInsert: entity.ReportReceiverInsert{AdminId: 3, Email: "a@resto.test", Monthly: true}},
	}, nil)
	f.reports.EXPECT().GetReport(mock.Anything, "monthly", "2024-02").Return(report, nil)
	f.mailer.EXPECT().SendReport(mock.Anything, []string{"a@resto.test", "b@resto.test"}, report, []byte("%PDF-test")).
		Return(nil).Once()

	assert.NoError(t, f.d.AutoSend(context.Background(), period.Monthly, "2024-02"))
}

func TestRunJobUsesPreviousPeriodAndSwallowsErrors(t *testing.T) {
	f := newFixture(t)
	report := &entity.Report{Period: "daily", Date: "2024-02-29"}

	f.repo.EXPECT().ReportReceivers().Return(f.receivers)
	f.receivers.EXPECT().ListOptedIn(mock.Anything, period.Daily).Return([]entity.ReportReceiver{
		{Id: 1, ReportReceiverInsert: entity.ReportReceiverInsert{Email: "a@resto.test", Daily: true}},
	}, nil)
	f.reports.EXPECT().GetReport(mock.Anything, "daily", "2024-02-29").Return(report, nil)
	f.mailer.EXPECT().SendReport(mock.Anything, mock.Anything, report, mock.Anything).Return(assert.AnError).Once()

	assert.NotPanics(t, func() { f.d.runJob(context.Background(), period.Daily) })
}

func TestAutoSendRenderFailure(t *testing.T) {
	f := newFixture(t)
	f.d.render = func(r *entity.Report) ([]byte, error) { return nil, assert.AnError }

	f.repo.EXPECT().ReportReceivers().Return(f.receivers)
	f.receivers.EXPECT().ListOptedIn(mock.Anything, period.Yearly).Return([]entity.ReportReceiver{
		{Id: 1, ReportReceiverInsert: entity.ReportReceiverInsert{Email: "a@resto.test", Yearly: true}},
	}, nil)
	f.reports.EXPECT().GetReport(mock.Anything, "yearly", "2023").Return(&entity.Report{}, nil)

	err := f.d.AutoSend(context.Background(), period.Yearly, "2023")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSpecs(t *testing.T) {
	f := newFixture(t)
	f.d.c.Hour = 6
	f.d.c.MonthlyDay = 2
	f.d.c.YearlyMonth = 1
	f.d.c.YearlyDay = 3

	specs := f.d.specs()
	assert.Equal(t, "0 6 * * *", specs[period.Daily])
	assert.Equal(t, "0 6 2 * *", specs[period.Monthly])
	assert.Equal(t, "0 6 3 1 *", specs[period.Yearly])
}

func TestNewValidatesConfig(t *testing.T) {
	c := DefaultConfig()
	c.Hour = 24
	_, err := New(&c, nil, nil, nil)
	assert.Error(t, err)

	c = DefaultConfig()
	c.Timezone = "Nowhere/Atlantis"
	_, err = New(&c, nil, nil, nil)
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.d.Start(ctx))
	assert.Error(t, f.d.Start(ctx))
	assert.Len(t, f.d.cron.Entries(), 3)

	require.NoError(t, f.d.Stop())
	assert.Error(t, f.d.Stop())
}
