package mail

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/jekabolt/resto-manager/internal/dependency/mocks"
	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		APIKey:    "test",
		FromEmail: "reports@resto.test",
		FromName:  "Resto",
		ReplyTo:   "owner@resto.test",
	}
}

func testReport() *entity.Report {
	return &entity.Report{
		Period:   "monthly",
		Date:     "2024-01",
		Items:    []entity.ItemSale{{ItemId: 1, Name: "Pizza", Quantity: 2, Total: decimal.RequireFromString("24")}},
		Revenue:  decimal.RequireFromString("24"),
		Expenses: decimal.RequireFromString("4"),
	}
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(&Config{})
	assert.Error(t, err)

	_, err = new(&Config{FromEmail: "a@b.c"}, mocks.NewSender(t))
	assert.Error(t, err)
}

func TestSendReportSingleMailToAllRecipients(t *testing.T) {
	senderMock := mocks.NewSender(t)
	m, err := new(testConfig(), senderMock)
	require.NoError(t, err)

	pdf := []byte("%PDF-1.3 test")
	to := []string{"a@resto.test", "b@resto.test"}

	senderMock.EXPECT().SendWithContext(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, sm *mail.SGMailV3) {
			assert.Equal(t, "Monthly report 2024-01", sm.Subject)
			require.Len(t, sm.Personalizations, 1)
			require.Len(t, sm.Personalizations[0].To, 2)
			assert.Equal(t, "a@resto.test", sm.Personalizations[0].To[0].Address)
			assert.Equal(t, "b@resto.test", sm.Personalizations[0].To[1].Address)
			require.Len(t, sm.Attachments, 1)
			assert.Equal(t, "application/pdf", sm.Attachments[0].Type)
			assert.Equal(t, "report-monthly-2024-01.pdf", sm.Attachments[0].Filename)
			assert.Equal(t, base64.StdEncoding.EncodeToString(pdf), sm.Attachments[0].Content)
			require.Len(t, sm.Content, 1)
			assert.Contains(t, sm.Content[0].Value, "20.00")
		}).
		Return(&rest.Response{StatusCode: http.StatusAccepted}, nil).Once()

	assert.NoError(t, m.SendReport(context.Background(), to, testReport(), pdf))
}

func TestSendReportErrors(t *testing.T) {
	t.Run("no recipients", func(t *testing.T) {
		m, err := new(testConfig(), mocks.NewSender(t))
		require.NoError(t, err)
		err = m.SendReport(context.Background(), nil, testReport(), nil)
		assert.True(t, gerr.IsInvalidRequest(err))
	})

	t.Run("rate limited", func(t *testing.T) {
		senderMock := mocks.NewSender(t)
		m, err := new(testConfig(), senderMock)
		require.NoError(t, err)
		senderMock.EXPECT().SendWithContext(mock.Anything, mock.Anything).
			Return(&rest.Response{StatusCode: http.StatusTooManyRequests}, nil)
		err = m.SendReport(context.Background(), []string{"a@resto.test"}, testReport(), nil)
		assert.ErrorIs(t, err, gerr.MailApiLimitReached)
	})

	t.Run("bad status", func(t *testing.T) {
		senderMock := mocks.NewSender(t)
		m, err := new(testConfig(), senderMock)
		require.NoError(t, err)
		senderMock.EXPECT().SendWithContext(mock.Anything, mock.Anything).
			Return(&rest.Response{StatusCode: http.StatusBadRequest, Body: "bad"}, nil)
		err = m.SendReport(context.Background(), []string{"a@resto.test"}, testReport(), nil)
		assert.ErrorIs(t, err, gerr.ErrDependency)
	})

	t.Run("transport", func(t *testing.T) {
		senderMock := mocks.NewSender(t)
		m, err := new(testConfig(), senderMock)
		require.NoError(t, err)
		senderMock.EXPECT().SendWithContext(mock.Anything, mock.Anything).Return(nil, assert.AnError)
		err = m.SendReport(context.Background(), []string{"a@resto.test"}, testReport(), nil)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
