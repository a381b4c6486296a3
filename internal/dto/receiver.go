package dto

import (
	"net/http"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
)

type ReportReceiverRequest struct {
	AdminId int    `json:"admin_id"`
	Email   string `json:"email"`
	Daily   bool   `json:"daily"`
	Monthly bool   `json:"monthly"`
	Yearly  bool   `json:"yearly"`
}

// Bind implements render.Binder. An empty email is allowed, such receivers
// are skipped by scheduled delivery.
func (rr *ReportReceiverRequest) Bind(r *http.Request) error {
	if rr.AdminId <= 0 {
		return gerr.InvalidRequest("admin_id is required")
	}
	rr.Email = strings.TrimSpace(rr.Email)
	if rr.Email != "" && !govalidator.IsEmail(rr.Email) {
		return gerr.InvalidRequest("invalid email %q", rr.Email)
	}
	return nil
}

func ConvertReportReceiverRequestToEntity(rr *ReportReceiverRequest) *entity.ReportReceiverInsert {
	return &entity.ReportReceiverInsert{
		AdminId: rr.AdminId,
		Email:   rr.Email,
		Daily:   rr.Daily,
		Monthly: rr.Monthly,
		Yearly:  rr.Yearly,
	}
}

type ReportReceiver struct {
	Id            int       `json:"id"`
	AdminId       int       `json:"admin_id"`
	AdminUsername string    `json:"admin_username"`
	Email         string    `json:"email"`
	Daily         bool      `json:"daily"`
	Monthly       bool      `json:"monthly"`
	Yearly        bool      `json:"yearly"`
	CreatedAt     time.Time `json:"created_at"`
}

func ConvertEntityReportReceiversToDto(rs []entity.ReportReceiver) []ReportReceiver {
	out := make([]ReportReceiver, 0, len(rs))
	for _, r := range rs {
		out = append(out, ReportReceiver{
			Id:            r.Id,
			AdminId:       r.AdminId,
			AdminUsername: r.AdminUsername,
			Email:         r.Email,
			Daily:         r.Daily,
			Monthly:       r.Monthly,
			Yearly:        r.Yearly,
			CreatedAt:     r.CreatedAt,
		})
	}
	return out
}
