package entity

import "time"

// ReportReceiverInsert holds an admin's scheduled report opt-ins.
type ReportReceiverInsert struct {
	AdminId int    `db:"admin_id"`
	Email   string `db:"email"`
	Daily   bool   `db:"daily"`
	Monthly bool   `db:"monthly"`
	Yearly  bool   `db:"yearly"`
}

// ReportReceiver represents the report_receivers table joined with its admin.
type ReportReceiver struct {
	Id            int       `db:"id"`
	AdminUsername string    `db:"admin_username"`
	CreatedAt     time.Time `db:"created_at"`
	ReportReceiverInsert
}
