package domain

import "database/sql"

type User struct {
	ID            int64
	Username      string
	Password      string
	SessionID     sql.NullString
	ApiKey        sql.NullString
	SessionExpiry sql.NullTime
	Created       sql.NullTime
	Enabled       bool
}
