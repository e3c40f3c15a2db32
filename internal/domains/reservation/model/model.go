package model

import (
	"atrium/shared/model"
	"time"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldRoomID    = "room_id"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
)

type Reservation struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	RoomID    string    `db:"room_id"`
	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`
	RoomName  string    `db:"room_name"  table:"rooms" column:"name"`
	UserEmail string    `db:"user_email" table:"users" column:"email"`
	UserName  *string   `db:"user_name"  table:"users" column:"full_name"`
	model.Metadata
}

func (Reservation) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = reservations.room_id JOIN users ON users.id = reservations.user_id"
}
