package model

import "atrium/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldName        = "name"
	FieldLocation    = "location"
	FieldCapacity    = "capacity"
	FieldDescription = "description"
	FieldActive      = "active"
)

type Room struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Location    string  `db:"location"`
	Capacity    int     `db:"capacity"`
	Description *string `db:"description"`
	Active      bool    `db:"active"`
	model.Metadata
}
