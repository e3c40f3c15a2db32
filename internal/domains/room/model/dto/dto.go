package dto

import (
	"atrium/internal/domains/room/model"
	"atrium/shared"
	gDto "atrium/shared/dto"
	gModel "atrium/shared/model"
	"atrium/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name        string  `json:"name"        validate:"required,max=100"`
	Location    string  `json:"location"    validate:"omitempty,max=100"`
	Capacity    int     `json:"capacity"    validate:"required,min=1"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Active      *bool   `json:"active"      validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Location:    c.Location,
		Capacity:    c.Capacity,
		Description: c.Description,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name        string  `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Location    string  `db:"location"    json:"location"    validate:"omitempty,max=100"`
	Capacity    *int    `db:"capacity"    json:"capacity"    validate:"omitempty,min=1"`
	Description *string `db:"description" json:"description" validate:"omitempty,max=500"`
	Active      *bool   `db:"active"      json:"active"      validate:"omitempty"`
}

type RoomResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Capacity    int     `json:"capacity"`
	Description *string `json:"description,omitempty"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Location = model.Location
	r.Capacity = model.Capacity
	r.Description = model.Description
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
