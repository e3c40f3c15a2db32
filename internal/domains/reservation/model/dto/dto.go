package dto

import (
	"time"

	"atrium/internal/domains/reservation/model"
	"atrium/shared"
	gDto "atrium/shared/dto"
	gModel "atrium/shared/model"
	"atrium/shared/timezone"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomID    string `json:"room_id"    validate:"required,uuid"`
	StartTime string `json:"start_time" validate:"required,rfc3339"`
	EndTime   string `json:"end_time"   validate:"required,rfc3339"`
	// UserID books on behalf of another user. Admin only.
	UserID string `json:"user_id,omitempty" validate:"omitempty,uuid"`
}

// ToModel builds the reservation owned by ownerID. actorID is the
// authenticated user recorded in the audit fields, which differs from the
// owner when an admin books on someone's behalf.
func (c *CreateReservationRequest) ToModel(ownerID, actorID string, start, end time.Time) model.Reservation {
	return model.Reservation{
		ID:        uuid.NewString(),
		UserID:    ownerID,
		RoomID:    c.RoomID,
		StartTime: start,
		EndTime:   end,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actorID,
			ModifiedBy: actorID,
		},
	}
}

type UpdateReservationRequest struct {
	StartTime string `json:"start_time" validate:"required,rfc3339"`
	EndTime   string `json:"end_time"   validate:"required,rfc3339"`
}

// UpdateReservationFields carries the parsed instants for the store layer.
type UpdateReservationFields struct {
	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`
}

type ReservationResponse struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"room_id"`
	RoomName  string    `json:"room_name"`
	UserID    string    `json:"user_id"`
	UserEmail string    `json:"user_email"`
	UserName  *string   `json:"user_name,omitempty"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.RoomName = model.RoomName
	r.UserID = model.UserID
	r.UserEmail = model.UserEmail
	r.UserName = model.UserName
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// ReservationConfirmedEvent is the payload published after a reservation is
// stored, consumed by the notification worker.
type ReservationConfirmedEvent struct {
	ReservationID string    `json:"reservation_id"`
	RoomName      string    `json:"room_name"`
	UserEmail     string    `json:"user_email"`
	UserName      string    `json:"user_name"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
}
