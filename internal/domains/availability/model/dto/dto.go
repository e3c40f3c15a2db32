package dto

import "time"

type CheckAvailabilityRequest struct {
	RoomID    string `json:"room_id"    validate:"required,uuid"`
	StartTime string `json:"start_time" validate:"required,rfc3339"`
	EndTime   string `json:"end_time"   validate:"required,rfc3339"`
}

type CheckAvailabilityResponse struct {
	RoomID    string    `json:"room_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Available bool      `json:"available"`
}

type Slot struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type DaySlotsResponse struct {
	Date  string `json:"date"`
	Slots []Slot `json:"slots"`
}

type SlotStatus struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Available bool      `json:"available"`
}

type RoomAvailability struct {
	RoomID   string       `json:"room_id"`
	RoomName string       `json:"room_name"`
	Slots    []SlotStatus `json:"slots"`
}

type GridResponse struct {
	Date  string             `json:"date"`
	Slots []Slot             `json:"slots"`
	Rooms []RoomAvailability `json:"rooms"`
}
