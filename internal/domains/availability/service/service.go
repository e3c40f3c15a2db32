package service

import (
	"context"
	"fmt"
	"time"

	"atrium/config"
	"atrium/infras/otel"
	"atrium/internal/domains/availability/model/dto"
	reservationModel "atrium/internal/domains/reservation/model"
	reservationRepo "atrium/internal/domains/reservation/repository"
	roomModel "atrium/internal/domains/room/model"
	roomRepo "atrium/internal/domains/room/repository"
	"atrium/shared"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	"atrium/shared/failure"
	"atrium/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Availability interface {
	Check(ctx context.Context, req dto.CheckAvailabilityRequest) (dto.CheckAvailabilityResponse, error)
	DaySlots(ctx context.Context, date string) (dto.DaySlotsResponse, error)
	Grid(ctx context.Context, date string) (dto.GridResponse, error)
}

type serviceImpl struct {
	reservationRepo reservationRepo.Reservation
	roomRepo        roomRepo.Room
	cfg             *config.Config
	otel            otel.Otel
}

func New(reservationRepo reservationRepo.Reservation, roomRepo roomRepo.Room, cfg *config.Config, otel otel.Otel) Availability {
	return &serviceImpl{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		cfg:             cfg,
		otel:            otel,
	}
}

// Check reports whether a room is free for the half-open interval
// [start, end). Intervals that only touch at a boundary do not collide.
func (s *serviceImpl) Check(ctx context.Context, req dto.CheckAvailabilityRequest) (res dto.CheckAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Check")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, err := timezone.ParseInstant(req.StartTime)
	if err != nil {
		return res, failure.BadRequestFromString("start_time must be an RFC3339 timestamp with an explicit offset") // nolint:wrapcheck
	}

	end, err := timezone.ParseInstant(req.EndTime)
	if err != nil {
		return res, failure.BadRequestFromString("end_time must be an RFC3339 timestamp with an explicit offset") // nolint:wrapcheck
	}

	if !start.Before(end) {
		return res, failure.BadRequestFromString("start_time must be before end_time") // nolint:wrapcheck
	}

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	overlaps, err := s.reservationRepo.Overlapping(ctx, req.RoomID, start, end, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to check reservation overlap")

		return res, fmt.Errorf("failed to check reservation overlap: %w", err)
	}

	res.RoomID = req.RoomID
	res.StartTime = start
	res.EndTime = end
	res.Available = !overlaps

	return res, nil
}

// DaySlots lists the bookable slots of a single day, derived from the
// configured office window and slot length.
func (s *serviceImpl) DaySlots(ctx context.Context, date string) (res dto.DaySlotsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DaySlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := s.parseDate(date)
	if err != nil {
		return res, err
	}

	res.Date = day.Format(constant.DayFormat)
	res.Slots = s.slotsFor(day)

	return res, nil
}

// Grid reports slot occupancy for every active room on the given day. A
// slot counts as taken when any reservation overlaps it, partial overlaps
// included.
func (s *serviceImpl) Grid(ctx context.Context, date string) (res dto.GridResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Grid")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := s.parseDate(date)
	if err != nil {
		return res, err
	}

	slots := s.slotsFor(day)

	roomParams := gDto.QueryParams{SortBy: roomModel.FieldName, SortDir: constant.DefaultValueSortDir}
	roomFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    roomModel.TableName,
			},
		},
	}

	rooms, err := s.roomRepo.GetAll(ctx, roomParams, roomFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	dayStart := day
	dayEnd := day.AddDate(0, 0, 1)

	reservationFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    reservationModel.FieldStartTime,
				Operator: gDto.FilterOperatorLess,
				Value:    dayEnd,
				Table:    reservationModel.TableName,
			},
			gDto.Filter{
				Field:    reservationModel.FieldEndTime,
				Operator: gDto.FilterOperatorGreater,
				Value:    dayStart,
				Table:    reservationModel.TableName,
			},
		},
	}

	reservationParams := gDto.QueryParams{SortBy: reservationModel.FieldStartTime, SortDir: constant.DefaultValueSortDir}

	reservations, err := s.reservationRepo.GetAll(ctx, reservationParams, reservationFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	byRoom := make(map[string][]reservationModel.Reservation, len(rooms))
	for _, reservation := range reservations {
		byRoom[reservation.RoomID] = append(byRoom[reservation.RoomID], reservation)
	}

	res.Date = day.Format(constant.DayFormat)
	res.Slots = slots
	res.Rooms = make([]dto.RoomAvailability, len(rooms))

	for i, room := range rooms {
		statuses := make([]dto.SlotStatus, len(slots))

		for j, slot := range slots {
			taken := false

			for _, reservation := range byRoom[room.ID] {
				if reservation.StartTime.Before(slot.EndTime) && slot.StartTime.Before(reservation.EndTime) {
					taken = true

					break
				}
			}

			statuses[j] = dto.SlotStatus{
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
				Available: !taken,
			}
		}

		res.Rooms[i] = dto.RoomAvailability{
			RoomID:   room.ID,
			RoomName: room.Name,
			Slots:    statuses,
		}
	}

	return res, nil
}

// parseDate resolves an optional YYYY-MM-DD value to midnight in the app
// location, defaulting to today.
func (s *serviceImpl) parseDate(date string) (time.Time, error) {
	if date == constant.Empty {
		now := timezone.Now()

		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, timezone.GetLocation()), nil
	}

	day, err := time.ParseInLocation(constant.DayFormat, date, timezone.GetLocation())
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	return day, nil
}

func (s *serviceImpl) slotsFor(day time.Time) []dto.Slot {
	openHour := s.cfg.App.Office.OpenHour
	closeHour := s.cfg.App.Office.CloseHour
	slotMinutes := s.cfg.App.Office.SlotMinutes

	open := time.Date(day.Year(), day.Month(), day.Day(), openHour, 0, 0, 0, day.Location())
	close := time.Date(day.Year(), day.Month(), day.Day(), closeHour, 0, 0, 0, day.Location())
	step := time.Duration(slotMinutes) * time.Minute

	slots := []dto.Slot{}
	for cursor := open; !cursor.Add(step).After(close); cursor = cursor.Add(step) {
		slots = append(slots, dto.Slot{
			StartTime: cursor,
			EndTime:   cursor.Add(step),
		})
	}

	return slots
}
