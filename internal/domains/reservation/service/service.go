package service

import (
	"context"
	"fmt"

	"atrium/config"
	"atrium/infras/kafka"
	"atrium/infras/otel"
	"atrium/internal/domains/reservation/model"
	"atrium/internal/domains/reservation/model/dto"
	"atrium/internal/domains/reservation/repository"
	roomModel "atrium/internal/domains/room/model"
	roomRepo "atrium/internal/domains/room/repository"
	"atrium/shared"
	"atrium/shared/cache"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	"atrium/shared/failure"
	"atrium/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
	cacheMineReservation   = "reservation:mine"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	ListMine(ctx context.Context, req gDto.QueryParams) (dto.GetReservationsResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Reservation
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	kafka    kafka.Client
}

func New(repo repository.Reservation, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Reservation {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		kafka:    kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	ownerID := userID
	if req.UserID != "" && req.UserID != userID {
		if role != constant.RoleAdmin {
			return res, failure.Forbidden("only admins can create reservations for other users") // nolint:wrapcheck
		}

		ownerID = req.UserID
	}

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

	overlaps, err := s.repo.Overlapping(ctx, req.RoomID, start, end, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to check reservation overlap")

		return res, fmt.Errorf("failed to check reservation overlap: %w", err)
	}

	if overlaps {
		return res, failure.Conflict("room is already reserved for this time") // nolint:wrapcheck
	}

	reservation := req.ToModel(ownerID, userID, start, end)

	// The store enforces the same overlap rule with an exclusion constraint,
	// so a concurrent insert racing past the check above still loses here.
	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, err
	}

	stored, err := s.repo.Get(ctx, shared.FilterByID(reservation.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to load created reservation")

		return res, fmt.Errorf("failed to load created reservation: %w", err)
	}

	res.FromModel(stored)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishConfirmed(c, stored)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
		shared.InvalidateCaches(c, s.cache, cacheMineReservation)
	}()

	return res, nil
}

func (s *serviceImpl) publishConfirmed(ctx context.Context, reservation model.Reservation) {
	userName := constant.Empty
	if reservation.UserName != nil {
		userName = *reservation.UserName
	}

	event := dto.ReservationConfirmedEvent{
		ReservationID: reservation.ID,
		RoomName:      reservation.RoomName,
		UserEmail:     reservation.UserEmail,
		UserName:      userName,
		StartTime:     reservation.StartTime,
		EndTime:       reservation.EndTime,
	}

	message := kafka.Message{
		Key:   reservation.ID,
		Value: event,
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.ReservationConfirmed, message); err != nil {
		log.Error().Err(err).Str("reservation_id", reservation.ID).Msg("failed to publish reservation confirmed event")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		if err := s.authorize(ctx, res.UserID); err != nil {
			return dto.ReservationResponse{}, err
		}

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if err := s.authorize(ctx, reservation.UserID); err != nil {
		return res, err
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

// ListMine returns the caller's reservations that have not yet ended,
// earliest first. Past reservations stay in the store but drop out of
// this listing once their end time passes.
func (s *serviceImpl) ListMine(ctx context.Context, req gDto.QueryParams) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	req.SortBy = model.FieldStartTime
	req.SortDir = constant.DefaultValueSortDir

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldEndTime,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    timezone.Now(),
				Table:    model.TableName,
			},
		},
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	start, err := timezone.ParseInstant(req.StartTime)
	if err != nil {
		return failure.BadRequestFromString("start_time must be an RFC3339 timestamp with an explicit offset") // nolint:wrapcheck
	}

	end, err := timezone.ParseInstant(req.EndTime)
	if err != nil {
		return failure.BadRequestFromString("end_time must be an RFC3339 timestamp with an explicit offset") // nolint:wrapcheck
	}

	if !start.Before(end) {
		return failure.BadRequestFromString("start_time must be before end_time") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if err := s.authorize(ctx, reservation.UserID); err != nil {
		return err
	}

	overlaps, err := s.repo.Overlapping(ctx, reservation.RoomID, start, end, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to check reservation overlap")

		return fmt.Errorf("failed to check reservation overlap: %w", err)
	}

	if overlaps {
		return failure.Conflict("room is already reserved for this time") // nolint:wrapcheck
	}

	fields := dto.UpdateReservationFields{StartTime: start, EndTime: end}
	updatedFields := shared.TransformFields(fields, userID)

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
		shared.InvalidateCaches(c, s.cache, cacheMineReservation)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if err := s.authorize(ctx, reservation.UserID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
		shared.InvalidateCaches(c, s.cache, cacheMineReservation)
	}()

	return nil
}

// authorize allows the reservation owner and any admin through, everyone
// else gets a forbidden error.
func (s *serviceImpl) authorize(ctx context.Context, ownerID string) error {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role == constant.RoleAdmin {
		return nil
	}

	if ownerID != userID {
		return failure.Forbidden("you can only manage your own reservations") // nolint:wrapcheck
	}

	return nil
}
