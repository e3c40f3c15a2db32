package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atrium/config"
	kafkaMocks "atrium/infras/kafka/mocks"
	"atrium/infras/otel/mocks"
	reservationMocks "atrium/internal/domains/reservation/mocks"
	"atrium/internal/domains/reservation/model"
	"atrium/internal/domains/reservation/model/dto"
	"atrium/internal/domains/reservation/service"
	roomMocks "atrium/internal/domains/room/mocks"
	cacheMocks "atrium/shared/cache/mocks"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	"atrium/shared/failure"
	gModel "atrium/shared/model"
	"atrium/shared/timezone"
)

func newReservationService(ctrl *gomock.Controller) (
	service.Reservation,
	*reservationMocks.MockReservation,
	*roomMocks.MockRoom,
	*cacheMocks.MockRedisCache,
	*kafkaMocks.MockClient,
) {
	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.ReservationConfirmed = "reservations.confirmed"

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockKafka)

	return svc, mockRepo, mockRoomRepo, mockCache, mockKafka
}

func ownerContext(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleUser)
}

func adminContext(userID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)
}

func storedReservation(id, userID, roomID string, start, end time.Time) model.Reservation {
	userName := "Test User"

	return model.Reservation{
		ID:        id,
		UserID:    userID,
		RoomID:    roomID,
		StartTime: start,
		EndTime:   end,
		RoomName:  "Meeting Room A",
		UserEmail: "user@example.com",
		UserName:  &userName,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

func TestReservationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRoomRepo, mockCache, mockKafka := newReservationService(ctrl)

	start, _ := timezone.ParseInstant("2026-09-10T09:00:00+07:00")
	end, _ := timezone.ParseInstant("2026-09-10T10:00:00+07:00")

	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req: dto.CreateReservationRequest{
				RoomID:    "room-id",
				StartTime: "2026-09-10T09:00:00+07:00",
				EndTime:   "2026-09-10T10:00:00+07:00",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Overlapping(gomock.Any(), "room-id", start, end, constant.Empty).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedReservation("reservation-id", "user-id", "room-id", start, end), nil)

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "naive start time rejected",
			req: dto.CreateReservationRequest{
				RoomID:    "room-id",
				StartTime: "2026-09-10T09:00:00",
				EndTime:   "2026-09-10T10:00:00+07:00",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "start equal to end rejected",
			req: dto.CreateReservationRequest{
				RoomID:    "room-id",
				StartTime: "2026-09-10T09:00:00+07:00",
				EndTime:   "2026-09-10T09:00:00+07:00",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "start after end rejected",
			req: dto.CreateReservationRequest{
				RoomID:    "room-id",
				StartTime: "2026-09-10T10:00:00+07:00",
				EndTime:   "2026-09-10T09:00:00+07:00",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "room not found",
			req: dto.CreateReservationRequest{
				RoomID:    "missing-room",
				StartTime: "2026-09-10T09:00:00+07:00",
				EndTime:   "2026-09-10T10:00:00+07:00",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "overlapping reservation rejected",
			req: dto.CreateReservationRequest{
				RoomID:    "room-id",
				StartTime: "2026-09-10T09:00:00+07:00",
				EndTime:   "2026-09-10T10:00:00+07:00",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Overlapping(gomock.Any(), "room-id", start, end, constant.Empty).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "insert error",
			req: dto.CreateReservationRequest{
				RoomID:    "room-id",
				StartTime: "2026-09-10T09:00:00+07:00",
				EndTime:   "2026-09-10T10:00:00+07:00",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Overlapping(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(ownerContext("user-id"), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "reservation-id", res.ID)
				assert.Equal(t, "Meeting Room A", res.RoomName)
			}
		})
	}
}

func TestReservationService_CreateOnBehalf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRoomRepo, mockCache, mockKafka := newReservationService(ctrl)

	start, _ := timezone.ParseInstant("2026-09-10T09:00:00+07:00")
	end, _ := timezone.ParseInstant("2026-09-10T10:00:00+07:00")

	req := dto.CreateReservationRequest{
		RoomID:    "room-id",
		StartTime: "2026-09-10T09:00:00+07:00",
		EndTime:   "2026-09-10T10:00:00+07:00",
		UserID:    "target-user-id",
	}

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.CreateReservationRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		wantOwner string
	}{
		{
			name: "admin books for another user",
			ctx:  adminContext("admin-id"),
			req:  req,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Overlapping(gomock.Any(), "room-id", start, end, constant.Empty).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.Reservation) error {
						assert.Equal(t, "target-user-id", m.UserID)
						assert.Equal(t, "admin-id", m.CreatedBy)

						return nil
					})

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedReservation("reservation-id", "target-user-id", "room-id", start, end), nil)

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantOwner: "target-user-id",
		},
		{
			name:      "non-admin cannot book for another user",
			ctx:       ownerContext("user-id"),
			req:       req,
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusForbidden,
		},
		{
			name: "own user_id is a plain self booking",
			ctx:  ownerContext("user-id"),
			req: dto.CreateReservationRequest{
				RoomID:    "room-id",
				StartTime: "2026-09-10T09:00:00+07:00",
				EndTime:   "2026-09-10T10:00:00+07:00",
				UserID:    "user-id",
			},
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Overlapping(gomock.Any(), "room-id", start, end, constant.Empty).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.Reservation) error {
						assert.Equal(t, "user-id", m.UserID)

						return nil
					})

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedReservation("reservation-id", "user-id", "room-id", start, end), nil)

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantOwner: "user-id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(tt.ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantOwner, res.UserID)
			}
		})
	}
}

func TestReservationService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache, _ := newReservationService(ctrl)

	start, _ := timezone.ParseInstant("2026-09-10T09:00:00+07:00")
	end, _ := timezone.ParseInstant("2026-09-10T10:00:00+07:00")

	tests := []struct {
		name      string
		ctx       context.Context
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "owner gets own reservation",
			ctx:  ownerContext("user-id"),
			id:   "reservation-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedReservation("reservation-id", "user-id", "room-id", start, end), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "admin gets someone else's reservation",
			ctx:  adminContext("admin-id"),
			id:   "reservation-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedReservation("reservation-id", "user-id", "room-id", start, end), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "non-owner forbidden",
			ctx:  ownerContext("other-user"),
			id:   "reservation-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedReservation("reservation-id", "user-id", "room-id", start, end), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "reservation not found",
			ctx:  ownerContext("user-id"),
			id:   "missing-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			ctx:  ownerContext("user-id"),
			id:   "reservation-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(tt.ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, result.ID)
			}
		})
	}
}

func TestReservationService_ListMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _, _ := newReservationService(ctrl)

	start, _ := timezone.ParseInstant("2026-09-10T09:00:00+07:00")
	end, _ := timezone.ParseInstant("2026-09-10T10:00:00+07:00")

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Reservation, error) {
			assert.Equal(t, model.FieldStartTime, params.SortBy)
			assert.Equal(t, constant.DefaultValueSortDir, params.SortDir)
			assert.Len(t, filter.Filters, 2)

			return []model.Reservation{storedReservation("reservation-id", "user-id", "room-id", start, end)}, nil
		})

	res, err := svc.ListMine(ownerContext("user-id"), gDto.QueryParams{Limit: 10, Page: 1})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Reservations, 1)
}

func TestReservationService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache, _ := newReservationService(ctrl)

	oldStart, _ := timezone.ParseInstant("2026-09-10T09:00:00+07:00")
	oldEnd, _ := timezone.ParseInstant("2026-09-10T10:00:00+07:00")
	newStart, _ := timezone.ParseInstant("2026-09-10T10:00:00+07:00")
	newEnd, _ := timezone.ParseInstant("2026-09-10T11:00:00+07:00")

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.UpdateReservationRequest
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "owner reschedules, overlap check excludes own reservation",
			ctx:  ownerContext("user-id"),
			req: dto.UpdateReservationRequest{
				StartTime: "2026-09-10T10:00:00+07:00",
				EndTime:   "2026-09-10T11:00:00+07:00",
			},
			id: "reservation-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedReservation("reservation-id", "user-id", "room-id", oldStart, oldEnd), nil)

				mockRepo.EXPECT().
					Overlapping(gomock.Any(), "room-id", newStart, newEnd, "reservation-id").
					Return(false, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "admin reschedules someone else's reservation",
			ctx:  adminContext("admin-id"),
			req: dto.UpdateReservationRequest{
				StartTime: "2026-09-10T10:00:00+07:00",
				EndTime:   "2026-09-10T11:00:00+07:00",
			},
			id: "reservation-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedReservation("reservation-id", "user-id", "room-id", oldStart, oldEnd), nil)

				mockRepo.EXPECT().
					Overlapping(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "non-owner forbidden",
			ctx:  ownerContext("other-user"),
			req: dto.UpdateReservationRequest{
				StartTime: "2026-09-10T10:00:00+07:00",
				EndTime:   "2026-09-10T11:00:00+07:00",
			},
			id: "reservation-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedReservation("reservation-id", "user-id", "room-id", oldStart, oldEnd), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "new time overlaps another reservation",
			ctx:  ownerContext("user-id"),
			req: dto.UpdateReservationRequest{
				StartTime: "2026-09-10T10:00:00+07:00",
				EndTime:   "2026-09-10T11:00:00+07:00",
			},
			id: "reservation-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedReservation("reservation-id", "user-id", "room-id", oldStart, oldEnd), nil)

				mockRepo.EXPECT().
					Overlapping(gomock.Any(), "room-id", newStart, newEnd, "reservation-id").
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "reservation not found",
			ctx:  ownerContext("user-id"),
			req: dto.UpdateReservationRequest{
				StartTime: "2026-09-10T10:00:00+07:00",
				EndTime:   "2026-09-10T11:00:00+07:00",
			},
			id: "missing-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "start after end rejected before any lookup",
			ctx:  ownerContext("user-id"),
			req: dto.UpdateReservationRequest{
				StartTime: "2026-09-10T11:00:00+07:00",
				EndTime:   "2026-09-10T10:00:00+07:00",
			},
			id:        "reservation-id",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(tt.ctx, tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache, _ := newReservationService(ctrl)

	start, _ := timezone.ParseInstant("2026-09-10T09:00:00+07:00")
	end, _ := timezone.ParseInstant("2026-09-10T10:00:00+07:00")

	tests := []struct {
		name      string
		ctx       context.Context
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "owner cancels own reservation",
			ctx:  ownerContext("user-id"),
			id:   "reservation-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedReservation("reservation-id", "user-id", "room-id", start, end), nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "admin cancels someone else's reservation",
			ctx:  adminContext("admin-id"),
			id:   "reservation-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedReservation("reservation-id", "user-id", "room-id", start, end), nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "non-owner forbidden",
			ctx:  ownerContext("other-user"),
			id:   "reservation-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedReservation("reservation-id", "user-id", "room-id", start, end), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "cancelled reservation cannot be cancelled again",
			ctx:  ownerContext("user-id"),
			id:   "reservation-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "delete error",
			ctx:  ownerContext("user-id"),
			id:   "reservation-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(storedReservation("reservation-id", "user-id", "room-id", start, end), nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(tt.ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
