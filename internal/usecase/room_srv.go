package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/schema"

	"go.uber.org/zap"
)

type RoomService interface {
	GetRooms(ctx context.Context) ([]*entity.Room, error)
	GetRoomByID(ctx context.Context, roomID string) (*entity.Room, error)
	CreateRoom(ctx context.Context, form *schema.RoomForm) (*entity.Room, error)
	UpdateRoom(ctx context.Context, roomID string, patch json.RawMessage) (*entity.Room, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) GetRooms(ctx context.Context) ([]*entity.Room, error) {
	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get rooms", zap.Error(err))
		return nil, fmt.Errorf("get rooms: %w", err)
	}
	return rooms, nil
}

func (s *roomService) GetRoomByID(ctx context.Context, roomID string) (*entity.Room, error) {
	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		s.log.Error("Failed to get room by ID",
			zap.Error(err),
			zap.String("room_id", roomID),
		)
		return nil, fmt.Errorf("get room by id: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s: %w", roomID, repository.ErrNotFound)
	}
	return room, nil
}

func (s *roomService) CreateRoom(ctx context.Context, form *schema.RoomForm) (*entity.Room, error) {
	room, fieldErrors := form.Validate()
	if fieldErrors != nil {
		s.log.Warn("Create room validation failed", zap.Any("errors", fieldErrors))
		return nil, &ValidationError{Fields: fieldErrors}
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("name", room.Name),
		)
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID),
		zap.String("name", room.Name),
	)
	return room, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID string, patch json.RawMessage) (*entity.Room, error) {
	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s: %w", roomID, repository.ErrNotFound)
	}

	updated := *room
	if err := json.Unmarshal(patch, &updated); err != nil {
		return nil, fmt.Errorf("invalid patch body: %w", err)
	}
	updated.ID = room.ID

	form := schema.FormFromRoom(&updated)
	if _, fieldErrors := form.Validate(); fieldErrors != nil {
		s.log.Warn("Update room validation failed",
			zap.String("room_id", roomID),
			zap.Any("errors", fieldErrors),
		)
		return nil, &ValidationError{Fields: fieldErrors}
	}

	if err := s.repo.Room.Update(ctx, &updated); err != nil {
		s.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_id", roomID),
		)
		return nil, fmt.Errorf("update room: %w", err)
	}

	s.log.Info("Room updated",
		zap.String("room_id", roomID),
		zap.String("name", updated.Name),
	)
	return &updated, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	if err := s.repo.Room.Delete(ctx, roomID); err != nil {
		s.log.Error("Failed to delete room",
			zap.Error(err),
			zap.String("room_id", roomID),
		)
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}
