package schema

import (
	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/utils"
)

type RoomForm struct {
	Name     string `json:"nome" validate:"required"`
	Capacity int    `json:"capacidade" validate:"required,gt=0"`
	Type     string `json:"tipo" validate:"required,oneof=2D 3D IMAX"`
}

func (f *RoomForm) Validate() (*entity.Room, map[string]string) {
	if errs := utils.ValidateStruct(f); len(errs) > 0 {
		return nil, errs
	}

	return &entity.Room{
		Name:     f.Name,
		Capacity: f.Capacity,
		Type:     entity.RoomType(f.Type),
	}, nil
}

func FormFromRoom(r *entity.Room) RoomForm {
	return RoomForm{
		Name:     r.Name,
		Capacity: r.Capacity,
		Type:     string(r.Type),
	}
}
