package entity

type RoomType string

const (
	RoomType2D   RoomType = "2D"
	RoomType3D   RoomType = "3D"
	RoomTypeIMAX RoomType = "IMAX"
)

type Room struct {
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"nome"`
	Capacity int      `json:"capacidade"`
	Type     RoomType `json:"tipo"`
}
