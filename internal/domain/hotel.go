package domain

import "time"

type Hotel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Rooms     []Room    `json:"rooms,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Room struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   int64     `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Read models returned to API callers. Audit timestamps never leave the service layer.

type HotelSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type HotelDetail struct {
	ID    int64      `json:"id"`
	Name  string     `json:"name"`
	Image string     `json:"image"`
	Rooms []RoomView `json:"Rooms"`
}

type RoomView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	HotelID  int64  `json:"hotelId"`
}
