package app

import (
	"strconv"
	"strings"

	"event_hotels/internal/domain"
)

/********** alias registries **********/

var hotelAliases = map[string][]string{
	"id":    {"hotel_id", "id"},
	"name":  {"name", "hotel_name", "title"},
	"image": {"image", "main_image", "main_image_th", "thumbnail", "photo.url"},
}

var roomAliases = map[string][]string{
	"id":       {"id", "room_id"},
	"name":     {"name", "room_name", "number"},
	"capacity": {"capacity", "max_occupancy", "occupancy", "max_adults"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns the string at path, or "". Numbers are formatted so
// room "numbers" sent as JSON numbers still read as names.
func lookupStr(m map[string]any, path string) string {
	switch v := lookupAny(m, path).(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func firstNonEmptyAlias(m map[string]any, aliases map[string][]string, key string) string {
	for _, p := range aliases[key] {
		if s := lookupStr(m, p); s != "" {
			return s
		}
	}
	return ""
}

// firstInt64Flexible: int64 from several paths (float64/int/string).
func firstInt64Flexible(m map[string]any, paths ...string) (int64, bool) {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			return int64(v), true
		case int:
			return int64(v), true
		case int64:
			return v, true
		case string:
			s := strings.TrimSpace(v)
			if s == "" {
				continue
			}
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

// firstSliceStrings: accept []any with either strings or {url/src}.
func firstSliceStrings(m map[string]any, paths ...string) []string {
	for _, k := range paths {
		raw, ok := lookupAny(m, k).([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(raw))
		for _, it := range raw {
			switch t := it.(type) {
			case string:
				if t != "" {
					out = append(out, t)
				}
			case map[string]any:
				if u, ok := t["url"].(string); ok && u != "" {
					out = append(out, u)
				} else if u, ok := t["src"].(string); ok && u != "" {
					out = append(out, u)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

/********** catalog payload mappers **********/

// mapHotel maps an upstream hotel payload. fallbackID is used when the
// payload carries no id of its own.
func mapHotel(fallbackID int64, p map[string]any) domain.Hotel {
	id, ok := firstInt64Flexible(p, hotelAliases["id"]...)
	if !ok || id <= 0 {
		id = fallbackID
	}

	image := firstNonEmptyAlias(p, hotelAliases, "image")
	if image == "" {
		if imgs := firstSliceStrings(p, "photos", "images"); len(imgs) > 0 {
			image = imgs[0]
		}
	}

	return domain.Hotel{
		ID:    id,
		Name:  firstNonEmptyAlias(p, hotelAliases, "name"),
		Image: image,
		Rooms: mapRooms(id, p),
	}
}

// mapRooms skips entries without a name; capacity defaults to 1.
func mapRooms(hotelID int64, p map[string]any) []domain.Room {
	raw, _ := lookupAny(p, "rooms").([]any)
	out := make([]domain.Room, 0, len(raw))
	for _, it := range raw {
		r, ok := it.(map[string]any)
		if !ok {
			continue
		}
		name := firstNonEmptyAlias(r, roomAliases, "name")
		if name == "" {
			continue
		}
		room := domain.Room{HotelID: hotelID, Name: name, Capacity: 1}
		if id, ok := firstInt64Flexible(r, roomAliases["id"]...); ok && id > 0 {
			room.ID = id
		}
		if c, ok := firstInt64Flexible(r, roomAliases["capacity"]...); ok && c > 0 {
			room.Capacity = int(c)
		}
		out = append(out, room)
	}
	return out
}

/********** response shaping **********/

func toHotelDetail(h *domain.Hotel) domain.HotelDetail {
	rooms := make([]domain.RoomView, 0, len(h.Rooms))
	for _, r := range h.Rooms {
		rooms = append(rooms, domain.RoomView{
			ID:       r.ID,
			Name:     r.Name,
			Capacity: r.Capacity,
			HotelID:  r.HotelID,
		})
	}
	return domain.HotelDetail{
		ID:    h.ID,
		Name:  h.Name,
		Image: h.Image,
		Rooms: rooms,
	}
}
