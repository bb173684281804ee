package types

import "time"

// Chapter is a flattened view of one CHAP frame.
//
// Offsets of 0xFFFFFFFF mean "not set" on the wire and are reported as -1.
type Chapter struct {
	ElementID   string        `json:"element_id"`
	Title       string        `json:"title"`
	Index       int           `json:"index"`
	StartTime   time.Duration `json:"start_time"`
	EndTime     time.Duration `json:"end_time"`
	StartOffset int64         `json:"start_offset"`
	EndOffset   int64         `json:"end_offset"`
}
