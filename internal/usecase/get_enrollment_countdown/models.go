package get_enrollment_countdown

import "time"

// Response оставшееся до конца набора время, разложенное для отображения
type Response struct {
	Deadline time.Time
	Expired  bool
	Days     int
	Hours    int // 0..23
	Minutes  int // 0..59
	Seconds  int // 0..59
}
