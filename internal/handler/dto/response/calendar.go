package response

import (
	"time"

	"gear-rental/internal/usecase/readmodel"
)

type CalendarResponse struct {
	From    time.Time                 `json:"from"`
	To      time.Time                 `json:"to"`
	Entries []readmodel.CalendarEntry `json:"entries"`
}
