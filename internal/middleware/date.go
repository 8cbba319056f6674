package middleware

import (
	"fmt"
	"time"

	"httpmsg/message"
)

const httpDateFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

type Date struct {
	now func() time.Time
}

func NewDate(now func() time.Time) *Date {
	if now == nil {
		now = time.Now
	}
	return &Date{now: now}
}

func (d *Date) HandleResponse(resp *message.Response) error {
	if !resp.Header().Set("Date", d.now().UTC().Format(httpDateFormat)) {
		return fmt.Errorf("could not set Date header")
	}
	return nil
}
