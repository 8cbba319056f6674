package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"httpmsg/message"
	"httpmsg/status"
)

func TestDate_HandleResponse(t *testing.T) {
	fixed := time.Date(2009, time.March, 12, 11, 45, 32, 0, time.UTC)

	t.Run("formats the timestamp per RFC 7231", func(t *testing.T) {
		d := NewDate(func() time.Time { return fixed })
		resp := message.NewResponse(status.OK)

		err := d.HandleResponse(resp)
		assert.NoError(t, err)
		assert.Equal(t, "Thu, 12 Mar 2009 11:45:32 GMT", resp.Header().Value("Date"))
	})

	t.Run("converts local time to GMT", func(t *testing.T) {
		local := fixed.In(time.FixedZone("CET", 3600))
		d := NewDate(func() time.Time { return local })
		resp := message.NewResponse(status.OK)

		err := d.HandleResponse(resp)
		assert.NoError(t, err)
		assert.Equal(t, "Thu, 12 Mar 2009 11:45:32 GMT", resp.Header().Value("Date"))
	})

	t.Run("defaults to the wall clock", func(t *testing.T) {
		d := NewDate(nil)
		resp := message.NewResponse(status.OK)

		err := d.HandleResponse(resp)
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Header().Value("Date"))
	})
}
