package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeterOffTerminal(t *testing.T) {
	t.Run("SilentUntilFinish", func(t *testing.T) {
		var out bytes.Buffer
		m := New(&out, "Processing cards", 10, Count)

		m.Add(5)
		assert.Empty(t, out.String())

		m.Add(5)
		m.Finish()
		assert.Equal(t, "Processing cards: 10 / 10\n", out.String())
	})

	t.Run("IndeterminateCount", func(t *testing.T) {
		var out bytes.Buffer
		m := New(&out, "Processing", 0, Count)

		m.Add(7)
		m.Finish()
		assert.Equal(t, "Processing: 7\n", out.String())
	})

	t.Run("BytesUnit", func(t *testing.T) {
		var out bytes.Buffer
		m := New(&out, "Downloading", 2048, Bytes)

		m.Add(2048)
		m.Finish()
		assert.Equal(t, "Downloading: 2.0 KiB / 2.0 KiB\n", out.String())
	})

	t.Run("SetTotalAfterCreation", func(t *testing.T) {
		var out bytes.Buffer
		m := New(&out, "Downloading", 0, Bytes)

		m.SetTotal(100)
		m.Add(100)
		m.Finish()
		assert.Equal(t, "Downloading: 100 B / 100 B\n", out.String())
	})
}

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1048576, "1.0 MiB"},
		{5 * 1024 * 1024 * 1024, "5.0 GiB"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, formatBytes(tc.n), "formatBytes(%d)", tc.n)
	}
}
