package parser

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomasVenkrbec/Facebook-message-analyser/internal/domain"
)

var cet = time.FixedZone("CET", 3600)

func TestFromUnixMilli(t *testing.T) {
	n := NewNormalizer(cet)

	ts, stamp := n.FromUnixMilli(1609459200999)

	assert.Equal(t, "Fri Jan  1 01:00:00 2021", stamp)
	assert.True(t, ts.Equal(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFromISO8601(t *testing.T) {
	n := NewNormalizer(cet)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "offset with fraction", in: "2021-01-01T10:30:15.123+02:00", want: "Fri Jan  1 09:30:15 2021"},
		{name: "zulu with fraction", in: "2020-12-31T23:59:59.999Z", want: "Fri Jan  1 00:59:59 2021"},
		{name: "no fraction", in: "2021-03-14T15:09:26+00:00", want: "Sun Mar 14 16:09:26 2021"},
		{name: "seven digit fraction", in: "2021-03-14T15:09:26.5358979+00:00", want: "Sun Mar 14 16:09:26 2021"},
		{name: "offset without colon", in: "2021-03-14T15:09:26.1-0500", want: "Sun Mar 14 21:09:26 2021"},
		{name: "no offset is local", in: "2021-03-14T15:09:26.1", want: "Sun Mar 14 15:09:26 2021"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stamp, err := n.FromISO8601(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stamp)
		})
	}
}

func TestFromISO8601Invalid(t *testing.T) {
	_, _, err := NewNormalizer(cet).FromISO8601("yesterday")
	assert.Error(t, err)
}

func TestNormalizerDefaultsToLocal(t *testing.T) {
	n := NewNormalizer(nil)
	_, stamp := n.FromUnixMilli(0)
	assert.Equal(t, time.Unix(0, 0).In(time.Local).Format(time.ANSIC), stamp)
}

var clockRe = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)

func assertStampLayout(t *testing.T, stamp string) {
	t.Helper()
	tokens := strings.Fields(stamp)
	require.Len(t, tokens, 5, stamp)
	assert.Contains(t, domain.Weekdays, tokens[0], stamp)
	assert.Contains(t, domain.Months, tokens[1], stamp)

	day, err := strconv.Atoi(tokens[2])
	require.NoError(t, err, stamp)
	assert.True(t, day >= 1 && day <= 31, stamp)
	assert.NotEqual(t, '0', rune(tokens[2][0]), stamp)

	assert.Regexp(t, clockRe, tokens[3])
	assert.Regexp(t, `^\d{4}$`, tokens[4])
}

func TestStampLayoutAcrossPlatforms(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	zones := []*time.Location{time.UTC, cet, time.FixedZone("NPT", 5*3600+45*60), time.FixedZone("HST", -10*3600)}
	start := time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	end := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()

	for i := 0; i < 100; i++ {
		n := NewNormalizer(zones[i%len(zones)])
		ms := start + rng.Int63n(end-start)

		if i%2 == 0 {
			_, stamp := n.FromUnixMilli(ms)
			assertStampLayout(t, stamp)
			continue
		}

		offset := time.FixedZone("src", (rng.Intn(27)-12)*3600)
		iso := time.UnixMilli(ms).In(offset).Format("2006-01-02T15:04:05.000Z07:00")
		_, stamp, err := n.FromISO8601(iso)
		require.NoError(t, err, fmt.Sprintf("input %s", iso))
		assertStampLayout(t, stamp)
	}
}
