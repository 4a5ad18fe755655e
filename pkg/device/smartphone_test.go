package device

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oopdemo/pkg/engine/console"
)

type fixedRand int

func (f fixedRand) Intn(int) int { return int(f) }

func newTestPhone(n console.Narrator, cameraMP int, opts ...PhoneOption) *Smartphone {
	p := NewSmartphone(n, Spec{Brand: "Google", Model: "Pixel 8", Price: 700, BatteryHours: 24}, 6.2, cameraMP, opts...)
	p.PowerOn()
	return p
}

func TestMakeCall_DeduplicatesContacts(t *testing.T) {
	rec := &console.Recorder{}
	p := newTestPhone(rec, 50)

	require.NoError(t, p.MakeCall("Mom"))
	require.NoError(t, p.MakeCall("Dad"))
	require.NoError(t, p.MakeCall("Mom"))

	assert.Equal(t, []string{"Mom", "Dad"}, p.Contacts())
	assert.Equal(t, 3, rec.Count("PHONE_CALLING"), "every call is narrated")
}

func TestTakePhoto_Quality(t *testing.T) {
	testCases := []struct {
		cameraMP int
		expected string
	}{
		{cameraMP: 48, expected: "HD"},
		{cameraMP: 12, expected: "HD"},
		{cameraMP: 11, expected: "Standard"},
		{cameraMP: 2, expected: "Standard"},
	}

	for _, tc := range testCases {
		p := newTestPhone(nil, tc.cameraMP, WithRand(fixedRand(234)))
		name, err := p.TakePhoto()
		require.NoError(t, err)
		assert.Equal(t, tc.expected+"_photo_1234.jpg", name, "camera %dMP", tc.cameraMP)
	}
}

func TestTakePhoto_SuffixRange(t *testing.T) {
	assert.Equal(t, "HD_photo_1000.jpg", mustPhoto(t, newTestPhone(nil, 12, WithRand(fixedRand(0)))))
	assert.Equal(t, "HD_photo_9999.jpg", mustPhoto(t, newTestPhone(nil, 12, WithRand(fixedRand(8999)))))
}

func TestTakePhoto_DefaultRandMatchesPattern(t *testing.T) {
	pattern := regexp.MustCompile(`^(HD|Standard)_photo_[1-9][0-9]{3}\.jpg$`)
	p := newTestPhone(nil, 8)

	for i := 0; i < 50; i++ {
		name := mustPhoto(t, p)
		assert.Regexp(t, pattern, name)
	}
}

func TestTakePhoto_Narration(t *testing.T) {
	rec := &console.Recorder{}
	p := newTestPhone(rec, 11, WithRand(fixedRand(1)))
	rec.Reset()

	mustPhoto(t, p)

	assert.Equal(t, console.Line{Key: "PHONE_PHOTO", Args: []any{"Standard", 11}}, rec.Last())
}

func TestSmartphoneInfo_ExtendsDevice(t *testing.T) {
	p := NewSmartphone(nil, Spec{Brand: "Apple", Model: "iPhone 15", Price: 999, BatteryHours: 20}, 6.1, 48)

	assert.Equal(t, `🔷 Apple iPhone 15 - $999 - Battery: 20h - Status: OFF - Screen: 6.1" - Camera: 48MP`, p.Info())
	assert.Equal(t, "Smartphone", p.Kind())
}

func mustPhoto(t *testing.T, p *Smartphone) string {
	t.Helper()
	name, err := p.TakePhoto()
	require.NoError(t, err)
	return name
}
