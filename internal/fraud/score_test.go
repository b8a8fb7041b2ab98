package fraud

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(s string) *time.Time {
	t, err := time.Parse(exifTimeLayout, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestScoreCleanImage(t *testing.T) {
	v := NewScorer(nil).Score(MetadataRecord{
		Software:         "Apple iPhone 14 Pro",
		DateTimeOriginal: ts("2026:03:01 10:00:00"),
		DateTime:         ts("2026:03:01 10:00:00"),
		HasGPS:           true,
	})

	assert.False(t, v.IsSuspicious)
	assert.Nil(t, v.Reason)
	assert.Empty(t, v.Signals)
}

func TestScoreNoMetadataIsNotSuspicious(t *testing.T) {
	v := NewScorer(nil).Score(MetadataRecord{})
	assert.False(t, v.IsSuspicious)
}

func TestScoreExifEditor(t *testing.T) {
	v := NewScorer(nil).Score(MetadataRecord{Software: "Adobe Photoshop 23.3 (Windows)"})

	require.True(t, v.IsSuspicious)
	require.NotNil(t, v.Reason)
	assert.Equal(t, "image appears to be edited with Adobe Photoshop 23.3 (Windows)", *v.Reason)
	require.Len(t, v.Signals, 1)
	assert.Equal(t, "exif-software-editor", v.Signals[0].Name)
	assert.Equal(t, 0.9, v.Signals[0].Weight)
}

func TestScoreProcessingSoftwareEditor(t *testing.T) {
	v := NewScorer(nil).Score(MetadataRecord{ProcessingSoftware: "Snapseed 2.0"})

	require.True(t, v.IsSuspicious)
	assert.Equal(t, "exif-software-editor", v.Signals[0].Name)
	assert.Equal(t, "Snapseed 2.0", v.Signals[0].Detail)
}

func TestScoreXMPCreator(t *testing.T) {
	v := NewScorer(nil).Score(MetadataRecord{XMPCreatorTool: "Affinity Photo 2"})

	require.True(t, v.IsSuspicious)
	require.Len(t, v.Signals, 1)
	assert.Equal(t, "xmp-creator-editor", v.Signals[0].Name)
	assert.Equal(t, 0.8, v.Signals[0].Weight)
}

func TestScorePNGSoftware(t *testing.T) {
	v := NewScorer(nil).Score(MetadataRecord{PNGSoftware: "gimp 2.10"})

	require.True(t, v.IsSuspicious)
	assert.Equal(t, "png-software-editor", v.Signals[0].Name)
	assert.Equal(t, 0.7, v.Signals[0].Weight)
}

func TestScoreModifiedAfterCapture(t *testing.T) {
	v := NewScorer(nil).Score(MetadataRecord{
		DateTimeOriginal: ts("2026:03:01 10:00:00"),
		DateTime:         ts("2026:03:05 10:00:00"),
	})

	require.True(t, v.IsSuspicious)
	require.Len(t, v.Signals, 1)
	assert.Equal(t, "modified-after-capture", v.Signals[0].Name)
	assert.Equal(t, 0.6, v.Signals[0].Weight)
	assert.Contains(t, *v.Reason, "96h0m0s after capture")
}

func TestScoreRecentRetouchWithinThreshold(t *testing.T) {
	v := NewScorer(nil).Score(MetadataRecord{
		DateTimeOriginal: ts("2026:03:01 10:00:00"),
		DateTime:         ts("2026:03:02 09:00:00"),
	})

	assert.False(t, v.IsSuspicious)
}

func TestScoreCollectsAllSignalsReasonFromFirst(t *testing.T) {
	v := NewScorer(nil).Score(MetadataRecord{
		Software:         "Adobe Photoshop Lightroom Classic",
		XMPCreatorTool:   "Adobe Photoshop 23.3",
		DateTimeOriginal: ts("2026:03:01 10:00:00"),
		DateTime:         ts("2026:03:10 10:00:00"),
	})

	require.True(t, v.IsSuspicious)
	require.Len(t, v.Signals, 3)
	assert.Equal(t, "exif-software-editor", v.Signals[0].Name)
	assert.Equal(t, "image appears to be edited with Adobe Photoshop Lightroom Classic", *v.Reason)
}
