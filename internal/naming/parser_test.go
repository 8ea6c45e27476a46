package naming

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func TestParseStem(t *testing.T) {
	cases := []struct {
		name           string
		stem           string
		wantCategory   string
		wantPhenomenon string
		wantErr        bool
	}{
		{name: "fire summer rain", stem: "火の夏雨", wantCategory: "火", wantPhenomenon: "夏雨"},
		{name: "water frost night", stem: "水の霜夜", wantCategory: "水", wantPhenomenon: "霜夜"},
		{name: "unknown tokens still parse", stem: "風の嵐", wantCategory: "風", wantPhenomenon: "嵐"},
		{name: "no separator", stem: "火夏雨", wantErr: true},
		{name: "two separators", stem: "火の夏の雨", wantErr: true},
		{name: "empty phenomenon", stem: "火の", wantErr: true},
		{name: "empty category", stem: "の夏雨", wantErr: true},
		{name: "separator only", stem: "の", wantErr: true},
		{name: "empty stem", stem: "", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseStem(tc.stem, DefaultSeparator)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedStem), "error should wrap ErrMalformedStem: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.stem, got.Stem)
			assert.Equal(t, tc.wantCategory, got.Category)
			assert.Equal(t, tc.wantPhenomenon, got.Phenomenon)
		})
	}
}

func TestParseFilename_StripsExtension(t *testing.T) {
	got, err := ParseFilename("金の朧月.md", DefaultSeparator)
	require.NoError(t, err)
	assert.Equal(t, "金の朧月", got.Stem)
	assert.Equal(t, "金", got.Category)
	assert.Equal(t, "朧月", got.Phenomenon)
}

func TestParseStem_CustomSeparator(t *testing.T) {
	got, err := ParseStem("fire_natsuame", "_")
	require.NoError(t, err)
	assert.Equal(t, "fire", got.Category)
	assert.Equal(t, "natsuame", got.Phenomenon)
}

func TestParseStem_KeepsRawStem(t *testing.T) {
	// "が" decomposes under NFD; the raw form must survive for sibling lookup.
	nfd := norm.NFD.String("火のがらす")
	got, err := ParseStem(nfd, DefaultSeparator)
	require.NoError(t, err)
	assert.Equal(t, nfd, got.Stem)
	assert.Equal(t, norm.NFD.String("がらす"), got.Phenomenon)
}

func TestOutputStem_UnmappedNFDTokenVerbatim(t *testing.T) {
	tables := DefaultTables()
	nfd := norm.NFD.String("火のがらす")
	got, err := ParseStem(nfd, DefaultSeparator)
	require.NoError(t, err)
	assert.Equal(t, "fire-"+norm.NFD.String("がらす"), tables.OutputStem(got))
}

func TestParseStem_NFDSeparator(t *testing.T) {
	// "ガ" is written NFC in the mapping and NFD on disk.
	nfd := norm.NFD.String("aガb")
	got, err := ParseStem(nfd, "ガ")
	require.NoError(t, err)
	assert.Equal(t, "a", got.Category)
	assert.Equal(t, "b", got.Phenomenon)
}
