package bls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesID(t *testing.T) {
	tests := []struct {
		name     string
		areaCode string
		soc      string
		datatype string
		want     string
		wantErr  bool
	}{
		{
			name:     "national median",
			areaCode: "0000000",
			soc:      "151252",
			datatype: DatatypeMedian,
			want:     "OEUN000000000000015125213",
		},
		{
			name:     "state mean",
			areaCode: "S4800000",
			soc:      "151252",
			datatype: DatatypeMeanAnnual,
			want:     "OEUS480000000000015125204",
		},
		{
			name:     "metro pads cbsa to seven digits",
			areaCode: "M1242000",
			soc:      "151252",
			datatype: DatatypeMedian,
			want:     "OEUM001242000000015125213",
		},
		{
			name:     "bad occupation length",
			areaCode: "0000000",
			soc:      "15-1252",
			datatype: DatatypeMedian,
			wantErr:  true,
		},
		{
			name:     "bad area code",
			areaCode: "X1234567",
			soc:      "151252",
			datatype: DatatypeMedian,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SeriesID(tt.areaCode, tt.soc, tt.datatype)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, 25)
		})
	}
}
