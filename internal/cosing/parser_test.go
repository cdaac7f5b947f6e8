package cosing

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "COSING Ref No;INCI name;INN name;Chem/IUPAC Name / Description;Function;Restriction;Update Date\n" +
	"28811;GLYCERIN;;Glycerol;HUMECTANT, SKIN CONDITIONING;;01/01/2010\n" +
	"abc;BROKEN;;;;;\n" +
	"35463;;;;;;\n" +
	"54338;\"AQUA\";;Water;SOLVENT;;\n"

func collect(t *testing.T, input string, opts Options) ([]Record, Stats) {
	t.Helper()
	var got []Record
	stats, err := Parse(strings.NewReader(input), opts, func(r Record) error {
		got = append(got, r)
		return nil
	})
	require.NoError(t, err)
	return got, stats
}

func TestParse(t *testing.T) {
	got, stats := collect(t, sample, Options{})

	require.Len(t, got, 2)
	assert.Equal(t, Stats{Parsed: 2, Skipped: 2}, stats)
	assert.Equal(t, Record{
		RefNo:       28811,
		INCIName:    "GLYCERIN",
		Description: "Glycerol",
		Function:    "HUMECTANT, SKIN CONDITIONING",
		UpdateDate:  "01/01/2010",
	}, got[0])
	assert.Equal(t, "AQUA", got[1].INCIName)
}

func TestParse_Latin1(t *testing.T) {
	// 0xE9 is "é" in ISO-8859-1.
	input := "COSING Ref No;INCI name;Function\n1;CR\xe9ME;EMOLLIENT\n"
	got, _ := collect(t, input, Options{Latin1: true})

	require.Len(t, got, 1)
	assert.Equal(t, "CRéME", got[0].INCIName)
}

func TestParse_MissingColumn(t *testing.T) {
	_, err := Parse(strings.NewReader("Ref;Name\n1;x\n"), Options{}, func(Record) error { return nil })
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestParse_CallbackErrorStops(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	_, err := Parse(strings.NewReader(sample), Options{}, func(Record) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}
