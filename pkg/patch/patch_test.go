package patch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

type payload struct {
	Major Field[string] `json:"major"`
	Year  Field[int]    `json:"graduation_year"`
}

func TestField_AbsentKeepsState(t *testing.T) {
	var p payload
	assert.NoError(t, json.Unmarshal([]byte(`{}`), &p))

	assert.False(t, p.Major.IsSet())
	assert.False(t, p.Major.IsNull())

	existing := "CS"
	dest := &existing
	p.Major.Apply(&dest)
	assert.NotNil(t, dest)
	assert.Equal(t, "CS", *dest)
}

func TestField_ExplicitNullClears(t *testing.T) {
	var p payload
	assert.NoError(t, json.Unmarshal([]byte(`{"major": null}`), &p))

	assert.True(t, p.Major.IsSet())
	assert.True(t, p.Major.IsNull())

	existing := "CS"
	dest := &existing
	p.Major.Apply(&dest)
	assert.Nil(t, dest)
}

func TestField_ValueOverwrites(t *testing.T) {
	var p payload
	assert.NoError(t, json.Unmarshal([]byte(`{"major": "Math", "graduation_year": 2026}`), &p))

	value, ok := p.Major.Value()
	assert.True(t, ok)
	assert.Equal(t, "Math", value)

	existing := "CS"
	dest := &existing
	p.Major.Apply(&dest)
	assert.Equal(t, "Math", *dest)

	year, ok := p.Year.Value()
	assert.True(t, ok)
	assert.Equal(t, 2026, year)
}

func TestField_Constructors(t *testing.T) {
	set := Set("x")
	v, ok := set.Value()
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	cleared := Clear[string]()
	assert.True(t, cleared.IsNull())
	_, ok = cleared.Value()
	assert.False(t, ok)
}

func TestField_MarshalRoundTrip(t *testing.T) {
	p := payload{Major: Set("Math")}
	data, err := json.Marshal(p)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"major":"Math","graduation_year":null}`, string(data))
}
