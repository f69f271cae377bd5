package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaDefinition_Answered(t *testing.T) {
	text := MetaDefinition{FieldKey: "diet", FieldType: FieldTypeText}
	sw := MetaDefinition{FieldKey: "car", FieldType: FieldTypeSwitch}

	assert.False(t, text.Answered("", false))
	assert.False(t, text.Answered("   ", true))
	assert.True(t, text.Answered("vegan", true))

	assert.False(t, sw.Answered("", false))
	assert.True(t, sw.Answered("false", true))
}

func TestMetaDefinition_Normalize(t *testing.T) {
	num := MetaDefinition{FieldKey: "age", FieldType: FieldTypeNumber}
	sel := MetaDefinition{FieldKey: "size", FieldType: FieldTypeSelect, Options: []string{"S", "M", "L"}}
	box := MetaDefinition{FieldKey: "tos", FieldType: FieldTypeCheckbox}

	v, err := num.Normalize(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, "42", v)

	_, err = num.Normalize("forty")
	assert.ErrorIs(t, err, ErrValidation)

	for _, nonFinite := range []string{"NaN", "nan", "Inf", "-Inf", "+infinity", "1e400"} {
		_, err = num.Normalize(nonFinite)
		assert.ErrorIs(t, err, ErrValidation, nonFinite)
	}

	_, err = sel.Normalize("XL")
	assert.ErrorIs(t, err, ErrValidation)

	v, err = box.Normalize("TRUE")
	require.NoError(t, err)
	assert.Equal(t, "true", v)
}

func TestMetaDefinition_Coerce(t *testing.T) {
	assert.Equal(t, 3.5, MetaDefinition{FieldType: FieldTypeNumber}.Coerce("3.5"))
	assert.Nil(t, MetaDefinition{FieldType: FieldTypeNumber}.Coerce("NaN"))
	assert.Equal(t, false, MetaDefinition{FieldType: FieldTypeSwitch}.Coerce("false"))
	assert.Equal(t, "M", MetaDefinition{FieldType: FieldTypeSelect}.Coerce("M"))
}

func TestValidateMetaDefinitions(t *testing.T) {
	err := ValidateMetaDefinitions([]MetaDefinition{
		{FieldKey: "a", FieldType: FieldTypeText},
		{FieldKey: "a", FieldType: FieldTypeNumber},
	})
	assert.ErrorIs(t, err, ErrValidation)

	err = ValidateMetaDefinitions([]MetaDefinition{{FieldKey: "s", FieldType: FieldTypeSelect}})
	assert.ErrorIs(t, err, ErrValidation)

	err = ValidateMetaDefinitions([]MetaDefinition{{FieldKey: "b", FieldType: "radio"}})
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, ValidateMetaDefinitions([]MetaDefinition{
		{FieldKey: "s", FieldType: FieldTypeSelect, Options: []string{"x"}},
		{FieldKey: "n", FieldType: FieldTypeNumber, Required: true},
	}))
}
