package handlers

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type partitionRequest struct {
	Partition string `validate:"partition"`
}

func TestRegisterValidators(t *testing.T) {
	v := validator.New()
	require.NoError(t, registerValidators(v))

	testCases := []struct {
		label string
		valid bool
	}{
		{label: "reg-d", valid: true},
		{label: "default", valid: true},
		{label: "", valid: false},
		{label: "has space", valid: false},
		{label: "tab\there", valid: false},
		{label: strings.Repeat("p", maxPartitionLength), valid: true},
		{label: strings.Repeat("p", maxPartitionLength+1), valid: false},
	}
	for _, tc := range testCases {
		err := v.Struct(partitionRequest{Partition: tc.label})
		if tc.valid {
			assert.NoError(t, err, "label %q", tc.label)
		} else {
			assert.Error(t, err, "label %q", tc.label)
		}
	}
}

func TestMustRegisterValidators(t *testing.T) {
	assert.NotPanics(t, mustRegisterValidators)
}
