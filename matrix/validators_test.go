// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/integral/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil covers untyped and typed nil inputs.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	var typed *matrix.Dense
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	tests := []struct {
		name    string
		m       matrix.Matrix
		wantErr error
	}{
		{"untyped nil", nil, matrix.ErrNilMatrix},
		{"typed nil", typed, matrix.ErrNilMatrix},
		{"non-nil", m, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateNotNil(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateColsAndVecLen checks shape guards used by integrands.
func TestValidateColsAndVecLen(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateCols(m, 3))
	require.ErrorIs(t, matrix.ValidateCols(m, 2), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
}
