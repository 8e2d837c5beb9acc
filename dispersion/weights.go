// Copyright 2021-2022
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dispersion

import (
	"time"

	"github.com/penny-vault/pv-dispersion/dataframe"
	"gonum.org/v1/gonum/floats"
)

// NormalizeWeights converts raw position values into portfolio weights by
// dividing each value by the total. The output sums to 1 by construction.
// Returns ErrZeroTotal when the values sum to zero.
func NormalizeWeights(values []float64) ([]float64, error) {
	total := floats.Sum(values)
	if total == 0 {
		return nil, ErrZeroTotal
	}

	weights := make([]float64, len(values))
	for idx, val := range values {
		weights[idx] = val / total
	}

	return weights, nil
}

// WeightHistory normalizes every row of a value path into portfolio weights,
// yielding the drifting weight path of a buy-and-hold portfolio. Returns
// ErrZeroTotal if any row's values sum to zero.
func WeightHistory(values *dataframe.DataFrame) (*dataframe.DataFrame, error) {
	weights := &dataframe.DataFrame{
		Dates:    make([]time.Time, 0, values.Len()),
		ColNames: make([]string, values.ColCount()),
		Vals:     make([][]float64, values.ColCount()),
	}
	copy(weights.ColNames, values.ColNames)

	row := make([]float64, values.ColCount())
	for rowIdx, rowDate := range values.Dates {
		for colIdx, col := range values.Vals {
			row[colIdx] = col[rowIdx]
		}

		normalized, err := NormalizeWeights(row)
		if err != nil {
			return nil, err
		}

		weights.InsertRow(rowDate, normalized...)
	}

	return weights, nil
}
