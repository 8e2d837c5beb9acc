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

// ApplyReturns calculates the ending value for each asset over a single
// period: startingValue × growthFactor, paired positionally. Growth factors
// are gross returns (1.xx format; a 5% gain is 1.05, a 5% loss is 0.95).
func ApplyReturns(startingValues, growthFactors []float64) ([]float64, error) {
	if len(startingValues) != len(growthFactors) {
		return nil, ErrLengthMismatch
	}

	endingValues := make([]float64, len(startingValues))
	floats.MulTo(endingValues, startingValues, growthFactors)
	return endingValues, nil
}

// PortfolioValues reconstructs the full value path of a portfolio given the
// value held in each asset at the start of the first period and a table of
// fractional per-period returns. The output has one row per period plus a
// seed row: the seed row holds startingValues dated at the first period's
// start date, and each subsequent row holds the prior row's values grown by
// that period's returns, dated at the period's end date.
//
// The fold is inherently sequential; each period's ending values are the
// next period's starting values, so rows are computed in strict table order
// with left-to-right arithmetic.
func PortfolioValues(startingValues []float64, returns *ReturnTable) (*dataframe.DataFrame, error) {
	if returns.Len() == 0 {
		return nil, ErrInsufficientData
	}

	if len(startingValues) != returns.ColCount() {
		return nil, ErrLengthMismatch
	}

	values := &dataframe.DataFrame{
		Dates:    make([]time.Time, 0, returns.Len()+1),
		ColNames: make([]string, returns.ColCount()),
		Vals:     make([][]float64, returns.ColCount()),
	}
	copy(values.ColNames, returns.ColNames)

	// seed row
	values.InsertRow(returns.Dates[0], startingValues...)

	current := make([]float64, len(startingValues))
	copy(current, startingValues)

	factors := make([]float64, returns.ColCount())
	for rowIdx := 0; rowIdx < returns.Len(); rowIdx++ {
		for colIdx, col := range returns.Vals {
			factors[colIdx] = col[rowIdx] + 1
		}

		endingValues, err := ApplyReturns(current, factors)
		if err != nil {
			return nil, err
		}

		values.InsertRow(returns.End[rowIdx], endingValues...)
		current = endingValues
	}

	return values, nil
}
