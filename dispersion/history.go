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
)

// PortfolioReturnHistory calculates the weighted average portfolio return
// for every period in the return table using a static weight vector. The
// result has a single `portfolio` column indexed by period start dates.
func PortfolioReturnHistory(returns *ReturnTable, weights []float64) (*dataframe.DataFrame, error) {
	if len(weights) != returns.ColCount() {
		return nil, ErrLengthMismatch
	}

	history := &dataframe.DataFrame{
		Dates:    make([]time.Time, returns.Len()),
		ColNames: []string{"portfolio"},
		Vals:     [][]float64{make([]float64, returns.Len())},
	}
	copy(history.Dates, returns.Dates)

	for rowIdx := 0; rowIdx < returns.Len(); rowIdx++ {
		ret, err := WeightedAverage(returns.Row(rowIdx), weights)
		if err != nil {
			return nil, err
		}
		history.Vals[0][rowIdx] = ret
	}

	return history, nil
}

// DispersionHistory calculates the cross-sectional dispersion of component
// returns for every period in the return table using a static weight vector.
// The result has a single `dispersion` column indexed by period start dates.
// Periods with NaN component returns yield NaN dispersion.
func DispersionHistory(returns *ReturnTable, weights []float64) (*dataframe.DataFrame, error) {
	if len(weights) != returns.ColCount() {
		return nil, ErrLengthMismatch
	}

	history := &dataframe.DataFrame{
		Dates:    make([]time.Time, returns.Len()),
		ColNames: []string{"dispersion"},
		Vals:     [][]float64{make([]float64, returns.Len())},
	}
	copy(history.Dates, returns.Dates)

	for rowIdx := 0; rowIdx < returns.Len(); rowIdx++ {
		disp, err := Dispersion(returns.Row(rowIdx), weights)
		if err != nil {
			return nil, err
		}
		history.Vals[0][rowIdx] = disp
	}

	return history, nil
}
