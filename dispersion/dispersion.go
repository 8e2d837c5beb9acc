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

// Package dispersion computes single- and multi-period portfolio return and
// dispersion statistics from date-indexed tables of component asset prices.
package dispersion

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrLengthMismatch   = errors.New("paired sequences must be the same length")
	ErrZeroTotal        = errors.New("total value must be non-zero")
	ErrDateNotFound     = errors.New("date not present in price table")
	ErrInsufficientData = errors.New("not enough rows to compute returns")
)

// WeightedAverage calculates the single-period portfolio return as the
// weighted sum of per-asset returns. componentReturns are fractional changes
// (e.g. 0.05 for +5%) and weights are the start-of-period portfolio weights,
// positionally aligned and expected to sum to ~1.
func WeightedAverage(componentReturns, weights []float64) (float64, error) {
	if len(componentReturns) != len(weights) {
		return math.NaN(), ErrLengthMismatch
	}

	return floats.Dot(componentReturns, weights), nil
}

// DispersionAround calculates the weighted root-mean-square deviation of the
// component returns from portfolioReturn:
//
//	√(Σ wᵢ × (rᵢ - portfolioReturn)²)
//
// This is a cross-sectional statistic, not a time-series standard deviation.
// Supplying a benchmark return instead of the portfolio's own weighted
// average yields a tracking-error-like dispersion.
func DispersionAround(componentReturns, weights []float64, portfolioReturn float64) (float64, error) {
	if len(componentReturns) != len(weights) {
		return math.NaN(), ErrLengthMismatch
	}

	sum := 0.0
	for idx, ret := range componentReturns {
		dev := ret - portfolioReturn
		sum += weights[idx] * dev * dev
	}

	return math.Sqrt(sum), nil
}

// Dispersion calculates the dispersion of component returns around the
// portfolio's weighted average return. Equivalent to DispersionAround with
// the result of WeightedAverage over the same inputs.
func Dispersion(componentReturns, weights []float64) (float64, error) {
	portfolioReturn, err := WeightedAverage(componentReturns, weights)
	if err != nil {
		return math.NaN(), err
	}

	return DispersionAround(componentReturns, weights, portfolioReturn)
}
