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

package dispersion_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/penny-vault/pv-dispersion/common"
	"github.com/penny-vault/pv-dispersion/dataframe"
	"github.com/penny-vault/pv-dispersion/dispersion"
)

var _ = Describe("When applying returns to portfolio values", func() {
	It("multiplies each value by its growth factor", func() {
		endingValues, err := dispersion.ApplyReturns([]float64{100, 50}, []float64{1.05, 0.96})
		Expect(err).To(BeNil())
		Expect(endingValues).To(HaveLen(2))
		Expect(endingValues[0]).To(BeNumerically("~", 105, tol))
		Expect(endingValues[1]).To(BeNumerically("~", 48, tol))
	})

	It("errors when lengths do not match", func() {
		_, err := dispersion.ApplyReturns([]float64{100, 50}, []float64{1.05})
		Expect(err).To(MatchError(dispersion.ErrLengthMismatch))
	})

	It("does not modify the starting values", func() {
		startingValues := []float64{100, 50}
		_, err := dispersion.ApplyReturns(startingValues, []float64{1.05, 0.96})
		Expect(err).To(BeNil())
		Expect(startingValues).To(Equal([]float64{100.0, 50.0}))
	})
})

var _ = Describe("When reconstructing a portfolio value path", func() {
	var (
		tz      *time.Location
		returns *dispersion.ReturnTable
	)

	BeforeEach(func() {
		tz = common.GetTimezone()

		returns = &dispersion.ReturnTable{
			Dates: []time.Time{
				time.Date(2021, time.January, 29, 16, 0, 0, 0, tz),
				time.Date(2021, time.February, 26, 16, 0, 0, 0, tz),
			},
			End: []time.Time{
				time.Date(2021, time.February, 26, 16, 0, 0, 0, tz),
				time.Date(2021, time.March, 31, 16, 0, 0, 0, tz),
			},
			ColNames: []string{"VFINX"},
			Vals:     [][]float64{{0.10, -0.10}},
		}
	})

	Context("with a single asset", func() {
		It("has one more row than the return table", func() {
			values, err := dispersion.PortfolioValues([]float64{100}, returns)
			Expect(err).To(BeNil())
			Expect(values.Len()).To(Equal(3))
		})

		It("seeds the first row with the starting values", func() {
			values, err := dispersion.PortfolioValues([]float64{100}, returns)
			Expect(err).To(BeNil())
			Expect(values.Start()).To(Equal(returns.Dates[0]))
			Expect(values.Vals[0][0]).To(BeNumerically("==", 100.0))
		})

		It("grows each row by the period return", func() {
			values, err := dispersion.PortfolioValues([]float64{100}, returns)
			Expect(err).To(BeNil())

			Expect(values.Dates[1]).To(Equal(returns.End[0]))
			Expect(values.Dates[2]).To(Equal(returns.End[1]))
			Expect(values.Vals[0][1]).To(BeNumerically("~", 110, tol))
			Expect(values.Vals[0][2]).To(BeNumerically("~", 99, tol))
		})
	})

	Context("when composed with PriceToReturns", func() {
		It("reproduces the original price path", func() {
			prices := &dataframe.DataFrame{
				Dates: []time.Time{
					time.Date(2021, time.January, 29, 16, 0, 0, 0, tz),
					time.Date(2021, time.February, 26, 16, 0, 0, 0, tz),
					time.Date(2021, time.March, 31, 16, 0, 0, 0, tz),
					time.Date(2021, time.April, 30, 16, 0, 0, 0, tz),
				},
				ColNames: []string{"VFINX", "PRIDX"},
				Vals: [][]float64{
					{100, 105, 110, 108},
					{50, 48, 52, 55},
				},
			}

			rt, err := dispersion.PriceToReturns(prices)
			Expect(err).To(BeNil())

			values, err := dispersion.PortfolioValues([]float64{100, 50}, rt)
			Expect(err).To(BeNil())

			Expect(values.Len()).To(Equal(prices.Len()))
			Expect(values.Dates).To(Equal(prices.Dates))
			for colIdx := range prices.Vals {
				for rowIdx := range prices.Dates {
					Expect(values.Vals[colIdx][rowIdx]).To(BeNumerically("~", prices.Vals[colIdx][rowIdx], tol))
				}
			}
		})
	})

	Context("with invalid inputs", func() {
		It("errors on an empty return table", func() {
			_, err := dispersion.PortfolioValues([]float64{100}, &dispersion.ReturnTable{})
			Expect(err).To(MatchError(dispersion.ErrInsufficientData))
		})

		It("errors when the starting values do not match the columns", func() {
			_, err := dispersion.PortfolioValues([]float64{100, 50}, returns)
			Expect(err).To(MatchError(dispersion.ErrLengthMismatch))
		})
	})
})
