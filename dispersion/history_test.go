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
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/penny-vault/pv-dispersion/common"
	"github.com/penny-vault/pv-dispersion/dataframe"
	"github.com/penny-vault/pv-dispersion/dispersion"
)

var _ = Describe("When computing multi-period statistics", func() {
	var (
		tz      *time.Location
		returns *dispersion.ReturnTable
		weights []float64
	)

	BeforeEach(func() {
		tz = common.GetTimezone()

		prices := &dataframe.DataFrame{
			Dates: []time.Time{
				time.Date(2021, time.January, 29, 16, 0, 0, 0, tz),
				time.Date(2021, time.February, 26, 16, 0, 0, 0, tz),
				time.Date(2021, time.March, 31, 16, 0, 0, 0, tz),
			},
			ColNames: []string{"VFINX", "PRIDX"},
			Vals: [][]float64{
				{100, 105, 110},
				{50, 48, 52},
			},
		}

		var err error
		returns, err = dispersion.PriceToReturns(prices)
		Expect(err).To(BeNil())

		weights = []float64{0.6, 0.4}
	})

	Context("portfolio return history", func() {
		It("computes the weighted average for every period", func() {
			history, err := dispersion.PortfolioReturnHistory(returns, weights)
			Expect(err).To(BeNil())

			Expect(history.Len()).To(Equal(2))
			Expect(history.ColNames).To(Equal([]string{"portfolio"}))
			Expect(history.Dates).To(Equal(returns.Dates))

			// 0.6×0.05 + 0.4×(-0.04)
			Expect(history.Vals[0][0]).To(BeNumerically("~", 0.014, tol))
			// 0.6×(110/105-1) + 0.4×(52/48-1)
			Expect(history.Vals[0][1]).To(BeNumerically("~", 0.6*(110.0/105.0-1)+0.4*(52.0/48.0-1), tol))
		})

		It("errors when weights do not match the columns", func() {
			_, err := dispersion.PortfolioReturnHistory(returns, []float64{1.0})
			Expect(err).To(MatchError(dispersion.ErrLengthMismatch))
		})
	})

	Context("dispersion history", func() {
		It("computes the dispersion for every period", func() {
			history, err := dispersion.DispersionHistory(returns, weights)
			Expect(err).To(BeNil())

			Expect(history.Len()).To(Equal(2))
			Expect(history.ColNames).To(Equal([]string{"dispersion"}))
			Expect(history.Dates).To(Equal(returns.Dates))

			// deviations from R=0.014 are 0.036 and -0.054
			Expect(history.Vals[0][0]).To(BeNumerically("~", math.Sqrt(0.6*0.036*0.036+0.4*0.054*0.054), 1e-6))
		})

		It("propagates NaN component returns", func() {
			returns.Vals[1][1] = math.NaN()

			history, err := dispersion.DispersionHistory(returns, weights)
			Expect(err).To(BeNil())
			Expect(math.IsNaN(history.Vals[0][1])).To(BeTrue())

			// prior periods are unaffected
			Expect(math.IsNaN(history.Vals[0][0])).To(BeFalse())
		})

		It("errors when weights do not match the columns", func() {
			_, err := dispersion.DispersionHistory(returns, []float64{1.0})
			Expect(err).To(MatchError(dispersion.ErrLengthMismatch))
		})
	})
})
