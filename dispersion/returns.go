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
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/penny-vault/pv-dispersion/dataframe"
)

// ReturnTable holds one row per period. Dates[i] is the period start date,
// End[i] the period end date; End[i] always equals the source price table's
// date at position i+1. Return values are fractional changes over the period
// (0.xx format), column major as in dataframe.DataFrame. NaN prices in the
// source propagate to NaN returns.
type ReturnTable struct {
	Dates    []time.Time
	End      []time.Time
	ColNames []string
	Vals     [][]float64
}

// Len returns the number of periods in the table
func (rt *ReturnTable) Len() int {
	return len(rt.Dates)
}

// ColCount returns the number of asset columns in the table
func (rt *ReturnTable) ColCount() int {
	return len(rt.ColNames)
}

// Row returns the per-asset returns for the requested period
func (rt *ReturnTable) Row(rowIdx int) []float64 {
	row := make([]float64, len(rt.Vals))
	for colIdx, col := range rt.Vals {
		row[colIdx] = col[rowIdx]
	}

	return row
}

// Table prints an ASCII formatted table with the period start and end dates
// followed by the per-asset return columns
func (rt *ReturnTable) Table() string {
	if rt.Len() == 0 {
		return "<NO DATA>"
	}

	tableCols := append([]string{"Start", "End"}, rt.ColNames...)

	s := &strings.Builder{}
	table := tablewriter.NewWriter(s)
	table.SetHeader(tableCols)
	footer := make([]string, len(tableCols))
	footer[0] = "Num Periods"
	footer[1] = fmt.Sprintf("%d", rt.Len())
	table.SetFooter(footer)
	table.SetBorder(false)

	for idx, startDate := range rt.Dates {
		row := make([]string, 0, len(rt.Vals)+2)
		row = append(row, startDate.Format("2006-01-02"), rt.End[idx].Format("2006-01-02"))

		for _, col := range rt.Vals {
			row = append(row, fmt.Sprintf("%.4f", col[idx]))
		}

		table.Append(row)
	}

	table.Render()
	return s.String()
}

// PriceToReturns converts a price table into a table of period-over-period
// fractional returns. Each output row is aligned to the date the period
// starts on; the period's end date is recorded in the End column. The output
// has one fewer row than the input since the final date has no outgoing
// period. Returns ErrInsufficientData when prices has fewer than 2 rows.
func PriceToReturns(prices *dataframe.DataFrame) (*ReturnTable, error) {
	if prices.Len() < 2 {
		return nil, ErrInsufficientData
	}

	nPeriods := prices.Len() - 1
	returns := &ReturnTable{
		Dates:    make([]time.Time, nPeriods),
		End:      make([]time.Time, nPeriods),
		ColNames: make([]string, prices.ColCount()),
		Vals:     make([][]float64, prices.ColCount()),
	}

	copy(returns.ColNames, prices.ColNames)
	copy(returns.Dates, prices.Dates[:nPeriods])
	copy(returns.End, prices.Dates[1:])

	for colIdx, col := range prices.Vals {
		rets := make([]float64, nPeriods)
		for rowIdx := 0; rowIdx < nPeriods; rowIdx++ {
			// NaN prices propagate to NaN returns
			rets[rowIdx] = col[rowIdx+1]/col[rowIdx] - 1
		}
		returns.Vals[colIdx] = rets
	}

	return returns, nil
}

// PeriodReturn calculates the per-asset fractional return between two dates
// of a price table: price(end)/price(start) - 1. Both dates must exactly
// match a row in the table; otherwise ErrDateNotFound is returned.
func PeriodReturn(start, end time.Time, prices *dataframe.DataFrame) ([]float64, error) {
	startPrices, ok := prices.Row(start)
	if !ok {
		return nil, ErrDateNotFound
	}

	endPrices, ok := prices.Row(end)
	if !ok {
		return nil, ErrDateNotFound
	}

	rets := make([]float64, len(startPrices))
	for idx := range rets {
		rets[idx] = endPrices[idx]/startPrices[idx] - 1
	}

	return rets, nil
}
